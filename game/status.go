package game

// Status is the state of the game.
type Status int

const (
	_ Status = iota
	// NotStarted is the status of a game that has players but has not dealt any tiles.
	NotStarted
	// InProgress is the status of a game with a round being played.
	InProgress
	// RoundOver is the status of a game between rounds, after the scores of the last round have been added.
	RoundOver
	// Finished is the status of a game that has a winner.
	Finished
)

// String returns the display value for the status.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "Not Started"
	case InProgress:
		return "In Progress"
	case RoundOver:
		return "Round Over"
	case Finished:
		return "Finished"
	}
	return "?"
}
