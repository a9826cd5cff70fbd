package game

import (
	"github.com/block-domino/block-domino/game/board"
	"github.com/block-domino/block-domino/game/player"
	"github.com/block-domino/block-domino/game/tile"
)

type (
	// EventType represents what happened in a game.
	EventType int

	// Event is a notification about a change to a game.
	// Events are sent synchronously, as the change happens.
	Event struct {
		Type EventType `json:"type"`
		// Round is the round the event happened in.
		Round int `json:"round,omitempty"`
		// Player is the player who played a tile, was skipped, or starts a round.
		Player player.Name `json:"player,omitempty"`
		// Tile is the tile that was played, as it is oriented on the board.
		Tile *tile.Tile `json:"tile,omitempty"`
		// Side is the end of the board the tile was played on.
		Side board.Side `json:"side,omitempty"`
		// Winner is the player who won the round or game.  It is empty if a round has no winner.
		Winner player.Name `json:"winner,omitempty"`
		// Points is the number of points the winner of a round scored.
		Points int `json:"points,omitempty"`
	}

	// EventHandler is a function which is called with each event.
	EventHandler func(e Event)
)

const (
	_ EventType = iota
	// TilePlayed is sent when a player places a tile on the board.
	TilePlayed
	// PlayerSkipped is sent when a player cannot play and their turn is passed.
	PlayerSkipped
	// RoundStarted is sent after the tiles of a new round are dealt.
	RoundStarted
	// RoundEnded is sent after the scores of a round are added, even if the round has no winner.
	RoundEnded
	// GameOver is sent after the last round, when the game has a winner.
	GameOver
)

// String returns the display value for the event type.
func (et EventType) String() string {
	switch et {
	case TilePlayed:
		return "TilePlayed"
	case PlayerSkipped:
		return "PlayerSkipped"
	case RoundStarted:
		return "RoundStarted"
	case RoundEnded:
		return "RoundEnded"
	case GameOver:
		return "GameOver"
	}
	return "?"
}
