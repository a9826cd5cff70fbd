package game

import (
	"github.com/block-domino/block-domino/game/board"
	"github.com/block-domino/block-domino/game/player"
)

type (
	// Info contains a snapshot of a game that front ends can render.
	Info struct {
		// ID is unique among games.
		ID ID `json:"id"`
		// Status is the state of the game.
		Status Status `json:"status"`
		// Config holds the variant options of the game.
		Config Config `json:"config"`
		// Round is the number of the current or last round, starting at 1.
		Round int `json:"round"`
		// CurrentPlayer is the player whose turn it is.
		CurrentPlayer player.Name `json:"currentPlayer,omitempty"`
		// Players are copies of the players in turn order.
		Players []player.Player `json:"players"`
		// Board is a copy of the line of tiles.
		Board board.Board `json:"board"`
		// Boneyard is the number of tiles that were not dealt this round.
		Boneyard int `json:"boneyard"`
		// History contains the results of the rounds that have ended.
		History []RoundResult `json:"history,omitempty"`
	}

	// RoundResult describes how a round ended.
	RoundResult struct {
		Round int `json:"round"`
		// Winner is empty if no player won the round.
		Winner player.Name `json:"winner,omitempty"`
		// Points is the number of points the winner scored.
		Points int `json:"points,omitempty"`
		// Blocked is set when the round ended because no player could play.
		Blocked bool `json:"blocked,omitempty"`
		// PipSums are the pips left in each player's hand when the round ended.
		PipSums map[player.Name]int `json:"pipSums"`
	}
)

// Player finds the player with the name in the snapshot.
func (i Info) Player(n player.Name) (player.Player, bool) {
	for _, p := range i.Players {
		if p.Name == n {
			return p, true
		}
	}
	return player.Player{}, false
}

// Leader is the player with the highest score, or the first such player if players are tied.
func (i Info) Leader() (player.Player, bool) {
	if len(i.Players) == 0 {
		return player.Player{}, false
	}
	best := i.Players[0]
	for _, p := range i.Players[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best, true
}
