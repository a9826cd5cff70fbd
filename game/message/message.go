// Package message contains structures the game runner sends to front ends.
package message

import (
	"github.com/block-domino/block-domino/game"
	"github.com/block-domino/block-domino/game/player"
	"github.com/block-domino/block-domino/game/tile"
)

type (
	// Type represents what the purpose of a message.
	Type int

	// Message contains information from a running game for a front end.
	Message struct {
		// Type is the purpose of the message.
		Type Type `json:"type"`
		// Info is a message to show to the player.
		Info string `json:"info,omitempty"`
		// PlayerName is the name of the player the message is for.
		PlayerName player.Name `json:"player,omitempty"`
		// Tiles are the tiles a prompted player can play.
		Tiles []tile.Tile `json:"tiles,omitempty"`
		// Event is a change to the game.
		Event *game.Event `json:"event,omitempty"`
		// Game is a snapshot of the game.
		Game *game.Info `json:"game,omitempty"`
	}
)

const (
	_ Type = iota
	// Prompt is sent when a human player must decide which tile to play.
	Prompt
	// Warning is sent when a human player makes a decision that cannot be played.
	Warning
	// Event is sent for each change the game makes.
	Event
	// GameOver is the last message sent, with the final snapshot of the game.
	GameOver // keep last for tests
)

// String returns the display value for the message type.
func (t Type) String() string {
	switch t {
	case Prompt:
		return "Prompt"
	case Warning:
		return "Warning"
	case Event:
		return "Event"
	case GameOver:
		return "GameOver"
	}
	return "?"
}
