// Package player stores the hand and score of each participant in a game.
package player

import (
	"fmt"
	"strings"

	"github.com/block-domino/block-domino/game/rules"
	"github.com/block-domino/block-domino/game/tile"
)

type (
	// Player is a participant in a game.
	Player struct {
		Name Name `json:"name"`
		// Hand is the tiles the player holds, in the order they were dealt.
		Hand []tile.Tile `json:"hand,omitempty"`
		// Score is the total of the points won in rounds.  It is never negative.
		Score int `json:"score"`
		// Automated players choose their own tiles.
		Automated bool `json:"automated,omitempty"`
	}

	// Name is the display name of a player.  Names are unique in a game.
	Name string

	// Config can be used to create new players.
	Config struct {
		// Name identifies the player.
		Name Name
		// Automated is a flag for players who are controlled by the computer.
		Automated bool
	}
)

// New creates a player with an empty hand and no points.
func (cfg Config) New() (*Player, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating player: validation: %w", err)
	}
	p := Player{
		Name:      Name(strings.TrimSpace(string(cfg.Name))),
		Automated: cfg.Automated,
	}
	return &p, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	switch {
	case len(strings.TrimSpace(string(cfg.Name))) == 0:
		return fmt.Errorf("name required")
	}
	return nil
}

// AddTiles adds the tiles to the end of the player's hand.
func (p *Player) AddTiles(tiles ...tile.Tile) {
	p.Hand = append(p.Hand, tiles...)
}

// ClearHand removes all tiles from the player's hand.
func (p *Player) ClearHand() {
	p.Hand = nil
}

// HasTile determines if the player holds a tile with the id.
func (p Player) HasTile(id tile.ID) bool {
	_, ok := p.Tile(id)
	return ok
}

// Tile finds the tile with the id in the player's hand.
func (p Player) Tile(id tile.ID) (tile.Tile, bool) {
	for _, t := range p.Hand {
		if t.ID == id {
			return t, true
		}
	}
	return tile.Tile{}, false
}

// TileWithPips finds the tile in the player's hand that has the same pips as the tile, in either orientation.
func (p Player) TileWithPips(t tile.Tile) (tile.Tile, bool) {
	for _, t2 := range p.Hand {
		if t2.SamePips(t) {
			return t2, true
		}
	}
	return tile.Tile{}, false
}

// RemoveTile removes the tile with the id from the player's hand, keeping the order of the other tiles.
// An error is returned if the player does not have the tile.
func (p *Player) RemoveTile(id tile.ID) error {
	for i, t := range p.Hand {
		if t.ID == id {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("player %v does not have tile with id %v", p.Name, id)
}

// PipSum is the total of the pips on all the tiles in the player's hand.
func (p Player) PipSum() int {
	return rules.PipSum(p.Hand)
}

// AddScore increases the player's score.  Negative points are ignored.
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}
