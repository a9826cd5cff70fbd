// Package game contains the structures shared by the game controller, runner and front ends.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/block-domino/block-domino/game/tile"
)

type (
	// ID is the id of a game.
	ID string

	// Config contains the variant options for a game.  Zero values are replaced by defaults.
	Config struct {
		// HandSize is the number of tiles dealt to each player at the start of a round.
		HandSize int `json:"handSize,omitempty"`
		// MatchPoints is the score that ends the game when a player reaches it.
		MatchPoints int `json:"matchPoints,omitempty"`
		// MaxRounds is the number of rounds played before the game ends, if no player reaches the match points first.
		MaxRounds int `json:"maxRounds,omitempty"`
	}
)

const (
	// DefaultHandSize is the number of tiles each player is dealt.
	DefaultHandSize = 7
	// DefaultMatchPoints is the score needed to win the game.
	DefaultMatchPoints = 30
	// DefaultMaxRounds is the default number of rounds in a game.
	DefaultMaxRounds = 5
	// MinPlayers is the fewest players a game can have.
	MinPlayers = 2
	// MaxPlayers is the most players a game can have.
	MaxPlayers = 4
)

// NewID creates a random game id.
func NewID() ID {
	return ID(uuid.NewString())
}

// WithDefaults returns a copy of the config with default values for fields that are not set.
func (cfg Config) WithDefaults() Config {
	if cfg.HandSize == 0 {
		cfg.HandSize = DefaultHandSize
	}
	if cfg.MatchPoints == 0 {
		cfg.MatchPoints = DefaultMatchPoints
	}
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	return cfg
}

// Validate returns an error if the config cannot be used for the number of players.
func (cfg Config) Validate(numPlayers int) error {
	switch {
	case numPlayers < MinPlayers, numPlayers > MaxPlayers:
		return fmt.Errorf("game must have between %v and %v players, got %v", MinPlayers, MaxPlayers, numPlayers)
	case cfg.HandSize <= 0:
		return fmt.Errorf("positive hand size required")
	case cfg.HandSize*numPlayers > tile.SetSize:
		return fmt.Errorf("not enough tiles to deal %v tiles to %v players", cfg.HandSize, numPlayers)
	case cfg.MatchPoints <= 0:
		return fmt.Errorf("positive match points required")
	case cfg.MaxRounds <= 0:
		return fmt.Errorf("positive max rounds required")
	}
	return nil
}

// Rules gets the rules for the game.  The numbers in the rules come from the config, using defaults when not set.
func (cfg Config) Rules() []string {
	cfg = cfg.WithDefaults()
	return []string{
		fmt.Sprintf("Each player is dealt %d tiles from a shuffled double-six set of 28 tiles.  Tiles that are not dealt are set aside and never drawn.", cfg.HandSize),
		"A random player starts the round.  The first tile must be the highest double in their hand, or the tile with the most pips if they have no doubles.",
		"Players take turns placing a tile on either end of the line so the touching pips match.",
		"A player who has no tile that matches an end is skipped.",
		"A round ends when a player places their last tile or no player can play.",
		"The player who places their last tile wins the round.  If no player can play, the player with the fewest pips left wins, unless players tie for the fewest pips, in which case no one wins the round.",
		"The winner of a round scores the pips left in the other players' hands, less the pips left in their own hand.",
		fmt.Sprintf("The game ends when a player has %d points or after %d rounds.  The player with the most points wins.", cfg.MatchPoints, cfg.MaxRounds),
	}
}
