package main

import (
	"fmt"
	"math/rand"

	"golang.org/x/text/message"

	"github.com/block-domino/block-domino/game"
	"github.com/block-domino/block-domino/game/controller"
	"github.com/block-domino/block-domino/game/player"
	"github.com/block-domino/block-domino/game/runner"
	"github.com/block-domino/block-domino/game/tile"
	"github.com/block-domino/block-domino/log"
	"github.com/block-domino/block-domino/random"
)

// newPlayers creates the players.  Human players take the first turns.
func newPlayers(m mainFlags, p *message.Printer) ([]*player.Player, error) {
	if m.humans < 0 || m.humans > m.players {
		return nil, fmt.Errorf("number of humans must be between 0 and the number of players (%v), got %v", m.players, m.humans)
	}
	players := make([]*player.Player, m.players)
	for i := range players {
		cfg := player.Config{
			Name: player.Name(p.Sprintf(textPlayerName, i+1)),
		}
		if i >= m.humans {
			cfg.Name = player.Name(p.Sprintf(textAutomatedName, i+1))
			cfg.Automated = true
		}
		pl, err := cfg.New()
		if err != nil {
			return nil, fmt.Errorf("creating player %v: %w", i+1, err)
		}
		players[i] = pl
	}
	return players, nil
}

// gameControllerConfig creates the configuration of games that use the random numbers.
func gameControllerConfig(m mainFlags, log log.Logger, r *rand.Rand) controller.Config {
	shuffleTilesFunc := func(tiles []tile.Tile) {
		r.Shuffle(len(tiles), func(i, j int) {
			tiles[i], tiles[j] = tiles[j], tiles[i]
		})
	}
	cfg := controller.Config{
		Debug:              m.debug,
		Log:                log,
		Game:               m.gameConfig(),
		ShuffleTilesFunc:   shuffleTilesFunc,
		StartingPlayerFunc: r.Intn,
	}
	return cfg
}

// newGame creates a game for the players.
func newGame(m mainFlags, log log.Logger, p *message.Printer) (*controller.Game, error) {
	r, err := random.New(m.seed)
	if err != nil {
		return nil, fmt.Errorf("creating random numbers: %w", err)
	}
	players, err := newPlayers(m, p)
	if err != nil {
		return nil, err
	}
	cfg := gameControllerConfig(m, log, r)
	g, err := cfg.NewGame(game.NewID(), players...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// runnerConfig creates the configuration of the game runner.
func runnerConfig(m mainFlags, log log.Logger) runner.Config {
	cfg := runner.Config{
		Debug:      m.debug,
		Log:        log,
		TurnDelay:  m.turnDelay,
		RoundDelay: 2 * m.turnDelay,
	}
	return cfg
}
