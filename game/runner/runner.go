// Package runner drives a game from start to finish, playing for automated players and asking front ends for the decisions of human players.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/block-domino/block-domino/game"
	"github.com/block-domino/block-domino/game/board"
	"github.com/block-domino/block-domino/game/controller"
	"github.com/block-domino/block-domino/game/message"
	"github.com/block-domino/block-domino/game/player"
	"github.com/block-domino/block-domino/game/tile"
	"github.com/block-domino/block-domino/log"
)

type (
	// Runner plays a game on a single goroutine.
	Runner struct {
		debug      bool
		log        log.Logger
		game       *controller.Game
		turnDelay  time.Duration
		roundDelay time.Duration
		pending    []game.Event
	}

	// Config contains the properties to create runners.
	Config struct {
		// Debug is a flag that causes the runner to log the messages it sends.
		Debug bool
		// Log is used to log errors and other information.
		Log log.Logger
		// TurnDelay is the amount of time an automated player waits before playing.
		TurnDelay time.Duration
		// RoundDelay is the amount of time to wait before starting the next round.
		RoundDelay time.Duration
	}

	// Decision is the tile a human player wants to play.
	Decision struct {
		// Player is the name of the player who decided.  The current player is assumed if it is empty.
		Player player.Name
		// Tile is the tile to play.  If the ID is not set, the tile in the player's hand with the same pips is played.
		Tile tile.Tile
		// Side is the end of the board to play on.  If it is not set, it is picked when only one side can be played on.
		Side board.Side
	}
)

// Warnings sent to human players when a decision cannot be played.
// Front ends can use them as keys to translate the warnings.
const (
	WarningNotYourTurn   = "It is not your turn."
	WarningTileNotInHand = "That tile is not in your hand."
	WarningCannotPlay    = "That tile cannot be played there."
	WarningChooseSide    = "That tile can be played on either end.  Choose a side."
)

// NewRunner creates a runner for the game.
func (cfg Config) NewRunner(g *controller.Game) (*Runner, error) {
	if err := cfg.validate(g); err != nil {
		return nil, fmt.Errorf("creating runner: validation: %w", err)
	}
	r := Runner{
		debug:      cfg.Debug,
		log:        cfg.Log,
		game:       g,
		turnDelay:  cfg.TurnDelay,
		roundDelay: cfg.RoundDelay,
	}
	g.Subscribe(r.handleEvent)
	return &r, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(g *controller.Game) error {
	switch {
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	case g == nil:
		return fmt.Errorf("game required")
	case cfg.TurnDelay < 0:
		return fmt.Errorf("non-negative turn delay required")
	case cfg.RoundDelay < 0:
		return fmt.Errorf("non-negative round delay required")
	}
	return nil
}

// Run plays the game on a new goroutine, starting it if it has not been started.
// The game runs until it is over, the context is done, or the decisions channel is closed.
// The messages channel is closed when the runner stops.
func (r *Runner) Run(ctx context.Context, decisions <-chan Decision) <-chan message.Message {
	out := make(chan message.Message)
	go r.run(ctx, decisions, out)
	return out
}

// run is the game loop.
func (r *Runner) run(ctx context.Context, decisions <-chan Decision, out chan<- message.Message) {
	defer close(out)
	if r.game.Status() == game.NotStarted {
		r.game.StartGame(0)
	}
	for { // BLOCKS
		if !r.sendEvents(ctx, out) {
			return
		}
		switch {
		case r.game.Status() == game.Finished:
			info := r.game.Info()
			w := r.game.Winner()
			m := message.Message{
				Type:       message.GameOver,
				PlayerName: w.Name,
				Game:       &info,
			}
			message.Send(ctx, m, out, r.debug, r.log)
			return
		case r.game.Status() == game.RoundOver:
			if !r.wait(ctx, r.roundDelay) {
				return
			}
			if err := r.game.StartNextRound(); err != nil {
				r.log.Printf("starting round %v of game %v: %v", r.game.CurrentRound()+1, r.game.ID(), err)
				return
			}
		case r.game.IsRoundOver():
			if _, err := r.game.EndRound(); err != nil {
				r.log.Printf("ending round %v of game %v: %v", r.game.CurrentRound(), r.game.ID(), err)
				return
			}
		default:
			if !r.playTurn(ctx, decisions, out) {
				return
			}
		}
	}
}

// playTurn has the current player play a tile and passes the turn.
// False is returned if the runner should stop.
func (r *Runner) playTurn(ctx context.Context, decisions <-chan Decision, out chan<- message.Message) bool {
	p := r.game.CurrentPlayer()
	switch {
	case !r.game.HasPlayableTile(p.Name):
	case p.Automated:
		if !r.wait(ctx, r.turnDelay) {
			return false
		}
		t, s, _ := r.game.NextPlayableTile(p.Name)
		if ok, err := r.game.PlayTile(p.Name, t, s); err != nil || !ok {
			r.log.Printf("automated player %v could not play %v on the %v of game %v: %v", p.Name, t, s, r.game.ID(), err)
			return false
		}
	default:
		if !r.humanTurn(ctx, p, decisions, out) {
			return false
		}
	}
	r.game.NextTurn()
	return true
}

// humanTurn prompts the player for decisions until one of them is played.
// False is returned if the runner should stop.
func (r *Runner) humanTurn(ctx context.Context, p player.Player, decisions <-chan Decision, out chan<- message.Message) bool {
	for {
		info := r.game.Info()
		m := message.Message{
			Type:       message.Prompt,
			PlayerName: p.Name,
			Tiles:      r.game.LegalTiles(p.Name),
			Game:       &info,
		}
		if !message.Send(ctx, m, out, r.debug, r.log) {
			return false
		}
		var d Decision
		var ok bool
		select {
		case <-ctx.Done():
			return false
		case d, ok = <-decisions:
			if !ok {
				return false
			}
		}
		warning, ok := r.play(p, d)
		if ok {
			return true
		}
		m = message.Message{
			Type:       message.Warning,
			PlayerName: p.Name,
			Info:       warning,
		}
		if !message.Send(ctx, m, out, r.debug, r.log) {
			return false
		}
	}
}

// play plays the decision of the current player, returning a warning if it cannot be played.
func (r *Runner) play(p player.Player, d Decision) (string, bool) {
	if len(d.Player) != 0 && d.Player != p.Name {
		return WarningNotYourTurn, false
	}
	t, ok := p.Tile(d.Tile.ID)
	if d.Tile.ID == 0 {
		t, ok = p.TileWithPips(d.Tile)
	}
	if !ok || !t.SamePips(d.Tile) {
		return WarningTileNotInHand, false
	}
	s := d.Side
	if s == 0 {
		sides := r.game.PlayableSides(p.Name, t)
		b := r.game.Board()
		switch {
		case len(sides) == 0:
			return WarningCannotPlay, false
		case len(sides) == 1, b.Empty():
			s = sides[0]
		default:
			l, _ := b.LeftEnd()
			rt, _ := b.RightEnd()
			if l == rt {
				s = sides[0] // both ends have the same pips
				break
			}
			return WarningChooseSide, false
		}
	}
	ok, err := r.game.PlayTile(p.Name, t, s)
	if err != nil {
		r.log.Printf("playing %v for %v: %v", t, p.Name, err)
		return WarningTileNotInHand, false
	}
	if !ok {
		return WarningCannotPlay, false
	}
	return "", true
}

// handleEvent queues events from the game to send as messages.
func (r *Runner) handleEvent(e game.Event) {
	r.pending = append(r.pending, e)
}

// sendEvents sends the queued events, returning false if the context is done.
func (r *Runner) sendEvents(ctx context.Context, out chan<- message.Message) bool {
	for len(r.pending) > 0 {
		e := r.pending[0]
		r.pending = r.pending[1:]
		m := message.Message{
			Type:       message.Event,
			PlayerName: e.Player,
			Event:      &e,
		}
		if !message.Send(ctx, m, out, r.debug, r.log) {
			return false
		}
	}
	return true
}

// wait pauses for the delay, returning false if the context is done first.
func (r *Runner) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
