// Package controller handles the logic to run the game.
package controller

import (
	"fmt"

	"github.com/block-domino/block-domino/game"
	"github.com/block-domino/block-domino/game/board"
	"github.com/block-domino/block-domino/game/player"
	"github.com/block-domino/block-domino/game/rules"
	"github.com/block-domino/block-domino/game/tile"
	"github.com/block-domino/block-domino/log"
)

type (
	// Game contains the logic to play rounds of Block Domino between players.
	// Games are not safe for concurrent use.
	Game struct {
		debug              bool
		log                log.Logger
		id                 game.ID
		cfg                game.Config
		status             game.Status
		players            []*player.Player
		board              board.Board
		boneyard           []tile.Tile
		currentPlayerIndex int
		currentRound       int
		maxRounds          int
		history            []game.RoundResult
		handlers           []game.EventHandler
		shuffleTilesFunc   func(tiles []tile.Tile)
		startingPlayerFunc func(numPlayers int) int
	}

	// Config contains the properties to create similar games.
	Config struct {
		// Debug is a flag that causes the game to log the events it sends.
		Debug bool
		// Log is used to log errors and other information.
		Log log.Logger
		// Game holds the variant options.  Defaults are used for fields that are not set.
		Game game.Config
		// ShuffleTilesFunc is used to shuffle the tiles at the start of each round, before they are dealt.
		ShuffleTilesFunc func(tiles []tile.Tile)
		// StartingPlayerFunc picks the index of the player who starts a round.
		StartingPlayerFunc func(numPlayers int) int
	}
)

const (
	// gameWarningNotInProgress is a shared warning to alert users of an invalid game state.
	gameWarningNotInProgress gameWarning = "no round is being played"
)

// NewGame creates a new game for the players.  The order of the players is the order of turns.
func (cfg Config) NewGame(id game.ID, players ...*player.Player) (*Game, error) {
	gameCfg := cfg.Game.WithDefaults()
	if err := cfg.validate(id, gameCfg, players); err != nil {
		return nil, fmt.Errorf("creating game: validation: %w", err)
	}
	g := Game{
		debug:              cfg.Debug,
		log:                cfg.Log,
		id:                 id,
		cfg:                gameCfg,
		status:             game.NotStarted,
		players:            players,
		maxRounds:          gameCfg.MaxRounds,
		shuffleTilesFunc:   cfg.ShuffleTilesFunc,
		startingPlayerFunc: cfg.StartingPlayerFunc,
	}
	return &g, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(id game.ID, gameCfg game.Config, players []*player.Player) error {
	switch {
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	case len(id) == 0:
		return fmt.Errorf("id required")
	case cfg.ShuffleTilesFunc == nil:
		return fmt.Errorf("function to shuffle tiles required")
	case cfg.StartingPlayerFunc == nil:
		return fmt.Errorf("function to pick the starting player required")
	}
	if err := gameCfg.Validate(len(players)); err != nil {
		return err
	}
	names := make(map[player.Name]struct{}, len(players))
	for i, p := range players {
		if p == nil {
			return fmt.Errorf("player %v is missing", i)
		}
		if _, ok := names[p.Name]; ok {
			return fmt.Errorf("player name %q is used more than once", p.Name)
		}
		names[p.Name] = struct{}{}
	}
	return nil
}

// Subscribe adds the handler to be called with each event the game sends.
func (g *Game) Subscribe(h game.EventHandler) {
	g.handlers = append(g.handlers, h)
}

// StartGame resets the scores and deals the first round.
// The maximum number of rounds from the config is used if maxRounds is not positive.
func (g *Game) StartGame(maxRounds int) {
	if maxRounds <= 0 {
		maxRounds = g.cfg.MaxRounds
	}
	g.maxRounds = maxRounds
	g.currentRound = 0
	g.history = nil
	for _, p := range g.players {
		p.Score = 0
	}
	g.log.Printf("game %v: starting game with %v players, %v rounds, %v match points", g.id, len(g.players), g.maxRounds, g.cfg.MatchPoints)
	g.startNewRound()
}

// StartNextRound deals a new round after the previous round has ended.
// A warning is returned if the game has not started, the round is not over, or the game is finished.
func (g *Game) StartNextRound() error {
	switch {
	case g.status == game.NotStarted:
		return gameWarning("game has not started")
	case g.status == game.InProgress:
		return gameWarning("round is still being played")
	case g.status == game.Finished, g.IsGameOver():
		return gameWarning("game is finished")
	}
	g.startNewRound()
	return nil
}

// startNewRound deals tiles to the players and picks the player who starts.
func (g *Game) startNewRound() {
	g.currentRound++
	g.board.Clear()
	for _, p := range g.players {
		p.ClearHand()
	}
	tiles := tile.Set()
	g.shuffleTilesFunc(tiles)
	for _, p := range g.players {
		p.AddTiles(tiles[:g.cfg.HandSize]...)
		tiles = tiles[g.cfg.HandSize:]
	}
	g.boneyard = append([]tile.Tile(nil), tiles...)
	n := len(g.players)
	g.currentPlayerIndex = ((g.startingPlayerFunc(n) % n) + n) % n
	if !g.canPlay(g.players[g.currentPlayerIndex]) {
		for i, p := range g.players {
			if g.canPlay(p) {
				g.currentPlayerIndex = i
				break
			}
		}
	}
	g.status = game.InProgress
	g.notify(game.Event{
		Type:   game.RoundStarted,
		Player: g.players[g.currentPlayerIndex].Name,
	})
}

// PlayTile places the tile from the player's hand on the side of the board.
// False is returned without changing the game if it is not the player's turn or the tile cannot be placed there.
// On an empty board, the tile must follow the opening rule.
// The turn is not passed to the next player; call NextTurn for that.
// An error is returned if the player is not in the game or does not have the tile.
func (g *Game) PlayTile(n player.Name, t tile.Tile, s board.Side) (bool, error) {
	i, ok := g.playerIndex(n)
	if !ok {
		return false, fmt.Errorf("game does not have player named %q", n)
	}
	if g.status != game.InProgress || i != g.currentPlayerIndex {
		return false, nil
	}
	p := g.players[i]
	held, ok := p.Tile(t.ID)
	if !ok || !held.SamePips(t) {
		return false, fmt.Errorf("player %q does not have tile %v", n, t)
	}
	if g.board.Empty() && !rules.CanOpen(held, p.Hand) {
		return false, nil
	}
	placed, ok := g.board.Place(held, s)
	if !ok {
		return false, nil
	}
	if err := p.RemoveTile(held.ID); err != nil {
		return false, err
	}
	g.notify(game.Event{
		Type:   game.TilePlayed,
		Player: n,
		Tile:   &placed,
		Side:   s,
	})
	return true, nil
}

// NextTurn passes the turn to the next player who can play, skipping players who cannot.
// If no player can play, the turn comes back to the current player after every player is skipped.
func (g *Game) NextTurn() {
	if g.status != game.InProgress {
		return
	}
	start := g.currentPlayerIndex
	for {
		g.currentPlayerIndex = (g.currentPlayerIndex + 1) % len(g.players)
		p := g.players[g.currentPlayerIndex]
		if g.canPlay(p) {
			return
		}
		g.notify(game.Event{
			Type:   game.PlayerSkipped,
			Player: p.Name,
		})
		if g.currentPlayerIndex == start {
			return
		}
	}
}

// IsRoundOver determines if a player has no tiles left or no player can play.
func (g Game) IsRoundOver() bool {
	return g.anyHandEmpty() || g.blocked()
}

// RoundWinner finds the player who won the round.
// A player with no tiles left wins.  Otherwise, the player with the fewest pips wins.
// False is returned if players tie for the fewest pips.
func (g Game) RoundWinner() (player.Player, bool) {
	i, ok := g.roundWinner()
	if !ok {
		return player.Player{}, false
	}
	return copyPlayer(*g.players[i]), true
}

// roundWinner finds the index of the player who won the round.
func (g Game) roundWinner() (int, bool) {
	for i, p := range g.players {
		if len(p.Hand) == 0 {
			return i, true
		}
	}
	winner, ties := -1, 0
	for i, p := range g.players {
		switch {
		case winner < 0, p.PipSum() < g.players[winner].PipSum():
			winner, ties = i, 0
		case p.PipSum() == g.players[winner].PipSum():
			ties++
		}
	}
	if winner < 0 || ties > 0 {
		return 0, false
	}
	return winner, true
}

// EndRound adds the points of the round to the winner's score and checks if the game is over.
// The winner scores the pips in the other players' hands, less the pips in their own hand, never less than zero.
// A warning is returned if the round is not over.
func (g *Game) EndRound() (*game.RoundResult, error) {
	switch {
	case g.status != game.InProgress:
		return nil, gameWarningNotInProgress
	case !g.IsRoundOver():
		return nil, gameWarning("round is not over")
	}
	r := game.RoundResult{
		Round:   g.currentRound,
		Blocked: !g.anyHandEmpty(),
		PipSums: make(map[player.Name]int, len(g.players)),
	}
	for _, p := range g.players {
		r.PipSums[p.Name] = p.PipSum()
	}
	if i, ok := g.roundWinner(); ok {
		w := g.players[i]
		points := 0
		for _, p := range g.players {
			if p != w {
				points += p.PipSum()
			}
		}
		points -= w.PipSum()
		if points < 0 {
			points = 0
		}
		w.AddScore(points)
		r.Winner = w.Name
		r.Points = points
	}
	g.history = append(g.history, r)
	g.status = game.RoundOver
	g.log.Printf("game %v: round %v over, winner: %q, points: %v", g.id, r.Round, r.Winner, r.Points)
	g.notify(game.Event{
		Type:   game.RoundEnded,
		Winner: r.Winner,
		Points: r.Points,
	})
	if g.IsGameOver() {
		g.status = game.Finished
		w := g.Winner()
		g.log.Printf("game %v: finished, winner: %q with %v points", g.id, w.Name, w.Score)
		g.notify(game.Event{
			Type:   game.GameOver,
			Winner: w.Name,
			Points: w.Score,
		})
	}
	return &r, nil
}

// IsGameOver determines if a player has reached the match points or all the rounds have been played.
// Once a game is over, it stays over until it is started again.
func (g Game) IsGameOver() bool {
	if g.status == game.Finished {
		return true
	}
	if g.status == game.NotStarted {
		return false
	}
	for _, p := range g.players {
		if p.Score >= g.cfg.MatchPoints {
			return true
		}
	}
	return g.currentRound > g.maxRounds || len(g.history) >= g.maxRounds
}

// Winner is the player with the highest score.  If players are tied, the first of them in turn order wins.
func (g Game) Winner() player.Player {
	best := g.players[0]
	for _, p := range g.players[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return copyPlayer(*best)
}

// ID is the id of the game.
func (g Game) ID() game.ID {
	return g.id
}

// Status is the state of the game.
func (g Game) Status() game.Status {
	return g.status
}

// Config is the variant options of the game, with defaults.
func (g Game) Config() game.Config {
	return g.cfg
}

// CurrentRound is the number of the round being played, or the last round played.
func (g Game) CurrentRound() int {
	return g.currentRound
}

// MaxRounds is the number of rounds the game lasts if no player reaches the match points.
func (g Game) MaxRounds() int {
	return g.maxRounds
}

// Board returns a copy of the board.
func (g Game) Board() board.Board {
	return g.board.Copy()
}

// Boneyard returns a copy of the tiles that were not dealt in this round.
func (g Game) Boneyard() []tile.Tile {
	return append([]tile.Tile(nil), g.boneyard...)
}

// History returns the results of the rounds that have ended.
func (g Game) History() []game.RoundResult {
	return append([]game.RoundResult(nil), g.history...)
}

// CurrentPlayer returns a copy of the player whose turn it is.
func (g Game) CurrentPlayer() player.Player {
	return copyPlayer(*g.players[g.currentPlayerIndex])
}

// Players returns copies of the players in turn order.
func (g Game) Players() []player.Player {
	players := make([]player.Player, len(g.players))
	for i, p := range g.players {
		players[i] = copyPlayer(*p)
	}
	return players
}

// Player returns a copy of the player with the name.
func (g Game) Player(n player.Name) (player.Player, bool) {
	i, ok := g.playerIndex(n)
	if !ok {
		return player.Player{}, false
	}
	return copyPlayer(*g.players[i]), true
}

// HasPlayableTile determines if the player has a tile that can be played on the board.
func (g Game) HasPlayableTile(n player.Name) bool {
	i, ok := g.playerIndex(n)
	return ok && g.canPlay(g.players[i])
}

// NextPlayableTile picks the tile and side for the player to play.  It is used for automated players.
func (g Game) NextPlayableTile(n player.Name) (tile.Tile, board.Side, bool) {
	i, ok := g.playerIndex(n)
	if !ok {
		return tile.Tile{}, 0, false
	}
	return rules.NextPlayableTile(g.players[i].Hand, g.board)
}

// LegalTiles returns the tiles the player can play, in hand order.
func (g Game) LegalTiles(n player.Name) []tile.Tile {
	i, ok := g.playerIndex(n)
	if !ok {
		return nil
	}
	return rules.LegalTiles(g.players[i].Hand, g.board)
}

// PlayableSides returns the sides of the board the player's tile can be placed on.
func (g Game) PlayableSides(n player.Name, t tile.Tile) []board.Side {
	i, ok := g.playerIndex(n)
	if !ok {
		return nil
	}
	return rules.PlayableSides(t, g.players[i].Hand, g.board)
}

// Info creates a snapshot of the game.
func (g Game) Info() game.Info {
	i := game.Info{
		ID:       g.id,
		Status:   g.status,
		Config:   g.cfg,
		Round:    g.currentRound,
		Players:  g.Players(),
		Board:    g.Board(),
		Boneyard: len(g.boneyard),
		History:  g.History(),
	}
	if g.status == game.InProgress {
		i.CurrentPlayer = g.players[g.currentPlayerIndex].Name
	}
	return i
}

// canPlay determines if the player has a tile that can be played.
func (g Game) canPlay(p *player.Player) bool {
	return rules.HasPlayableTile(p.Hand, g.board)
}

// anyHandEmpty determines if a player has played all their tiles.
func (g Game) anyHandEmpty() bool {
	for _, p := range g.players {
		if len(p.Hand) == 0 {
			return true
		}
	}
	return false
}

// blocked determines if no player can play.
func (g Game) blocked() bool {
	for _, p := range g.players {
		if g.canPlay(p) {
			return false
		}
	}
	return true
}

// playerIndex finds the turn order of the player with the name.
func (g Game) playerIndex(n player.Name) (int, bool) {
	for i, p := range g.players {
		if p.Name == n {
			return i, true
		}
	}
	return 0, false
}

// notify sends the event to the handlers.
func (g *Game) notify(e game.Event) {
	e.Round = g.currentRound
	if g.debug {
		g.log.Printf("game %v: sending %v event", g.id, e.Type)
	}
	for _, h := range g.handlers {
		h(e)
	}
}

// copyPlayer creates a copy of the player that does not share the hand.
func copyPlayer(p player.Player) player.Player {
	p.Hand = append([]tile.Tile(nil), p.Hand...)
	return p
}
