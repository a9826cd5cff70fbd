package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/message"

	"github.com/block-domino/block-domino/game"
	"github.com/block-domino/block-domino/game/board"
	gameMessage "github.com/block-domino/block-domino/game/message"
	"github.com/block-domino/block-domino/game/runner"
	"github.com/block-domino/block-domino/game/tile"
)

// terminal prints the messages of a running game and reads the decisions of human players.
type terminal struct {
	out     io.Writer
	printer *message.Printer
	json    bool
}

// play prints the messages until the runner stops.
// Decisions are read from the lines.  The decisions channel is closed when the lines run out.
func (t terminal) play(ctx context.Context, messages <-chan gameMessage.Message, lines <-chan string, decisions chan<- runner.Decision) error {
	defer func() {
		if decisions != nil {
			close(decisions)
		}
	}()
	for m := range messages {
		switch m.Type {
		case gameMessage.Event:
			t.printEvent(*m.Event)
		case gameMessage.Warning:
			t.println(t.printer.Sprintf(m.Info))
		case gameMessage.Prompt:
			if decisions == nil {
				continue
			}
			d, ok := t.prompt(ctx, m, lines)
			if !ok {
				close(decisions)
				decisions = nil
				continue
			}
			select {
			case <-ctx.Done():
			case decisions <- d:
			}
		case gameMessage.GameOver:
			if err := t.printGameOver(*m.Game); err != nil {
				return err
			}
		}
	}
	return nil
}

// prompt prints the state of the game for the player and reads lines until a decision can be parsed.
// False is returned if there are no more lines or the context is done.
func (t terminal) prompt(ctx context.Context, m gameMessage.Message, lines <-chan string) (runner.Decision, bool) {
	i := m.Game
	t.printBoard(i.Board)
	if p, ok := i.Player(m.PlayerName); ok {
		t.println(t.printer.Sprintf(textHand, p.Name, tiles(p.Hand)))
	}
	t.println(t.printer.Sprintf(textPlayable, tiles(m.Tiles)))
	for {
		fmt.Fprint(t.out, t.printer.Sprintf(textPrompt))
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return runner.Decision{}, false
		case line, ok = <-lines:
			if !ok {
				return runner.Decision{}, false
			}
		}
		d, err := parseDecision(line)
		if err != nil {
			t.println(t.printer.Sprintf(textBadInput, strings.TrimSpace(line)))
			continue
		}
		d.Player = m.PlayerName
		return *d, true
	}
}

// printEvent prints what happened in the game.
func (t terminal) printEvent(e game.Event) {
	p := t.printer
	switch e.Type {
	case game.RoundStarted:
		t.println(p.Sprintf(textRoundStarted, e.Round, e.Player))
	case game.TilePlayed:
		t.println(p.Sprintf(textTilePlayed, e.Player, e.Tile, t.side(e.Side)))
	case game.PlayerSkipped:
		t.println(p.Sprintf(textPlayerSkipped, e.Player))
	case game.RoundEnded:
		if len(e.Winner) == 0 {
			t.println(p.Sprintf(textRoundNoWinner, e.Round))
			return
		}
		t.println(p.Sprintf(textRoundWon, e.Round, e.Winner, e.Points))
	case game.GameOver:
		t.println(p.Sprintf(textGameOver, e.Winner, e.Points))
	}
}

// printGameOver prints the final scores, and the game as json if it was requested.
func (t terminal) printGameOver(i game.Info) error {
	t.printBoard(i.Board)
	t.println(t.printer.Sprintf(textScores))
	for _, p := range i.Players {
		t.println(t.printer.Sprintf(textScore, p.Name, p.Score))
	}
	if p, ok := i.Leader(); ok {
		t.println(t.printer.Sprintf(textLeader, p.Name, p.Score))
	}
	if !t.json {
		return nil
	}
	t.println(t.printer.Sprintf(textSnapshotHeader))
	e := json.NewEncoder(t.out)
	e.SetIndent("", "  ")
	if err := e.Encode(i); err != nil {
		return fmt.Errorf("writing game json: %w", err)
	}
	return nil
}

// printBoard prints the line of tiles.
func (t terminal) printBoard(b board.Board) {
	if b.Empty() {
		t.println(t.printer.Sprintf(textEmptyBoard))
		return
	}
	t.println(t.printer.Sprintf(textBoard, tiles(b.Tiles())))
}

// side is the translated name of the side.
func (t terminal) side(s board.Side) string {
	switch s {
	case board.Left:
		return t.printer.Sprintf(textLeft)
	case board.Right:
		return t.printer.Sprintf(textRight)
	}
	return s.String()
}

// println prints the line.
func (t terminal) println(line string) {
	fmt.Fprintln(t.out, line)
}

// tiles joins the tiles with spaces.
func tiles(tiles []tile.Tile) string {
	s := make([]string, len(tiles))
	for i, t := range tiles {
		s[i] = t.String()
	}
	return strings.Join(s, " ")
}

// readLines sends the lines of the reader on the returned channel, which is closed when the reader has no more lines or the context is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		s := bufio.NewScanner(r)
		for s.Scan() { // BLOCKS
			select {
			case <-ctx.Done():
				return
			case lines <- s.Text():
			}
		}
	}()
	return lines
}

// parseDecision reads a tile and an optional side, such as "3-5 l".
func parseDecision(line string) (*runner.Decision, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("wanted a tile and an optional side, got %q", line)
	}
	t, err := tile.Parse(fields[0])
	if err != nil {
		return nil, err
	}
	d := runner.Decision{
		Tile: *t,
	}
	if len(fields) == 2 {
		s, err := parseSide(fields[1])
		if err != nil {
			return nil, err
		}
		d.Side = s
	}
	return &d, nil
}

// parseSide reads the side in English or Indonesian.
func parseSide(s string) (board.Side, error) {
	switch strings.ToLower(s) {
	case "l", "left", "kiri":
		return board.Left, nil
	case "r", "right", "kanan":
		return board.Right, nil
	}
	return 0, fmt.Errorf("unknown side: %q", s)
}
