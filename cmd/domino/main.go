// Package main plays a game of Block Domino in the terminal after configuring it from supplied or standard arguments.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"

	"github.com/block-domino/block-domino/game/runner"
)

// main configures and runs the game.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logFlags := log.Ltime | log.Lmsgprefix
	log := log.New(os.Stderr, "domino: ", logFlags)
	if err := run(ctx, os.Args, env.ToMap(os.Environ()), os.Stdin, os.Stdout, log); err != nil {
		log.Fatalf("playing game: %v", err)
	}
}

// run plays a game with the arguments and environment, reading the decisions of human players from the input.
func run(ctx context.Context, osArgs []string, environment map[string]string, in io.Reader, out io.Writer, log *log.Logger) error {
	m, err := newMainFlags(osArgs, environment, out)
	if err != nil {
		return err
	}
	c, err := newCatalog()
	if err != nil {
		return fmt.Errorf("creating text catalog: %w", err)
	}
	p := newPrinter(m.lang, c)
	if m.rules {
		fmt.Fprintln(out, p.Sprintf(textRules))
		for _, r := range m.gameConfig().Rules() {
			fmt.Fprintf(out, "  * %v\n", r)
		}
		return nil
	}
	g, err := newGame(*m, log, p)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	rCfg := runnerConfig(*m, log)
	r, err := rCfg.NewRunner(g)
	if err != nil {
		return err
	}
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	decisions := make(chan runner.Decision)
	messages := r.Run(ctx, decisions)
	lines := readLines(ctx, in)
	t := terminal{
		out:     out,
		printer: p,
		json:    m.json,
	}
	if err := t.play(ctx, messages, lines, decisions); err != nil {
		return err
	}
	if m.debug {
		log.Printf("game %v stopped with status %v", g.ID(), g.Status())
	}
	return nil
}
