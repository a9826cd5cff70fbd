package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/block-domino/block-domino/game"
)

const (
	environmentVariablePlayers     = "DOMINO_PLAYERS"
	environmentVariableHumans      = "DOMINO_HUMANS"
	environmentVariableMaxRounds   = "DOMINO_MAX_ROUNDS"
	environmentVariableMatchPoints = "DOMINO_MATCH_POINTS"
	environmentVariableSeed        = "DOMINO_SEED"
	environmentVariableLang        = "DOMINO_LANG"
	environmentVariableDebug       = "DOMINO_DEBUG"
	environmentVariableTurnDelay   = "DOMINO_TURN_DELAY"
)

// envFlags are the defaults of the flags, read from environment variables.
type envFlags struct {
	Players     int           `env:"DOMINO_PLAYERS" envDefault:"4"`
	Humans      int           `env:"DOMINO_HUMANS" envDefault:"1"`
	MaxRounds   int           `env:"DOMINO_MAX_ROUNDS" envDefault:"5"`
	MatchPoints int           `env:"DOMINO_MATCH_POINTS" envDefault:"30"`
	Seed        int64         `env:"DOMINO_SEED"`
	Lang        string        `env:"DOMINO_LANG" envDefault:"en"`
	Debug       bool          `env:"DOMINO_DEBUG"`
	TurnDelay   time.Duration `env:"DOMINO_TURN_DELAY" envDefault:"500ms"`
}

// mainFlags are the configuration options which can be easily configured when the program is run.
type mainFlags struct {
	players     int
	humans      int
	maxRounds   int
	matchPoints int
	seed        int64
	lang        string
	debug       bool
	turnDelay   time.Duration
	rules       bool
	json        bool
}

// usage prints how to run the game to the flagset's output.
func usage(fs *flag.FlagSet) {
	envVars := []string{
		environmentVariablePlayers,
		environmentVariableHumans,
		environmentVariableMaxRounds,
		environmentVariableMatchPoints,
		environmentVariableSeed,
		environmentVariableLang,
		environmentVariableDebug,
		environmentVariableTurnDelay,
	}
	fmt.Fprintf(fs.Output(), "Plays Block Domino in the terminal\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables when possible: [%s]\n", strings.Join(envVars, ","))
	fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// parseEnvFlags reads the defaults of the flags from the environment.
func parseEnvFlags(environment map[string]string) (*envFlags, error) {
	var e envFlags
	opts := env.Options{
		Environment: environment,
	}
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &e, nil
}

// newFlagSet creates a flagSet that populates the mainFlags, using the environment flags as defaults.
func (m *mainFlags) newFlagSet(e envFlags, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("domino", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	fs.IntVar(&m.players, "players", e.Players, fmt.Sprintf("The number of players, between %v and %v.", game.MinPlayers, game.MaxPlayers))
	fs.IntVar(&m.humans, "humans", e.Humans, "The number of players who play from the terminal.  The other players are played by the computer.")
	fs.IntVar(&m.maxRounds, "max-rounds", e.MaxRounds, "The most rounds that are played.")
	fs.IntVar(&m.matchPoints, "match-points", e.MatchPoints, "The score a player must reach to win before all the rounds are played.")
	fs.Int64Var(&m.seed, "seed", e.Seed, "The seed of the random shuffles.  A random seed is used if it is zero.")
	fs.StringVar(&m.lang, "lang", e.Lang, "The language to play in: en or id.")
	fs.BoolVar(&m.debug, "debug", e.Debug, "Logs the events and messages of the game.")
	fs.DurationVar(&m.turnDelay, "turn-delay", e.TurnDelay, "The time the computer waits before playing.")
	fs.BoolVar(&m.rules, "rules", false, "Prints the rules and exits.")
	fs.BoolVar(&m.json, "json", false, "Prints the final game as json.")
	return fs
}

// newMainFlags creates a new, populated mainFlags structure.
// Fields are populated from command line arguments.
// If fields are not specified on the command line, environment variable values are used before defaulting to other defaults.
func newMainFlags(osArgs []string, environment map[string]string, output io.Writer) (*mainFlags, error) {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	programArgs := osArgs[1:]
	e, err := parseEnvFlags(environment)
	if err != nil {
		return nil, err
	}
	var m mainFlags
	fs := m.newFlagSet(*e, output)
	if err := fs.Parse(programArgs); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	return &m, nil
}

// gameConfig creates the variant options of the game.
func (m mainFlags) gameConfig() game.Config {
	return game.Config{
		MatchPoints: m.matchPoints,
		MaxRounds:   m.maxRounds,
	}
}
