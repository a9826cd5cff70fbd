package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"
	"time"
)

func TestNewMainFlags(t *testing.T) {
	defaultFlags := func() mainFlags {
		return mainFlags{
			players:     4,
			humans:      1,
			maxRounds:   5,
			matchPoints: 30,
			lang:        "en",
			turnDelay:   500 * time.Millisecond,
		}
	}
	newMainFlagsTests := []struct {
		osArgs  []string
		envVars map[string]string
		wantOk  bool
		want    func(m *mainFlags)
	}{
		{
			wantOk: true,
		},
		{
			osArgs: []string{"domino"},
			wantOk: true,
		},
		{
			osArgs: []string{"", "-players=x"},
		},
		{
			envVars: map[string]string{"DOMINO_PLAYERS": "x"},
		},
		{
			envVars: map[string]string{"DOMINO_TURN_DELAY": "soon"},
		},
		{
			osArgs: []string{"", "-players=2"},
			wantOk: true,
			want: func(m *mainFlags) {
				m.players = 2
			},
		},
		{
			envVars: map[string]string{"DOMINO_PLAYERS": "3"},
			wantOk:  true,
			want: func(m *mainFlags) {
				m.players = 3
			},
		},
		{
			osArgs:  []string{"", "-players=2"},
			envVars: map[string]string{"DOMINO_PLAYERS": "3"},
			wantOk:  true,
			want: func(m *mainFlags) {
				m.players = 2
			},
		},
		{
			osArgs: []string{"", "-rules", "-json"},
			wantOk: true,
			want: func(m *mainFlags) {
				m.rules = true
				m.json = true
			},
		},
		{ // all command line
			osArgs: []string{
				"",
				"-players=3",
				"-humans=0",
				"-max-rounds=7",
				"-match-points=100",
				"-seed=42",
				"-lang=id",
				"-debug",
				"-turn-delay=1s",
			},
			wantOk: true,
			want: func(m *mainFlags) {
				m.players = 3
				m.humans = 0
				m.maxRounds = 7
				m.matchPoints = 100
				m.seed = 42
				m.lang = "id"
				m.debug = true
				m.turnDelay = time.Second
			},
		},
		{ // all environment variables
			envVars: map[string]string{
				"DOMINO_PLAYERS":      "2",
				"DOMINO_HUMANS":       "2",
				"DOMINO_MAX_ROUNDS":   "3",
				"DOMINO_MATCH_POINTS": "50",
				"DOMINO_SEED":         "-8",
				"DOMINO_LANG":         "id-ID",
				"DOMINO_DEBUG":        "true",
				"DOMINO_TURN_DELAY":   "0s",
			},
			wantOk: true,
			want: func(m *mainFlags) {
				m.players = 2
				m.humans = 2
				m.maxRounds = 3
				m.matchPoints = 50
				m.seed = -8
				m.lang = "id-ID"
				m.debug = true
				m.turnDelay = 0
			},
		},
	}
	for i, test := range newMainFlagsTests {
		envVars := test.envVars
		if envVars == nil {
			envVars = map[string]string{}
		}
		var out bytes.Buffer
		got, err := newMainFlags(test.osArgs, envVars, &out)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		default:
			want := defaultFlags()
			if test.want != nil {
				test.want(&want)
			}
			if want != *got {
				t.Errorf("Test %v:\nwanted: %v\ngot:    %v", i, want, *got)
			}
		}
	}
}

func TestUsage(t *testing.T) {
	e, err := parseEnvFlags(map[string]string{})
	if err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	var b bytes.Buffer
	var m mainFlags
	fs := m.newFlagSet(*e, &b)
	if err := fs.Parse([]string{"-h"}); err != flag.ErrHelp {
		t.Errorf("wanted ErrHelp, got %v", err)
	}
	got := b.String()
	for _, envVar := range []string{
		environmentVariablePlayers,
		environmentVariableHumans,
		environmentVariableMaxRounds,
		environmentVariableMatchPoints,
		environmentVariableSeed,
		environmentVariableLang,
		environmentVariableDebug,
		environmentVariableTurnDelay,
	} {
		if !strings.Contains(got, envVar) {
			t.Errorf("wanted usage to mention %v, got:\n%v", envVar, got)
		}
	}
	if !strings.Contains(got, "-max-rounds") {
		t.Errorf("wanted usage to list the flags, got:\n%v", got)
	}
}

func TestGameConfig(t *testing.T) {
	m := mainFlags{
		maxRounds:   3,
		matchPoints: 20,
	}
	cfg := m.gameConfig()
	if cfg.MaxRounds != 3 || cfg.MatchPoints != 20 || cfg.HandSize != 0 {
		t.Errorf("unwanted game config: %v", cfg)
	}
}
