package game

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	switch {
	case len(a) == 0:
		t.Errorf("wanted id")
	case a == b:
		t.Errorf("wanted different ids, got %v twice", a)
	}
}

func TestConfigWithDefaults(t *testing.T) {
	var cfg Config
	want := Config{
		HandSize:    DefaultHandSize,
		MatchPoints: DefaultMatchPoints,
		MaxRounds:   DefaultMaxRounds,
	}
	if got := cfg.WithDefaults(); want != got {
		t.Errorf("wanted %v, got %v", want, got)
	}
	cfg = Config{HandSize: 5, MatchPoints: 100, MaxRounds: 9}
	if got := cfg.WithDefaults(); cfg != got {
		t.Errorf("wanted set fields to be kept: %v, got %v", cfg, got)
	}
}

func TestConfigValidate(t *testing.T) {
	validateTests := []struct {
		Config
		numPlayers int
		wantOk     bool
	}{
		{}, // no players
		{
			Config:     Config{HandSize: 7, MatchPoints: 30, MaxRounds: 5},
			numPlayers: 1,
		},
		{
			Config:     Config{HandSize: 7, MatchPoints: 30, MaxRounds: 5},
			numPlayers: 5,
		},
		{
			Config:     Config{MatchPoints: 30, MaxRounds: 5},
			numPlayers: 2,
		},
		{
			Config:     Config{HandSize: 8, MatchPoints: 30, MaxRounds: 5},
			numPlayers: 4,
		},
		{ // all tiles dealt
			Config:     Config{HandSize: 7, MatchPoints: 30, MaxRounds: 5},
			numPlayers: 4,
			wantOk:     true,
		},
		{
			Config:     Config{HandSize: 7, MaxRounds: 5},
			numPlayers: 2,
		},
		{
			Config:     Config{HandSize: 7, MatchPoints: 30},
			numPlayers: 2,
		},
		{
			Config:     Config{HandSize: 7, MatchPoints: 30, MaxRounds: 5},
			numPlayers: 2,
			wantOk:     true,
		},
		{
			Config:     Config{HandSize: 7, MatchPoints: 100, MaxRounds: 1},
			numPlayers: 4,
			wantOk:     true,
		},
	}
	for i, test := range validateTests {
		err := test.Config.Validate(test.numPlayers)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		}
	}
}

func TestConfigRules(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg Config
		rules := cfg.Rules()
		seen := make(map[string]struct{}, len(rules))
		for _, r := range rules {
			if _, ok := seen[r]; ok {
				t.Errorf("rule occurred multiple times: '%v'", r)
			}
			seen[r] = struct{}{}
		}
		joined := strings.Join(rules, "\n")
		for _, want := range []string{"7 tiles", "30 points", "5 rounds"} {
			if !strings.Contains(joined, want) {
				t.Errorf("wanted rules to contain '%v'", want)
			}
		}
	})
	t.Run("custom numbers", func(t *testing.T) {
		cfg := Config{
			HandSize:    6,
			MatchPoints: 1337,
			MaxRounds:   42,
		}
		joined := strings.Join(cfg.Rules(), "\n")
		for _, want := range []string{"6 tiles", "1337 points", "42 rounds"} {
			if !strings.Contains(joined, want) {
				t.Errorf("wanted rules to contain '%v'", want)
			}
		}
	})
}
