// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/gemstone/engine"
	"github.com/jason-s-yu/gemstone/player"
)

// EnvPrefix is stripped from environment variable names before decoding,
// so GEMSTONE_PLAYERS sets Config.Players.
const EnvPrefix = "GEMSTONE_"

// Config holds the settings shared by the play and sim commands.
type Config struct {
	Players       int      `mapstructure:"players"`
	Seed          uint64   `mapstructure:"seed"`
	Games         int      `mapstructure:"games"`
	Workers       int      `mapstructure:"workers"`
	LogLevel      string   `mapstructure:"log_level"`
	MajorityBonus bool     `mapstructure:"majority_bonus"`
	Seats         []string `mapstructure:"seats"` // bot kind per seat, cycled when shorter than Players
}

var ErrInvalidConfig = errors.New("invalid config")

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Players:  3,
		Seed:     1,
		Games:    1000,
		Workers:  4,
		LogLevel: "info",
		Seats:    []string{player.KindGreedy, player.KindRandom},
	}
}

// Load reads the optional env files, then decodes GEMSTONE_* variables
// over the defaults. A missing .env is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(os.Environ())
}

// FromEnv decodes KEY=VALUE pairs carrying EnvPrefix over the defaults.
func FromEnv(environ []string) (Config, error) {
	raw := make(map[string]interface{})
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if name == "seats" {
			raw[name] = strings.Split(value, ",")
			continue
		}
		raw[name] = value
	}

	cfg := Default()
	if _, ok := raw["seats"]; ok {
		cfg.Seats = nil // replace, not merge
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and seat kinds.
func (c Config) Validate() error {
	switch {
	case c.Players < engine.MinPlayers || c.Players > engine.MaxPlayers:
		return fmt.Errorf("%w: players %d outside [%d, %d]", ErrInvalidConfig, c.Players, engine.MinPlayers, engine.MaxPlayers)
	case c.Games <= 0:
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case len(c.Seats) == 0:
		return fmt.Errorf("%w: no seat kinds", ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, kind := range c.Seats {
		if _, err := player.NewBot(kind, 0); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// HouseRules returns the engine rules selected by the config.
func (c Config) HouseRules() engine.HouseRules {
	rules := engine.DefaultHouseRules()
	rules.MajorityBonus = c.MajorityBonus
	return rules
}

// SeatKind returns the bot kind of seat i.
func (c Config) SeatKind(i int) string { return c.Seats[i%len(c.Seats)] }

// Level returns the parsed log level, info when unparsable.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
