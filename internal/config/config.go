package config

import (
	"os"

	"github.com/kiryu-dev/reef-encounter/internal/board"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidPlayers  = errors.New("players must be between 2 and 4")
	ErrNotEnoughBoards = errors.New("there are not enough specified boards")
	ErrInvalidOutput   = errors.New("output must be 'text' or 'json'")
)

const (
	minPlayers = 2
	maxPlayers = 4

	TextOutput = "text"
	JsonOutput = "json"
)

type Config struct {
	Players     int      `yaml:"players"`
	Seed        int64    `yaml:"seed"`
	Interactive bool     `yaml:"interactive"`
	Output      string   `yaml:"output"`
	LogLevel    string   `yaml:"log_level"`
	Boards      []string `yaml:"boards"`
}

func Default() Config {
	return Config{
		Players:  minPlayers,
		Output:   TextOutput,
		LogLevel: "info",
	}
}

// New reads the yaml config at cfgPath on top of the defaults. An empty path
// yields the defaults.
func New(cfgPath string) (Config, error) {
	cfg := Default()
	if cfgPath == "" {
		return cfg, nil
	}
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, err
	}
	defer func() {
		_ = file.Close()
	}()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, errors.WithMessage(err, "decode yaml config")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Players < minPlayers || c.Players > maxPlayers {
		return errors.WithMessagef(ErrInvalidPlayers, "got %d", c.Players)
	}
	if c.Output != TextOutput && c.Output != JsonOutput {
		return errors.WithMessagef(ErrInvalidOutput, "got '%s'", c.Output)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.WithMessage(err, "parse log level")
	}
	if len(c.Boards) == 0 {
		return nil
	}
	if len(c.Boards) < c.Players {
		return errors.WithMessagef(ErrNotEnoughBoards, "%d boards for %d players", len(c.Boards), c.Players)
	}
	if _, err := board.ParseAll(c.Boards); err != nil {
		return errors.WithMessage(err, "validate boards")
	}
	return nil
}

func (c Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
