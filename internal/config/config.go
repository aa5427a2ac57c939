package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	GameTicTacToe = "tictactoe"
	GameSnakes    = "snakes"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     string   `yaml:"game" env:"GAME" env-default:"tictactoe"`
	Players  []string `yaml:"players" env:"PLAYERS" env-separator:"," env-default:"Alice,Bob"`
	DiceSeed uint64   `yaml:"dice-seed" env:"DICE_SEED" env-default:"0"`
	AutoRoll bool     `yaml:"auto-roll" env:"AUTO_ROLL"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads path and applies environment overrides on top.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
