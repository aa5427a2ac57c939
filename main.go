package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/boardgames/internal"
	"github.com/rocketscienceinc/boardgames/internal/config"
)

// main - loads the config named by -config, sets up logging on stderr and plays the configured game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "config.yml", "path to the YAML config; env vars override it")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(conf.LogLevel)}))

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// parseLogLevel - maps a config level name to slog, falling back to info on anything unknown.
func parseLogLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}

	return level
}
