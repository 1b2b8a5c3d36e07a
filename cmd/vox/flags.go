package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/vox/internal/logger"
)

var (
	logLevel  string
	logFormat string
	debug     bool

	// cfg is loaded once in setup.
	cfg Config
)

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func outputFlags(outDir, prefix *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "out-dir",
			Aliases:     []string{"out", "o"},
			Usage:       "directory to write into (created if missing)",
			Destination: outDir,
		},
		&cli.StringFlag{
			Name:        "prefix",
			Usage:       "file name prefix; a UTC timestamp and .vox are appended",
			Destination: prefix,
		},
	}
}

// setup loads the config file and installs the logger before any command runs.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	loaded, err := LoadConfig(configPath())
	if err != nil {
		return ctx, err
	}
	cfg = loaded
	applyLogConfig(cmd, cfg, &logLevel, &logFormat)

	format, err := logger.ParseFormat(logFormat)
	if err != nil {
		return ctx, err
	}
	level := logger.ParseLevel(logLevel)
	if debug {
		level = logger.ParseLevel("debug")
	}
	log := logger.New(os.Stderr, level, format)
	return logger.WithContext(ctx, log), nil
}
