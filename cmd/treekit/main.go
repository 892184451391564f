package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arborlab/treekit/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())

	level := zerolog.InfoLevel
	if cli.CLI.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	err := ctx.Run(&cli.Context{
		Fs:  afero.NewOsFs(),
		Out: os.Stdout,
		Log: log,
	})
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
