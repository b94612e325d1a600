// main.go
//
// Entry point for the faustdle server and CLI.
// Loads .env, parses configuration, sets the global log level and loads the
// roster before any subcommand runs (see commands.go).

package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("faustdle failed")
		os.Exit(1)
	}
}
