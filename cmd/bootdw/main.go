package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := Execute(); err != nil {
		log.Error().Err(err).Msg("bootdw failed")
		os.Exit(1)
	}
}
