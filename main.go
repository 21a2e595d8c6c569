package main

import (
	"github.com/pervansa/bcda-app/cmd"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cmd.Start(*config); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
}
