package cmd

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"time"
)

// Start applies the process configuration and reports the API client descriptor.
func Start(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	zerolog.SetGlobalLevel(config.LogLevel)
	log.Info().Object("client", config.Client).Msgf("Using %s", config.Client.Name)
	if !config.Client.StrictSSL {
		log.Warn().Msg("TLS certificate validation is disabled for the API client")
	}
	for _, level := range config.Client.ExportLevels() {
		exportURL, err := config.Client.ExportURL(level, time.Time{})
		if err != nil {
			return err
		}
		log.Debug().Msgf("Bulk export (%s level): %s", level, exportURL)
	}
	return nil
}
