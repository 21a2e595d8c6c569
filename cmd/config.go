package cmd

import (
	"fmt"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pervansa/bcda-app/apiclient"
	"github.com/rs/zerolog"
	"strings"
)

const envPrefix = "BDT_"

type Config struct {
	LogLevel zerolog.Level `koanf:"loglevel"`
	// Client holds the descriptor of the API the client integrates with.
	// It's derived from BASE_URL, CLIENT_ID and CLIENT_SECRET, not from BDT_ variables.
	Client apiclient.Config `koanf:"-"`
}

func (c Config) Validate() error {
	return c.Client.Validate()
}

// LoadConfig loads the configuration from the environment.
func LoadConfig() (*Config, error) {
	result := DefaultConfig()
	if err := loadConfigInto(&result); err != nil {
		return nil, err
	}
	client, err := apiclient.LoadFromProcess()
	if err != nil {
		return nil, err
	}
	result.Client = client.Clone()
	return &result, nil
}

func loadConfigInto(target any) error {
	k := koanf.New(".")
	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key string, value string) (string, interface{}) {
		key = strings.Replace(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "_", ".", -1)
		if len(value) == 0 {
			return key, nil
		}
		return key, strings.TrimSpace(value)
	}), nil)
	if err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return k.Unmarshal("", target)
}

// DefaultConfig returns sensible, but not complete, default configuration values.
func DefaultConfig() Config {
	return Config{
		LogLevel: zerolog.InfoLevel,
		Client:   apiclient.DefaultConfig(),
	}
}
