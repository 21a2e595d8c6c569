package apiclient

import (
	"fmt"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"strings"
)

// Environment variables the descriptor is derived from.
const (
	EnvBaseURL      = "BASE_URL"
	EnvClientID     = "CLIENT_ID"
	EnvClientSecret = "CLIENT_SECRET"
)

var environmentVariables = []string{EnvBaseURL, EnvClientID, EnvClientSecret}

// Environment is a snapshot of the environment variables the descriptor is derived from.
// Variables that are not set resolve to an empty string.
type Environment map[string]string

type environmentInputs struct {
	BaseURL      string `koanf:"BASE_URL"`
	ClientID     string `koanf:"CLIENT_ID"`
	ClientSecret string `koanf:"CLIENT_SECRET"`
}

// ProcessEnvironment takes a snapshot of the relevant variables from the process environment.
func ProcessEnvironment() (Environment, error) {
	k := koanf.New(".")
	err := k.Load(env.ProviderWithValue("", ".", func(key string, value string) (string, interface{}) {
		for _, name := range environmentVariables {
			if key == name {
				return key, value
			}
		}
		// ignore everything else
		return "", nil
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	result := make(Environment, len(environmentVariables))
	for _, name := range environmentVariables {
		result[name] = k.String(name)
	}
	return result, nil
}

// LoadFromProcess loads the descriptor from the process environment.
func LoadFromProcess() (*Config, error) {
	environment, err := ProcessEnvironment()
	if err != nil {
		return nil, err
	}
	return Load(environment)
}

// Load builds the descriptor from the compiled-in defaults and the given environment, and validates it.
// It does not access process state: the same environment always yields the same descriptor.
func Load(environment Environment) (*Config, error) {
	inputs, err := readInputs(environment)
	if err != nil {
		return nil, err
	}
	result := DefaultConfig()
	if inputs.BaseURL != "" {
		result.BaseURL = inputs.BaseURL + apiPath
		result.TokenEndpoint = inputs.BaseURL + tokenPath
	}
	result.ClientID = inputs.ClientID
	result.ClientSecret = inputs.ClientSecret
	problems := append(validateBaseURL(inputs.BaseURL), result.validate()...)
	if len(problems) > 0 {
		return nil, &ConfigurationError{Problems: problems}
	}
	return &result, nil
}

// readInputs reads the snapshot, trimming surrounding whitespace. Blank variables are treated as not set.
func readInputs(environment Environment) (environmentInputs, error) {
	values := make(map[string]interface{}, len(environmentVariables))
	for _, name := range environmentVariables {
		value := strings.TrimSpace(environment[name])
		if len(value) == 0 {
			continue
		}
		values[name] = value
	}
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return environmentInputs{}, fmt.Errorf("read environment snapshot: %w", err)
	}
	var result environmentInputs
	if err := k.Unmarshal("", &result); err != nil {
		return environmentInputs{}, fmt.Errorf("read environment snapshot: %w", err)
	}
	return result, nil
}
