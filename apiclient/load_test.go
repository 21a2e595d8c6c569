package apiclient

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		config, err := Load(Environment{
			EnvBaseURL:      "https://api.example.com",
			EnvClientID:     "abc",
			EnvClientSecret: "xyz",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/api/v1", config.BaseURL)
		assert.Equal(t, "https://api.example.com/auth/token", config.TokenEndpoint)
		assert.Equal(t, "abc", config.ClientID)
		assert.Equal(t, "xyz", config.ClientSecret)
		assert.Equal(t, AuthTypeClientCredentials, config.AuthType)
		assert.Equal(t, "Patient", config.FastestResource)
		assert.Equal(t, "/Patient/$export", config.PatientExportEndpoint)
		assert.Equal(t, "/Group/all/$export", config.GroupExportEndpoint)
		assert.Empty(t, config.SystemExportEndpoint)
		assert.Equal(t, "_since", config.SinceParam)
		assert.True(t, config.RequiresAuth)
		assert.True(t, config.StrictSSL)
		assert.False(t, config.Public)
		assert.False(t, config.JWKSAuth)
		assert.False(t, config.JWKSURLAuth)
		assert.Equal(t, "http://localhost:3000/jwks", config.JWKSURL)
		assert.NotNil(t, config.JWKS)
		assert.Empty(t, config.JWKS)
	})
	t.Run("deterministic", func(t *testing.T) {
		environment := Environment{
			EnvBaseURL:      "https://sandbox.bcda.cms.gov",
			EnvClientID:     "client",
			EnvClientSecret: "secret",
		}
		first, err := Load(environment)
		require.NoError(t, err)
		second, err := Load(environment)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotSame(t, first, second)
	})
	t.Run("derived URLs keep BASE_URL verbatim", func(t *testing.T) {
		config, err := Load(Environment{
			EnvBaseURL:      "http://localhost:3000/bcda",
			EnvClientID:     "abc",
			EnvClientSecret: "xyz",
		})

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000/bcda/api/v1", config.BaseURL)
		assert.Equal(t, "http://localhost:3000/bcda/auth/token", config.TokenEndpoint)
	})
	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		config, err := Load(Environment{
			EnvBaseURL:      " https://api.example.com\n",
			EnvClientID:     "\tabc",
			EnvClientSecret: "xyz ",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/api/v1", config.BaseURL)
		assert.Equal(t, "https://api.example.com/auth/token", config.TokenEndpoint)
		assert.Equal(t, "abc", config.ClientID)
		assert.Equal(t, "xyz", config.ClientSecret)
	})
	t.Run("blank variables are not set", func(t *testing.T) {
		_, err := Load(Environment{
			EnvBaseURL:      "https://api.example.com",
			EnvClientID:     "   ",
			EnvClientSecret: "xyz",
		})

		require.EqualError(t, err, "invalid API client configuration: clientId: required when authType is client-credentials")
	})
	t.Run("BASE_URL not set", func(t *testing.T) {
		config, err := Load(Environment{
			EnvClientID:     "abc",
			EnvClientSecret: "xyz",
		})

		require.EqualError(t, err, "invalid API client configuration: "+
			"baseURL: required when requiresAuth is true; "+
			"tokenEndpoint: required when requiresAuth is true")
		assert.Nil(t, config)
		var configErr *ConfigurationError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, []string{"baseURL", "tokenEndpoint"}, configErr.Fields())
	})
	t.Run("empty environment", func(t *testing.T) {
		_, err := Load(Environment{})

		var configErr *ConfigurationError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, []string{"baseURL", "tokenEndpoint", "clientId", "clientSecret"}, configErr.Fields())
	})
	t.Run("nil environment", func(t *testing.T) {
		_, err := Load(nil)

		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Len(t, configErr.Problems, 4)
	})
	t.Run("client secret without client ID", func(t *testing.T) {
		_, err := Load(Environment{
			EnvBaseURL:      "https://api.example.com",
			EnvClientSecret: "xyz",
		})

		require.EqualError(t, err, "invalid API client configuration: clientId: required when authType is client-credentials")
	})
	t.Run("BASE_URL is not an absolute URL", func(t *testing.T) {
		_, err := Load(Environment{
			EnvBaseURL:      "api.example.com",
			EnvClientID:     "abc",
			EnvClientSecret: "xyz",
		})

		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, []string{EnvBaseURL, "baseURL", "tokenEndpoint"}, configErr.Fields())
		assert.Contains(t, err.Error(), "BASE_URL: must be an absolute URL")
	})
}

func TestProcessEnvironment(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "https://api.example.com")
		t.Setenv(EnvClientID, "abc")
		t.Setenv(EnvClientSecret, "xyz")
		t.Setenv("BASE_URL_OTHER", "ignored")

		environment, err := ProcessEnvironment()

		require.NoError(t, err)
		assert.Equal(t, Environment{
			EnvBaseURL:      "https://api.example.com",
			EnvClientID:     "abc",
			EnvClientSecret: "xyz",
		}, environment)
	})
	t.Run("empty variables resolve to empty strings", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "https://api.example.com")
		t.Setenv(EnvClientID, "")
		t.Setenv(EnvClientSecret, "")

		environment, err := ProcessEnvironment()

		require.NoError(t, err)
		require.Len(t, environment, 3)
		assert.Equal(t, "", environment[EnvClientID])
		assert.Equal(t, "", environment[EnvClientSecret])
	})
}

func TestLoadFromProcess(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "https://api.example.com")
		t.Setenv(EnvClientID, "abc")
		t.Setenv(EnvClientSecret, "xyz")

		config, err := LoadFromProcess()

		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/api/v1", config.BaseURL)
		assert.Equal(t, "xyz", config.ClientSecret)
	})
	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "https://api.example.com")
		t.Setenv(EnvClientID, "")
		t.Setenv(EnvClientSecret, "")

		_, err := LoadFromProcess()

		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, []string{"clientId", "clientSecret"}, configErr.Fields())
	})
}
