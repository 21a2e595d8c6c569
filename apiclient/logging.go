package apiclient

import (
	"github.com/rs/zerolog"
)

const redacted = "<redacted>"

var _ zerolog.LogObjectMarshaler = Config{}

// MarshalZerologObject logs a summary of the descriptor. The client secret is never logged.
func (c Config) MarshalZerologObject(e *zerolog.Event) {
	var exports []string
	for _, level := range c.ExportLevels() {
		exports = append(exports, level.String())
	}
	secret := ""
	if c.ClientSecret != "" {
		secret = redacted
	}
	e.Str("name", c.Name).
		Str("authType", string(c.AuthType)).
		Str("baseURL", c.BaseURL).
		Str("tokenEndpoint", c.TokenEndpoint).
		Str("clientId", c.ClientID).
		Str("clientSecret", secret).
		Bool("requiresAuth", c.RequiresAuth).
		Bool("strictSSL", c.StrictSSL).
		Bool("jwksAuth", c.JWKSAuth).
		Bool("jwksUrlAuth", c.JWKSURLAuth).
		Strs("exports", exports)
}
