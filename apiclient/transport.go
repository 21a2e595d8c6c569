package apiclient

import (
	"crypto/tls"
	"fmt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// defaultTLSConfig must be cloned before customizing it.
var defaultTLSConfig = &tls.Config{
	MinVersion: tls.VersionTLS12,
}

// TLSConfig returns the TLS configuration for connections to the API.
// Certificate validation is disabled when StrictSSL is false.
func (c Config) TLSConfig() *tls.Config {
	result := defaultTLSConfig.Clone()
	result.InsecureSkipVerify = !c.StrictSSL
	return result
}

// OAuth2Config returns the OAuth2 client credentials settings for acquiring access tokens.
// BCDA expects the client to authenticate at the token endpoint using HTTP Basic authentication.
func (c Config) OAuth2Config(scopes ...string) (*clientcredentials.Config, error) {
	if c.AuthType != AuthTypeClientCredentials {
		return nil, fmt.Errorf("OAuth2 client credentials are not used for auth type %s", c.AuthType)
	}
	return &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.TokenEndpoint,
		Scopes:       scopes,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}, nil
}
