package apiclient

import (
	"fmt"
	"net/url"
)

// Validate checks that the descriptor is complete and that its fields are consistent with the flags they depend on.
// It returns a *ConfigurationError listing all problems found.
func (c Config) Validate() error {
	if problems := c.validate(); len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}

func (c Config) validate() []FieldError {
	var problems []FieldError
	add := func(field string, reason string) {
		problems = append(problems, FieldError{Field: field, Reason: reason})
	}

	if c.Name == "" {
		add("name", "must not be empty")
	}
	if c.FastestResource == "" {
		add("fastestResource", "must not be empty")
	}
	if c.SinceParam == "" {
		add("sinceParam", "must not be empty")
	}
	if !c.AuthType.Valid() {
		add("authType", fmt.Sprintf("unknown auth type %q", c.AuthType))
	}

	if c.BaseURL != "" && !isAbsoluteURL(c.BaseURL) {
		add("baseURL", "must be an absolute URL")
	}
	if c.TokenEndpoint != "" && !isAbsoluteURL(c.TokenEndpoint) {
		add("tokenEndpoint", "must be an absolute URL")
	}
	if c.BaseURL == "" {
		if c.RequiresAuth {
			add("baseURL", "required when requiresAuth is true")
		} else if len(c.ExportLevels()) > 0 {
			add("baseURL", "required when an export endpoint is set")
		}
	}
	if c.RequiresAuth {
		if c.TokenEndpoint == "" {
			add("tokenEndpoint", "required when requiresAuth is true")
		}
		if c.Public {
			add("public", "can't be true when requiresAuth is true")
		}
		if c.AuthType == AuthTypePublic || c.AuthType == AuthTypeNone {
			add("authType", fmt.Sprintf("%s does not authenticate, but requiresAuth is true", c.AuthType))
		}
	}

	switch c.AuthType {
	case AuthTypeClientCredentials:
		if c.ClientID == "" {
			add("clientId", "required when authType is client-credentials")
		}
		if c.ClientSecret == "" {
			add("clientSecret", "required when authType is client-credentials")
		}
	case AuthTypeBackendServices:
		if c.ClientID == "" {
			add("clientId", "required when authType is backend-services")
		}
		if !c.JWKSAuth && !c.JWKSURLAuth {
			add("jwksAuth", "jwksAuth or jwksUrlAuth must be enabled when authType is backend-services")
		}
	default:
		if c.ClientSecret != "" && c.ClientID == "" {
			add("clientId", "required when clientSecret is set")
		}
	}

	if c.JWKSAuth && c.JWKSURLAuth {
		add("jwksUrlAuth", "can't be enabled together with jwksAuth")
	}
	if c.JWKSURLAuth {
		if c.JWKSURL == "" {
			add("jwksUrl", "required when jwksUrlAuth is true")
		} else if !isAbsoluteURL(c.JWKSURL) {
			add("jwksUrl", "must be an absolute URL")
		}
	}
	if c.JWKSAuth {
		problems = append(problems, c.validateKeySet()...)
	} else if len(c.JWKS) > 0 {
		add("jwks", "must be empty when jwksAuth is false")
	}

	for _, level := range allExportLevels {
		field, endpoint := c.exportEndpoint(level)
		if endpoint != "" && endpoint[0] != '/' {
			add(field, "must be a path starting with /")
		}
	}
	return problems
}

func (c Config) validateKeySet() []FieldError {
	keySet, err := c.KeySet()
	if err != nil {
		return []FieldError{{Field: "jwks", Reason: err.Error()}}
	}
	if len(keySet.Keys) == 0 {
		return []FieldError{{Field: "jwks", Reason: "must contain at least one key when jwksAuth is true"}}
	}
	var problems []FieldError
	for i, key := range keySet.Keys {
		if key.KeyID == "" {
			problems = append(problems, FieldError{Field: "jwks", Reason: fmt.Sprintf("key %d does not have a key ID", i)})
		}
	}
	return problems
}

// validateBaseURL checks the BASE_URL environment variable, if set.
func validateBaseURL(baseURL string) []FieldError {
	if baseURL == "" || isAbsoluteURL(baseURL) {
		return nil
	}
	return []FieldError{{Field: EnvBaseURL, Reason: "must be an absolute URL"}}
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
