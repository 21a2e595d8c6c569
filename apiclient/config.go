package apiclient

import (
	"fmt"
)

// AuthType specifies how a client authenticates to the API.
type AuthType string

const (
	// AuthTypeClientCredentials authenticates using the OAuth2 client credentials grant (client ID and secret).
	AuthTypeClientCredentials AuthType = "client-credentials"
	// AuthTypeBackendServices authenticates using SMART Backend Services (signed JWT client assertions, keys published as JWKS).
	AuthTypeBackendServices AuthType = "backend-services"
	// AuthTypePublic is a public OAuth2 client without a client secret.
	AuthTypePublic AuthType = "public"
	// AuthTypeNone means the API does not require authentication.
	AuthTypeNone AuthType = "none"
)

var knownAuthTypes = []AuthType{AuthTypeClientCredentials, AuthTypeBackendServices, AuthTypePublic, AuthTypeNone}

// Valid reports whether the auth type is one of the known auth types.
func (a AuthType) Valid() bool {
	for _, known := range knownAuthTypes {
		if a == known {
			return true
		}
	}
	return false
}

// ParseAuthType converts the textual representation into an AuthType.
func ParseAuthType(s string) (AuthType, error) {
	result := AuthType(s)
	if !result.Valid() {
		return "", fmt.Errorf("unknown auth type: %q", s)
	}
	return result, nil
}

const (
	// apiPath is appended to BASE_URL to form the API base URL.
	apiPath = "/api/v1"
	// tokenPath is appended to BASE_URL to form the token endpoint.
	tokenPath = "/auth/token"
)

// Config describes how a client integrates with the Beneficiary Claims Data API.
// It is constructed once by Load and must not be modified afterwards.
// Copies of a Config share the JWKS map; use Clone to get a copy that can be changed independently.
type Config struct {
	// AuthType specifies the authentication flow the client must use.
	AuthType AuthType `json:"authType"`
	// BaseURL is the base URL of the API, derived from BASE_URL.
	BaseURL string `json:"baseURL"`
	// ClientID is the OAuth2 client ID, taken from CLIENT_ID.
	ClientID string `json:"clientId"`
	// ClientSecret is the OAuth2 client secret, taken from CLIENT_SECRET.
	ClientSecret string `json:"clientSecret"`
	Description  string `json:"description"`
	// FastestResource is a lightweight FHIR resource type, used for smoke tests.
	FastestResource string `json:"fastestResource"`
	// GroupExportEndpoint is the path (relative to BaseURL) of the group-level bulk export. Empty means disabled.
	GroupExportEndpoint string `json:"groupExportEndpoint"`
	// JWKS holds a JWK Set document. It must be empty unless JWKSAuth is set.
	JWKS map[string]any `json:"jwks"`
	// JWKSAuth indicates the client's keys are provided inline through JWKS.
	JWKSAuth bool `json:"jwksAuth"`
	// JWKSURL is the location where the client's keys are published.
	JWKSURL string `json:"jwksUrl"`
	// JWKSURLAuth indicates the client's keys are provided by JWKSURL.
	JWKSURLAuth bool   `json:"jwksUrlAuth"`
	Name        string `json:"name"`
	// PatientExportEndpoint is the path (relative to BaseURL) of the patient-level bulk export. Empty means disabled.
	PatientExportEndpoint string `json:"patientExportEndpoint"`
	// Public indicates the API is publicly accessible.
	Public       bool `json:"public"`
	RequiresAuth bool `json:"requiresAuth"`
	// SinceParam is the name of the query parameter used for incremental exports.
	SinceParam string `json:"sinceParam"`
	// StrictSSL toggles validation of the server's TLS certificate.
	StrictSSL bool `json:"strictSSL"`
	// SystemExportEndpoint is the path (relative to BaseURL) of the system-level bulk export. Empty means disabled.
	SystemExportEndpoint string `json:"systemExportEndpoint"`
	// TokenEndpoint is the OAuth2 token endpoint, derived from BASE_URL.
	TokenEndpoint string `json:"tokenEndpoint"`
}

// DefaultConfig returns the compiled-in BCDA descriptor. Fields derived from the environment are left empty.
func DefaultConfig() Config {
	return Config{
		AuthType:              AuthTypeClientCredentials,
		Description:           "The Beneficiary Claims Data API (BCDA) enables Accountable Care Organizations (ACOs) participating in the Shared Savings Program to retrieve Medicare Part A, Part B, and Part D claims data for their prospectively assigned or assignable beneficiaries.",
		FastestResource:       "Patient",
		GroupExportEndpoint:   "/Group/all/$export",
		JWKS:                  map[string]any{},
		JWKSAuth:              false,
		JWKSURL:               "http://localhost:3000/jwks",
		JWKSURLAuth:           false,
		Name:                  "CMS Beneficiary Claims Data API (BCDA)",
		PatientExportEndpoint: "/Patient/$export",
		Public:                false,
		RequiresAuth:          true,
		SinceParam:            "_since",
		StrictSSL:             true,
		SystemExportEndpoint:  "",
	}
}

// String returns a short description of the descriptor, without secrets.
func (c Config) String() string {
	return fmt.Sprintf("%s (auth=%s, baseURL=%s)", c.Name, c.AuthType, c.BaseURL)
}

// Clone returns a deep copy of the descriptor.
func (c Config) Clone() Config {
	result := c
	result.JWKS = cloneMap(c.JWKS)
	return result
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	result := make(map[string]any, len(m))
	for key, value := range m {
		result[key] = cloneValue(value)
	}
	return result
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = cloneValue(item)
		}
		return result
	default:
		return v
	}
}
