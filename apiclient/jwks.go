package apiclient

import (
	"encoding/json"
	"fmt"
	"github.com/go-jose/go-jose/v4"
)

// KeySet decodes the inline JWK Set. An empty JWKS yields an empty set.
func (c Config) KeySet() (*jose.JSONWebKeySet, error) {
	result := &jose.JSONWebKeySet{}
	if len(c.JWKS) == 0 {
		return result, nil
	}
	data, err := json.Marshal(c.JWKS)
	if err != nil {
		return nil, fmt.Errorf("invalid JWK set: %w", err)
	}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("invalid JWK set: %w", err)
	}
	return result, nil
}
