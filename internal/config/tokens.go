package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TokenRegistry is an optional allow-list of token contracts that may be
// dropped onto the grid. When no registry file is configured every contract
// is accepted.
type TokenRegistry struct {
	Tokens []TokenEntry `yaml:"tokens"`

	byContract map[string]TokenEntry
}

type TokenEntry struct {
	Symbol   string `yaml:"symbol"`
	Contract string `yaml:"contract"`
	Decimals int    `yaml:"decimals"`
}

// LoadTokenRegistry reads the YAML registry at path. An empty path yields a
// nil registry, meaning "no restriction".
func LoadTokenRegistry(path string) (*TokenRegistry, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token registry: %w", err)
	}

	var registry TokenRegistry
	if err := yaml.Unmarshal(raw, &registry); err != nil {
		return nil, fmt.Errorf("parse token registry: %w", err)
	}

	registry.byContract = make(map[string]TokenEntry, len(registry.Tokens))
	for _, entry := range registry.Tokens {
		registry.byContract[strings.ToLower(entry.Contract)] = entry
	}

	return &registry, nil
}

// Allowed reports whether the contract is in the registry. A nil registry
// allows everything.
func (r *TokenRegistry) Allowed(contract string) bool {
	if r == nil {
		return true
	}
	_, ok := r.byContract[strings.ToLower(contract)]
	return ok
}
