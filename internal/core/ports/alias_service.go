package ports

import "github.com/AntonioJCosta/dalia/internal/core/domain/alias"

// AliasService defines the contract for producing the configured directory aliases.
type AliasService interface {
	// GenerateAliases reads and parses the configuration. Aliases are sorted by name.
	GenerateAliases() ([]alias.Alias, error)

	// ConfigPath returns the configuration location for display purposes.
	ConfigPath() string
}
