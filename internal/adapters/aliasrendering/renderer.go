package aliasrendering

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/dalia/internal/core/domain/alias"
	"github.com/AntonioJCosta/dalia/internal/core/ports"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by NewRenderer.
const (
	FormatShell = "shell"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// ErrUnknownFormat indicates that no renderer exists for the requested format.
var ErrUnknownFormat = errors.New("unknown output format")

// NewRenderer returns the renderer for format.
func NewRenderer(format string) (ports.AliasRenderer, error) {
	switch strings.ToLower(format) {
	case FormatShell, "":
		return &ShellRenderer{}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	case FormatTOML:
		return &TOMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %s, %s, %s)", ErrUnknownFormat, format, FormatShell, FormatYAML, FormatTOML)
	}
}

// ShellRenderer writes one `alias name='cd path'` statement per alias.
type ShellRenderer struct{}

// Render implements the ports.AliasRenderer interface.
func (r *ShellRenderer) Render(w io.Writer, aliases []alias.Alias) error {
	for _, a := range aliases {
		if _, err := fmt.Fprintf(w, "alias %s='cd %s'\n", a.Name, quoteForSingleQuotes(a.Path)); err != nil {
			return fmt.Errorf("failed to write alias '%s': %w", a.Name, err)
		}
	}
	return nil
}

// quoteForSingleQuotes escapes s for use inside a single-quoted shell word.
func quoteForSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

// YAMLRenderer writes the aliases as a YAML list of {alias, path} mappings.
type YAMLRenderer struct{}

// Render implements the ports.AliasRenderer interface.
func (r *YAMLRenderer) Render(w io.Writer, aliases []alias.Alias) error {
	if aliases == nil {
		aliases = []alias.Alias{}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(aliases); err != nil {
		return fmt.Errorf("failed to encode aliases as YAML: %w", err)
	}
	return encoder.Close()
}

// tomlDocument is the top-level TOML table; each alias becomes an [[alias]] entry.
type tomlDocument struct {
	Aliases []alias.Alias `toml:"alias,omitempty"`
}

// TOMLRenderer writes the aliases as an array of [[alias]] tables.
type TOMLRenderer struct{}

// Render implements the ports.AliasRenderer interface.
func (r *TOMLRenderer) Render(w io.Writer, aliases []alias.Alias) error {
	if err := toml.NewEncoder(w).Encode(tomlDocument{Aliases: aliases}); err != nil {
		return fmt.Errorf("failed to encode aliases as TOML: %w", err)
	}
	return nil
}
