package ports

import (
	"io"

	"github.com/AntonioJCosta/dalia/internal/core/domain/alias"
)

// AliasRenderer writes aliases in an output format, such as shell alias statements.
type AliasRenderer interface {
	Render(w io.Writer, aliases []alias.Alias) error
}
