package configparsing

import (
	"errors"
	"fmt"
)

// ErrEmptyConfig is returned by NewParser when the input has no directives at all.
var ErrEmptyConfig = errors.New("no configuration to parse")

// LexicalError reports a character that cannot start any token.
type LexicalError struct {
	Char      rune
	Line, Col int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("invalid character %q at line %d, column %d", e.Char, e.Line, e.Col)
}

// MismatchError reports a lookahead token whose kind the grammar does not allow
// at the current position.
type MismatchError struct {
	Expected Kind
	Found    Token
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expecting %s; found %s", e.Expected, e.Found)
}

// DerivationError reports a path from which no alias name can be derived.
type DerivationError struct {
	Path string
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("missing file stem in path %q", e.Path)
}

// ExpansionError reports a [*] directory that could not be listed.
type ExpansionError struct {
	Dir string
	Err error
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("cannot expand directory %q: %v", e.Dir, e.Err)
}

func (e *ExpansionError) Unwrap() error {
	return e.Err
}
