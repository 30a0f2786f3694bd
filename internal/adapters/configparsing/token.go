/*
Package configparsing implements the tokenizer and the recursive-descent parser
for dalia configuration files.

Each line of a configuration file is one directive:

	/some/path            alias "path" derived from the last path segment
	[my-path]/some/path   alias "my-path", case preserved
	[*]/some/dir          one alias per immediate subdirectory of /some/dir
*/
package configparsing

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	KindEOF Kind = iota + 1
	KindLBrack
	KindRBrack
	KindAlias
	KindPath
	KindGlob
)

// String returns the name used for the kind in error messages.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "<EOF>"
	case KindLBrack:
		return "LBRACK"
	case KindRBrack:
		return "RBRACK"
	case KindAlias:
		return "ALIAS"
	case KindPath:
		return "PATH"
	case KindGlob:
		return "GLOB"
	default:
		return "n/a"
	}
}

// eofText is the text carried by the end-of-input token.
const eofText = "<EOF>"

// Token is a classified piece of configuration text.
type Token struct {
	Kind Kind
	Text string
	Line int // 1-indexed
	Col  int // 1-indexed, in runes
}

// String renders the token as <'text', KIND>.
func (t Token) String() string {
	return fmt.Sprintf("<'%s', %s>", t.Text, t.Kind)
}
