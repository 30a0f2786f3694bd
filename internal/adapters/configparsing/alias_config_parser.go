package configparsing

import "github.com/AntonioJCosta/dalia/internal/core/ports"

// AliasConfigParser implements ports.AliasConfigParser by running a fresh Parser
// for every call, so no state is carried between parses.
type AliasConfigParser struct {
	lister ports.DirectoryLister
}

// NewAliasConfigParser creates a new AliasConfigParser.
// It panics if lister is nil.
func NewAliasConfigParser(lister ports.DirectoryLister) ports.AliasConfigParser {
	if lister == nil {
		panic("directory lister cannot be nil")
	}
	return &AliasConfigParser{lister: lister}
}

// Parse implements the ports.AliasConfigParser interface.
func (a *AliasConfigParser) Parse(content string) (map[string]string, error) {
	p, err := NewParser(content, a.lister)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}
