package configparsing

import (
	"maps"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/dalia/internal/core/ports"
)

/*
Parser is an LL(1) recursive-descent parser over the token stream of a Lexer.
It recognizes

	line := '[' ALIAS ']' PATH | '[' GLOB ']' PATH | '[' ']' PATH | PATH

and accumulates the resulting alias map. A Parser is single-use.
*/
type Parser struct {
	lexer     *Lexer
	lookahead Token
	lister    ports.DirectoryLister
	aliases   map[string]string
}

// NewParser creates a parser for input and lexes the first lookahead token.
// It returns ErrEmptyConfig if input contains only whitespace.
// It panics if lister is nil.
func NewParser(input string, lister ports.DirectoryLister) (*Parser, error) {
	if lister == nil {
		panic("directory lister cannot be nil")
	}
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyConfig
	}

	lexer := NewLexer(input)
	lookahead, err := lexer.Next()
	if err != nil {
		return nil, err
	}
	return &Parser{
		lexer:     lexer,
		lookahead: lookahead,
		lister:    lister,
		aliases:   make(map[string]string),
	}, nil
}

// Parse parses every line until the end of input and returns the alias map.
// The first error aborts the parse; no partial map is returned.
func (p *Parser) Parse() (map[string]string, error) {
	for {
		if err := p.line(); err != nil {
			return nil, err
		}
		if p.lookahead.Kind == KindEOF {
			if err := p.expect(KindEOF); err != nil {
				return nil, err
			}
			return p.Aliases(), nil
		}
	}
}

// Aliases returns a copy of the aliases collected so far.
func (p *Parser) Aliases() map[string]string {
	return maps.Clone(p.aliases)
}

func (p *Parser) advance() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.lookahead = tok
	return nil
}

func (p *Parser) expect(kind Kind) error {
	if p.lookahead.Kind != kind {
		return &MismatchError{Expected: kind, Found: p.lookahead}
	}
	return p.advance()
}

func (p *Parser) line() error {
	var explicitName string
	isGlob := false

	if p.lookahead.Kind == KindLBrack {
		if err := p.expect(KindLBrack); err != nil {
			return err
		}
		switch p.lookahead.Kind {
		case KindGlob:
			isGlob = true
			if err := p.expect(KindGlob); err != nil {
				return err
			}
		case KindAlias:
			explicitName = p.lookahead.Text
			if err := p.expect(KindAlias); err != nil {
				return err
			}
		}
		if err := p.expect(KindRBrack); err != nil {
			return err
		}
	}

	path := p.lookahead.Text
	if err := p.expect(KindPath); err != nil {
		return err
	}

	if isGlob {
		return p.insertExpanded(path)
	}
	return p.insert(explicitName, path)
}

// insert stores path under name, or under the name derived from path when name is empty.
func (p *Parser) insert(name, path string) error {
	if name == "" {
		derived, ok := deriveAliasName(path)
		if !ok {
			return &DerivationError{Path: path}
		}
		name = derived
	}
	p.aliases[name] = path
	return nil
}

// insertExpanded stores one derived alias per navigable child of dir.
func (p *Parser) insertExpanded(dir string) error {
	names, err := p.lister.ListDirectories(dir)
	if err != nil {
		return &ExpansionError{Dir: dir, Err: err}
	}
	for _, name := range names {
		if err := p.insert("", filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
