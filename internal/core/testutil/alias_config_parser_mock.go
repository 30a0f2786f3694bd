package testutil

import (
	"errors"

	"github.com/AntonioJCosta/dalia/internal/core/ports"
)

// MockAliasConfigParser is a mock implementation of ports.AliasConfigParser.
type MockAliasConfigParser struct {
	ParseFunc func(content string) (map[string]string, error)
	// ParseCalls keeps track of the content passed to Parse.
	ParseCalls []string
}

// Parse implements the ports.AliasConfigParser interface.
func (m *MockAliasConfigParser) Parse(content string) (map[string]string, error) {
	m.ParseCalls = append(m.ParseCalls, content)
	if m.ParseFunc != nil {
		return m.ParseFunc(content)
	}
	return nil, errors.New("MockAliasConfigParser: ParseFunc not implemented")
}

var _ ports.AliasConfigParser = (*MockAliasConfigParser)(nil)
