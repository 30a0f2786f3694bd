package testutil

import (
	"errors"

	"github.com/AntonioJCosta/dalia/internal/core/domain/alias"
	"github.com/AntonioJCosta/dalia/internal/core/ports"
)

// MockAliasService is a mock implementation of ports.AliasService.
type MockAliasService struct {
	GenerateAliasesFunc func() ([]alias.Alias, error)
	ConfigPathFunc      func() string
}

func (m *MockAliasService) GenerateAliases() ([]alias.Alias, error) {
	if m.GenerateAliasesFunc != nil {
		return m.GenerateAliasesFunc()
	}
	return nil, errors.New("MockAliasService: GenerateAliasesFunc not implemented")
}

func (m *MockAliasService) ConfigPath() string {
	if m.ConfigPathFunc != nil {
		return m.ConfigPathFunc()
	}
	return "" // Default behavior
}

var _ ports.AliasService = (*MockAliasService)(nil)
