package testutil

import (
	"errors"

	"github.com/AntonioJCosta/dalia/internal/core/ports"
)

// MockConfigSource is a mock implementation of ports.ConfigSource.
type MockConfigSource struct {
	ReadFunc        func() (string, error)
	PathFunc        func() string
	DisplayPathFunc func() string
}

func (m *MockConfigSource) Read() (string, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc()
	}
	return "", errors.New("MockConfigSource: ReadFunc not implemented")
}

func (m *MockConfigSource) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "" // Default behavior
}

func (m *MockConfigSource) DisplayPath() string {
	if m.DisplayPathFunc != nil {
		return m.DisplayPathFunc()
	}
	return m.Path()
}

var _ ports.ConfigSource = (*MockConfigSource)(nil)
