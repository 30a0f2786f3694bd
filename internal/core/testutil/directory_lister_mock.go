package testutil

import (
	"errors"

	"github.com/AntonioJCosta/dalia/internal/core/ports"
)

// MockDirectoryLister is a mock implementation of ports.DirectoryLister.
type MockDirectoryLister struct {
	ListDirectoriesFunc func(dir string) ([]string, error)
	// ListDirectoriesCalls keeps track of the directories passed to ListDirectories.
	ListDirectoriesCalls []string
}

// ListDirectories records the call and delegates to ListDirectoriesFunc.
func (m *MockDirectoryLister) ListDirectories(dir string) ([]string, error) {
	m.ListDirectoriesCalls = append(m.ListDirectoriesCalls, dir)
	if m.ListDirectoriesFunc != nil {
		return m.ListDirectoriesFunc(dir)
	}
	return nil, errors.New("MockDirectoryLister: ListDirectoriesFunc not implemented")
}

var _ ports.DirectoryLister = (*MockDirectoryLister)(nil)
