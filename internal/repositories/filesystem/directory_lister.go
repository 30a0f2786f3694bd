package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/dalia/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// DirectoryLister lists navigable directory children on the local filesystem.
// It implements the ports.DirectoryLister interface.
type DirectoryLister struct {
	homeDir string
	log     *logrus.Logger
}

// NewDirectoryLister creates a new DirectoryLister. homeDir is used to resolve a
// leading "~" in listed directories; it may be empty. A nil log discards output.
func NewDirectoryLister(homeDir string, log *logrus.Logger) ports.DirectoryLister {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &DirectoryLister{homeDir: homeDir, log: log}
}

// ListDirectories implements the ports.DirectoryLister interface.
// Symbolic links are followed: a link to a regular file is skipped, a link to a
// directory is kept, and a dangling link is kept as it is not a plain file.
// Names are returned in directory order (sorted by name).
func (d *DirectoryLister) ListDirectories(dir string) ([]string, error) {
	resolved := dir
	if d.homeDir != "" {
		resolved = ExpandHome(dir, d.homeDir)
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", resolved, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if isPlainFile(resolved, entry) {
			continue
		}
		names = append(names, entry.Name())
	}

	d.log.WithFields(logrus.Fields{
		"dir":     resolved,
		"entries": len(entries),
		"kept":    len(names),
	}).Debug("Expanded directory")

	return names, nil
}

func isPlainFile(dir string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		// Dangling link.
		return false
	}
	return info.Mode().IsRegular()
}
