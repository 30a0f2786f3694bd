package configfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/dalia/internal/core/ports"
	"github.com/AntonioJCosta/dalia/internal/repositories/filesystem"
)

const (
	// ConfigDirEnvVar names the environment variable that overrides the configuration directory.
	ConfigDirEnvVar  = "DALIA_CONFIG_PATH"
	defaultConfigDir = "~/.dalia"
	configFilename   = "config"
)

// ErrConfigEmpty indicates that the configuration file is missing or has no content.
var ErrConfigEmpty = errors.New("configuration file is empty; add a few paths to $DALIA_CONFIG_PATH/config and try again")

// Reader reads the alias configuration file from disk.
// It implements the ports.ConfigSource interface.
type Reader struct {
	filePath string
	homeDir  string
}

/*
NewReader creates a new Reader for $DALIA_CONFIG_PATH/config, falling back to
~/.dalia/config when the variable is not set. A leading "~" is expanded with the
current user's home directory.
*/
func NewReader() (ports.ConfigSource, error) {
	homeDir, err := filesystem.HomeDir()
	if err != nil {
		return nil, err
	}
	return newReader(configDir(homeDir), homeDir), nil
}

func configDir(homeDir string) string {
	dir := os.Getenv(ConfigDirEnvVar)
	if dir == "" {
		dir = defaultConfigDir
	}
	return filesystem.ExpandHome(dir, homeDir)
}

func newReader(dir, homeDir string) *Reader {
	return &Reader{
		filePath: filepath.Join(dir, configFilename),
		homeDir:  homeDir,
	}
}

// Read implements the ports.ConfigSource interface.
func (r *Reader) Read() (string, error) {
	content, err := os.ReadFile(r.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrConfigEmpty
		}
		return "", fmt.Errorf("failed to read configuration file %s: %w", r.DisplayPath(), err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", ErrConfigEmpty
	}
	return string(content), nil
}

// Path implements the ports.ConfigSource interface.
func (r *Reader) Path() string {
	return r.filePath
}

// DisplayPath returns the configuration file path with the home directory shown as "~".
func (r *Reader) DisplayPath() string {
	return filesystem.ToUserFriendlyPath(r.filePath, r.homeDir)
}
