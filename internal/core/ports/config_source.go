package ports

// ConfigSource defines the contract for loading the alias configuration text.
type ConfigSource interface {
	Read() (string, error)

	// Path returns the absolute location the configuration is read from.
	Path() string

	// DisplayPath returns Path in a form suitable for messages, e.g. with "~" for the home directory.
	DisplayPath() string
}
