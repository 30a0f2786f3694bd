/*
Package alias defines the core domain entity for a directory alias.
*/
package alias

/*
Alias represents a shell shortcut that changes into Path when Name is typed.
This is a core domain entity.
*/
type Alias struct {
	Name string `yaml:"alias" toml:"alias"`
	Path string `yaml:"path" toml:"path"`
}
