package ports

/*
AliasConfigParser defines the contract for turning raw configuration text into
an alias map (alias name -> target path).
This is a driven port, representing a domain capability.
*/
type AliasConfigParser interface {
	// Parse parses the whole configuration. Any error aborts the parse and
	// no partial map is returned.
	Parse(content string) (map[string]string, error)
}
