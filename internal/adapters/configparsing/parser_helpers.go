package configparsing

import "strings"

// deriveAliasName returns the lowercased stem of the last segment of path.
// "/a/b/Tools.d" gives "tools", "~/.config/" gives ".config".
// It reports false when path has no usable last segment ("", "/", ".", "..").
func deriveAliasName(path string) (string, bool) {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "", false
	}

	segment := trimmed[strings.LastIndex(trimmed, "/")+1:]
	if segment == "." || segment == ".." {
		return "", false
	}

	// A leading dot marks a hidden name, not an extension.
	if i := strings.LastIndex(segment, "."); i > 0 {
		segment = segment[:i]
	}
	return strings.ToLower(segment), true
}
