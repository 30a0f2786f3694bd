package ports

// DirectoryLister defines the contract for listing the children of a directory
// that can be navigated into.
type DirectoryLister interface {
	// ListDirectories returns the names (not full paths) of the immediate children
	// of dir that are not regular files.
	ListDirectories(dir string) ([]string, error)
}
