package ports

import "os"

// FileSystemPort defines the file operations the rewriter needs from
// the host filesystem. Kept minimal so tests can substitute failure
// modes without touching real files.
type FileSystemPort interface {
	// Open opens the named file for reading.
	Open(path string) (*os.File, error)

	// Create creates or truncates the named file for writing.
	Create(path string) (*os.File, error)

	// Exists reports whether the named file exists.
	Exists(path string) (bool, error)

	// Remove deletes the named file.
	Remove(path string) error
}
