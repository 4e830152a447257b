package fs

// Common data structures for files found during a scan.
import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
)

// Entry is a regular file found by an enumerator
type Entry struct {
	// File name
	Name string
	// Absolute path to parent directory
	Parent string
}

// Path returns the absolute path of the entry
func (e Entry) Path() string {
	return filepath.Join(e.Parent, e.Name)
}

// CheckDirectory makes sure that path exists, is a directory and can be listed.
func CheckDirectory(path string) error {
	info, err := os.Stat(path)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &NotFoundError{Path: path, Err: err}
		}

		if errors.Is(err, os.ErrPermission) {
			return &PermissionError{Path: path, Err: err}
		}

		return &StatError{Path: path, Err: err}
	}

	if !info.IsDir() {
		return &NotADirectoryError{Path: path}
	}

	dir, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return &PermissionError{Path: path, Err: err}
		}

		return &ReadDirError{Path: path, Err: err}
	}

	return dir.Close()
}
