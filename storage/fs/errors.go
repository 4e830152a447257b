package fs

import (
	"fmt"
	"os"

	"github.com/go-faster/errors"
)

// NotFoundError is returned when the target directory does not exist
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("directory %s does not exist", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// NotADirectoryError is returned when the target exists but is not a directory
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}

// PermissionError is returned when a directory or file can not be accessed
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied for %s", e.Path)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// ReadDirError is returned when a directory can not be listed for any other reason than missing permissions
type ReadDirError struct {
	Path string
	Err  error
}

func (e *ReadDirError) Error() string {
	return fmt.Sprintf("unable to read directory %s: %v", e.Path, e.Err)
}

func (e *ReadDirError) Unwrap() error {
	return e.Err
}

// StatError is returned when the metadata of a single file can not be read
type StatError struct {
	Path string
	Err  error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("unable to stat %s: %v", e.Path, e.Err)
}

func (e *StatError) Unwrap() error {
	return e.Err
}

// OwnerResolutionError is returned when the owner of a file can not be translated into an account name
type OwnerResolutionError struct {
	Path string
	Err  error
}

func (e *OwnerResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve owner of %s: %v", e.Path, e.Err)
}

func (e *OwnerResolutionError) Unwrap() error {
	return e.Err
}

// ErrNotRegular marks an entry which has been a regular file during enumeration but is no longer one
var ErrNotRegular = errors.New("not a regular file")

// ClassifyAccessError maps an error on path into PermissionError or the error created by fallback
func ClassifyAccessError(path string, err error, fallback func(path string, err error) error) error {
	if errors.Is(err, os.ErrPermission) {
		return &PermissionError{Path: path, Err: err}
	}

	return fallback(path, err)
}
