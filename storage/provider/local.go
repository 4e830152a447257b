package provider

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"

	fs "github.com/dreitier/dirscan/storage/fs"
	log "github.com/sirupsen/logrus"
)

// VisitFunc is called for every regular file found. Returning an error stops the walk.
type VisitFunc func(entry fs.Entry) error

// ProblemFunc receives directory-level errors which did not stop the walk
type ProblemFunc func(path string, err error)

// LocalClient enumerates a directory of the local filesystem. Symbolic links are never followed:
// neither links to files nor links to directories are reported.
type LocalClient struct {
	Directory string
}

func NewLocalClient(directory string) (*LocalClient, error) {
	absolute, err := filepath.Abs(directory)
	if err != nil {
		return nil, err
	}

	return &LocalClient{Directory: absolute}, nil
}

// Walk descends recursively into the client's directory and calls visit for each regular file.
// Subdirectories which can not be read are passed to problems (may be nil) and skipped.
// Only errors on the root directory, cancellation of ctx and errors returned by visit are returned.
func (c *LocalClient) Walk(ctx context.Context, visit VisitFunc, problems ProblemFunc) error {
	if err := fs.CheckDirectory(c.Directory); err != nil {
		return err
	}

	if problems == nil {
		problems = func(string, error) {}
	}

	return c.scanDir(ctx, c.Directory, visit, problems)
}

// Stat reads the metadata of a single file without following symbolic links
func (c *LocalClient) Stat(path string) (iofs.FileInfo, error) {
	info, err := os.Lstat(path)

	if err != nil {
		return nil, fs.ClassifyAccessError(path, err, func(path string, err error) error {
			return &fs.StatError{Path: path, Err: err}
		})
	}

	if !info.Mode().IsRegular() {
		return nil, &fs.StatError{Path: path, Err: fs.ErrNotRegular}
	}

	return info, nil
}

func (c *LocalClient) scanDir(ctx context.Context, absoluteDirectoryPath string, visit VisitFunc, problems ProblemFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dirEntries, err := os.ReadDir(absoluteDirectoryPath)

	if err != nil {
		problem := fs.ClassifyAccessError(absoluteDirectoryPath, err, func(path string, err error) error {
			return &fs.ReadDirError{Path: path, Err: err}
		})

		if absoluteDirectoryPath == c.Directory {
			return problem
		}

		log.Warnf("Failed to scan directory %s, %v", absoluteDirectoryPath, err)
		problems(absoluteDirectoryPath, problem)

		// os.ReadDir returns the entries read before the error, continue with those
		if len(dirEntries) == 0 {
			return nil
		}
	}

	for _, dirEntry := range dirEntries {
		entryType := dirEntry.Type()

		if entryType.IsDir() {
			if err := c.scanDir(ctx, filepath.Join(absoluteDirectoryPath, dirEntry.Name()), visit, problems); err != nil {
				return err
			}

			continue
		}

		// skips symlinks, sockets, devices and named pipes
		if !entryType.IsRegular() {
			log.Debugf("Ignoring %s in %s, not a regular file (%s)", dirEntry.Name(), absoluteDirectoryPath, entryType)
			continue
		}

		if err := visit(fs.Entry{Name: dirEntry.Name(), Parent: absoluteDirectoryPath}); err != nil {
			return err
		}
	}

	return nil
}
