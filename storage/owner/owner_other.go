//go:build !unix && !windows

package owner

import (
	iofs "io/fs"

	fs "github.com/dreitier/dirscan/storage/fs"
	"github.com/go-faster/errors"
)

type unsupportedResolver struct{}

// New returns a resolver which fails for every file, this platform has no ownership model
func New(_ int) (Resolver, error) {
	return unsupportedResolver{}, nil
}

func (unsupportedResolver) Owner(path string, _ iofs.FileInfo) (string, error) {
	return "", &fs.OwnerResolutionError{Path: path, Err: errors.New("file ownership is not supported on this platform")}
}
