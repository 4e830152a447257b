//go:build windows

package owner

import (
	iofs "io/fs"

	fs "github.com/dreitier/dirscan/storage/fs"
	"github.com/go-faster/errors"
	"golang.org/x/sys/windows"
)

type securityDescriptorResolver struct {
	accounts *accountCache
}

// New returns the resolver for the current platform, caching up to cacheSize account names
func New(cacheSize int) (Resolver, error) {
	return newWithLookup(cacheSize, lookupAccount)
}

func newWithLookup(cacheSize int, lookup LookupFunc) (Resolver, error) {
	accounts, err := newAccountCache(cacheSize, lookup)
	if err != nil {
		return nil, err
	}

	return &securityDescriptorResolver{accounts: accounts}, nil
}

func (r *securityDescriptorResolver) Owner(path string, _ iofs.FileInfo) (string, error) {
	sd, err := windows.GetNamedSecurityInfo(path, windows.SE_FILE_OBJECT, windows.OWNER_SECURITY_INFORMATION)
	if err != nil {
		return "", &fs.OwnerResolutionError{Path: path, Err: errors.Wrap(err, "read security descriptor")}
	}

	sid, _, err := sd.Owner()
	if err != nil {
		return "", &fs.OwnerResolutionError{Path: path, Err: errors.Wrap(err, "read owner sid")}
	}

	if sid == nil {
		return "", &fs.OwnerResolutionError{Path: path, Err: errors.New("security descriptor has no owner")}
	}

	name, err := r.accounts.name(sid.String())
	if err != nil {
		return "", &fs.OwnerResolutionError{Path: path, Err: err}
	}

	return name, nil
}

func lookupAccount(id string) (string, error) {
	sid, err := windows.StringToSid(id)
	if err != nil {
		return "", errors.Wrapf(err, "parse sid %s", id)
	}

	account, _, _, err := sid.LookupAccount("")
	if err != nil {
		return "", errors.Wrapf(err, "lookup account for sid %s", id)
	}

	return account, nil
}
