//go:build unix

package owner

import (
	iofs "io/fs"
	"os/user"
	"strconv"
	"syscall"

	fs "github.com/dreitier/dirscan/storage/fs"
	"github.com/go-faster/errors"
	log "github.com/sirupsen/logrus"
)

type posixResolver struct {
	accounts *accountCache
}

// New returns the resolver for the current platform, caching up to cacheSize account names
func New(cacheSize int) (Resolver, error) {
	return newWithLookup(cacheSize, lookupUsername)
}

func newWithLookup(cacheSize int, lookup LookupFunc) (Resolver, error) {
	accounts, err := newAccountCache(cacheSize, lookup)
	if err != nil {
		return nil, err
	}

	return &posixResolver{accounts: accounts}, nil
}

func (r *posixResolver) Owner(path string, info iofs.FileInfo) (string, error) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", &fs.OwnerResolutionError{Path: path, Err: errors.New("no ownership information available")}
	}

	name, err := r.accounts.name(strconv.FormatUint(uint64(stat.Uid), 10))
	if err != nil {
		return "", &fs.OwnerResolutionError{Path: path, Err: err}
	}

	return name, nil
}

// lookupUsername behaves like ls: a uid without passwd entry is shown as number
func lookupUsername(uid string) (string, error) {
	u, err := user.LookupId(uid)

	if err != nil {
		var unknown user.UnknownUserIdError
		if errors.As(err, &unknown) {
			log.Debugf("No account for uid %s, using numeric id", uid)
			return uid, nil
		}

		return "", errors.Wrapf(err, "lookup uid %s", uid)
	}

	return u.Username, nil
}
