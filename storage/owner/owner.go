// Package owner translates the owner of a file into an account name.
//
// The implementation is chosen at build time: POSIX systems use the uid of the file's stat,
// Windows reads the owner SID from the file's security descriptor.
package owner

import (
	iofs "io/fs"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of account names kept in memory
const DefaultCacheSize = 256

// Resolver returns the account name owning path. info must be the result of a stat of path.
type Resolver interface {
	Owner(path string, info iofs.FileInfo) (string, error)
}

// LookupFunc translates a platform specific owner id (uid, SID) into an account name
type LookupFunc func(id string) (string, error)

// accountCache remembers owner ids already translated. Sibling files are mostly owned by the same account.
type accountCache struct {
	names  *lru.Cache[string, string]
	lookup LookupFunc
}

func newAccountCache(size int, lookup LookupFunc) (*accountCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	names, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}

	return &accountCache{names: names, lookup: lookup}, nil
}

func (c *accountCache) name(id string) (string, error) {
	if name, ok := c.names.Get(id); ok {
		return name, nil
	}

	name, err := c.lookup(id)
	if err != nil {
		return "", err
	}

	c.names.Add(id, name)

	return name, nil
}
