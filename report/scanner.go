package report

import (
	"context"
	iofs "io/fs"
	"path/filepath"
	"runtime"
	"sync"

	fs "github.com/dreitier/dirscan/storage/fs"
	"github.com/dreitier/dirscan/storage/owner"
	"github.com/dreitier/dirscan/storage/provider"
	"github.com/go-faster/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultUnknownOwner is used when the owner of a file can not be resolved
	DefaultUnknownOwner = "unknown"
	maxDefaultWorkers   = 8
)

// Enumerator lists all regular files below its root directory
type Enumerator interface {
	Walk(ctx context.Context, visit provider.VisitFunc, problems provider.ProblemFunc) error
}

// Stater reads the metadata of a single file
type Stater interface {
	Stat(path string) (iofs.FileInfo, error)
}

// FileSystem is the source of a scan
type FileSystem interface {
	Enumerator
	Stater
}

// Scanner turns a directory tree into a Result
type Scanner struct {
	Owners    owner.Resolver
	Formatter Formatter
	// Number of files whose metadata is read in parallel; 0 selects a default
	Workers int
	// Owner reported if resolution fails; DefaultUnknownOwner if empty
	UnknownOwner string
	// Skip files whose owner can not be resolved instead of reporting UnknownOwner
	StrictOwner bool
}

// DefaultWorkers returns min(cpu count, 8)
func DefaultWorkers() int {
	return min(runtime.NumCPU(), maxDefaultWorkers)
}

// Scan reads every regular file below target from the local filesystem
func (s *Scanner) Scan(ctx context.Context, target string) (*Result, error) {
	client, err := provider.NewLocalClient(target)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", target)
	}

	return s.ScanFileSystem(ctx, client.Directory, client)
}

// ScanFileSystem reads every regular file files enumerates. root must be the absolute path files is rooted at.
// Errors on single files or subdirectories are collected as problems of the result.
func (s *Scanner) ScanFileSystem(ctx context.Context, root string, files FileSystem) (*Result, error) {
	if s.Owners == nil {
		return nil, errors.New("no owner resolver configured")
	}

	collected := &collector{}
	parent := filepath.Dir(root)

	workers := s.Workers
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	log.Debugf("Scanning %s with %d workers", root, workers)

	walkErr := files.Walk(groupCtx, func(entry fs.Entry) error {
		group.Go(func() error {
			s.read(parent, entry, files, collected)
			return nil
		})

		return nil
	}, func(path string, err error) {
		collected.problem(path, err, true)
	})

	// workers never fail, Wait only synchronizes
	_ = group.Wait()

	if walkErr != nil {
		return nil, walkErr
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Target:     root,
		Records:    SortByModified(collected.records),
		Problems:   collected.problems,
		TotalBytes: collected.totalBytes,
	}

	if skipped := result.Skipped(); skipped > 0 {
		log.Warnf("Skipped %d entries below %s, see warnings above", skipped, root)
	}

	log.Debugf("Found %d files below %s", len(result.Records), root)

	return result, nil
}

func (s *Scanner) read(parent string, entry fs.Entry, files Stater, collected *collector) {
	path := entry.Path()

	info, err := files.Stat(path)
	if err != nil {
		log.Warnf("Failed to read metadata of %s, %v", path, err)
		collected.problem(path, err, true)
		return
	}

	ownerName, err := s.Owners.Owner(path, info)
	if err != nil {
		if s.StrictOwner {
			log.Warnf("Skipping %s, %v", path, err)
			collected.problem(path, err, true)
			return
		}

		ownerName = s.unknownOwner()
		log.Warnf("Reporting owner of %s as %q, %v", path, ownerName, err)
		collected.problem(path, err, false)
	}

	relativeDir, err := filepath.Rel(parent, entry.Parent)
	if err != nil {
		// entry.Parent is always below root
		relativeDir = entry.Parent
	}

	size := uint64(info.Size())
	modifiedAt := info.ModTime()

	collected.add(FileRecord{
		RelativeDir:     relativeDir,
		Name:            entry.Name,
		SizeBytes:       size,
		SizeDisplay:     s.Formatter.Size(size),
		ModifiedAt:      unixSeconds(modifiedAt),
		ModifiedDisplay: s.Formatter.Timestamp(modifiedAt),
		Owner:           ownerName,
	})
}

func (s *Scanner) unknownOwner() string {
	if s.UnknownOwner == "" {
		return DefaultUnknownOwner
	}

	return s.UnknownOwner
}

type collector struct {
	mutex      sync.Mutex
	records    []FileRecord
	problems   []Problem
	totalBytes uint64
}

func (c *collector) add(record FileRecord) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.records = append(c.records, record)
	c.totalBytes += record.SizeBytes
}

func (c *collector) problem(path string, err error, skipped bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.problems = append(c.problems, Problem{Path: path, Err: err, Skipped: skipped})
}
