package report

import (
	"sort"
	"time"

	fs "github.com/dreitier/dirscan/storage/fs"
	"github.com/go-faster/errors"
)

// FileRecord describes a single regular file. Records are built once and never modified.
type FileRecord struct {
	// Containing directory, relative to the parent of the scanned directory
	RelativeDir     string  `json:"relative_dir" yaml:"relative_dir"`
	Name            string  `json:"name" yaml:"name"`
	SizeBytes       uint64  `json:"size_bytes" yaml:"size_bytes"`
	SizeDisplay     string  `json:"size_display" yaml:"size_display"`
	// Unix timestamp in seconds, including fractions of a second
	ModifiedAt      float64 `json:"modified_at" yaml:"modified_at"`
	ModifiedDisplay string  `json:"modified_display" yaml:"modified_display"`
	Owner           string  `json:"owner" yaml:"owner"`
}

// ModifiedTime returns ModifiedAt as time.Time
func (r FileRecord) ModifiedTime() time.Time {
	seconds := int64(r.ModifiedAt)
	nanos := int64((r.ModifiedAt - float64(seconds)) * 1e9)

	return time.Unix(seconds, nanos)
}

// Problem is an entry which has been skipped or degraded during a scan
type Problem struct {
	Path string
	Err  error
	// false if the entry is still part of the result, e.g. with an unknown owner
	Skipped bool
}

const (
	ReasonPermission = "permission"
	ReasonReadDir    = "read_dir"
	ReasonStat       = "stat"
	ReasonOwner      = "owner"
	ReasonOther      = "other"
)

// Reason classifies the problem for metrics and summaries
func (p Problem) Reason() string {
	var permission *fs.PermissionError
	var readDir *fs.ReadDirError
	var stat *fs.StatError
	var ownerErr *fs.OwnerResolutionError

	switch {
	case errors.As(p.Err, &ownerErr):
		return ReasonOwner
	case errors.As(p.Err, &permission):
		return ReasonPermission
	case errors.As(p.Err, &readDir):
		return ReasonReadDir
	case errors.As(p.Err, &stat):
		return ReasonStat
	}

	return ReasonOther
}

// Result is the ordered table of a scan
type Result struct {
	// Absolute path of the scanned directory
	Target     string
	Records    []FileRecord
	Problems   []Problem
	TotalBytes uint64
}

// Skipped returns the number of entries missing in Records
func (r *Result) Skipped() int {
	skipped := 0
	for _, problem := range r.Problems {
		if problem.Skipped {
			skipped++
		}
	}

	return skipped
}

// ProblemsByReason counts problems per Reason
func (r *Result) ProblemsByReason() map[string]int {
	counts := make(map[string]int)
	for _, problem := range r.Problems {
		counts[problem.Reason()]++
	}

	return counts
}

// SortByModified returns a copy of records, newest first. Records with the same timestamp are ordered by path.
func SortByModified(records []FileRecord) []FileRecord {
	sorted := make([]FileRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if a.ModifiedAt != b.ModifiedAt {
			return a.ModifiedAt > b.ModifiedAt
		}

		if a.RelativeDir != b.RelativeDir {
			return a.RelativeDir < b.RelativeDir
		}

		return a.Name < b.Name
	})

	return sorted
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}
