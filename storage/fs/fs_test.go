package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CheckDirectory_acceptsDirectory(t *testing.T) {
	assert.NoError(t, CheckDirectory(t.TempDir()))
}

func Test_CheckDirectory_detectsMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	err := CheckDirectory(path)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, path, notFound.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "directory "+path+" does not exist", err.Error())
}

func Test_CheckDirectory_detectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	err := CheckDirectory(path)

	var notDir *NotADirectoryError
	assert.True(t, errors.As(err, &notDir))
}

func Test_ClassifyAccessError_detectsPermissionErrors(t *testing.T) {
	fallback := func(path string, err error) error { return &StatError{Path: path, Err: err} }
	cause := &os.PathError{Op: "open", Path: "/x", Err: os.ErrPermission}

	err := ClassifyAccessError("/x", cause, fallback)

	var permission *PermissionError
	assert.True(t, errors.As(err, &permission))

	err = ClassifyAccessError("/x", os.ErrClosed, fallback)

	var stat *StatError
	assert.True(t, errors.As(err, &stat))
}

func Test_Entry_Path_joinsParentAndName(t *testing.T) {
	sut := Entry{Name: "x.txt", Parent: filepath.Join("srv", "a")}

	assert.Equal(t, filepath.Join("srv", "a", "x.txt"), sut.Path())
}
