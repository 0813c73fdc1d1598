package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masonbuild/mason/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStamper_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.o")
	require.NoError(t, os.WriteFile(path, []byte("artifact"), 0o644))

	mod := time.Unix(1700000000, 0)
	require.NoError(t, os.Chtimes(path, mod, mod))

	stamper := fs.NewStamper()
	stamp, err := stamper.Stamp(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, stamp.Exists())
	assert.True(t, stamp.ModTime().Equal(mod))
}

func TestStamper_MissingFile(t *testing.T) {
	stamper := fs.NewStamper()
	stamp, err := stamper.Stamp(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.False(t, stamp.Exists())
}

func TestStamper_StatFailure(t *testing.T) {
	// A file used as a directory component makes stat fail with ENOTDIR.
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	stamper := fs.NewStamper()
	_, err := stamper.Stamp(context.Background(), filepath.Join(file, "child"))
	require.Error(t, err)
}
