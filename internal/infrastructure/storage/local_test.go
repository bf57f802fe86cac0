package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskImageStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "img")
	store := NewDiskImageStore(dir)

	name, err := store.Save(context.Background(), "Beach.PNG", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".png"))
	_, err = uuid.Parse(strings.TrimSuffix(name, ".png"))
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestDiskImageStore_SaveGeneratesDistinctNames(t *testing.T) {
	store := NewDiskImageStore(t.TempDir())

	a, err := store.Save(context.Background(), "a.jpg", strings.NewReader("1"))
	require.NoError(t, err)
	b, err := store.Save(context.Background(), "a.jpg", strings.NewReader("2"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestDiskImageStore_SaveRemovesPartialFile(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskImageStore(dir)

	_, err := store.Save(context.Background(), "a.jpg", failingReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiskImageStore_SaveCancelled(t *testing.T) {
	store := NewDiskImageStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, "a.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"photo.JPG":                    ".jpg",
		"../../etc/passwd":             "",
		`C:\Users\me\pic.webp`:         ".webp",
		"archive.tar.gz":               ".gz",
		"noext":                        "",
		"weird.ex$e":                   "",
		"x.averyveryverylongextension": "",
	}
	for in, want := range cases {
		assert.Equal(t, want, extension(in), in)
	}
}
