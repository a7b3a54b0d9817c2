package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10, 'J', 'F', 'I', 'F', 0}
	gifHeader  = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")
)

func TestDetectExtension(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png", pngHeader, ".png"},
		{"jpeg", jpegHeader, ".jpg"},
		{"gif", gifHeader, ".gif"},
		{"unknown bytes", []byte("not an image at all"), ".jpg"},
		{"empty", nil, ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectExtension(tt.data))
		})
	}
}

func TestImageFileName(t *testing.T) {
	assert.Equal(t, "SKU1_7.png", ImageFileName("SKU1", "", 7, ".png"))
	assert.Equal(t, "SKU1_RED_7.jpg", ImageFileName("SKU1", "RED", 7, ".jpg"))
	assert.Equal(t, "a-b_c-d_1.jpg", ImageFileName("a/b", `c\d`, 1, ".jpg"))
	assert.Equal(t, "-x_2.jpg", ImageFileName("..x", "", 2, ".jpg"))
}

func TestSanitizeName(t *testing.T) {
	for _, bad := range []string{"", "../x.jpg", "a/b.jpg", `a\b.jpg`, "/etc/passwd", ".."} {
		_, err := SanitizeName(bad)
		assert.Error(t, err, "name %q", bad)
	}

	name, err := SanitizeName("SKU1_1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "SKU1_1.jpg", name)
}

func TestDiskStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	t.Run("write then exists", func(t *testing.T) {
		path, err := store.Write("SKU1_1.png", pngHeader)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "SKU1_1.png"), path)
		assert.True(t, store.Exists(path))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, got)

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects traversal", func(t *testing.T) {
		_, err := store.Write("../escape.jpg", jpegHeader)
		assert.Error(t, err)
		_, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "escape.jpg"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("exists is false for missing, empty and directories", func(t *testing.T) {
		assert.False(t, store.Exists(""))
		assert.False(t, store.Exists(filepath.Join(dir, "nope.jpg")))
		assert.False(t, store.Exists(dir))
	})
}
