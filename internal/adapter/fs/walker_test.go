package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWalker_IncludesAndExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "docs", "b.md"), "b")
	writeFile(t, filepath.Join(root, "docs", "c.go"), "c")
	writeFile(t, filepath.Join(root, "vendor", "d.txt"), "d")

	w := NewWalker([]string{"**/*.txt", "**/*.md"}, []string{"vendor/**"})
	files, err := w.Walk(root)
	require.NoError(t, err)

	var got []string
	for _, f := range files {
		rel, err := filepath.Rel(root, f.Path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{"a.txt", "docs/b.md"}, got)
}

func TestWalker_DefaultIncludesEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x.bin"), "x")

	files, err := NewWalker(nil, nil).Walk(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, int64(1), files[0].Size)
}

func TestReadFile(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		expected string
	}{
		{"plain", []byte("Hello world."), "Hello world."},
		{"utf8 bom", []byte("\xef\xbb\xbfHello"), "Hello"},
		{"utf16le bom", []byte{0xff, 0xfe, 'H', 0, 'i', 0, '.', 0}, "Hi."},
		{"utf16be bom", []byte{0xfe, 0xff, 0, 'H', 0, 'i'}, "Hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "doc.txt")
			writeFile(t, path, string(tt.content))

			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReadFile_RejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin.txt")
	writeFile(t, path, string([]byte{0xc3, 0x28, 0x00, 0x9f}))

	_, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrNotText)
}
