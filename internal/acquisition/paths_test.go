package acquisition

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDropped(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{"single path", "/tmp/a.pdf", []string{"/tmp/a.pdf"}},
		{"trailing space", "/tmp/a.pdf ", []string{"/tmp/a.pdf"}},
		{"escaped space", `/tmp/my\ scan.png`, []string{"/tmp/my scan.png"}},
		{"single quoted", `'/tmp/my scan.png'`, []string{"/tmp/my scan.png"}},
		{"double quoted", `"/tmp/my scan.png"`, []string{"/tmp/my scan.png"}},
		{"several", "/tmp/a.pdf /tmp/b.png", []string{"/tmp/a.pdf", "/tmp/b.png"}},
		{"newline separated", "/tmp/a.pdf\n/tmp/b.png\n", []string{"/tmp/a.pdf", "/tmp/b.png"}},
		{"file uri", "file:///tmp/my%20scan.png", []string{"/tmp/my scan.png"}},
		{"empty", "   ", nil},
		{"windows drive path", `C:\Users\me\scan.pdf`, []string{`C:\Users\me\scan.pdf`}},
		{"quoted windows paths", `"C:\My Files\a.png" D:\b.pdf`, []string{`C:\My Files\a.png`, `D:\b.pdf`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDropped(tt.payload)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDroppedWithoutEscapes(t *testing.T) {
	got := parseDropped(`\\server\share\scan.pdf 'x\y.png'`, false)
	assert.Equal(t, []string{`\\server\share\scan.pdf`, `x\y.png`}, got)
}

func TestExpandBrowse(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.png", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.pdf"), 0755))

	t.Run("glob keeps accepted files in order", func(t *testing.T) {
		files, err := ExpandBrowse(filepath.Join(dir, "*"))
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "a.png", files[0].Name)
		assert.Equal(t, "b.pdf", files[1].Name)
	})

	t.Run("literal path", func(t *testing.T) {
		files, err := ExpandBrowse("  " + filepath.Join(dir, "b.pdf") + "  ")
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "application/pdf", files[0].MimeType)
	})

	t.Run("filtered extension", func(t *testing.T) {
		files, err := ExpandBrowse(filepath.Join(dir, "notes.txt"))
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing file", func(t *testing.T) {
		files, err := ExpandBrowse(filepath.Join(dir, "missing.pdf"))
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("literal path with glob metacharacters", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "scan[1].pdf"), []byte("%PDF"), 0644))

		files, err := ExpandBrowse(filepath.Join(dir, "scan[1].pdf"))
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "scan[1].pdf", files[0].Name)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := ExpandBrowse(filepath.Join(dir, "[.pdf"))
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		files, err := ExpandBrowse("")
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
