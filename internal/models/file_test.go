package models

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, f SelectedFile) string {
	t.Helper()
	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestFileFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Scan.PDF")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))

	f, err := FileFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "Scan.PDF", f.Name)
	assert.Equal(t, "application/pdf", f.MimeType)
	assert.Equal(t, int64(8), f.Size)
	assert.Equal(t, ".pdf", f.Ext())
	assert.Equal(t, "%PDF-1.4", readAll(t, f))

	_, err = FileFromPath(dir)
	assert.Error(t, err)
	_, err = FileFromPath(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestFileFromBytes(t *testing.T) {
	data := []byte("hello")
	f := FileFromBytes("note.bin", "", data)
	data[0] = 'J'

	assert.Equal(t, "hello", readAll(t, f))
	assert.Equal(t, int64(5), f.Size)
	assert.NotEmpty(t, f.MimeType)

	img := FileFromBytes("a.png", "", nil)
	assert.Equal(t, "image/png", img.MimeType)

	explicit := FileFromBytes("a", "image/jpeg", nil)
	assert.Equal(t, "image/jpeg", explicit.MimeType)
}

func TestZeroFileCannotOpen(t *testing.T) {
	_, err := SelectedFile{Name: "x"}.Open()
	assert.Error(t, err)
}

func TestRequestStateClone(t *testing.T) {
	text := "hi"
	orig := RequestState{Phase: Succeeded, Result: &AnalysisResult{Text: &text, Suggestions: []string{"a"}}}

	cp := orig.Clone()
	*cp.Result.Text = "changed"
	cp.Result.Suggestions[0] = "b"

	assert.Equal(t, "hi", *orig.Result.Text)
	assert.Equal(t, "a", orig.Result.Suggestions[0])
	assert.False(t, cp.Loading())
	assert.True(t, RequestState{Phase: Submitting}.Loading())
	assert.Equal(t, "failed", Failed.String())
}

func TestNoticeBlocking(t *testing.T) {
	assert.True(t, Notice{Kind: NoticeNoFileSelected}.Blocking())
	assert.True(t, Notice{Kind: NoticeAnalysisFailed}.Blocking())
	assert.False(t, Notice{Kind: NoticeBusy}.Blocking())
	assert.False(t, Notice{Kind: NoticeInfo}.Blocking())
}
