package models

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SelectedFile is an opaque handle to user-chosen content. Values are never
// mutated; a new acquisition replaces the handle wholesale.
type SelectedFile struct {
	Name     string
	MimeType string
	Size     int64
	open     func() (io.ReadCloser, error)
}

// FileFromPath builds a SelectedFile backed by a file on disk. The content is
// read lazily when the file is submitted.
func FileFromPath(path string) (SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return SelectedFile{}, err
	}
	if info.IsDir() {
		return SelectedFile{}, fmt.Errorf("%s is a directory", path)
	}

	return SelectedFile{
		Name:     filepath.Base(path),
		MimeType: detectMimeType(path),
		Size:     info.Size(),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// FileFromBytes builds an in-memory SelectedFile. An empty mimeType is derived
// from the name and, failing that, from the content.
func FileFromBytes(name, mimeType string, data []byte) SelectedFile {
	if mimeType == "" {
		mimeType = mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	buf := append([]byte(nil), data...)
	return SelectedFile{
		Name:     name,
		MimeType: mimeType,
		Size:     int64(len(buf)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(buf)), nil
		},
	}
}

// Open returns a reader over the file content.
func (f SelectedFile) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, fmt.Errorf("file %q has no content", f.Name)
	}
	return f.open()
}

// Ext returns the lower-cased extension of the display name.
func (f SelectedFile) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

func detectMimeType(path string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		return t
	}

	fh, err := os.Open(path)
	if err != nil {
		return "application/octet-stream"
	}
	defer fh.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(fh, head)
	return http.DetectContentType(head[:n])
}
