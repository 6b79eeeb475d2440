package services

import (
	"bytes"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// Source is a dropped or configured file. MediaType is what the file
// declares about itself, not what its bytes contain.
type Source interface {
	Name() string
	MediaType() string
	Open() (io.ReadCloser, error)
}

// URISource adapts a Fyne URI.
type URISource struct {
	URI fyne.URI
}

func (s URISource) Name() string {
	return s.URI.Name()
}

func (s URISource) MediaType() string {
	return s.URI.MimeType()
}

func (s URISource) Open() (io.ReadCloser, error) {
	return storage.Reader(s.URI)
}

// FileSource is a Source for a local path.
func FileSource(path string) URISource {
	return URISource{URI: storage.NewFileURI(path)}
}

// MemorySource is a Source over bytes already in memory.
type MemorySource struct {
	SourceName string
	Type       string
	Data       []byte
}

func (s MemorySource) Name() string {
	return s.SourceName
}

func (s MemorySource) MediaType() string {
	return s.Type
}

func (s MemorySource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.Data)), nil
}
