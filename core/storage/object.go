package storage

import (
	"io"
	"time"
)

// Object describes one entry produced by List. When a listing fails mid-way
// the channel carries a final Object whose Err field is set (a *BackendError)
// before it is closed, mirroring how the MinIO SDK reports listing errors.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
	Err          error
}

// ObjectData is the payload for Put: either a byte stream or a path to a
// local file. Exactly one of the two sources is set; use FromReader or
// FromFile to build one.
type ObjectData struct {
	reader io.Reader
	path   string
}

// FromReader wraps a byte stream as upload data. The reader is consumed once
// by Put and is not rewound.
func FromReader(r io.Reader) ObjectData {
	return ObjectData{reader: r}
}

// FromFile wraps a local file path as upload data. The file is opened by the
// adapter at upload time.
func FromFile(path string) ObjectData {
	return ObjectData{path: path}
}

// Reader reports the stream source, if any.
func (d ObjectData) Reader() (io.Reader, bool) {
	return d.reader, d.reader != nil
}

// Path reports the file source, if any.
func (d ObjectData) Path() (string, bool) {
	return d.path, d.reader == nil && d.path != ""
}
