// Package cfb provides read and write access to the Microsoft Compound File
// Binary container that legacy HWP documents are stored in: named streams
// nested under named storages ("directories"), enumerated and fetched by a
// fully-qualified, slash-joined path such as "BodyText/Section0".
package cfb

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gohwp/hwpdoc/internal/herror"
	"github.com/richardlehane/mscfb"
)

// Reader enumerates and reads streams out of a CFB container. It is not
// safe for concurrent use; callers decoding independent documents in
// parallel should open one Reader per document.
type Reader struct {
	ra     io.ReaderAt
	closer io.Closer // non-nil only when opened from a path
}

// OpenPath opens a CFB file on disk. The returned Reader owns the file
// handle; call Close when done with it.
func OpenPath(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, herror.Wrap(herror.KindIOError, "open CFB file", err)
	}
	return &Reader{ra: f, closer: f}, nil
}

// OpenMemory opens a CFB container already resident in memory. No handle is
// held; Close is a no-op.
func OpenMemory(data []byte) *Reader {
	return &Reader{ra: bytes.NewReader(data)}
}

// Close releases the underlying file handle, if any.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// StreamExists reports whether a stream at the given fully-qualified path
// (e.g. "BodyText/Section0") exists.
func (r *Reader) StreamExists(name string) bool {
	doc, err := mscfb.New(r.ra)
	if err != nil {
		return false
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entryPath(entry) == name {
			return true
		}
	}
	return false
}

// ReadStream reads the full contents of a named stream. Names are
// case-sensitive and may contain "/"-separated storage nesting.
func (r *Reader) ReadStream(name string) ([]byte, error) {
	doc, err := mscfb.New(r.ra)
	if err != nil {
		return nil, herror.Wrap(herror.KindIOError, "open CFB container", err)
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entryPath(entry) != name {
			continue
		}
		data, err := io.ReadAll(doc)
		if err != nil {
			return nil, herror.Wrap(herror.KindIOError, fmt.Sprintf("read stream %q", name), err)
		}
		return data, nil
	}
	return nil, herror.Newf(herror.KindStreamNotFound, "stream %q not found", name)
}

func entryPath(entry *mscfb.File) string {
	var full string
	for _, p := range entry.Path {
		full += p + "/"
	}
	return full + entry.Name
}
