package hwpv5

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/gohwp/hwpdoc/internal/herror"
)

// inflate reverses a raw DEFLATE stream (no zlib/gzip wrapper), as used for
// every compressed stream other than FileHeader.
func inflate(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, herror.Wrap(herror.KindIOError, "inflate stream", err)
	}
	return out, nil
}

// deflate produces a raw DEFLATE stream at the library's default
// compression level, matching what a conformant HWP reader expects for a
// stream whose FileHeader declares the compressed flag.
func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, herror.Wrap(herror.KindIOError, "create deflate writer", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, herror.Wrap(herror.KindIOError, "deflate stream", err)
	}
	if err := w.Close(); err != nil {
		return nil, herror.Wrap(herror.KindIOError, "close deflate writer", err)
	}
	return buf.Bytes(), nil
}
