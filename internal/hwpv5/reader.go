package hwpv5

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/gohwp/hwpdoc/internal/cfb"
	"github.com/gohwp/hwpdoc/internal/herror"
)

const hwptagDistributeDocData = recTagBegin + 0x0c

// distPrologueSize is the byte length of the distribution record that
// prefixes an encrypted document's DocInfo stream: a 4-byte record header
// (tag 0x1C, size 256) plus its 256-byte payload.
const distPrologueSize = 4 + 256

// Reader wraps an open HWP document's CFB container.
type Reader struct {
	cfb *cfb.Reader

	Header    FileHeader
	HeaderRaw []byte

	// docInfoBody is DocInfo fully inflated and, for a distribution
	// document, already past its 260-byte distribution prologue.
	docInfoBody []byte

	// distBlock is the AES-128 cipher derived once from DocInfo's
	// distribution prologue. It is nil for non-distribution documents and
	// reused to decrypt every section stream (spec.md §4.3/§4.4: one key
	// per document, not one per section).
	distBlock cipher.Block
}

// OpenReader opens an HWP 5.0 file and returns a Reader. It validates the
// file-header signature, rejects password-protected documents, and — for a
// distribution document — derives its AES key once from DocInfo. It does
// not itself decode DocInfo's arenas or any section; callers that need the
// full model.Document should call ReadDocument instead.
func OpenReader(ra io.ReaderAt) (*Reader, error) {
	r := &Reader{cfb: cfbReaderFor(ra)}

	raw, err := r.cfb.ReadStream("FileHeader")
	if err != nil {
		return nil, fmt.Errorf("failed to open FileHeader: %w", err)
	}
	r.HeaderRaw = raw

	r.Header, err = readFileHeader(bytes.NewReader(raw))
	if err != nil {
		return nil, herror.Wrap(herror.KindNotHWPFile, "read FileHeader", err)
	}
	if r.Header.Properties.Encrypted() {
		return nil, herror.New(herror.KindUnsupportedVersion, "password encrypted documents are not supported")
	}

	docInfoRaw, err := r.cfb.ReadStream("DocInfo")
	if err != nil {
		return nil, fmt.Errorf("failed to open DocInfo: %w", err)
	}

	docInfoPlain := docInfoRaw
	if r.Header.Properties.Compressed() {
		if docInfoPlain, err = inflate(docInfoRaw); err != nil {
			return nil, err
		}
	}

	if r.IsDistributionDoc() {
		block, body, err := splitDistributionPrologue(docInfoPlain)
		if err != nil {
			return nil, err
		}
		r.distBlock = block
		docInfoPlain = body
	}
	r.docInfoBody = docInfoPlain

	return r, nil
}

// splitDistributionPrologue reads the 260-byte distribution record off the
// front of an already-inflated DocInfo stream (spec.md §3/§4.3: the record
// lives in DocInfo, not in each section) and derives the single AES-128 key
// every stream in the document reuses.
func splitDistributionPrologue(data []byte) (cipher.Block, []byte, error) {
	if len(data) < distPrologueSize {
		return nil, nil, herror.New(herror.KindParseError, "DocInfo too short to contain a distribution record")
	}
	header := binary.LittleEndian.Uint32(data[0:4])
	tag := uint16(header & 0x3FF)
	size := header >> 20
	if tag != hwptagDistributeDocData || size != 256 {
		return nil, nil, herror.Newf(herror.KindParseError, "invalid distribution record (tag=0x%x, size=%d)", tag, size)
	}

	key, err := deriveKey(data[4:distPrologueSize])
	if err != nil {
		return nil, nil, herror.Wrap(herror.KindCryptoError, "derive distribution key", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, herror.Wrap(herror.KindCryptoError, "create AES cipher", err)
	}
	return block, data[distPrologueSize:], nil
}

// cfbReaderFor adapts the caller's io.ReaderAt into a cfb.Reader. *os.File
// is reopened by path (so Reader.Close releases the handle); any other
// io.ReaderAt is assumed to already be backed by an in-memory buffer
// (bytes.Reader or similar), read out via its Size() method, matching every
// concrete type this package is actually called with (os.File, bytes.Reader).
func cfbReaderFor(ra io.ReaderAt) *cfb.Reader {
	if f, ok := ra.(*os.File); ok {
		if r, err := cfb.OpenPath(f.Name()); err == nil {
			return r
		}
	}
	if sz, ok := ra.(interface{ Size() int64 }); ok {
		buf := make([]byte, sz.Size())
		if _, err := ra.ReadAt(buf, 0); err == nil || err == io.EOF {
			return cfb.OpenMemory(buf)
		}
	}
	return cfb.OpenMemory(nil)
}

// Close releases any file handle the underlying CFB reader owns.
func (r *Reader) Close() error {
	return r.cfb.Close()
}

// IsDistributionDoc returns true if this is a distribution document (uses ViewText).
func (r *Reader) IsDistributionDoc() bool {
	return r.Header.Properties.Raw&0x04 != 0
}

// DocInfoBytes returns the DocInfo record stream, inflated and, for a
// distribution document, past its distribution prologue — ready for
// DecodeDocInfo either way.
func (r *Reader) DocInfoBytes() ([]byte, error) {
	return r.docInfoBody, nil
}

// OpenSection opens a section stream by index, decrypting it with the
// document's single distribution key (derived once in OpenReader) before
// inflating, and decompressing as needed.
func (r *Reader) OpenSection(index int) (io.ReadCloser, error) {
	streamName := fmt.Sprintf("BodyText/Section%d", index)
	if r.IsDistributionDoc() {
		streamName = fmt.Sprintf("ViewText/Section%d", index)
	}

	raw, err := r.cfb.ReadStream(streamName)
	if err != nil {
		return nil, err
	}

	var current io.Reader = bytes.NewReader(raw)
	if r.IsDistributionDoc() {
		current = &cryptoReader{r: current, block: r.distBlock}
	}

	if r.Header.Properties.Compressed() {
		data, err := io.ReadAll(current)
		if err != nil {
			return nil, herror.Wrap(herror.KindIOError, "read section stream", err)
		}
		inflated, err := inflate(data)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(inflated)), nil
	}
	return io.NopCloser(current), nil
}

// StreamBytes reads an optional stream's bytes, returning ok=false (never an
// error) when absent, per spec.md §7's rule that optional streams swallow
// their errors.
func (r *Reader) StreamBytes(name string) (data []byte, ok bool) {
	raw, err := r.cfb.ReadStream(name)
	if err != nil {
		return nil, false
	}
	return raw, true
}
