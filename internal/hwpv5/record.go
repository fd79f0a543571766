package hwpv5

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// recTagBegin is the base BodyText/DocInfo tag id (HWPTAG_BEGIN in the
// published format); docinfo.go's own tag constants are offsets from it too.
const recTagBegin = 0x10

// BodyText record tags DecodeSection actually switches on. The format
// defines many more paragraph/control record types (tables, drawing
// objects, equations, form fields, …) than DocumentModel represents — a
// Section is a flat run of paragraphs, not the original tree of nested
// objects, so every tag this package doesn't name below is still read (to
// keep the stream position correct) but folded into RecOther rather than
// given its own type.
const (
	recTagParaHeader    = recTagBegin + 50
	recTagParaText      = recTagBegin + 51
	recTagParaCharShape = recTagBegin + 52
	recTagParaLineSeg   = recTagBegin + 53
	recTagCtrlHeader    = recTagBegin + 55
	recTagTable         = recTagBegin + 61
)

// recHeader is the (tag, level, size) triple every record shares.
type recHeader struct {
	tag   uint16
	level uint16
	size  uint32
}

// Rec is a decoded BodyText record. Only RecParaHeader/RecParaText/
// RecParaCharShape/RecParaLineSeg/RecCtrlHeader carry decoded fields;
// everything else comes back as RecOther.
type Rec interface {
	Tag() uint16
	Lvl() uint16
	Len() uint32
}

func (h recHeader) Tag() uint16 { return h.tag }
func (h recHeader) Lvl() uint16 { return h.level }
func (h recHeader) Len() uint32 { return h.size }

type (
	// RecParaHeader opens a new paragraph; its payload (paragraph
	// properties, id-mapping indices) is not decoded, so the paragraphs
	// DecodeSection builds carry zero style/shape ids.
	RecParaHeader struct{ recHeader }

	// RecParaText carries the paragraph's UTF-16 text and inline control
	// codes, pre-split into elements by para.go's decoder.
	RecParaText struct {
		recHeader
		Els []ParaTextElement
	}

	// RecParaCharShape and RecParaLineSeg close a paragraph; the format
	// stores per-run char-shape ids and line-breaking metrics in their
	// payloads, neither of which DecodeSection currently surfaces.
	RecParaCharShape struct{ recHeader }
	RecParaLineSeg   struct{ recHeader }

	// RecCtrlHeader introduces a control object (table, drawing object,
	// field, …); DecodeSection only needs its level, to know how many
	// following records belong to it.
	RecCtrlHeader struct{ recHeader }

	// RecOther is every record tag this package does not decode further.
	RecOther struct {
		recHeader
		Payload []byte
	}
)

// RecScanner reads one BodyText record at a time off an io.Reader.
type RecScanner struct {
	r io.Reader
}

func NewRecScanner(r io.Reader) *RecScanner {
	return &RecScanner{r: r}
}

// ScanNext decodes the next record, or returns io.EOF once the stream is
// exhausted cleanly between records.
func (s *RecScanner) ScanNext() (Rec, error) {
	h, err := s.readHeader()
	if err != nil {
		return nil, err
	}

	payload := make([]byte, h.size)
	if _, err := io.ReadFull(s.r, payload); err != nil {
		return nil, fmt.Errorf("read record payload: %w", err)
	}

	switch h.tag {
	case recTagParaHeader:
		return RecParaHeader{h}, nil
	case recTagParaText:
		d := &paraTextDecoder{data: bytes.NewReader(payload)}
		return RecParaText{recHeader: h, Els: d.decodeParaTextElements()}, nil
	case recTagParaCharShape:
		return RecParaCharShape{h}, nil
	case recTagParaLineSeg:
		return RecParaLineSeg{h}, nil
	case recTagCtrlHeader:
		return RecCtrlHeader{h}, nil
	default:
		return RecOther{recHeader: h, Payload: payload}, nil
	}
}

func (s *RecScanner) readHeader() (recHeader, error) {
	var word uint32
	if err := binary.Read(s.r, binary.LittleEndian, &word); err != nil {
		return recHeader{}, err
	}

	h := recHeader{
		tag:   uint16(word & 0x3ff),
		level: uint16((word >> 10) & 0x3ff),
		size:  (word >> 20) & 0xfff,
	}
	if h.size == extendedSizeMarker {
		if err := binary.Read(s.r, binary.LittleEndian, &h.size); err != nil {
			return recHeader{}, fmt.Errorf("read extended record size: %w", err)
		}
	}
	return h, nil
}
