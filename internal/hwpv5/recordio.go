package hwpv5

import (
	"encoding/binary"

	"github.com/gohwp/hwpdoc/internal/herror"
)

// extendedSizeMarker is the 12-bit size-field sentinel (spec: "if size ==
// 0xFFF, the true size follows as a 32-bit little-endian word"). A payload
// whose length is itself 0xFFF cannot be told apart from the sentinel, so
// the encoder below extends at >= 0xFFF, not strictly > 0xFFF.
const extendedSizeMarker = 0xFFF

// Record is the generic (tag, level, payload) triple DocInfoCodec and
// BodyTextCodec build on top of; it round-trips at the byte level
// independent of whether any concrete decoder above recognizes the tag.
type Record struct {
	Tag     uint16
	Level   uint16
	Payload []byte
}

// EncodeRecords packs a forest of records (already in pre-order) into the
// on-wire byte stream described in spec.md §4.2/§6.
func EncodeRecords(records []Record) []byte {
	var out []byte
	for _, r := range records {
		out = append(out, encodeRecord(r)...)
	}
	return out
}

func encodeRecord(r Record) []byte {
	size := len(r.Payload)

	header := uint32(r.Tag&0x3FF) | uint32(r.Level&0x3FF)<<10
	var buf []byte
	if size >= extendedSizeMarker {
		header |= extendedSizeMarker << 20
		buf = make([]byte, 8)
		binary.LittleEndian.PutUint32(buf[0:4], header)
		binary.LittleEndian.PutUint32(buf[4:8], uint32(size))
	} else {
		header |= uint32(size) << 20
		buf = make([]byte, 4)
		binary.LittleEndian.PutUint32(buf[0:4], header)
	}
	return append(buf, r.Payload...)
}

// DecodeRecords walks a byte buffer into the flat sequence of records it
// encodes, with no interpretation of tag semantics or level-derived
// nesting — the generic counterpart to RecScanner used where callers need
// the raw (tag, level, payload) triples rather than typed Rec values (e.g.
// DocInfoCodec's opaque pass-through).
func DecodeRecords(data []byte) ([]Record, error) {
	var records []Record
	for len(data) > 0 {
		if len(data) < 4 {
			return nil, herror.New(herror.KindParseError, "truncated record header")
		}
		header := binary.LittleEndian.Uint32(data[0:4])
		tag := uint16(header & 0x3FF)
		level := uint16((header >> 10) & 0x3FF)
		size := (header >> 20) & 0xFFF
		data = data[4:]

		if size == extendedSizeMarker {
			if len(data) < 4 {
				return nil, herror.New(herror.KindParseError, "truncated extended record size")
			}
			size = binary.LittleEndian.Uint32(data[0:4])
			data = data[4:]
		}

		if uint64(size) > uint64(len(data)) {
			return nil, herror.New(herror.KindParseError, "record payload runs past end of stream")
		}

		payload := make([]byte, size)
		copy(payload, data[:size])
		data = data[size:]

		records = append(records, Record{Tag: tag, Level: level, Payload: payload})
	}
	return records, nil
}
