package hwpv5

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSummaryInfoStream hand-assembles a minimal MS-OLEPS PropertySetStream
// carrying the given id -> string properties as VT_LPWSTR values, mirroring
// the layout decodePropertySet/decodeStringProperty expect.
func buildSummaryInfoStream(t *testing.T, props map[uint32]string) []byte {
	t.Helper()

	const headerLen = 28
	header := make([]byte, headerLen+16+4) // up through Offset0
	offset0 := uint32(len(header))
	binary.LittleEndian.PutUint32(header[headerLen+16:headerLen+20], offset0)

	var body bytes.Buffer
	numProps := uint32(len(props))
	body.Write(make([]byte, 8)) // Size + NumProperties placeholder

	ids := make([]uint32, 0, len(props))
	for id := range props {
		ids = append(ids, id)
	}

	pairsLen := len(ids) * 8
	valuesStart := 8 + pairsLen

	var pairs bytes.Buffer
	var values bytes.Buffer
	cursor := valuesStart
	for _, id := range ids {
		s := props[id]
		units := utf16.Encode([]rune(s))
		units = append(units, 0) // NUL terminator

		var pair [8]byte
		binary.LittleEndian.PutUint32(pair[0:4], id)
		binary.LittleEndian.PutUint32(pair[4:8], uint32(cursor))
		pairs.Write(pair[:])

		var valHeader [8]byte
		binary.LittleEndian.PutUint32(valHeader[0:4], vtLPWSTR)
		binary.LittleEndian.PutUint32(valHeader[4:8], uint32(len(units)))
		values.Write(valHeader[:])
		for _, u := range units {
			var b [2]byte
			binary.LittleEndian.PutUint16(b[:], u)
			values.Write(b[:])
		}
		cursor += 8 + len(units)*2
	}

	binary.LittleEndian.PutUint32(body.Bytes()[4:8], numProps)
	body.Write(pairs.Bytes())
	body.Write(values.Bytes())

	return append(header, body.Bytes()...)
}

func TestDecodeSummaryInfoExtractsFields(t *testing.T) {
	data := buildSummaryInfoStream(t, map[uint32]string{
		pidsiTitle:  "월간 보고서",
		pidsiAuthor: "홍길동",
	})

	info := DecodeSummaryInfo(data)
	require.NotNil(t, info)
	assert.Equal(t, "월간 보고서", info.Title)
	assert.Equal(t, "홍길동", info.Author)
}

func TestDecodeSummaryInfoMalformedStreamIsSwallowed(t *testing.T) {
	info := DecodeSummaryInfo([]byte{0x01, 0x02})
	require.NotNil(t, info)
	assert.Equal(t, "", info.Title)
}
