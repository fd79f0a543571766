package hwpv5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	records := []Record{
		{Tag: recTagParaHeader, Level: 0, Payload: []byte{1, 2, 3, 4}},
		{Tag: recTagParaText, Level: 1, Payload: []byte("hello")},
		{Tag: recTagParaCharShape, Level: 1, Payload: make([]byte, 8)},
	}

	encoded := EncodeRecords(records)
	decoded, err := DecodeRecords(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(records))

	for i, r := range records {
		assert.Equal(t, r.Tag, decoded[i].Tag)
		assert.Equal(t, r.Level, decoded[i].Level)
		assert.Equal(t, r.Payload, decoded[i].Payload)
	}
}

func TestRecordExtendedSizeBoundary(t *testing.T) {
	// A payload of exactly extendedSizeMarker (0xFFF) bytes must round-trip
	// through the extended-size word, since the bare 12-bit size field
	// can't distinguish 0xFFF from the sentinel on decode.
	payload := make([]byte, extendedSizeMarker)
	for i := range payload {
		payload[i] = byte(i)
	}
	rec := Record{Tag: recTagParaText, Level: 1, Payload: payload}

	encoded := EncodeRecords([]Record{rec})
	decoded, err := DecodeRecords(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, payload, decoded[0].Payload)
}

func TestRecordLargePayload(t *testing.T) {
	payload := make([]byte, 70000)
	for i := range payload {
		payload[i] = byte(i % 256)
	}
	rec := Record{Tag: recTagTable, Level: 2, Payload: payload}

	encoded := EncodeRecords([]Record{rec})
	decoded, err := DecodeRecords(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, payload, decoded[0].Payload)
}

func TestDecodeRecordsTruncatedPayloadFails(t *testing.T) {
	encoded := EncodeRecords([]Record{{Tag: recTagParaHeader, Level: 0, Payload: []byte("0123456789")}})
	_, err := DecodeRecords(encoded[:len(encoded)-3])
	assert.Error(t, err)
}
