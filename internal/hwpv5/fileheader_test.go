package hwpv5

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gohwp/hwpdoc/internal/model"
)

func TestEncodeReadFileHeaderRoundTrip(t *testing.T) {
	h := model.Header{
		Version: model.Version{Major: 5, Minor: 1, Micro: 2, Build: 3},
		Flags: model.HeaderFlags{
			Compressed: true,
			Password:   false,
			Distribute: true,
		},
		RawSecondFlags: 0xABCD,
	}

	buf := encodeFileHeader(h)
	require.Len(t, buf, 256)

	got, err := readFileHeader(bytes.NewReader(buf))
	require.NoError(t, err)

	assert.Equal(t, signatureText, got.Signature)
	assert.Equal(t, byte(5), got.Version.Major)
	assert.Equal(t, byte(1), got.Version.Minor)
	assert.Equal(t, byte(2), got.Version.Patch)
	assert.Equal(t, byte(3), got.Version.Rev)
	assert.True(t, got.Properties.Compressed())
	assert.False(t, got.Properties.Encrypted())
	assert.Equal(t, uint32(0xABCD), got.SecondFlags)
}

func TestReadFileHeaderRejectsBadSignature(t *testing.T) {
	buf := make([]byte, 256)
	copy(buf, []byte("not an hwp file"))

	_, err := readFileHeader(bytes.NewReader(buf))
	assert.Error(t, err)
}

func TestSetFlagBitPreservesOtherBits(t *testing.T) {
	word := uint32(0xFF00)
	word = setFlagBit(word, 0, true)
	assert.Equal(t, uint32(0xFF01), word)
	word = setFlagBit(word, 0, false)
	assert.Equal(t, uint32(0xFF00), word)
}
