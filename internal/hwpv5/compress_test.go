package hwpv5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflateInflateRoundTrip(t *testing.T) {
	original := []byte("repeated repeated repeated text compresses well, repeated repeated")

	compressed, err := deflate(original)
	require.NoError(t, err)
	assert.NotEmpty(t, compressed)

	out, err := inflate(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, out)
}

func TestInflateRejectsGarbage(t *testing.T) {
	_, err := inflate([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	assert.Error(t, err)
}
