package cfb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AddStream("FileHeader", []byte("plain-32-byte-stream-of-stuff!!")))
	require.NoError(t, w.AddStream("DocInfo", []byte("docinfo-bytes")))
	require.NoError(t, w.AddStream("BodyText/Section0", []byte("section zero text")))
	require.NoError(t, w.AddStream("BodyText/Section1", []byte("section one text")))

	data, err := w.Finalize()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	r := OpenMemory(data)
	defer r.Close()

	got, err := r.ReadStream("FileHeader")
	require.NoError(t, err)
	assert.Equal(t, "plain-32-byte-stream-of-stuff!!", string(got))

	got, err = r.ReadStream("DocInfo")
	require.NoError(t, err)
	assert.Equal(t, "docinfo-bytes", string(got))

	got, err = r.ReadStream("BodyText/Section0")
	require.NoError(t, err)
	assert.Equal(t, "section zero text", string(got))

	got, err = r.ReadStream("BodyText/Section1")
	require.NoError(t, err)
	assert.Equal(t, "section one text", string(got))

	assert.True(t, r.StreamExists("FileHeader"))
	assert.False(t, r.StreamExists("NoSuchStream"))
}

func TestWriterDeterministic(t *testing.T) {
	build := func() []byte {
		w := NewWriter()
		require.NoError(t, w.AddStream("FileHeader", []byte("header")))
		require.NoError(t, w.AddStream("DocInfo", []byte("info")))
		data, err := w.Finalize()
		require.NoError(t, err)
		return data
	}

	a := build()
	b := build()
	assert.Equal(t, a, b)
}

func TestWriterMiniStreamRoundTrip(t *testing.T) {
	// Below the 4096-byte mini-stream cutoff, so this stream must round-trip
	// through the mini-FAT allocation path, not the regular FAT chain.
	w := NewWriter()
	small := []byte("a short stream well under the mini-stream cutoff")
	require.NoError(t, w.AddStream("FileHeader", small))

	data, err := w.Finalize()
	require.NoError(t, err)

	r := OpenMemory(data)
	defer r.Close()

	got, err := r.ReadStream("FileHeader")
	require.NoError(t, err)
	assert.Equal(t, small, got)
}

func TestWriterRegularStreamRoundTrip(t *testing.T) {
	// Above the 4096-byte cutoff, exercising the regular FAT chain instead
	// of the mini-stream.
	big := make([]byte, 10000)
	for i := range big {
		big[i] = byte(i % 251)
	}

	w := NewWriter()
	require.NoError(t, w.AddStream("BodyText/Section0", big))

	data, err := w.Finalize()
	require.NoError(t, err)

	r := OpenMemory(data)
	defer r.Close()

	got, err := r.ReadStream("BodyText/Section0")
	require.NoError(t, err)
	assert.Equal(t, big, got)
}
