package hwpv5

import (
	"bytes"
	"crypto/aes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMsvcRandIsDeterministic(t *testing.T) {
	a := &msvcRand{state: 12345}
	b := &msvcRand{state: 12345}
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.rand(), b.rand())
	}
}

func TestDeriveKeyDeterministicAndKeyLength(t *testing.T) {
	distData := make([]byte, 256)
	for i := range distData {
		distData[i] = byte(i)
	}

	k1, err := deriveKey(distData)
	require.NoError(t, err)
	k2, err := deriveKey(distData)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 16)
}

func TestDeriveKeyRejectsWrongSize(t *testing.T) {
	_, err := deriveKey(make([]byte, 100))
	assert.Error(t, err)
}

func ecbEncrypt(key, plaintext []byte) []byte {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}
	out := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i += 16 {
		block.Encrypt(out[i:i+16], plaintext[i:i+16])
	}
	return out
}

func TestCryptoReaderDecryptsECBStream(t *testing.T) {
	key := []byte("0123456789abcdef")
	plaintext := bytes.Repeat([]byte("0123456789abcdef"), 3)
	require.Equal(t, 0, len(plaintext)%16)

	ciphertext := ecbEncrypt(key, plaintext)

	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	cr := &cryptoReader{r: bytes.NewReader(ciphertext), block: block}

	out, err := io.ReadAll(cr)
	require.NoError(t, err)
	assert.Equal(t, plaintext, out)
}

func TestCryptoReaderRejectsUnalignedStream(t *testing.T) {
	key := []byte("0123456789abcdef")
	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	cr := &cryptoReader{r: bytes.NewReader(make([]byte, 10)), block: block}
	_, err = io.ReadAll(cr)
	assert.Error(t, err)
}
