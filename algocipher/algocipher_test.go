package algocipher_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafalsk/botan/algocipher"
	"github.com/rafalsk/botan/algoreg"
)

func roundTrip(t *testing.T, name string) {
	t.Helper()

	c, err := algocipher.New(name)
	require.NoError(t, err)

	key := make([]byte, c.KeySize())
	_, err = rand.Read(key)
	require.NoError(t, err)

	aead, err := c.New(key)
	require.NoError(t, err)

	nonce := make([]byte, aead.NonceSize())
	_, err = rand.Read(nonce)
	require.NoError(t, err)

	plaintext := []byte("attack at dawn")
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	assert.False(t, bytes.Contains(sealed, plaintext))

	opened, err := aead.Open(nil, nonce, sealed, nil)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)

	sealed[0] ^= 0x01
	_, err = aead.Open(nil, nonce, sealed, nil)
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{
		"AES-GCM(128)",
		"AES-GCM(192)",
		"AES-GCM",
		"ChaCha20-Poly1305",
		"XChaCha20-Poly1305",
	} {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, name)
		})
	}
}

func TestKeySizes(t *testing.T) {
	c, err := algocipher.New("AES-GCM")
	require.NoError(t, err)
	assert.Equal(t, "AES-GCM(256)", c.Name())
	assert.Equal(t, 32, c.KeySize())

	_, err = c.New(make([]byte, 16))
	assert.Error(t, err)

	c, err = algocipher.New("AES-GCM(128)")
	require.NoError(t, err)
	assert.Equal(t, 16, c.KeySize())

	c, err = algocipher.New("ChaCha20-Poly1305")
	require.NoError(t, err)
	assert.Equal(t, 32, c.KeySize())
	_, err = c.New(make([]byte, 31))
	assert.Error(t, err)
}

func TestInvalidKeySize(t *testing.T) {
	_, err := algocipher.New("AES-GCM(100)")
	require.Error(t, err)

	var ce *algoreg.ConstructionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "AES-GCM(100)", ce.Spec)
}
