// Package algocipher defines the AEAD cipher family.
package algocipher

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/rafalsk/botan/algoreg"
)

// AEAD is an authenticated cipher: a named factory of keyed cipher.AEAD
// instances.
type AEAD interface {
	// Name returns the canonical algorithm name, e.g. "AES-GCM(256)".
	Name() string

	// KeySize returns the required key length in bytes.
	KeySize() int

	// New returns a fresh AEAD keyed with key.
	New(key []byte) (cipher.AEAD, error)
}

// Registry returns the global registry of the AEAD family.
func Registry() *algoreg.Registry[AEAD] {
	return algoreg.Global[AEAD]()
}

// New constructs an AEAD from its textual spec with no provider preference.
func New(name string) (AEAD, error) {
	return algoreg.MakeNamed[AEAD](name, "")
}

// AES-GCM takes its key size in bits as argument 0, e.g. "AES-GCM(128)".
var _ = algoreg.NewRegistration("AES-GCM",
	algoreg.OneLen(256, func(bits int) (AEAD, error) {
		switch bits {
		case 128, 192, 256:
		default:
			return nil, errors.Errorf("invalid AES key size: %d", bits)
		}
		return &aesGCM{bits: bits}, nil
	}))

var (
	_ = algoreg.NewRegistration("ChaCha20-Poly1305", algoreg.NoArgs(func() AEAD {
		return &chachaAEAD{
			name:      "ChaCha20-Poly1305",
			nonceSize: chacha20poly1305.NonceSize,
			fn:        chacha20poly1305.New,
		}
	}))
	_ = algoreg.NewRegistration("XChaCha20-Poly1305", algoreg.NoArgs(func() AEAD {
		return &chachaAEAD{
			name:      "XChaCha20-Poly1305",
			nonceSize: chacha20poly1305.NonceSizeX,
			fn:        chacha20poly1305.NewX,
		}
	}))
)

type aesGCM struct {
	bits int
}

func (c *aesGCM) Name() string {
	return fmt.Sprintf("AES-GCM(%d)", c.bits)
}

func (c *aesGCM) KeySize() int {
	return c.bits / 8
}

func (c *aesGCM) New(key []byte) (cipher.AEAD, error) {
	if len(key) != c.KeySize() {
		return nil, errors.Errorf("%s: invalid key length %d", c.Name(), len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return cipher.NewGCM(block)
}

type chachaAEAD struct {
	name      string
	nonceSize int
	fn        func(key []byte) (cipher.AEAD, error)
}

func (c *chachaAEAD) Name() string {
	return c.name
}

func (c *chachaAEAD) KeySize() int {
	return chacha20poly1305.KeySize
}

func (c *chachaAEAD) New(key []byte) (cipher.AEAD, error) {
	if len(key) != c.KeySize() {
		return nil, errors.Errorf("%s: invalid key length %d", c.name, len(key))
	}
	aead, err := c.fn(key)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return aead, nil
}
