// Package algohash defines the hash algorithm family and registers the
// builtin software implementations.
package algohash

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/rafalsk/botan/algoreg"
)

// Hash is a digest algorithm: a named factory of streaming digest states.
// Instances returned by New are independent and not safe for concurrent use
// with each other's callers; the Hash itself is stateless.
type Hash interface {
	// Name returns the canonical algorithm name, e.g. "SHA-3(384)".
	Name() string

	// Size returns the digest length in bytes.
	Size() int

	// New returns a fresh digest state.
	New() hash.Hash
}

// Registry returns the global registry of the Hash family.
func Registry() *algoreg.Registry[Hash] {
	return algoreg.Global[Hash]()
}

// New constructs a Hash from its textual spec with no provider preference.
func New(name string) (Hash, error) {
	return algoreg.MakeNamed[Hash](name, "")
}

// NewWithProvider constructs a Hash from its textual spec via an exact
// provider.
func NewWithProvider(name, provider string) (Hash, error) {
	return algoreg.MakeNamed[Hash](name, provider)
}

// fnHash is a Hash backed by a plain constructor function.
type fnHash struct {
	name string
	size int
	fn   func() hash.Hash
}

func (h *fnHash) Name() string   { return h.name }
func (h *fnHash) Size() int      { return h.size }
func (h *fnHash) New() hash.Hash { return h.fn() }

func simple(name string, size int, fn func() hash.Hash) algoreg.Maker[Hash] {
	return algoreg.NoArgs(func() Hash {
		return &fnHash{name: name, size: size, fn: fn}
	})
}

// SHA-2 family and SHA-1.
var (
	_ = algoreg.NewRegistration("SHA-1", simple("SHA-1", sha1.Size, sha1.New))
	_ = algoreg.NewRegistration("SHA-224", simple("SHA-224", sha256.Size224, sha256.New224))
	_ = algoreg.NewRegistration("SHA-256", simple("SHA-256", sha256.Size, sha256.New))
	_ = algoreg.NewRegistration("SHA-384", simple("SHA-384", sha512.Size384, sha512.New384))
	_ = algoreg.NewRegistration("SHA-512", simple("SHA-512", sha512.Size, sha512.New))
)

// SHA-3 takes its output size in bits as argument 0, e.g. "SHA-3(384)".
var _ = algoreg.NewRegistration("SHA-3",
	algoreg.OneLen(512, func(bits int) (Hash, error) {
		var fn func() hash.Hash
		switch bits {
		case 224:
			fn = sha3.New224
		case 256:
			fn = sha3.New256
		case 384:
			fn = sha3.New384
		case 512:
			fn = sha3.New512
		default:
			return nil, errors.Errorf("invalid SHA-3 output size: %d", bits)
		}
		return &fnHash{
			name: fmt.Sprintf("SHA-3(%d)", bits),
			size: bits / 8,
			fn:   fn,
		}, nil
	}))

// BLAKE2b takes its output size in bits as argument 0, up to 512.
var _ = algoreg.NewRegistration("BLAKE2b",
	algoreg.OneLen(512, func(bits int) (Hash, error) {
		if bits <= 0 || bits > 512 || bits%8 != 0 {
			return nil, errors.Errorf("invalid BLAKE2b output size: %d", bits)
		}
		size := bits / 8
		if _, err := blake2b.New(size, nil); err != nil {
			return nil, errors.WithStack(err)
		}
		return &fnHash{
			name: fmt.Sprintf("BLAKE2b(%d)", bits),
			size: size,
			fn: func() hash.Hash {
				h, _ := blake2b.New(size, nil)
				return h
			},
		}, nil
	}))

// SHAKE-128 and SHAKE-256 take their output size in bits as argument 0.
var (
	_ = algoreg.NewRegistration("SHAKE-128",
		algoreg.OneLen(128, shakeCtor("SHAKE-128", 168, sha3.NewShake128)))
	_ = algoreg.NewRegistration("SHAKE-256",
		algoreg.OneLen(256, shakeCtor("SHAKE-256", 136, sha3.NewShake256)))
)

func shakeCtor(base string, block int, fn func() sha3.ShakeHash) func(int) (Hash, error) {
	return func(bits int) (Hash, error) {
		if bits <= 0 || bits%8 != 0 {
			return nil, errors.Errorf("invalid %s output size: %d", base, bits)
		}
		return &shakeHash{
			name:  fmt.Sprintf("%s(%d)", base, bits),
			size:  bits / 8,
			block: block,
			fn:    fn,
		}, nil
	}
}
