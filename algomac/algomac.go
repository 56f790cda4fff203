// Package algomac defines the message authentication code family.
package algomac

import (
	"crypto/hmac"
	"hash"

	"github.com/rafalsk/botan/algohash"
	"github.com/rafalsk/botan/algoreg"
)

// MAC is a message authentication algorithm: a named factory of keyed
// digest states.
type MAC interface {
	// Name returns the canonical algorithm name, e.g. "HMAC(SHA-256)".
	Name() string

	// Size returns the tag length in bytes.
	Size() int

	// New returns a fresh keyed state.
	New(key []byte) (hash.Hash, error)
}

// Registry returns the global registry of the MAC family.
func Registry() *algoreg.Registry[MAC] {
	return algoreg.Global[MAC]()
}

// New constructs a MAC from its textual spec with no provider preference.
func New(name string) (MAC, error) {
	return algoreg.MakeNamed[MAC](name, "")
}

// HMAC wraps any registered hash, resolved through the Hash registry, so
// "HMAC(SHA-3(384))" works as soon as "SHA-3" is registered.
var _ = algoreg.NewRegistration("HMAC",
	algoreg.Dependent(func(h algohash.Hash) (MAC, error) {
		return &hmacMAC{hash: h}, nil
	}))

type hmacMAC struct {
	hash algohash.Hash
}

func (m *hmacMAC) Name() string {
	return "HMAC(" + m.hash.Name() + ")"
}

func (m *hmacMAC) Size() int {
	return m.hash.Size()
}

func (m *hmacMAC) New(key []byte) (hash.Hash, error) {
	return hmac.New(m.hash.New, key), nil
}
