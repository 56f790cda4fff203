// Package algokdf defines the key derivation function family.
package algokdf

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	"github.com/rafalsk/botan/algohash"
	"github.com/rafalsk/botan/algoreg"
)

// DefaultPBKDF2Iterations is used when a PBKDF2 spec omits the iteration
// count argument.
const DefaultPBKDF2Iterations = 100000

// KDF derives key material of a requested length from a secret and a salt.
type KDF interface {
	// Name returns the canonical algorithm name, e.g. "HKDF(SHA-256)".
	Name() string

	// Derive returns length bytes derived from secret and salt.
	Derive(length int, secret, salt []byte) ([]byte, error)
}

// Registry returns the global registry of the KDF family.
func Registry() *algoreg.Registry[KDF] {
	return algoreg.Global[KDF]()
}

// New constructs a KDF from its textual spec with no provider preference.
func New(name string) (KDF, error) {
	return algoreg.MakeNamed[KDF](name, "")
}

var _ = algoreg.NewRegistration("HKDF",
	algoreg.Dependent(func(h algohash.Hash) (KDF, error) {
		return &hkdfKDF{hash: h}, nil
	}))

// PBKDF2 takes the underlying hash as argument 0 and an optional iteration
// count as argument 1, e.g. "PBKDF2(SHA-512,200000)". The two-argument shape
// with a nested dependency does not fit the stock adapters, so it carries
// its own maker.
var _ = algoreg.NewRegistration("PBKDF2", makePBKDF2)

func makePBKDF2(spec algoreg.Spec) (KDF, error) {
	arg, err := spec.Arg(0)
	if err != nil {
		return nil, err
	}
	iters, err := spec.IntArg(1, DefaultPBKDF2Iterations)
	if err != nil {
		return nil, err
	}
	if iters <= 0 {
		return nil, errors.Errorf("invalid PBKDF2 iteration count: %d", iters)
	}

	h, err := algoreg.MakeNamed[algohash.Hash](arg, "")
	if err != nil {
		return nil, errors.WithMessagef(err, "dependency %q", arg)
	}
	return &pbkdf2KDF{hash: h, iterations: iters}, nil
}

type hkdfKDF struct {
	hash algohash.Hash
}

func (k *hkdfKDF) Name() string {
	return "HKDF(" + k.hash.Name() + ")"
}

func (k *hkdfKDF) Derive(length int, secret, salt []byte) ([]byte, error) {
	if length <= 0 {
		return nil, errors.Errorf("invalid output length: %d", length)
	}

	out := make([]byte, length)
	_, err := io.ReadFull(hkdf.New(k.hash.New, secret, salt, nil), out)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s: output length %d", k.Name(), length)
	}
	return out, nil
}

type pbkdf2KDF struct {
	hash       algohash.Hash
	iterations int
}

func (k *pbkdf2KDF) Name() string {
	return fmt.Sprintf("PBKDF2(%s,%d)", k.hash.Name(), k.iterations)
}

func (k *pbkdf2KDF) Derive(length int, secret, salt []byte) ([]byte, error) {
	if length <= 0 {
		return nil, errors.Errorf("invalid output length: %d", length)
	}
	return pbkdf2.Key(secret, salt, k.iterations, length, k.hash.New), nil
}
