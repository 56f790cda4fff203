package algohash

import (
	"hash"
	"io"

	"golang.org/x/crypto/sha3"
)

// shakeHash adapts the SHAKE extendable-output functions to the fixed-size
// Hash contract: the requested output size becomes the digest size.
type shakeHash struct {
	name  string
	size  int
	block int
	fn    func() sha3.ShakeHash
}

func (h *shakeHash) Name() string { return h.name }
func (h *shakeHash) Size() int    { return h.size }

func (h *shakeHash) New() hash.Hash {
	return &shakeDigest{
		size:  h.size,
		block: h.block,
		state: h.fn(),
	}
}

type shakeDigest struct {
	size  int
	block int
	state sha3.ShakeHash
}

func (d *shakeDigest) Write(p []byte) (int, error) {
	return d.state.Write(p)
}

// Sum squeezes from a clone so the digest stays writable afterwards.
func (d *shakeDigest) Sum(b []byte) []byte {
	out := make([]byte, d.size)
	_, _ = io.ReadFull(d.state.Clone(), out)
	return append(b, out...)
}

func (d *shakeDigest) Reset()         { d.state.Reset() }
func (d *shakeDigest) Size() int      { return d.size }
func (d *shakeDigest) BlockSize() int { return d.block }
