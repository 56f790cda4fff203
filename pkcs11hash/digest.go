package pkcs11hash

import (
	"bytes"
	"hash"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/miekg/pkcs11"

	"github.com/rafalsk/botan/metricskey"
)

// p11Hash computes digests on the token. The hash.Hash contract has no
// error path on Sum, so the digest buffers written data and performs the
// PKCS#11 operation in one short-lived session per Sum.
type p11Hash struct {
	lib  *p11Lib
	algo digestAlgo
}

func (h *p11Hash) Name() string { return h.algo.base }
func (h *p11Hash) Size() int    { return h.algo.size }

func (h *p11Hash) New() hash.Hash {
	return &p11Digest{owner: h}
}

// Digest hashes data on the token in a single operation.
func (h *p11Hash) Digest(data []byte) ([]byte, error) {
	defer metricskey.PerfPkcs11Digest.MeasureSince(time.Now(), h.algo.base)

	ctx := h.lib.ctx
	session, err := ctx.OpenSession(h.lib.slot, pkcs11.CKF_SERIAL_SESSION)
	if err != nil {
		return nil, errors.WithMessagef(err, "OpenSession on slot %d", h.lib.slot)
	}
	defer ctx.CloseSession(session)

	mech := []*pkcs11.Mechanism{pkcs11.NewMechanism(h.algo.mech, nil)}
	if err := ctx.DigestInit(session, mech); err != nil {
		return nil, errors.WithMessagef(err, "DigestInit: %s", h.algo.base)
	}
	sum, err := ctx.Digest(session, data)
	if err != nil {
		return nil, errors.WithMessagef(err, "Digest: %s", h.algo.base)
	}
	return sum, nil
}

type p11Digest struct {
	owner *p11Hash
	buf   bytes.Buffer
}

func (d *p11Digest) Write(p []byte) (int, error) {
	return d.buf.Write(p)
}

func (d *p11Digest) Sum(b []byte) []byte {
	sum, err := d.owner.Digest(d.buf.Bytes())
	if err != nil {
		logger.Errorf("reason=digest, algo=%q, err=[%+v]", d.owner.algo.base, err)
		return b
	}
	return append(b, sum...)
}

func (d *p11Digest) Reset()         { d.buf.Reset() }
func (d *p11Digest) Size() int      { return d.owner.algo.size }
func (d *p11Digest) BlockSize() int { return d.owner.algo.block }
