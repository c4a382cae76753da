package bulletproof

import (
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/varint"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// Bytes serializes p into the wire form carried in a transaction's
// rct_signatures section: the seven fixed-size curve elements followed by
// a varint-prefixed pair of equal-length scalar vectors.
func (p Proof) Bytes() []byte {
	buf := make([]byte, 0, 7*32+10+2*len(p.L)*32)
	buf = append(buf, p.A.Bytes()...)
	buf = append(buf, p.S.Bytes()...)
	buf = append(buf, p.T1.Bytes()...)
	buf = append(buf, p.T2.Bytes()...)
	buf = append(buf, p.Taux.Bytes()...)
	buf = append(buf, p.Mu.Bytes()...)
	buf = append(buf, p.T.Bytes()...)
	buf = varint.Encode(buf, uint64(len(p.L)))
	for _, s := range p.L {
		buf = append(buf, s.Bytes()...)
	}
	for _, s := range p.R {
		buf = append(buf, s.Bytes()...)
	}
	return buf
}

// ParseProof reads a Proof from the front of buf, returning the proof and
// the number of bytes consumed.
func ParseProof(buf []byte) (Proof, int, error) {
	const fixedPoints = 4 // A, S, T1, T2
	const fixedScalars = 3 // Taux, Mu, T
	const fixedLen = fixedPoints*32 + fixedScalars*32

	if len(buf) < fixedLen {
		return Proof{}, 0, walleterrors.New("bulletproof.ParseProof", walleterrors.InvalidLength,
			"buffer shorter than fixed-size proof fields")
	}

	var p Proof
	off := 0
	readPoint := func() (curve.Point, error) {
		pt, err := curve.PointFromBytes(buf[off : off+32])
		off += 32
		return pt, err
	}
	readScalar := func() (curve.Scalar, error) {
		s, err := curve.ScalarFromBytes(buf[off : off+32])
		off += 32
		return s, err
	}

	var err error
	if p.A, err = readPoint(); err != nil {
		return Proof{}, 0, err
	}
	if p.S, err = readPoint(); err != nil {
		return Proof{}, 0, err
	}
	if p.T1, err = readPoint(); err != nil {
		return Proof{}, 0, err
	}
	if p.T2, err = readPoint(); err != nil {
		return Proof{}, 0, err
	}
	if p.Taux, err = readScalar(); err != nil {
		return Proof{}, 0, err
	}
	if p.Mu, err = readScalar(); err != nil {
		return Proof{}, 0, err
	}
	if p.T, err = readScalar(); err != nil {
		return Proof{}, 0, err
	}

	n, consumed, err := varint.Decode(buf[off:])
	if err != nil {
		return Proof{}, 0, err
	}
	off += consumed

	if uint64(len(buf)-off) < 2*n*32 {
		return Proof{}, 0, walleterrors.New("bulletproof.ParseProof", walleterrors.InvalidLength,
			"buffer shorter than declared L/R vector length")
	}

	p.L = make([]curve.Scalar, n)
	for i := range p.L {
		if p.L[i], err = readScalar(); err != nil {
			return Proof{}, 0, err
		}
	}
	p.R = make([]curve.Scalar, n)
	for i := range p.R {
		if p.R[i], err = readScalar(); err != nil {
			return Proof{}, 0, err
		}
	}

	return p, off, nil
}
