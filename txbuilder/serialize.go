package txbuilder

import (
	"github.com/rawblock/xmrwallet/bulletproof"
	"github.com/rawblock/xmrwallet/clsag"
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/varint"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// Wire tags matching the real protocol's variant-tagged input/output
// encodings, so a daemon (or this core's own parser) recognizes the shape
// without ambiguity.
const (
	txInToKeyTag      = 0x02
	txOutTaggedKeyTag = 0x03

	// rctTypeBulletproofPlus is the single rct_signatures type this core
	// emits: CLSAG signatures paired with Bulletproofs+ range proofs.
	rctTypeBulletproofPlus = 6
)

// txVersion is the transaction format version for every RingCT
// transaction this core builds (version 1 predates confidential amounts
// entirely and is never produced here).
const txVersion = 2

// ParsedVin is one transaction input exactly as carried on the wire: the
// ring's global indices (already un-differentiated for convenience) and
// the input's key image.
type ParsedVin struct {
	KeyOffsets []uint64
	KeyImage   curve.Point
}

// ParsedVout is one transaction output exactly as carried on the wire.
type ParsedVout struct {
	OneTimePublic curve.Point
	ViewTag       byte
}

// ParsedClsag is one input's CLSAG signature exactly as carried on the
// wire.
type ParsedClsag struct {
	C1 curve.Scalar
	S  []curve.Scalar
	D  curve.Point
}

// ParsedRctSig is the rct_signatures section exactly as carried on the
// wire.
type ParsedRctSig struct {
	Type              byte
	Fee               uint64
	EcdhInfo          [][8]byte
	OutPk             []curve.Point
	BulletproofProofs []bulletproof.Proof
	Clsags            []ParsedClsag
	PseudoOuts        []curve.Point
}

// ParsedTx is a full transaction in its wire shape: exactly what
// Serialize and Parse round-trip, independent of the richer Input/
// Destination types Build accepts as caller-facing convenience.
type ParsedTx struct {
	Version    uint64
	UnlockTime uint64
	Vin        []ParsedVin
	Vout       []ParsedVout
	Extra      []byte
	Rct        ParsedRctSig
}

// SerializePrefix renders the canonical prefix_bytes: the portion CLSAG
// signs as its message.
func (tx ParsedTx) SerializePrefix() []byte {
	buf := varint.Encode(nil, tx.Version)
	buf = varint.Encode(buf, tx.UnlockTime)
	buf = varint.Encode(buf, uint64(len(tx.Vin)))

	for _, in := range tx.Vin {
		buf = append(buf, txInToKeyTag)
		buf = varint.Encode(buf, 0) // RCT inputs carry no plaintext amount
		buf = varint.Encode(buf, uint64(len(in.KeyOffsets)))
		var prev uint64
		for i, off := range in.KeyOffsets {
			var enc uint64
			if i == 0 {
				enc = off
			} else {
				enc = off - prev
			}
			buf = varint.Encode(buf, enc)
			prev = off
		}
		buf = append(buf, in.KeyImage.Bytes()...)
	}

	buf = varint.Encode(buf, uint64(len(tx.Vout)))
	for _, out := range tx.Vout {
		buf = varint.Encode(buf, 0) // RCT outputs carry no plaintext amount
		buf = append(buf, txOutTaggedKeyTag)
		buf = append(buf, out.OneTimePublic.Bytes()...)
		buf = append(buf, out.ViewTag)
	}

	buf = varint.Encode(buf, uint64(len(tx.Extra)))
	buf = append(buf, tx.Extra...)
	return buf
}

// SerializeRctBase renders the rct_signatures fields that depend only on
// the transaction's outputs and fee, not on the ring-signature material.
func (tx ParsedTx) SerializeRctBase() []byte {
	buf := []byte{tx.Rct.Type}
	buf = varint.Encode(buf, tx.Rct.Fee)
	for _, info := range tx.Rct.EcdhInfo {
		buf = append(buf, info[:]...)
	}
	for _, pk := range tx.Rct.OutPk {
		buf = append(buf, pk.Bytes()...)
	}
	return buf
}

// SerializeRctPrunable renders the rct_signatures fields that could in
// principle be pruned once a transaction is deeply confirmed: the range
// proofs, the ring signatures, and the pseudo-output commitments they
// close over.
func (tx ParsedTx) SerializeRctPrunable() []byte {
	var buf []byte
	buf = varint.Encode(buf, uint64(len(tx.Rct.BulletproofProofs)))
	for _, p := range tx.Rct.BulletproofProofs {
		buf = append(buf, p.Bytes()...)
	}
	for _, sig := range tx.Rct.Clsags {
		buf = append(buf, sig.C1.Bytes()...)
		for _, s := range sig.S {
			buf = append(buf, s.Bytes()...)
		}
		buf = append(buf, sig.D.Bytes()...)
	}
	for _, po := range tx.Rct.PseudoOuts {
		buf = append(buf, po.Bytes()...)
	}
	return buf
}

// Serialize renders the full tx_blob: prefix_bytes || rct_base ||
// rct_prunable.
func (tx ParsedTx) Serialize() []byte {
	buf := tx.SerializePrefix()
	buf = append(buf, tx.SerializeRctBase()...)
	buf = append(buf, tx.SerializeRctPrunable()...)
	return buf
}

// ParseTransaction reverses Serialize. ringSize must be supplied by the
// caller (fixed at 16 by protocol, cfg.DefaultRingSize) since the wire
// format carries the ring's global indices but not an explicit count
// separate from the key_offsets list, which Parse already recovers; it is
// needed here only to know how many CLSAG response scalars follow C1 for
// each input.
func ParseTransaction(buf []byte, ringSize int) (ParsedTx, error) {
	tx, off, err := parsePrefix(buf)
	if err != nil {
		return ParsedTx{}, err
	}
	return parseRctSignatures(tx, buf, off, ringSize)
}

// parsePrefix parses only the prefix portion of a transaction — version,
// unlock_time, vin, vout, extra — independent of the rct_signatures
// section that follows. An offline signer uses this directly on a
// transaction's already-fixed txPrefixHex, without needing the rest of
// the blob.
func parsePrefix(buf []byte) (ParsedTx, int, error) {
	const op = "txbuilder.parsePrefix"
	var tx ParsedTx
	off := 0

	version, n, err := varint.Decode(buf[off:])
	if err != nil {
		return ParsedTx{}, 0, err
	}
	tx.Version = version
	off += n

	unlockTime, n, err := varint.Decode(buf[off:])
	if err != nil {
		return ParsedTx{}, 0, err
	}
	tx.UnlockTime = unlockTime
	off += n

	numIn, n, err := varint.Decode(buf[off:])
	if err != nil {
		return ParsedTx{}, 0, err
	}
	off += n

	tx.Vin = make([]ParsedVin, numIn)
	for i := range tx.Vin {
		if off >= len(buf) || buf[off] != txInToKeyTag {
			return ParsedTx{}, 0, walleterrors.New(op, walleterrors.InvalidLength, "expected to_key input tag")
		}
		off++

		_, n, err := varint.Decode(buf[off:]) // amount, always 0
		if err != nil {
			return ParsedTx{}, 0, err
		}
		off += n

		numOffsets, n, err := varint.Decode(buf[off:])
		if err != nil {
			return ParsedTx{}, 0, err
		}
		off += n

		offsets := make([]uint64, numOffsets)
		var prev uint64
		for j := range offsets {
			delta, n, err := varint.Decode(buf[off:])
			if err != nil {
				return ParsedTx{}, 0, err
			}
			off += n
			if j == 0 {
				offsets[j] = delta
			} else {
				offsets[j] = prev + delta
			}
			prev = offsets[j]
		}

		if off+32 > len(buf) {
			return ParsedTx{}, 0, walleterrors.New(op, walleterrors.InvalidLength)
		}
		keyImage, err := curve.PointFromBytes(buf[off : off+32])
		if err != nil {
			return ParsedTx{}, 0, err
		}
		off += 32

		tx.Vin[i] = ParsedVin{KeyOffsets: offsets, KeyImage: keyImage}
	}

	numOut, n, err := varint.Decode(buf[off:])
	if err != nil {
		return ParsedTx{}, 0, err
	}
	off += n

	tx.Vout = make([]ParsedVout, numOut)
	for i := range tx.Vout {
		_, n, err := varint.Decode(buf[off:]) // amount, always 0
		if err != nil {
			return ParsedTx{}, 0, err
		}
		off += n

		if off >= len(buf) || buf[off] != txOutTaggedKeyTag {
			return ParsedTx{}, 0, walleterrors.New(op, walleterrors.InvalidLength, "expected tagged-key output tag")
		}
		off++

		if off+32+1 > len(buf) {
			return ParsedTx{}, 0, walleterrors.New(op, walleterrors.InvalidLength)
		}
		pk, err := curve.PointFromBytes(buf[off : off+32])
		if err != nil {
			return ParsedTx{}, 0, err
		}
		off += 32
		viewTag := buf[off]
		off++

		tx.Vout[i] = ParsedVout{OneTimePublic: pk, ViewTag: viewTag}
	}

	extraLen, n, err := varint.Decode(buf[off:])
	if err != nil {
		return ParsedTx{}, 0, err
	}
	off += n
	if off+int(extraLen) > len(buf) {
		return ParsedTx{}, 0, walleterrors.New(op, walleterrors.InvalidLength)
	}
	tx.Extra = append([]byte(nil), buf[off:off+int(extraLen)]...)
	off += int(extraLen)

	return tx, off, nil
}

// parseRctSignatures parses the rct_signatures section following a
// prefix already parsed into tx, starting at off in buf.
func parseRctSignatures(tx ParsedTx, buf []byte, off int, ringSize int) (ParsedTx, error) {
	const op = "txbuilder.ParseTransaction"

	numIn := len(tx.Vin)
	numOut := len(tx.Vout)

	if off >= len(buf) {
		return ParsedTx{}, walleterrors.New(op, walleterrors.InvalidLength, "missing rct_signatures section")
	}
	tx.Rct.Type = buf[off]
	off++

	fee, n, err := varint.Decode(buf[off:])
	if err != nil {
		return ParsedTx{}, err
	}
	tx.Rct.Fee = fee
	off += n

	tx.Rct.EcdhInfo = make([][8]byte, numOut)
	for i := range tx.Rct.EcdhInfo {
		if off+8 > len(buf) {
			return ParsedTx{}, walleterrors.New(op, walleterrors.InvalidLength)
		}
		copy(tx.Rct.EcdhInfo[i][:], buf[off:off+8])
		off += 8
	}

	tx.Rct.OutPk = make([]curve.Point, numOut)
	for i := range tx.Rct.OutPk {
		if off+32 > len(buf) {
			return ParsedTx{}, walleterrors.New(op, walleterrors.InvalidLength)
		}
		pk, err := curve.PointFromBytes(buf[off : off+32])
		if err != nil {
			return ParsedTx{}, err
		}
		tx.Rct.OutPk[i] = pk
		off += 32
	}

	numProofs, n, err := varint.Decode(buf[off:])
	if err != nil {
		return ParsedTx{}, err
	}
	off += n
	tx.Rct.BulletproofProofs = make([]bulletproof.Proof, numProofs)
	for i := range tx.Rct.BulletproofProofs {
		p, consumed, err := bulletproof.ParseProof(buf[off:])
		if err != nil {
			return ParsedTx{}, err
		}
		tx.Rct.BulletproofProofs[i] = p
		off += consumed
	}

	tx.Rct.Clsags = make([]ParsedClsag, numIn)
	for i := range tx.Rct.Clsags {
		if off+32 > len(buf) {
			return ParsedTx{}, walleterrors.New(op, walleterrors.InvalidLength)
		}
		c1, err := curve.ScalarFromBytes(buf[off : off+32])
		if err != nil {
			return ParsedTx{}, err
		}
		off += 32

		s := make([]curve.Scalar, ringSize)
		for j := range s {
			if off+32 > len(buf) {
				return ParsedTx{}, walleterrors.New(op, walleterrors.InvalidLength)
			}
			sc, err := curve.ScalarFromBytes(buf[off : off+32])
			if err != nil {
				return ParsedTx{}, err
			}
			s[j] = sc
			off += 32
		}

		if off+32 > len(buf) {
			return ParsedTx{}, walleterrors.New(op, walleterrors.InvalidLength)
		}
		d, err := curve.PointFromBytes(buf[off : off+32])
		if err != nil {
			return ParsedTx{}, err
		}
		off += 32

		tx.Rct.Clsags[i] = ParsedClsag{C1: c1, S: s, D: d}
	}

	tx.Rct.PseudoOuts = make([]curve.Point, numIn)
	for i := range tx.Rct.PseudoOuts {
		if off+32 > len(buf) {
			return ParsedTx{}, walleterrors.New(op, walleterrors.InvalidLength)
		}
		po, err := curve.PointFromBytes(buf[off : off+32])
		if err != nil {
			return ParsedTx{}, err
		}
		tx.Rct.PseudoOuts[i] = po
		off += 32
	}

	return tx, nil
}

// clsagSignatureToParsed adapts a clsag.Signature into its wire form.
func clsagSignatureToParsed(sig clsag.Signature) ParsedClsag {
	return ParsedClsag{C1: sig.C1, S: sig.S, D: sig.D}
}
