// Package curve implements the Ed25519 field, scalar, and point arithmetic
// the wallet core is built on: scalar reduction mod the group order l,
// constant-time point addition/doubling/scalar multiplication, canonical
// point encode/decode with small-subgroup rejection, and hash-to-point.
//
// All arithmetic is delegated to filippo.io/edwards25519, the public mirror
// of the Go standard library's internal edwards25519 implementation — the
// standard library exposes no public point/scalar API, so this is the
// vetted, constant-time primitive the design notes call for. Nothing here
// branches on secret-dependent values; callers performing secret scalar
// multiplication should use ScalarMult (constant time), not the VarTime
// variants, which are reserved for signature verification where the
// multiplicands are public.
package curve

import (
	"crypto/subtle"
	"math/big"

	"filippo.io/edwards25519"
	"github.com/rawblock/xmrwallet/keccak"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// Order is the prime order l of the Ed25519 base-point subgroup:
// l = 2^252 + 27742317777372353535851937790883648493.
var Order, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

// Scalar is an integer modulo Order, stored in its reduced canonical form.
type Scalar struct {
	s *edwards25519.Scalar
}

// Point is an element of the prime-order subgroup of the Ed25519 curve, or
// (transiently, during decode) of the full curve group before subgroup
// membership has been checked.
type Point struct {
	p *edwards25519.Point
}

// ScalarReduce reduces a 64-byte little-endian integer modulo Order. Use
// this for mapping a wide hash output or seed onto a scalar.
func ScalarReduce(b []byte) (Scalar, error) {
	if len(b) != 64 {
		return Scalar{}, walleterrors.New("curve.ScalarReduce", walleterrors.InvalidLength)
	}
	s, err := new(edwards25519.Scalar).SetUniformBytes(b)
	if err != nil {
		// SetUniformBytes only fails on wrong input length, already
		// checked above.
		return Scalar{}, walleterrors.New("curve.ScalarReduce", walleterrors.InvalidScalar, err)
	}
	return Scalar{s: s}, nil
}

// ScalarFromBytes decodes a canonical (already-reduced, < Order) 32-byte
// little-endian scalar. Returns InvalidScalar if b encodes a value >= Order.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return Scalar{}, walleterrors.New("curve.ScalarFromBytes", walleterrors.InvalidLength)
	}
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b)
	if err != nil {
		return Scalar{}, walleterrors.New("curve.ScalarFromBytes", walleterrors.InvalidScalar, err)
	}
	return Scalar{s: s}, nil
}

// RandomScalar reduces 64 bytes drawn from a cryptographically secure
// source into a uniformly random scalar. Callers needing deterministic
// replay (e.g. tests) should call ScalarReduce directly over a seeded
// stream instead.
func RandomScalar(randBytes64 []byte) (Scalar, error) {
	return ScalarReduce(randBytes64)
}

// ScalarFromUint64 encodes n as a scalar via 8-byte little-endian padding,
// matching the commitment-mask encoding rule in the Pedersen commitment
// component.
func ScalarFromUint64(n uint64) Scalar {
	var wide [64]byte
	wide[0] = byte(n)
	wide[1] = byte(n >> 8)
	wide[2] = byte(n >> 16)
	wide[3] = byte(n >> 24)
	wide[4] = byte(n >> 32)
	wide[5] = byte(n >> 40)
	wide[6] = byte(n >> 48)
	wide[7] = byte(n >> 56)
	s, _ := ScalarReduce(wide[:])
	return s
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	var zero Scalar
	zero.s = edwards25519.NewScalar()
	return s.Equal(zero)
}

// Equal reports whether s and t represent the same residue.
func (s Scalar) Equal(t Scalar) bool {
	return s.s.Equal(t.s) == 1
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s Scalar) Bytes() []byte {
	return s.s.Bytes()
}

// Add returns s + t mod Order.
func (s Scalar) Add(t Scalar) Scalar {
	return Scalar{s: new(edwards25519.Scalar).Add(s.s, t.s)}
}

// Sub returns s - t mod Order.
func (s Scalar) Sub(t Scalar) Scalar {
	return Scalar{s: new(edwards25519.Scalar).Subtract(s.s, t.s)}
}

// Mul returns s * t mod Order.
func (s Scalar) Mul(t Scalar) Scalar {
	return Scalar{s: new(edwards25519.Scalar).Multiply(s.s, t.s)}
}

// Negate returns -s mod Order.
func (s Scalar) Negate() Scalar {
	return Scalar{s: new(edwards25519.Scalar).Negate(s.s)}
}

// MulAdd returns s*t + u mod Order.
func (s Scalar) MulAdd(t, u Scalar) Scalar {
	return Scalar{s: new(edwards25519.Scalar).MultiplyAdd(s.s, t.s, u.s)}
}

// Invert returns s^-1 mod Order. s must be non-zero.
func (s Scalar) Invert() Scalar {
	return Scalar{s: new(edwards25519.Scalar).Invert(s.s)}
}

// Identity is the neutral element of the curve group.
func Identity() Point {
	return Point{p: edwards25519.NewIdentityPoint()}
}

// BasePoint is the conventional Ed25519 generator G.
func BasePoint() Point {
	return Point{p: edwards25519.NewGeneratorPoint()}
}

// PointFromBytes decodes a canonical 32-byte point encoding (y-coordinate
// plus x-sign bit), rejecting non-canonical y, non-quadratic-residue x²,
// and points outside the prime-order subgroup.
func PointFromBytes(b []byte) (Point, error) {
	if len(b) != 32 {
		return Point{}, walleterrors.New("curve.PointFromBytes", walleterrors.InvalidLength)
	}
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return Point{}, walleterrors.New("curve.PointFromBytes", walleterrors.InvalidPoint, err)
	}
	// SetBytes accepts non-canonical encodings of valid points; a canonical
	// encoding is the only one that re-encodes to the same bytes.
	if subtle.ConstantTimeCompare(p.Bytes(), b) != 1 {
		return Point{}, walleterrors.New("curve.PointFromBytes", walleterrors.InvalidPoint,
			"non-canonical point encoding")
	}
	pt := Point{p: p}
	if !pt.isTorsionFree() {
		return Point{}, walleterrors.New("curve.PointFromBytes", walleterrors.InvalidPoint,
			"point outside prime-order subgroup")
	}
	return pt, nil
}

// Bytes returns the canonical 32-byte encoding of P: y || (x-sign << 7).
func (p Point) Bytes() []byte {
	return p.p.Bytes()
}

// Equal reports whether P and Q are the same curve point.
func (p Point) Equal(q Point) bool {
	return p.p.Equal(q.p) == 1
}

// Add returns P + Q.
func (p Point) Add(q Point) Point {
	return Point{p: new(edwards25519.Point).Add(p.p, q.p)}
}

// Double returns 2P.
func (p Point) Double() Point {
	return Point{p: new(edwards25519.Point).Add(p.p, p.p)}
}

// Sub returns P - Q.
func (p Point) Sub(q Point) Point {
	return Point{p: new(edwards25519.Point).Subtract(p.p, q.p)}
}

// Negate returns -P.
func (p Point) Negate() Point {
	return Point{p: new(edwards25519.Point).Negate(p.p)}
}

// ScalarMult returns s*P using a constant-time ladder. Use this whenever s
// is secret.
func (p Point) ScalarMult(s Scalar) Point {
	return Point{p: new(edwards25519.Point).ScalarMult(s.s, p.p)}
}

// ScalarMultBase returns s*G using a constant-time ladder. Use this
// whenever s is secret.
func ScalarMultBase(s Scalar) Point {
	return Point{p: new(edwards25519.Point).ScalarBaseMult(s.s)}
}

// VarTimeDoubleScalarMult returns s1*P1 + s2*P2. Only safe when s1, s2,
// P1, P2 are all public — e.g. a signature verification equation, never a
// signing operation.
func VarTimeDoubleScalarMult(s1 Scalar, p1 Point, s2 Scalar, p2 Point) Point {
	return VarTimeMultiScalarMult([]Scalar{s1, s2}, []Point{p1, p2})
}

// VarTimeMultiScalarMult returns sum(scalars[i]*points[i]) using
// variable-time arithmetic, for batch-verification contexts where every
// operand is public.
func VarTimeMultiScalarMult(scalars []Scalar, points []Point) Point {
	raws := make([]*edwards25519.Scalar, len(scalars))
	pts := make([]*edwards25519.Point, len(points))
	for i := range scalars {
		raws[i] = scalars[i].s
		pts[i] = points[i].p
	}
	return Point{p: new(edwards25519.Point).VarTimeMultiScalarMult(raws, pts)}
}

// HashToPoint maps arbitrary bytes onto the prime-order subgroup: Keccak to
// 32 bytes, decode as a y-coordinate with both sign choices, rehashing on
// failure, then clear the cofactor by multiplying by 8.
func HashToPoint(data []byte) Point {
	h := keccak.Sum256(data)
	buf := h[:]

	for {
		candidate := make([]byte, 32)
		copy(candidate, buf)
		candidate[31] &^= 0x80 // try sign bit 0 first

		if p, err := new(edwards25519.Point).SetBytes(candidate); err == nil {
			return clearCofactor(p)
		}

		candidate[31] |= 0x80 // then sign bit 1
		if p, err := new(edwards25519.Point).SetBytes(candidate); err == nil {
			return clearCofactor(p)
		}

		// Neither sign choice decoded (y² wasn't a valid curve
		// y-coordinate at all): rehash and retry.
		next := keccak.Sum256(buf)
		buf = next[:]
	}
}

func clearCofactor(p *edwards25519.Point) Point {
	// Multiply by 8 via three doublings.
	r := new(edwards25519.Point).Add(p, p)
	r.Add(r, r)
	r.Add(r, r)
	return Point{p: r}
}

// HashToScalar hashes the concatenation of data with Keccak-256 and
// reduces the 32-byte digest modulo Order. This is the H_s(...) primitive
// used throughout the stealth-address, commitment, and CLSAG components.
func HashToScalar(data ...[]byte) Scalar {
	h := keccak.Sum256(data...)
	var wide [64]byte
	copy(wide[:32], h[:])
	s, _ := ScalarReduce(wide[:])
	return s
}

// H is a fixed, nothing-up-my-sleeve generator independent of G, used as
// the blinding generator in Pedersen commitments. It is derived
// deterministically as hash_to_point(G's encoding), so nobody — including
// the wallet's authors — knows its discrete log with respect to G.
var H = HashToPoint(BasePoint().Bytes())

// IsInSubgroup reports whether p lies in the prime-order subgroup. CLSAG
// verification and any other code accepting a point deserialized outside
// of PointFromBytes (e.g. a key image carried on an Signature) must call
// this explicitly, since nothing else re-checks subgroup membership.
func (p Point) IsInSubgroup() bool {
	return p.isTorsionFree()
}

// isTorsionFree reports whether p lies in the prime-order subgroup, i.e.
// Order*p is the identity. The full curve group has order 8*Order, so a
// point can decode successfully (on-curve) yet carry a component in the
// order-8 torsion subgroup; only multiplying by Order as an un-reduced
// integer (not a Scalar, which is only ever held mod Order) catches that.
func (p Point) isTorsionFree() bool {
	r := scalarMultBigInt(p, Order)
	return constantTimeIsIdentity(r)
}

// scalarMultBigInt performs double-and-add scalar multiplication by an
// arbitrary (non-reduced) big.Int exponent. Used only for the subgroup
// membership check above, where the multiplier is the public constant
// Order and therefore requires no secret-independent-timing discipline.
func scalarMultBigInt(p Point, k *big.Int) Point {
	result := Identity()
	addend := p
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if k.Bit(i) == 1 {
			result = result.Add(addend)
		}
	}
	return result
}

func constantTimeIsIdentity(p Point) bool {
	id := Identity().Bytes()
	return subtle.ConstantTimeCompare(p.Bytes(), id) == 1
}
