package crypto

// BLS12-381 G1 facade.
//
// G1 is the 381-bit prime-field group BLS12-381 commitments live in.
// Arithmetic is delegated to gnark-crypto's bls12381.G1Jac/G1Affine;
// compressed (de)serialization reuses gnark-crypto's native Bytes()/
// SetBytes(), which implement the same ZCash flag-bit convention the
// teacher's hand-rolled KZGCompressG1/KZGDecompressG1 documented, and
// additionally perform the on-curve and subgroup checks spec.md §4.A
// requires at the deserialization boundary.

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1Point is a BLS12-381 G1 point in Jacobian coordinates, the natural
// accumulator representation for repeated Add/Double.
type G1Point = bls12381.G1Jac

// G1Affine is a BLS12-381 G1 point in affine coordinates, the
// serialization and MSM-input representation.
type G1Affine = bls12381.G1Affine

// G1BytesLen is the compressed serialization length of a G1 point.
const G1BytesLen = bls12381.SizeOfG1AffineCompressed

// G1Generator returns the canonical G1 generator.
func G1Generator() G1Affine {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

// G1Identity returns the G1 point at infinity.
func G1Identity() G1Affine {
	var p G1Affine
	p.X.SetZero()
	p.Y.SetZero()
	return p
}

// G1Add returns a+b (affine inputs, Jacobian accumulation internally).
func G1Add(a, b *G1Affine) G1Affine {
	var aj, bj, rj G1Point
	aj.FromAffine(a)
	bj.FromAffine(b)
	rj.Set(&aj).AddAssign(&bj)
	var r G1Affine
	r.FromJacobian(&rj)
	return r
}

// G1Neg returns -a.
func G1Neg(a *G1Affine) G1Affine {
	var r G1Affine
	r.Neg(a)
	return r
}

// G1ScalarMul returns [s]a.
func G1ScalarMul(a *G1Affine, s *Scalar) G1Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var aj, rj G1Point
	aj.FromAffine(a)
	rj.ScalarMultiplication(&aj, &sBig)
	var r G1Affine
	r.FromJacobian(&rj)
	return r
}

// G1IsIdentity reports whether p is the point at infinity.
func G1IsIdentity(p *G1Affine) bool {
	return p.IsInfinity()
}

// G1BatchNormalize converts a slice of Jacobian points to affine in one
// batched-inversion pass (gnark-crypto's BatchJacobianToAffineG1 already
// implements Montgomery's trick internally — Component B's general
// BatchInverse serves the erasure codec, which operates directly on
// scalars, not on gnark-crypto's curve package).
func G1BatchNormalize(pts []G1Point) []G1Affine {
	out := make([]G1Affine, len(pts))
	bls12381.BatchJacobianToAffineG1(pts, out)
	return out
}

// G1SerializeCompressed encodes p as 48 compressed bytes.
func G1SerializeCompressed(p *G1Affine) [G1BytesLen]byte {
	return p.Bytes()
}

// G1DeserializeCompressed decodes 48 compressed bytes into a validated G1
// point: on-curve and subgroup-checked, per spec.md §4.A/§4.K.
func G1DeserializeCompressed(b []byte) (G1Affine, error) {
	var p G1Affine
	if len(b) != G1BytesLen {
		return p, errG1WrongLength
	}
	var arr [G1BytesLen]byte
	copy(arr[:], b)
	if _, err := p.SetBytes(arr[:]); err != nil {
		return p, errG1NotOnCurve
	}
	if !p.IsInSubGroup() {
		return p, errG1NotInSubgroup
	}
	return p, nil
}
