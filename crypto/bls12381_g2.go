package crypto

// BLS12-381 G2 facade. See bls12381_g1.go for the rationale: arithmetic and
// compressed (de)serialization both delegate to gnark-crypto.

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G2Point is a BLS12-381 G2 point in Jacobian coordinates.
type G2Point = bls12381.G2Jac

// G2Affine is a BLS12-381 G2 point in affine coordinates, the
// serialization and verification-key representation.
type G2Affine = bls12381.G2Affine

// G2BytesLen is the compressed serialization length of a G2 point.
const G2BytesLen = bls12381.SizeOfG2AffineCompressed

// G2Generator returns the canonical G2 generator.
func G2Generator() G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// G2Identity returns the G2 point at infinity.
func G2Identity() G2Affine {
	var p G2Affine
	p.X.SetZero()
	p.Y.SetZero()
	return p
}

// G2Add returns a+b.
func G2Add(a, b *G2Affine) G2Affine {
	var aj, bj, rj G2Point
	aj.FromAffine(a)
	bj.FromAffine(b)
	rj.Set(&aj).AddAssign(&bj)
	var r G2Affine
	r.FromJacobian(&rj)
	return r
}

// G2Neg returns -a.
func G2Neg(a *G2Affine) G2Affine {
	var r G2Affine
	r.Neg(a)
	return r
}

// G2ScalarMul returns [s]a.
func G2ScalarMul(a *G2Affine, s *Scalar) G2Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var aj, rj G2Point
	aj.FromAffine(a)
	rj.ScalarMultiplication(&aj, &sBig)
	var r G2Affine
	r.FromJacobian(&rj)
	return r
}

// G2SerializeCompressed encodes p as 96 compressed bytes.
func G2SerializeCompressed(p *G2Affine) [G2BytesLen]byte {
	return p.Bytes()
}

// G2DeserializeCompressed decodes 96 compressed bytes into a validated G2
// point: on-curve and subgroup-checked.
func G2DeserializeCompressed(b []byte) (G2Affine, error) {
	var p G2Affine
	if len(b) != G2BytesLen {
		return p, errG2WrongLength
	}
	var arr [G2BytesLen]byte
	copy(arr[:], b)
	if _, err := p.SetBytes(arr[:]); err != nil {
		return p, errG2NotOnCurve
	}
	if !p.IsInSubGroup() {
		return p, errG2NotInSubgroup
	}
	return p, nil
}
