package crypto

// BLS12-381 scalar field (Fr) facade.
//
// Fr is the 255-bit prime-order scalar field of BLS12-381:
//
//	r = 0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001
//
// Arithmetic is delegated to gnark-crypto's fr.Element, which carries out
// all four operations in Montgomery form. This file only adds the
// canonical-encoding boundary the pairing library doesn't provide:
// SetBytes on fr.Element silently reduces values >= r, but EIP-4844/7594
// wire formats require outright rejection of non-canonical scalars.

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of the BLS12-381 scalar field Fr.
type Scalar = fr.Element

// ScalarBytesLen is the canonical big-endian encoding length of a Scalar.
const ScalarBytesLen = fr.Bytes

// frModulus is Fr's modulus r, used only for the canonical-range check
// that fr.Element itself does not perform on decode.
var frModulus = fr.Modulus()

// ScalarZero returns the additive identity.
func ScalarZero() Scalar {
	var z Scalar
	return z
}

// ScalarOne returns the multiplicative identity.
func ScalarOne() Scalar {
	var o Scalar
	o.SetOne()
	return o
}

// ScalarFromUint64 builds a Scalar from a small integer.
func ScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.SetUint64(v)
	return s
}

// ScalarFromBytes decodes a big-endian 32-byte canonical scalar encoding.
// It rejects values >= r, satisfying spec.md's "deserialization must
// reject values >= r" requirement (fr.Element.SetBytes alone would not).
func ScalarFromBytes(b []byte) (Scalar, error) {
	var s Scalar
	if len(b) != ScalarBytesLen {
		return s, errScalarWrongLength
	}
	var asBig big.Int
	asBig.SetBytes(b)
	if asBig.Cmp(frModulus) >= 0 {
		return s, errScalarNotCanonical
	}
	s.SetBytes(b)
	return s, nil
}

// ScalarToBytes encodes a Scalar as big-endian 32 bytes.
func ScalarToBytes(s *Scalar) [ScalarBytesLen]byte {
	return s.Bytes()
}

// ScalarModReduce interprets b as a big-endian integer of any length and
// reduces it modulo r, via fr.Element.SetBytes's built-in reduction.
// Used for Fiat-Shamir challenge derivation (spec.md §4.H/§4.J: "the
// 32-byte digest is interpreted big-endian and reduced mod r"), which
// must accept the full digest range rather than reject non-canonical
// values the way ScalarFromBytes does at the wire boundary.
func ScalarModReduce(b []byte) Scalar {
	var s Scalar
	s.SetBytes(b)
	return s
}

// ScalarNeg returns -a.
func ScalarNeg(a *Scalar) Scalar {
	var r Scalar
	r.Neg(a)
	return r
}

// ScalarAdd returns a+b.
func ScalarAdd(a, b *Scalar) Scalar {
	var r Scalar
	r.Add(a, b)
	return r
}

// ScalarSub returns a-b.
func ScalarSub(a, b *Scalar) Scalar {
	var r Scalar
	r.Sub(a, b)
	return r
}

// ScalarMul returns a*b.
func ScalarMul(a, b *Scalar) Scalar {
	var r Scalar
	r.Mul(a, b)
	return r
}

// ScalarInv returns a^-1. Panics if a is zero; callers on paths that must
// tolerate zero use BatchInverse (Component B) instead.
func ScalarInv(a *Scalar) Scalar {
	if a.IsZero() {
		panic("crypto: ScalarInv of zero")
	}
	var r Scalar
	r.Inverse(a)
	return r
}

// ScalarExp returns a^e.
func ScalarExp(a *Scalar, e *big.Int) Scalar {
	var r Scalar
	r.Exp(*a, e)
	return r
}

// ScalarEqual reports whether a == b.
func ScalarEqual(a, b *Scalar) bool {
	return a.Equal(b)
}
