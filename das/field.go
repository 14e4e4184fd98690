package das

// Evaluation domain and FFT/NTT over the BLS12-381 scalar field Fr.
//
// Grounded on the teacher's das/field.go, which already had the right
// shape (root-of-unity derivation, recursive Cooley-Tukey FFT/InverseFFT)
// but hand-rolled both on math/big. Scalar FFT/IFFT now delegate to
// gnark-crypto's ecc/bls12-381/fr/fft.Domain, the same library the rest
// of the gnark-crypto-using pack relies on for NTTs. The teacher's
// recursive root-of-unity derivation is kept (generalized to
// crypto.Scalar) because FK20 additionally needs an FFT over G1 points
// (Component I's "FFT of G1 points" trick), which gnark-crypto's Domain
// does not provide — FFTG1/InverseFFTG1 below reuse the same roots table
// the scalar Domain is built from, in the teacher's original recursive
// butterfly style.

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/eth2030/kzgcore/crypto"
)

// Domain is an evaluation domain of a given power-of-two size over Fr,
// backed by gnark-crypto's FFT implementation.
type Domain struct {
	inner *fft.Domain
	size  uint64
	roots []crypto.Scalar // w^0 .. w^(size-1), used by the erasure codec
}

// NewDomain builds a domain of the given size. size must be a power of two.
func NewDomain(size uint64) *Domain {
	if size == 0 || size&(size-1) != 0 {
		panic("das: NewDomain: size must be a power of two")
	}
	return &Domain{
		inner: fft.NewDomain(size),
		size:  size,
		roots: RootsOfUnity(size),
	}
}

// Size returns the domain's cardinality.
func (d *Domain) Size() uint64 { return d.size }

// FFT evaluates the polynomial with coefficients vals (low-degree-first)
// at every point of the domain, returning the evaluations in natural
// (not bit-reversed) order.
func (d *Domain) FFT(vals []crypto.Scalar) []crypto.Scalar {
	out := make([]crypto.Scalar, d.size)
	copy(out, vals)
	d.inner.FFT(out, fft.DIF)
	fft.BitReverse(out)
	return out
}

// InverseFFT recovers the polynomial coefficients from evaluations over
// the domain, the inverse of FFT.
func (d *Domain) InverseFFT(vals []crypto.Scalar) []crypto.Scalar {
	out := make([]crypto.Scalar, d.size)
	copy(out, vals)
	fft.BitReverse(out)
	d.inner.FFTInverse(out, fft.DIT)
	return out
}

// rootOfUnity computes a primitive n-th root of unity in Fr. n must be a
// power of 2 dividing (r-1); the BLS12-381 scalar field supports roots of
// unity up to 2^32.
func rootOfUnity(n uint64) crypto.Scalar {
	if n == 0 || n&(n-1) != 0 {
		panic("das: rootOfUnity: n must be a power of 2")
	}

	rMinus1 := new(big.Int).Sub(frModulusBigInt(), big.NewInt(1))
	twoTo32 := new(big.Int).Lsh(big.NewInt(1), 32)
	cofactor := new(big.Int).Div(rMinus1, twoTo32)

	seven := crypto.ScalarFromUint64(7)
	g := crypto.ScalarExp(&seven, cofactor)

	exp := new(big.Int).SetUint64(uint64(1) << 32 / n)
	root := crypto.ScalarExp(&g, exp)
	return root
}

// RootsOfUnity returns [w^0, w^1, ..., w^(n-1)] for a primitive n-th root
// of unity w.
func RootsOfUnity(n uint64) []crypto.Scalar {
	w := rootOfUnity(n)
	roots := make([]crypto.Scalar, n)
	roots[0] = crypto.ScalarOne()
	for i := uint64(1); i < n; i++ {
		roots[i] = crypto.ScalarMul(&roots[i-1], &w)
	}
	return roots
}

// frModulusBigInt returns Fr's modulus r as a big.Int.
func frModulusBigInt() *big.Int {
	r, _ := new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
	return r
}

// FFTG1 evaluates a "polynomial" whose coefficients are G1 points (used by
// FK20 to turn the h-polynomial commitments into per-cell proofs) at every
// root of unity,
// via the same recursive Cooley-Tukey butterfly the teacher used for
// scalars — gnark-crypto's Domain type does not support non-field
// coefficients, so this path stays hand-rolled, grounded on the teacher's
// original fftInner.
func FFTG1(vals []crypto.G1Affine, roots []crypto.Scalar) []crypto.G1Affine {
	n := len(vals)
	if n == 1 {
		return []crypto.G1Affine{vals[0]}
	}
	half := n / 2
	even := make([]crypto.G1Affine, half)
	odd := make([]crypto.G1Affine, half)
	evenRoots := make([]crypto.Scalar, half)
	for i := 0; i < half; i++ {
		even[i] = vals[2*i]
		odd[i] = vals[2*i+1]
		evenRoots[i] = roots[2*i]
	}

	yEven := FFTG1(even, evenRoots)
	yOdd := FFTG1(odd, evenRoots)

	result := make([]crypto.G1Affine, n)
	for i := 0; i < half; i++ {
		t := crypto.G1ScalarMul(&yOdd[i], &roots[i])
		result[i] = crypto.G1Add(&yEven[i], &t)
		negT := crypto.G1Neg(&t)
		result[i+half] = crypto.G1Add(&yEven[i], &negT)
	}
	return result
}

// InverseFFTG1 is the inverse of FFTG1: recovers G1 "coefficients" from
// evaluations over the n-th roots of unity.
func InverseFFTG1(vals []crypto.G1Affine) []crypto.G1Affine {
	n := uint64(len(vals))
	roots := RootsOfUnity(n)

	invRoots := make([]crypto.Scalar, n)
	invRoots[0] = roots[0]
	for i := uint64(1); i < n; i++ {
		invRoots[i] = roots[n-i]
	}

	result := FFTG1(vals, invRoots)

	nScalar := crypto.ScalarFromUint64(n)
	nInv := crypto.ScalarInv(&nScalar)
	for i := range result {
		result[i] = crypto.G1ScalarMul(&result[i], &nInv)
	}
	return result
}

// Brp returns the bit-reversal permutation of i within a domain of size
// 2^logN: the mapping between an external cell index and its internal
// coset index (spec.md's bit-reversed cell ordering).
func Brp(i uint64, logN uint) uint64 {
	var r uint64
	for b := uint(0); b < logN; b++ {
		r = (r << 1) | (i & 1)
		i >>= 1
	}
	return r
}
