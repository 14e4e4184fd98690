package crypto

// Multi-scalar multiplication.
//
// Grounded on the teacher's das/field.go, which had no MSM at all: point
// accumulation was a serial loop of scalar-mul-then-add. This replaces
// that with gnark-crypto's windowed Pippenger MultiExp for the
// variable-base case (Component G's CommitPolynomial, Component J's
// verification-equation accumulation) and, for the fixed-base case, a
// per-point windowed precomputation table built once over a fixed point
// vector (spec.md §4.C) — accelerating repeated commit_g1(p) calls
// against the same trusted-setup powers of s, where only the scalar
// vector (the polynomial coefficients) changes between calls.

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var errMSMLengthMismatch = errors.New("crypto: MSM point/scalar length mismatch")

// MSMVarBase computes sum(scalars[i] * points[i]) using gnark-crypto's
// windowed-Pippenger MultiExp. Identity points are filtered out first:
// gnark-crypto's MultiExp does not tolerate the point at infinity among
// its bases.
func MSMVarBase(points []G1Affine, scalars []Scalar) (G1Affine, error) {
	if len(points) != len(scalars) {
		return G1Affine{}, errMSMLengthMismatch
	}

	filteredPoints := make([]G1Affine, 0, len(points))
	filteredScalars := make([]fr.Element, 0, len(points))
	for i, p := range points {
		if G1IsIdentity(&p) {
			continue
		}
		filteredPoints = append(filteredPoints, p)
		filteredScalars = append(filteredScalars, scalars[i])
	}
	if len(filteredPoints) == 0 {
		return G1Identity(), nil
	}

	var result G1Affine
	if _, err := result.MultiExp(filteredPoints, filteredScalars, ecc.MultiExpConfig{}); err != nil {
		return G1Affine{}, err
	}
	return result, nil
}

// defaultFixedBaseWindow is the digit width of the fixed-base precomputed
// tables, matching the 8-bit window spec.md's MSM component describes.
const defaultFixedBaseWindow = 8

// FixedBaseMSM accelerates repeated MSMs against the same fixed point
// vector (spec.md §4.C): built once from the vector and a window width,
// it precomputes per-point windowed tables of small multiples, after
// which ScalarVector calls accept only the scalar vector and run in
// O(n * ceil(255/w)) additions per call instead of a fresh variable-base
// MSM.
type FixedBaseMSM struct {
	tables []*fixedPointTable
}

// NewFixedBaseMSM builds a windowed precomputation table for every point
// in the fixed vector. Memory is exponential in the window width; the
// default 8-bit window matches spec.md's recommendation.
func NewFixedBaseMSM(points []G1Affine) *FixedBaseMSM {
	tables := make([]*fixedPointTable, len(points))
	for i := range points {
		tables[i] = newFixedPointTable(&points[i])
	}
	return &FixedBaseMSM{tables: tables}
}

// ScalarVector computes sum(scalars[i] * points[i]) over the fixed point
// vector NewFixedBaseMSM was built from, using the precomputed tables.
// len(scalars) may be less than the number of base points (a shorter
// polynomial than the full trusted-setup degree); it must not exceed it.
func (m *FixedBaseMSM) ScalarVector(scalars []Scalar) (G1Affine, error) {
	if len(scalars) > len(m.tables) {
		return G1Affine{}, errMSMLengthMismatch
	}
	acc := G1Identity()
	for i, s := range scalars {
		if s.IsZero() {
			continue
		}
		term := m.tables[i].scalarMul(&s)
		acc = G1Add(&acc, &term)
	}
	return acc, nil
}

// fixedPointTable holds windowed precomputed multiples of a single base
// point, the per-point building block of FixedBaseMSM.
type fixedPointTable struct {
	window      uint
	precomputed [][]G1Affine // precomputed[w][d] = [d * 2^(w*window)] * base
}

// newFixedPointTable builds a windowed precomputation table for base.
func newFixedPointTable(base *G1Affine) *fixedPointTable {
	const window = defaultFixedBaseWindow
	numWindows := (fr.Bits + window - 1) / window
	digitCount := 1 << window

	table := &fixedPointTable{window: window}
	table.precomputed = make([][]G1Affine, numWindows)

	step := *base
	for w := 0; w < numWindows; w++ {
		row := make([]G1Affine, digitCount)
		row[0] = G1Identity()
		for d := 1; d < digitCount; d++ {
			row[d] = G1Add(&row[d-1], &step)
		}
		table.precomputed[w] = row

		for i := 0; i < window; i++ {
			step = G1Add(&step, &step)
		}
	}
	return table
}

// scalarMul returns [s]base using the precomputed windowed table.
func (t *fixedPointTable) scalarMul(s *Scalar) G1Affine {
	bytes := s.Bytes()
	bits := bitsFromBigEndian(bytes[:])

	acc := G1Identity()
	for w := 0; w < len(t.precomputed); w++ {
		digit := extractWindow(bits, uint(w)*t.window, t.window)
		if digit == 0 {
			continue
		}
		acc = G1Add(&acc, &t.precomputed[w][digit])
	}
	return acc
}

// bitsFromBigEndian reverses a big-endian byte slice into a little-endian
// bit slice, least-significant bit first, so extractWindow can pull
// windows starting from bit 0.
func bitsFromBigEndian(b []byte) []bool {
	bits := make([]bool, len(b)*8)
	for i, byteVal := range b {
		for bit := 0; bit < 8; bit++ {
			pos := (len(b)-1-i)*8 + bit
			bits[pos] = (byteVal>>uint(bit))&1 == 1
		}
	}
	return bits
}

func extractWindow(bits []bool, start, width uint) int {
	v := 0
	for i := uint(0); i < width; i++ {
		pos := start + i
		if pos >= uint(len(bits)) {
			break
		}
		if bits[pos] {
			v |= 1 << i
		}
	}
	return v
}
