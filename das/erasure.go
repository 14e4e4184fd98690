package das

// Reed-Solomon erasure recovery over Fr (EIP-7594 cell recovery).
//
// The extended blob's FIELD_ELEMENTS_PER_EXT_BLOB evaluations are a
// Reed-Solomon codeword: only half the points (the original blob) carry
// independent information, so any half of the CELLS_PER_EXT_BLOB cells
// (cosets of FIELD_ELEMENTS_PER_CELL evaluation points each) suffice to recover
// the rest. Recovery constructs the vanishing polynomial Z(X) over the
// missing evaluation points, masks the known evaluations to zero at the
// missing points, and divides out Z via the standard coset-shift trick
// (direct pointwise division is singular exactly where Z vanishes).
//
// The teacher's das/reed_solomon_encode.go and das/erasure/* implement a
// different Reed-Solomon entirely: GF(2^16) byte-symbol codes with
// primitive-element evaluation points, unrelated to this field or
// algorithm (see DESIGN.md, Component F) — deleted rather than adapted.
// This file is grounded directly on the recover_polynomial algorithm
// described in spec.md §4.F and implements it from scratch over
// Component A (crypto.Scalar) and Component D's VanishingPolynomial,
// plus Component B's BatchInverse for the pointwise division.

import (
	"errors"
	"math/bits"

	"github.com/eth2030/kzgcore/crypto"
)

var (
	// ErrRSNotEnoughCells is returned when fewer than half the extended
	// blob's cells are present: recovery is information-theoretically
	// impossible below that threshold.
	ErrRSNotEnoughCells = errors.New("das: fewer than half of CellsPerExtBlob cells present")
	// ErrRSDuplicateCell is returned when the same cell index appears
	// more than once in the input.
	ErrRSDuplicateCell = errors.New("das: duplicate cell index")
	// ErrRSCellIndexRange is returned when a cell index is out of range.
	ErrRSCellIndexRange = errors.New("das: cell index out of range")
)

// RecoverExtendedBlob reconstructs every scalar of an extended blob
// (length extBlobLen, a power of two) given a subset of cells, each
// cellSize scalars wide, addressed by cell index (0-indexed, < number of
// cells). At least half of the cells must be present.
func RecoverExtendedBlob(extBlobLen int, cellSize int, cellIndices []uint64, cellValues [][]crypto.Scalar) ([]crypto.Scalar, error) {
	numCells := extBlobLen / cellSize
	if len(cellIndices) != len(cellValues) {
		return nil, ErrRSCellIndexRange
	}
	if len(cellIndices)*2 < numCells {
		return nil, ErrRSNotEnoughCells
	}

	// Caller-supplied cell indices are external (bit-reversed) per
	// spec.md §3; un-bit-reverse to the internal coset index before
	// placing values in the natural-order codeword (§4.I step 1).
	logNumCells := uint(bits.Len(uint(numCells)) - 1)

	present := make([]bool, numCells)
	known := make([]crypto.Scalar, extBlobLen)
	for i, idx := range cellIndices {
		if idx >= uint64(numCells) {
			return nil, ErrRSCellIndexRange
		}
		internalIdx := Brp(idx, logNumCells)
		if present[internalIdx] {
			return nil, ErrRSDuplicateCell
		}
		present[internalIdx] = true
		if len(cellValues[i]) != cellSize {
			return nil, ErrRSCellIndexRange
		}
		// Internal coset c holds the codeword positions c + numCells*j,
		// the same layout ComputeCellsAndProofs slices cells from.
		for j, v := range cellValues[i] {
			known[int(internalIdx)+numCells*j] = v
		}
	}

	domain := NewDomain(uint64(extBlobLen))
	roots := domain.roots

	// Missing evaluation points, grouped by cell so the vanishing
	// polynomial only needs the roots at missing positions.
	var missingRoots []crypto.Scalar
	for cell := 0; cell < numCells; cell++ {
		if present[cell] {
			continue
		}
		for j := 0; j < cellSize; j++ {
			missingRoots = append(missingRoots, roots[cell+numCells*j])
		}
	}
	if len(missingRoots) == 0 {
		return known, nil
	}

	// TODO: balance the product tree for O(n log^2 n) vanishing-polynomial
	// construction; the current left-to-right fold is O(n^2) in the
	// number of missing scalars.
	zeroCoeff := crypto.VanishingPolynomial(missingRoots)
	zeroCoeff = padScalars(zeroCoeff, extBlobLen)

	// maskedEval(i) = known(i) for present cells, 0 for missing — equals
	// eval(Z)*eval(P) pointwise everywhere, since Z vanishes exactly
	// where the mask does.
	maskedEval := make([]crypto.Scalar, extBlobLen)
	for i := range known {
		cell := i % numCells
		if present[cell] {
			maskedEval[i] = known[i]
		}
	}

	zeroEval := domain.FFT(zeroCoeff)
	for i := range maskedEval {
		maskedEval[i] = crypto.ScalarMul(&maskedEval[i], &zeroEval[i])
	}
	polyTimesZeroCoeff := domain.InverseFFT(maskedEval)

	// Coset shift: evaluate both (P*Z) and Z at x*shift, where shift is a
	// primitive element outside the domain's root set, so Z is nonzero
	// everywhere and pointwise division is safe.
	shift := crypto.ScalarFromUint64(7)
	shiftedPZ := scalePowers(polyTimesZeroCoeff, &shift)
	shiftedZ := scalePowers(zeroCoeff, &shift)

	shiftedPZEval := domain.FFT(shiftedPZ)
	shiftedZEval := domain.FFT(shiftedZ)

	zInv := crypto.BatchInverse(shiftedZEval)
	shiftedReconstructedEval := make([]crypto.Scalar, extBlobLen)
	for i := range shiftedReconstructedEval {
		shiftedReconstructedEval[i] = crypto.ScalarMul(&shiftedPZEval[i], &zInv[i])
	}

	shiftedReconstructedCoeff := domain.InverseFFT(shiftedReconstructedEval)
	shiftInv := crypto.ScalarInv(&shift)
	reconstructedCoeff := scalePowers(shiftedReconstructedCoeff, &shiftInv)

	return domain.FFT(reconstructedCoeff), nil
}

// scalePowers returns [p[i] * s^i] for i in range.
func scalePowers(p []crypto.Scalar, s *crypto.Scalar) []crypto.Scalar {
	out := make([]crypto.Scalar, len(p))
	power := crypto.ScalarOne()
	for i := range p {
		out[i] = crypto.ScalarMul(&p[i], &power)
		power = crypto.ScalarMul(&power, s)
	}
	return out
}

// padScalars right-pads p with zeros up to length n, or truncates — used
// to align the vanishing polynomial's coefficient vector with the
// domain size before an FFT.
func padScalars(p []crypto.Scalar, n int) []crypto.Scalar {
	if len(p) >= n {
		return p[:n]
	}
	out := make([]crypto.Scalar, n)
	copy(out, p)
	return out
}
