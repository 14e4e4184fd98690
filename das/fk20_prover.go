package das

// FK20 multi-point opening proof computation (Component I).
//
// Grounded on original_source's kzg-multi-open/src/fk20.rs
// (naive_fk20_open_multi_point / naive_compute_h_poly /
// divide_by_monomial_floor) for the h-polynomial and per-cell proof
// construction, and on fk20/h_poly.rs's compute_h_poly_commitments for
// the headline optimization: once the CellsPerExtBlob-1 h-polynomial
// commitments are known, every cell's proof is a coefficient of the DFT
// of that (zero-padded) commitment vector over the CellsPerExtBlob-th
// roots of unity — computed here with Component E's FFTG1 rather than
// the batched-Toeplitz-matrix-vector construction h_poly.rs uses to
// build the h-polynomial commitments themselves (see DESIGN.md,
// Component I, for why that inner optimization is not replicated).
//
// Concretely, for a degree-<FieldElementsPerBlob polynomial p and
// w a primitive FieldElementsPerExtBlob-th root of unity:
//
//	h_i = p shifted right by i*FieldElementsPerCell coefficients,  i = 1..CellsPerExtBlob-1
//	H_i = Commit(h_i)
//	proof_j = sum_i H_i * (w^j)^((i-1)*FieldElementsPerCell), which is
//	proof_j = FFTG1([H_1 .. H_(CellsPerExtBlob-1), identity])[j]
//
// because (w^j)^FieldElementsPerCell, the FieldElementsPerCell-th power of
// coset j's shift w^j, is itself the j-th power of a primitive
// CellsPerExtBlob-th root of unity.

import (
	"errors"
	"math/bits"

	"github.com/eth2030/kzgcore/crypto"
)

var (
	// ErrFK20WrongPolynomialLength is returned when the input polynomial
	// is not exactly FieldElementsPerBlob coefficients.
	ErrFK20WrongPolynomialLength = errors.New("das: fk20 polynomial must have FieldElementsPerBlob coefficients")
	// ErrFK20CommitKeyTooSmall is returned when the commit key cannot
	// cover the blob's degree bound.
	ErrFK20CommitKeyTooSmall = errors.New("das: fk20 commit key shorter than FieldElementsPerBlob")
)

// CellProofs holds every cell's evaluations and opening proof for one
// blob, ordered by cell index 0..CellsPerExtBlob-1.
type CellProofs struct {
	Cells  [][]crypto.Scalar // CellsPerExtBlob cells, FieldElementsPerCell scalars each
	Proofs []crypto.G1Affine // CellsPerExtBlob quotient commitments
}

// ComputeCellsAndProofs computes every cell's evaluations and FK20
// opening proof for a blob polynomial (low-degree-first coefficients,
// length FieldElementsPerBlob).
func ComputeCellsAndProofs(ck *crypto.CommitKey, poly []crypto.Scalar) (*CellProofs, error) {
	if len(poly) != crypto.KZGFieldElementsPerBlob {
		return nil, ErrFK20WrongPolynomialLength
	}
	if len(ck.PowersG1) < crypto.KZGFieldElementsPerBlob {
		return nil, ErrFK20CommitKeyTooSmall
	}

	const (
		numCells = crypto.KZGCellsPerExtBlob
		cellSize = crypto.KZGFieldElementsPerCell
		extLen   = crypto.KZGScalarsPerExtBlob
	)

	h, err := hPolyCommitments(ck, poly, numCells, cellSize)
	if err != nil {
		return nil, err
	}
	rawProofs := FFTG1(h, RootsOfUnity(numCells))

	extPoly := padScalars(poly, extLen)
	domain := NewDomain(extLen)
	evals := domain.FFT(extPoly)

	// Both the proof FFT and the coset evaluations come out indexed by
	// internal coset index j; bit-reverse into the external cell index
	// the wire format and every other component expect (spec.md §3's
	// "cell index i in the external interface corresponds to internal
	// coset index brp(i, log2(CellsPerExtBlob))").
	logNumCells := uint(bits.Len(uint(numCells)) - 1)
	cells := make([][]crypto.Scalar, numCells)
	proofs := make([]crypto.G1Affine, numCells)
	for j := 0; j < numCells; j++ {
		cell := make([]crypto.Scalar, cellSize)
		for i := 0; i < cellSize; i++ {
			cell[i] = evals[j+numCells*i]
		}
		ext := Brp(uint64(j), logNumCells)
		cells[ext] = cell
		proofs[ext] = rawProofs[j]
	}

	return &CellProofs{Cells: cells, Proofs: proofs}, nil
}

// hPolyCommitments computes the numCells-1 FK20 h-polynomial commitments
// (padded with one identity point to length numCells so the caller can
// feed the result straight into FFTG1) via direct per-h-poly MSM
// commitment, the naive.rs path. The coefficients beyond the blob's
// degree bound are implicitly zero, so h-polys at or past index
// len(poly)/cellSize commit to nothing and are left as the identity.
func hPolyCommitments(ck *crypto.CommitKey, poly []crypto.Scalar, numCells, cellSize int) ([]crypto.G1Affine, error) {
	h := make([]crypto.G1Affine, numCells)
	for i := 1; i < numCells; i++ {
		start := i * cellSize
		if start >= len(poly) {
			h[i-1] = crypto.G1Identity()
			continue
		}
		commitment, err := crypto.CommitPolynomial(ck, poly[start:])
		if err != nil {
			return nil, err
		}
		h[i-1] = commitment
	}
	h[numCells-1] = crypto.G1Identity()
	return h, nil
}
