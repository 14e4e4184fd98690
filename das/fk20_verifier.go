package das

// FK20 cell proof verification (Component J).
//
// Grounded on original_source's kzg-multi-open/src/proof.rs
// (verify_multi_opening, the batched form, not the naive single-cell
// path kept separately for the cross-check in fk20_naive_test.go): a cell's
// CellSize claimed evaluations interpolate to a remainder polynomial
// I_i(X) over the cell's coset, and the coset's vanishing polynomial
// Z_i(X) = X^CellSize - h_i^CellSize (h_i the coset shift) lets the
// per-cell opening identity collapse to a single scalar power of tau
// rather than a full degree-CellSize G2 commitment:
//
//	e(C_i - [I_i(s)]_1 + h_i^CellSize * pi_i, [1]_2) == e(pi_i, [s^CellSize]_2)
//
// spec.md §4.J sums this over n cells with Fiat-Shamir weights r^i into
// one two-pairing check (weighted_commitment_sum, weighted_evaluation_poly,
// weighted_proofs_times_cosets on the left; the r^i-weighted sum of proofs
// on the right against the fixed [s^CellSize]_2), which is what
// VerifyCellProofBatch implements below; VerifyCellProof is the n=1 case.

import (
	"errors"
	"math/big"
	"math/bits"

	"github.com/eth2030/kzgcore/crypto"
)

var (
	// ErrFK20WrongCellSize is returned when a cell does not contain
	// exactly FieldElementsPerCell scalars.
	ErrFK20WrongCellSize = errors.New("das: fk20 cell must have FieldElementsPerCell scalars")
	// ErrFK20CellIndexRange is returned when a cell index is out of range.
	ErrFK20CellIndexRange = errors.New("das: fk20 cell index out of range")
	// ErrFK20LengthMismatch is returned when parallel batch-verify slices
	// disagree in length.
	ErrFK20LengthMismatch = errors.New("das: fk20 batch-verify slice length mismatch")
)

// cosetPoints returns the FieldElementsPerCell evaluation points assigned
// to internal coset index j: the coset w^j * H of the order-CellSize
// subgroup H of the FieldElementsPerExtBlob-th roots of unity. j is the
// internal coset index; callers holding an external (wire) cell index
// must convert it first via Brp (spec.md §3).
func cosetPoints(roots []crypto.Scalar, numCells, cellSize, j int) []crypto.Scalar {
	points := make([]crypto.Scalar, cellSize)
	for i := 0; i < cellSize; i++ {
		points[i] = roots[j+numCells*i]
	}
	return points
}

// VerifyCellProof checks a single cell's FK20 opening proof against a
// blob commitment; it is the n=1 case of VerifyCellProofBatch.
func VerifyCellProof(ctx *crypto.Context, commitment *crypto.G1Affine, cellIndex uint64, cell []crypto.Scalar, proof *crypto.G1Affine) (bool, error) {
	return VerifyCellProofBatch(ctx,
		[]crypto.G1Affine{*commitment},
		[]uint64{cellIndex},
		[][]crypto.Scalar{cell},
		[]crypto.G1Affine{*proof},
	)
}

// VerifyCellProofBatch verifies many (commitment, cell, proof) triples in
// a single O(1)-pairing check, combining per-cell openings with
// Fiat-Shamir coefficients drawn from Component K's transcript
// (DomainCellBatch) so the caller never supplies its own randomness.
func VerifyCellProofBatch(ctx *crypto.Context, commitments []crypto.G1Affine, cellIndices []uint64, cells [][]crypto.Scalar, proofs []crypto.G1Affine) (bool, error) {
	n := len(commitments)
	if len(cellIndices) != n || len(cells) != n || len(proofs) != n {
		return false, ErrFK20LengthMismatch
	}
	if n == 0 {
		return true, nil
	}

	tr := NewTranscript(DomainCellBatch)
	for i := 0; i < n; i++ {
		tr.AppendG1(&commitments[i])
		tr.AppendUint64(cellIndices[i])
		for _, s := range cells[i] {
			tr.AppendScalar(&s)
		}
		tr.AppendG1(&proofs[i])
	}
	coeffs := tr.PowersOfChallenge(n)

	const numCells = crypto.KZGCellsPerExtBlob
	const cellSize = crypto.KZGFieldElementsPerCell
	logNumCells := uint(bits.Len(uint(numCells)) - 1)
	roots := RootsOfUnity(crypto.KZGScalarsPerExtBlob)

	// weighted_evaluation_poly = sum_i r^i * I_i(X), accumulated directly
	// in coefficient form since every I_i has the same degree (< CellSize).
	weightedEvalPoly := make([]crypto.Scalar, cellSize)
	// proofCosetWeights[i] = r^i * h_i^CellSize, the per-cell coset-shift
	// weight folded into weighted_proofs_times_cosets.
	proofCosetWeights := make([]crypto.Scalar, n)
	cellSizeExp := big.NewInt(int64(cellSize))

	for i := 0; i < n; i++ {
		if len(cells[i]) != cellSize {
			return false, ErrFK20WrongCellSize
		}
		if cellIndices[i] >= numCells {
			return false, ErrFK20CellIndexRange
		}

		internal := int(Brp(cellIndices[i], logNumCells))
		points := cosetPoints(roots, numCells, cellSize, internal)

		rCoeffs := crypto.LagrangeInterpolate(points, cells[i])
		for k := 0; k < cellSize; k++ {
			term := crypto.ScalarMul(&coeffs[i], &rCoeffs[k])
			weightedEvalPoly[k] = crypto.ScalarAdd(&weightedEvalPoly[k], &term)
		}

		hShift := roots[internal]
		hPow := crypto.ScalarExp(&hShift, cellSizeExp)
		proofCosetWeights[i] = crypto.ScalarMul(&coeffs[i], &hPow)
	}

	weightedCommitmentSum, err := crypto.MSMVarBase(commitments, coeffs)
	if err != nil {
		return false, err
	}
	weightedEvalComm, err := crypto.CommitPolynomial(&crypto.CommitKey{PowersG1: ctx.OpeningG1Powers}, weightedEvalPoly)
	if err != nil {
		return false, err
	}
	weightedProofsTimesCosets, err := crypto.MSMVarBase(proofs, proofCosetWeights)
	if err != nil {
		return false, err
	}
	aggregatedProofs, err := crypto.MSMVarBase(proofs, coeffs)
	if err != nil {
		return false, err
	}

	negWeightedEvalComm := crypto.G1Neg(&weightedEvalComm)
	lhs := crypto.G1Add(&weightedCommitmentSum, &negWeightedEvalComm)
	lhs = crypto.G1Add(&lhs, &weightedProofsTimesCosets)

	negAggregatedProofs := crypto.G1Neg(&aggregatedProofs)

	return crypto.MultiPairingCheck(
		[]crypto.G1Affine{lhs, negAggregatedProofs},
		[]crypto.G2Affine{ctx.VerificationKey.G2Gen, ctx.G2Powers[cellSize]},
	), nil
}
