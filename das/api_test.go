package das

import (
	"testing"

	"github.com/eth2030/kzgcore/crypto"
)

// sampleBlobBytes builds a canonical wire-format blob (FieldElementsPerBlob
// scalars, each < BLS_MODULUS, serialized big-endian) from a simple
// deterministic sequence.
func sampleBlobBytes() []byte {
	scalars := make([]crypto.Scalar, crypto.KZGFieldElementsPerBlob)
	for i := range scalars {
		scalars[i] = crypto.ScalarFromUint64(uint64(i%251 + 1))
	}
	return SerializeBlob(scalars)
}

func scalarBytes(v uint64) []byte {
	s := crypto.ScalarFromUint64(v)
	b := crypto.ScalarToBytes(&s)
	return b[:]
}

func TestBlobToKZGCommitmentMatchesDirectCommit(t *testing.T) {
	ctx := testFullContext(t)
	blob := sampleBlobBytes()

	got, err := BlobToKZGCommitment(ctx, blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}

	poly, err := blobToPolynomial(blob)
	if err != nil {
		t.Fatalf("blobToPolynomial: %v", err)
	}
	want, err := crypto.CommitPolynomial(ctx.CommitKey, poly)
	if err != nil {
		t.Fatalf("CommitPolynomial: %v", err)
	}
	if got != crypto.G1SerializeCompressed(&want) {
		t.Errorf("BlobToKZGCommitment does not match a direct commit of the deserialized polynomial")
	}
}

func TestBlobToKZGCommitmentRejectsWrongSize(t *testing.T) {
	ctx := testFullContext(t)
	if _, err := BlobToKZGCommitment(ctx, make([]byte, 17)); err != crypto.ErrKZGInvalidBlobSize {
		t.Errorf("expected ErrKZGInvalidBlobSize, got %v", err)
	}
}

func TestBlobToKZGCommitmentRejectsNonCanonicalFieldElement(t *testing.T) {
	ctx := testFullContext(t)
	blob := sampleBlobBytes()
	for i := range blob[:crypto.KZGBytesPerFieldElement] {
		blob[i] = 0xff
	}
	if _, err := BlobToKZGCommitment(ctx, blob); err != crypto.ErrKZGFieldElementOutOfRange {
		t.Errorf("expected ErrKZGFieldElementOutOfRange, got %v", err)
	}
}

func TestComputeAndVerifyKZGProofRoundTrip(t *testing.T) {
	ctx := testFullContext(t)
	blob := sampleBlobBytes()

	commitment, err := BlobToKZGCommitment(ctx, blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}

	z := scalarBytes(4242)
	proof, y, err := ComputeKZGProof(ctx, blob, z)
	if err != nil {
		t.Fatalf("ComputeKZGProof: %v", err)
	}

	ok, err := VerifyKZGProof(ctx, commitment[:], z, y[:], proof[:])
	if err != nil {
		t.Fatalf("VerifyKZGProof: %v", err)
	}
	if !ok {
		t.Errorf("VerifyKZGProof rejected a valid single-point proof")
	}
}

func TestVerifyKZGProofRejectsBadCommitmentFormat(t *testing.T) {
	ctx := testFullContext(t)
	commitment := make([]byte, crypto.KZGBytesPerCommitment)
	z := scalarBytes(1)
	y := scalarBytes(2)
	proof := make([]byte, crypto.KZGBytesPerProof)
	proof[0] = 0x80
	if _, err := VerifyKZGProof(ctx, commitment, z, y, proof); err != crypto.ErrKZGInvalidCommitmentFormat {
		t.Errorf("expected ErrKZGInvalidCommitmentFormat, got %v", err)
	}
}

func TestComputeAndVerifyBlobKZGProofRoundTrip(t *testing.T) {
	ctx := testFullContext(t)
	blob := sampleBlobBytes()

	commitment, err := BlobToKZGCommitment(ctx, blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}
	proof, err := ComputeBlobKZGProof(ctx, blob, commitment[:])
	if err != nil {
		t.Fatalf("ComputeBlobKZGProof: %v", err)
	}

	ok, err := VerifyBlobKZGProof(ctx, blob, commitment[:], proof[:])
	if err != nil {
		t.Fatalf("VerifyBlobKZGProof: %v", err)
	}
	if !ok {
		t.Errorf("VerifyBlobKZGProof rejected a valid blob proof")
	}

	// A corrupted blob should fail against the same commitment/proof.
	corrupted := append([]byte(nil), blob...)
	corrupted[0] ^= 0x01
	ok, err = VerifyBlobKZGProof(ctx, corrupted, commitment[:], proof[:])
	if err != nil {
		t.Fatalf("VerifyBlobKZGProof: %v", err)
	}
	if ok {
		t.Errorf("VerifyBlobKZGProof accepted a proof against a corrupted blob")
	}
}

func TestVerifyBlobKZGProofBatchRoundTrip(t *testing.T) {
	ctx := testFullContext(t)
	n := 3
	blobs := make([][]byte, n)
	commitments := make([][]byte, n)
	proofs := make([][]byte, n)

	for i := 0; i < n; i++ {
		scalars := make([]crypto.Scalar, crypto.KZGFieldElementsPerBlob)
		for j := range scalars {
			scalars[j] = crypto.ScalarFromUint64(uint64((i+1)*j + i + 1))
		}
		blob := SerializeBlob(scalars)
		commitment, err := BlobToKZGCommitment(ctx, blob)
		if err != nil {
			t.Fatalf("BlobToKZGCommitment: %v", err)
		}
		proof, err := ComputeBlobKZGProof(ctx, blob, commitment[:])
		if err != nil {
			t.Fatalf("ComputeBlobKZGProof: %v", err)
		}
		blobs[i] = blob
		commitments[i] = commitment[:]
		proofs[i] = proof[:]
	}

	ok, err := VerifyBlobKZGProofBatch(ctx, blobs, commitments, proofs)
	if err != nil {
		t.Fatalf("VerifyBlobKZGProofBatch: %v", err)
	}
	if !ok {
		t.Errorf("VerifyBlobKZGProofBatch rejected a valid batch")
	}
}

func TestVerifyBlobKZGProofBatchLengthMismatch(t *testing.T) {
	ctx := testFullContext(t)
	_, err := VerifyBlobKZGProofBatch(ctx, [][]byte{{}}, nil, nil)
	if err != ErrAPILengthMismatch {
		t.Errorf("expected ErrAPILengthMismatch, got %v", err)
	}
}

func TestComputeCellsAndKZGProofsAndVerifyBatch(t *testing.T) {
	ctx := testFullContext(t)
	blob := sampleBlobBytes()

	commitment, err := BlobToKZGCommitment(ctx, blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}
	cells, proofs, err := ComputeCellsAndKZGProofs(ctx, blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}
	if len(cells) != crypto.KZGCellsPerExtBlob || len(proofs) != crypto.KZGCellsPerExtBlob {
		t.Fatalf("expected %d cells and proofs, got %d/%d", crypto.KZGCellsPerExtBlob, len(cells), len(proofs))
	}

	indices := []uint64{0, 64, 127}
	batchCommitments := make([][]byte, len(indices))
	batchCells := make([][]byte, len(indices))
	batchProofs := make([][]byte, len(indices))
	for i, idx := range indices {
		batchCommitments[i] = commitment[:]
		batchCells[i] = cells[idx]
		batchProofs[i] = proofs[idx]
	}

	ok, err := VerifyCellKZGProofBatch(ctx, batchCommitments, indices, batchCells, batchProofs)
	if err != nil {
		t.Fatalf("VerifyCellKZGProofBatch: %v", err)
	}
	if !ok {
		t.Errorf("VerifyCellKZGProofBatch rejected a valid batch")
	}
}

func TestRecoverCellsAndKZGProofsRoundTrip(t *testing.T) {
	ctx := testFullContext(t)
	blob := sampleBlobBytes()

	originalCells, originalProofs, err := ComputeCellsAndKZGProofs(ctx, blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	var indices []uint64
	var half [][]byte
	for i := 0; i < crypto.KZGCellsPerExtBlob; i += 2 {
		indices = append(indices, uint64(i))
		half = append(half, originalCells[i])
	}

	recoveredCells, recoveredProofs, err := RecoverCellsAndKZGProofs(ctx, indices, half)
	if err != nil {
		t.Fatalf("RecoverCellsAndKZGProofs: %v", err)
	}
	if len(recoveredCells) != len(originalCells) || len(recoveredProofs) != len(originalProofs) {
		t.Fatalf("recovered cell/proof counts do not match the original")
	}
	for i := range originalCells {
		if string(recoveredCells[i]) != string(originalCells[i]) {
			t.Fatalf("recovered cell %d does not match the original", i)
		}
	}
}

func TestRecoverCellsAndKZGProofsLengthMismatch(t *testing.T) {
	ctx := testFullContext(t)
	_, _, err := RecoverCellsAndKZGProofs(ctx, []uint64{0, 1}, [][]byte{{}})
	if err != ErrAPILengthMismatch {
		t.Errorf("expected ErrAPILengthMismatch, got %v", err)
	}
}
