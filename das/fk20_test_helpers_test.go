package das

import (
	"testing"

	"github.com/eth2030/kzgcore/crypto"
)

// testFullContext builds a trusted setup sized for a real blob
// (FieldElementsPerBlob G1 powers, FieldElementsPerCell+1 G2 powers) from
// a fixed test secret and returns a ModeFull Context, for tests exercising
// the full FK20/KZG pipeline end to end.
func testFullContext(t *testing.T) *crypto.Context {
	t.Helper()
	ts, err := crypto.NewInsecureTestTrustedSetup(987654321, crypto.KZGFieldElementsPerBlob-1, crypto.KZGFieldElementsPerCell)
	if err != nil {
		t.Fatalf("NewInsecureTestTrustedSetup: %v", err)
	}
	ctx, err := crypto.NewContext(ts)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

func samplePolynomial() []crypto.Scalar {
	poly := make([]crypto.Scalar, crypto.KZGFieldElementsPerBlob)
	for i := range poly {
		poly[i] = crypto.ScalarFromUint64(uint64(i%251 + 1))
	}
	return poly
}
