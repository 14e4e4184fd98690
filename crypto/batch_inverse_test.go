package crypto

import "testing"

func TestBatchInverseMatchesIndividual(t *testing.T) {
	in := []Scalar{
		ScalarFromUint64(1),
		ScalarFromUint64(2),
		ScalarFromUint64(3),
		ScalarFromUint64(4),
		ScalarFromUint64(5),
	}
	got := BatchInverse(in)
	for i := range in {
		want := ScalarInv(&in[i])
		if !got[i].Equal(&want) {
			t.Errorf("BatchInverse[%d] != ScalarInv", i)
		}
	}
}

func TestBatchInverseLeavesZeroAsZero(t *testing.T) {
	in := []Scalar{
		ScalarFromUint64(3),
		ScalarZero(),
		ScalarFromUint64(7),
	}
	got := BatchInverse(in)
	if !got[1].IsZero() {
		t.Errorf("BatchInverse of a zero element should stay zero")
	}
	want0 := ScalarInv(&in[0])
	want2 := ScalarInv(&in[2])
	if !got[0].Equal(&want0) || !got[2].Equal(&want2) {
		t.Errorf("BatchInverse around a zero element corrupted neighboring entries")
	}
}

func TestBatchInverseEmpty(t *testing.T) {
	got := BatchInverse(nil)
	if len(got) != 0 {
		t.Errorf("BatchInverse(nil) should be empty, got len %d", len(got))
	}
}

func TestBatchInverseRoundTrip(t *testing.T) {
	in := []Scalar{ScalarFromUint64(11), ScalarFromUint64(13)}
	inv := BatchInverse(in)
	for i := range in {
		prod := ScalarMul(&in[i], &inv[i])
		one := ScalarOne()
		if !prod.Equal(&one) {
			t.Errorf("in[%d] * inv[%d] != 1", i, i)
		}
	}
}
