package crypto

import "testing"

func scalarsFromInts(vs ...int64) []Scalar {
	out := make([]Scalar, len(vs))
	for i, v := range vs {
		if v < 0 {
			s := ScalarFromUint64(uint64(-v))
			out[i] = ScalarNeg(&s)
		} else {
			out[i] = ScalarFromUint64(uint64(v))
		}
	}
	return out
}

func TestPolyEval(t *testing.T) {
	// p(X) = 3 + 2X + X^2
	p := scalarsFromInts(3, 2, 1)
	x := ScalarFromUint64(5)
	got := PolyEval(p, &x)
	want := ScalarFromUint64(3 + 2*5 + 25)
	if !got.Equal(&want) {
		t.Errorf("PolyEval mismatch")
	}
}

func TestPolyEvalEmpty(t *testing.T) {
	x := ScalarFromUint64(7)
	got := PolyEval(nil, &x)
	if !got.IsZero() {
		t.Errorf("PolyEval of empty polynomial should be zero")
	}
}

func TestPolyDivideByLinearExactRoot(t *testing.T) {
	// p(X) = (X-2)(X-3) = 6 - 5X + X^2, divide by (X-2) should give (X-3)
	z := ScalarFromUint64(2)
	p := scalarsFromInts(6, -5, 1)
	q := PolyDivideByLinear(p, &z)
	want := scalarsFromInts(-3, 1)
	if len(q) != len(want) {
		t.Fatalf("unexpected quotient length %d", len(q))
	}
	for i := range want {
		if !q[i].Equal(&want[i]) {
			t.Errorf("quotient coeff %d mismatch", i)
		}
	}
}

func TestPolyAdd(t *testing.T) {
	a := scalarsFromInts(1, 2, 3)
	b := scalarsFromInts(10, 20)
	got := PolyAdd(a, b)
	want := scalarsFromInts(11, 22, 3)
	for i := range want {
		if !got[i].Equal(&want[i]) {
			t.Errorf("PolyAdd coeff %d mismatch", i)
		}
	}
}

func TestPolyScale(t *testing.T) {
	p := scalarsFromInts(1, 2, 3)
	c := ScalarFromUint64(4)
	got := PolyScale(p, &c)
	want := scalarsFromInts(4, 8, 12)
	for i := range want {
		if !got[i].Equal(&want[i]) {
			t.Errorf("PolyScale coeff %d mismatch", i)
		}
	}
}

func TestPolyMulLinearRootsAtEval(t *testing.T) {
	p := scalarsFromInts(1, 1) // 1 + X
	z := ScalarFromUint64(9)
	got := PolyMulLinear(p, &z)
	// (1+X)(X-9) evaluated at X=9 should be zero
	y := PolyEval(got, &z)
	if !y.IsZero() {
		t.Errorf("PolyMulLinear(p, z) should vanish at z")
	}
}

func TestVanishingPolynomialRoots(t *testing.T) {
	points := []Scalar{ScalarFromUint64(1), ScalarFromUint64(2), ScalarFromUint64(3)}
	z := VanishingPolynomial(points)
	for _, pt := range points {
		pt := pt
		y := PolyEval(z, &pt)
		if !y.IsZero() {
			t.Errorf("vanishing polynomial nonzero at root %v", pt)
		}
	}
	notRoot := ScalarFromUint64(4)
	y := PolyEval(z, &notRoot)
	if y.IsZero() {
		t.Errorf("vanishing polynomial unexpectedly zero at non-root")
	}
}

func TestLagrangeInterpolateMatchesEvaluations(t *testing.T) {
	xs := []Scalar{ScalarFromUint64(1), ScalarFromUint64(2), ScalarFromUint64(3), ScalarFromUint64(4)}
	ys := []Scalar{ScalarFromUint64(7), ScalarFromUint64(13), ScalarFromUint64(21), ScalarFromUint64(31)}
	poly := LagrangeInterpolate(xs, ys)
	for i := range xs {
		got := PolyEval(poly, &xs[i])
		if !got.Equal(&ys[i]) {
			t.Errorf("interpolated polynomial disagrees at x=%v", xs[i])
		}
	}
}
