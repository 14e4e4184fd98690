package crypto

// Montgomery batch inversion.
//
// Grounded on the teacher's das/field.go, which inverted field elements one
// at a time with no batching. The erasure codec inverts O(n) scalars per
// call on the hot path, so this replaces the one-at-a-time approach with
// the standard running-product trick: one real inversion plus about 3n
// multiplications instead of n inversions.

// BatchInverse returns the multiplicative inverse of every element of in.
// Elements equal to zero are left as zero in the output rather than
// aborting the batch.
func BatchInverse(in []Scalar) []Scalar {
	out := make([]Scalar, len(in))
	if len(in) == 0 {
		return out
	}

	// Running product of non-zero elements seen so far, skipping zeros.
	prefix := make([]Scalar, len(in))
	acc := ScalarOne()
	for i, v := range in {
		prefix[i] = acc
		if !v.IsZero() {
			acc = ScalarMul(&acc, &v)
		}
	}

	accInv := ScalarInv(&acc)
	for i := len(in) - 1; i >= 0; i-- {
		v := in[i]
		if v.IsZero() {
			continue
		}
		out[i] = ScalarMul(&accInv, &prefix[i])
		accInv = ScalarMul(&accInv, &v)
	}
	return out
}
