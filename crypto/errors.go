package crypto

import "errors"

// Deserialization errors (spec.md §7 "Deserialization").
var (
	errScalarWrongLength = errors.New("crypto: scalar must be 32 bytes")
	errScalarNotCanonical = errors.New("crypto: scalar >= field modulus")

	errG1WrongLength  = errors.New("crypto: G1 point must be 48 compressed bytes")
	errG1NotOnCurve   = errors.New("crypto: G1 point not on curve")
	errG1NotInSubgroup = errors.New("crypto: G1 point not in prime-order subgroup")

	errG2WrongLength   = errors.New("crypto: G2 point must be 96 compressed bytes")
	errG2NotOnCurve    = errors.New("crypto: G2 point not on curve")
	errG2NotInSubgroup = errors.New("crypto: G2 point not in prime-order subgroup")
)

// ErrInvalidProof is returned by verification operations (Component H, J)
// when the pairing identity does not hold. It is a proof-validity failure,
// distinct from a deserialization failure.
var ErrInvalidProof = errors.New("crypto: invalid proof")
