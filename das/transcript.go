package das

// Fiat-Shamir challenge derivation for batch verification.
//
// Grounded on spec.md §4.K's domain-separated SHA-256 transcript
// (FSBLOBVERIFY_V1_ / RCKZGBATCH___V1_ / RCKZGCBATCH__V1_, each a fixed
// 16-byte ASCII tag) and crypto/sha256, the hash the teacher's
// kzg_ceremony.go already depends on — sha256 is the spec-mandated hash,
// kept as stdlib. Integers (a batch's cell indices) are encoded with
// github.com/holiman/uint256 rather than encoding/binary on a bare
// uint64/big.Int, grounded on the teacher's own direct dependency on
// holiman/uint256 (used throughout core/txpool for bounded integers; not
// previously exercised by the crypto/das packages, wired here).

import (
	"crypto/sha256"

	"github.com/holiman/uint256"

	"github.com/eth2030/kzgcore/crypto"
)

// DomainTag is a fixed 16-byte ASCII Fiat-Shamir domain separator.
type DomainTag [16]byte

// Domain separators matching spec.md §4.K.
var (
	DomainBlobVerify  = DomainTag{'F', 'S', 'B', 'L', 'O', 'B', 'V', 'E', 'R', 'I', 'F', 'Y', '_', 'V', '1', '_'}
	DomainKZGBatch    = DomainTag{'R', 'C', 'K', 'Z', 'G', 'B', 'A', 'T', 'C', 'H', '_', '_', '_', 'V', '1', '_'}
	DomainCellBatch   = DomainTag{'R', 'C', 'K', 'Z', 'G', 'C', 'B', 'A', 'T', 'C', 'H', '_', '_', 'V', '1', '_'}
)

// Transcript accumulates Fiat-Shamir hash input and derives scalar
// challenges from it.
type Transcript struct {
	h *sha256BuilderState
}

type sha256BuilderState struct {
	data []byte
}

// NewTranscript starts a transcript tagged with a fixed domain separator.
func NewTranscript(tag DomainTag) *Transcript {
	t := &Transcript{h: &sha256BuilderState{}}
	t.h.data = append(t.h.data, tag[:]...)
	return t
}

// AppendUint64 appends v as a 32-byte big-endian integer (via uint256,
// not a bare binary.Write) to the transcript.
func (t *Transcript) AppendUint64(v uint64) {
	u := uint256.NewInt(v)
	b := u.Bytes32()
	t.h.data = append(t.h.data, b[:]...)
}

// AppendBytes appends raw bytes (a commitment, a field element, a cell)
// to the transcript verbatim.
func (t *Transcript) AppendBytes(b []byte) {
	t.h.data = append(t.h.data, b...)
}

// AppendScalar appends a scalar's canonical 32-byte encoding.
func (t *Transcript) AppendScalar(s *crypto.Scalar) {
	b := crypto.ScalarToBytes(s)
	t.h.data = append(t.h.data, b[:]...)
}

// AppendG1 appends a G1 point's compressed encoding.
func (t *Transcript) AppendG1(p *crypto.G1Affine) {
	b := crypto.G1SerializeCompressed(p)
	t.h.data = append(t.h.data, b[:]...)
}

// Challenge derives a scalar from the accumulated transcript state via
// SHA-256, reducing the digest modulo r. This is a terminal operation:
// the returned challenge does not feed back into further appends,
// matching the single-challenge-per-proof pattern every batch-verify
// call site in Component H/J uses.
func (t *Transcript) Challenge() crypto.Scalar {
	digest := sha256.Sum256(t.h.data)
	return crypto.ScalarModReduce(digest[:])
}

// PowersOfChallenge derives n sequential powers of a single Fiat-Shamir
// challenge (the random-linear-combination coefficients batch
// verification needs): [1, r, r^2, ..., r^(n-1)].
func (t *Transcript) PowersOfChallenge(n int) []crypto.Scalar {
	r := t.Challenge()
	out := make([]crypto.Scalar, n)
	if n == 0 {
		return out
	}
	out[0] = crypto.ScalarOne()
	for i := 1; i < n; i++ {
		out[i] = crypto.ScalarMul(&out[i-1], &r)
	}
	return out
}
