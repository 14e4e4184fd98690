// Trusted setup and Context construction for EIP-4844/7594 polynomial
// commitments.
//
// Generating a trusted setup (a multi-party powers-of-tau ceremony) is out
// of scope here: the core receives already-parsed group elements, the way
// a real deployment loads the published Ethereum ceremony transcript from
// a JSON/SSZ file and hands this package the decoded points, never the
// ceremony protocol that produced them. NewTrustedSetup is that boundary.
// TrustedSetup/Context/NewContext are kept from the teacher's
// kzg_ceremony.go almost unchanged; only the point types moved to the
// gnark-crypto-backed G1Affine/G2Affine facade.
package crypto

import (
	"errors"

	"github.com/eth2030/kzgcore/log"
)

var ceremonyLog = log.Default().Module("crypto")

var (
	// ErrTrustedSetupEmpty is returned when a trusted setup has no G1 or
	// G2 powers.
	ErrTrustedSetupEmpty = errors.New("kzg: trusted setup has no powers of tau")
	// ErrTrustedSetupBadGenerator is returned when a trusted setup's first
	// G1 power is not the G1 generator (g1Powers[0] must equal [tau^0]_1).
	ErrTrustedSetupBadGenerator = errors.New("kzg: trusted setup's first G1 power is not the generator")
)

// TrustedSetup is a structured reference string suitable for KZG
// polynomial commitments, ready to be split into a CommitKey,
// VerificationKey and opening key via NewContext. G2Powers is short (only
// as long as the largest vanishing-polynomial degree FK20 multi-point
// verification needs, i.e. FieldElementsPerCell+1) rather than tracking
// the full G1Powers length.
type TrustedSetup struct {
	G1Powers []G1Affine
	G2Powers []G2Affine
	G2Tau    G2Affine
}

// NewTrustedSetup validates and wraps already-parsed trusted-setup group
// elements (the ceremony ingestion boundary: a collaborator parses the
// setup file's hex-encoded points, this function is the first thing in
// the core that touches them). g1Powers[i] must be [tau^i]_1; g2Powers[i]
// must be [tau^i]_2; g2Tau is [tau]_2 (g2Powers[1] when g2Powers is long
// enough to carry it, kept as a separate field since single-point KZG
// verification only ever needs this one G2 power and callers sizing
// g2Powers purely for FK20 need not extend it to cover it).
func NewTrustedSetup(g1Powers []G1Affine, g2Powers []G2Affine, g2Tau G2Affine) (*TrustedSetup, error) {
	if len(g1Powers) == 0 || len(g2Powers) == 0 {
		return nil, ErrTrustedSetupEmpty
	}
	g1Gen := G1Generator()
	if !g1Powers[0].Equal(&g1Gen) {
		return nil, ErrTrustedSetupBadGenerator
	}
	return &TrustedSetup{
		G1Powers: g1Powers,
		G2Powers: g2Powers,
		G2Tau:    g2Tau,
	}, nil
}

// NewInsecureTestTrustedSetup derives a TrustedSetup directly from a
// chosen secret scalar rather than a multi-party ceremony transcript.
// Nothing in this package ever calls it: production Contexts are built by
// NewTrustedSetup from a parsed ceremony file. It exists because crypto's
// and das's test suites both need a real, internally-consistent SRS
// without shipping a fixture file or running an actual ceremony — the
// secret is known, so the result MUST NEVER be used outside tests.
func NewInsecureTestTrustedSetup(secret uint64, degree, g2Degree int) (*TrustedSetup, error) {
	if degree < 0 || g2Degree < 0 {
		return nil, ErrTrustedSetupEmpty
	}
	tau := ScalarFromUint64(secret)

	g1Gen := G1Generator()
	g1Powers := make([]G1Affine, degree+1)
	power := ScalarOne()
	for i := range g1Powers {
		g1Powers[i] = G1ScalarMul(&g1Gen, &power)
		power = ScalarMul(&power, &tau)
	}

	g2Gen := G2Generator()
	g2Powers := make([]G2Affine, g2Degree+1)
	power = ScalarOne()
	for i := range g2Powers {
		g2Powers[i] = G2ScalarMul(&g2Gen, &power)
		power = ScalarMul(&power, &tau)
	}
	g2Tau := G2ScalarMul(&g2Gen, &tau)

	return &TrustedSetup{G1Powers: g1Powers, G2Powers: g2Powers, G2Tau: g2Tau}, nil
}

// ContextMode selects how much of a Context's key material is populated.
type ContextMode int

const (
	// ModeFull builds both the CommitKey and VerificationKey: a prover
	// context.
	ModeFull ContextMode = iota
	// ModeVerifierOnly builds only the VerificationKey, skipping the
	// (much larger) CommitKey allocation: a verifier-only context.
	ModeVerifierOnly
)

// ContextOption configures Context construction.
type ContextOption func(*contextOptions)

type contextOptions struct {
	mode       ContextMode
	usePrecomp bool
}

// WithMode sets whether the Context is built for proving (ModeFull, the
// default) or verification only (ModeVerifierOnly).
func WithMode(m ContextMode) ContextOption {
	return func(o *contextOptions) { o.mode = m }
}

// WithPrecomputedTables enables the commit key's fixed-base MSM
// precomputation tables (Component C), trading memory for faster
// repeated CommitPolynomial calls against the same trusted setup.
func WithPrecomputedTables(enabled bool) ContextOption {
	return func(o *contextOptions) { o.usePrecomp = enabled }
}

// Context bundles a CommitKey and VerificationKey derived from a single
// TrustedSetup, the unit of configuration every top-level KZG/FK20
// operation takes.
type Context struct {
	CommitKey *CommitKey
	// VerificationKey holds the single-point KZG verifier's key material.
	VerificationKey *VerificationKey
	// OpeningG1Powers and G2Powers are the (short) FK20 multi-opening
	// key material: G1 powers to commit a cell's interpolated remainder
	// polynomial, G2 powers to commit a cell's vanishing polynomial, plus
	// the single extra power VerifyCellProofBatch needs paired against
	// the aggregated proof ([tau^FieldElementsPerCell]_2). Populated
	// regardless of ContextMode, since both are tiny (FieldElementsPerCell+1
	// points) next to the full CommitKey.
	OpeningG1Powers []G1Affine
	G2Powers        []G2Affine
}

// NewContext builds a Context from a trusted setup.
//
//	ModeFull:         CommitKey holds every G1 power; used for committing
//	                   and proving.
//	ModeVerifierOnly:  CommitKey is nil; the VerificationKey (G1/G2
//	                   generators and [tau]G2) and the short opening
//	                   powers are populated.
func NewContext(ts *TrustedSetup, opts ...ContextOption) (*Context, error) {
	cfg := contextOptions{mode: ModeFull}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(ts.G1Powers) == 0 {
		return nil, ErrTrustedSetupEmpty
	}

	vk := &VerificationKey{
		G1Gen: ts.G1Powers[0],
		G2Gen: G2Generator(),
		G2Tau: ts.G2Tau,
	}

	openingSize := len(ts.G2Powers)
	if openingSize > len(ts.G1Powers) {
		openingSize = len(ts.G1Powers)
	}
	ctx := &Context{
		VerificationKey: vk,
		G2Powers:        ts.G2Powers,
		OpeningG1Powers: ts.G1Powers[:openingSize],
	}
	if cfg.mode == ModeFull {
		ctx.CommitKey = &CommitKey{PowersG1: ts.G1Powers}
		if cfg.usePrecomp {
			ctx.CommitKey.EnablePrecomputedTables()
		}
	}

	ceremonyLog.Info("kzg context built",
		"mode", cfg.mode,
		"srs_degree", len(ts.G1Powers)-1,
		"precompute", cfg.usePrecomp,
	)

	return ctx, nil
}
