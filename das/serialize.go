package das

// Blob/cell/commitment serialization boundary (Component K).
//
// Grounded on spec.md §4.K and the teacher's crypto/kzg.go
// KZGDecompressG1/KZGCompressG1 ZCash-flag-bit convention, which
// gnark-crypto's native Bytes()/SetBytes() already implement (see
// crypto/bls12381_g1.go). Untrusted wire bytes additionally run through
// github.com/supranational/blst's subgroup-checked deserialization before
// being re-parsed by gnark-crypto for arithmetic: grounded on
// crypto/kzg_goeth_adapter.go, which documents that the real go-eth-kzg
// backend this package's API is modeled on is itself built on blst. Using
// both libraries at this one boundary — blst for untrusted-input
// validation, gnark-crypto for everything downstream — mirrors that
// reference library's own split rather than picking one arbitrarily.

import (
	"errors"

	blst "github.com/supranational/blst/bindings/go"

	"github.com/eth2030/kzgcore/crypto"
)

var (
	ErrSerializeWrongBlobSize  = errors.New("das: blob has wrong size")
	ErrSerializeWrongCellSize  = errors.New("das: cell has wrong size")
	ErrSerializeNotInSubgroup  = errors.New("das: point failed blst subgroup validation")
	ErrSerializeMalformedPoint = errors.New("das: point failed blst deserialization")
)

// DeserializeBlob parses a BytesPerBlob-sized wire blob into
// FieldElementsPerBlob scalars, rejecting any element >= r.
func DeserializeBlob(blob []byte) ([]crypto.Scalar, error) {
	if len(blob) != crypto.KZGBytesPerBlob {
		return nil, ErrSerializeWrongBlobSize
	}
	out := make([]crypto.Scalar, crypto.KZGFieldElementsPerBlob)
	for i := range out {
		offset := i * crypto.KZGBytesPerFieldElement
		s, err := crypto.ScalarFromBytes(blob[offset : offset+crypto.KZGBytesPerFieldElement])
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// SerializeBlob encodes scalars back into a wire blob.
func SerializeBlob(scalars []crypto.Scalar) []byte {
	out := make([]byte, crypto.KZGBytesPerBlob)
	for i, s := range scalars {
		b := crypto.ScalarToBytes(&s)
		copy(out[i*crypto.KZGBytesPerFieldElement:], b[:])
	}
	return out
}

// DeserializeCell parses a BytesPerCell-sized cell into
// FieldElementsPerCell scalars.
func DeserializeCell(cell []byte) ([]crypto.Scalar, error) {
	if len(cell) != crypto.KZGBytesPerCell {
		return nil, ErrSerializeWrongCellSize
	}
	out := make([]crypto.Scalar, crypto.KZGFieldElementsPerCell)
	for i := range out {
		offset := i * crypto.KZGBytesPerFieldElement
		s, err := crypto.ScalarFromBytes(cell[offset : offset+crypto.KZGBytesPerFieldElement])
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// SerializeCell encodes scalars back into a wire cell.
func SerializeCell(scalars []crypto.Scalar) []byte {
	out := make([]byte, crypto.KZGBytesPerCell)
	for i, s := range scalars {
		b := crypto.ScalarToBytes(&s)
		copy(out[i*crypto.KZGBytesPerFieldElement:], b[:])
	}
	return out
}

// DeserializeUntrustedG1 validates and decodes 48 untrusted wire bytes
// into a subgroup-checked G1 point. It runs blst's own deserialization +
// KeyValidate (on-curve + subgroup check) first, then re-parses the same
// bytes through gnark-crypto so all downstream arithmetic uses one
// consistent point representation.
func DeserializeUntrustedG1(b []byte) (crypto.G1Affine, error) {
	if len(b) != crypto.G1BytesLen {
		return crypto.G1Affine{}, ErrSerializeMalformedPoint
	}
	var p blst.P1Affine
	if p.Deserialize(b) == nil {
		return crypto.G1Affine{}, ErrSerializeMalformedPoint
	}
	if !p.KeyValidate() {
		return crypto.G1Affine{}, ErrSerializeNotInSubgroup
	}
	return crypto.G1DeserializeCompressed(b)
}

// DeserializeUntrustedG2 is DeserializeUntrustedG1's G2 counterpart.
func DeserializeUntrustedG2(b []byte) (crypto.G2Affine, error) {
	if len(b) != crypto.G2BytesLen {
		return crypto.G2Affine{}, ErrSerializeMalformedPoint
	}
	var p blst.P2Affine
	if p.Deserialize(b) == nil {
		return crypto.G2Affine{}, ErrSerializeMalformedPoint
	}
	if !p.KeyValidate() {
		return crypto.G2Affine{}, ErrSerializeNotInSubgroup
	}
	return crypto.G2DeserializeCompressed(b)
}
