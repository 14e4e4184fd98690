package das

import (
	"bytes"
	"testing"

	"github.com/eth2030/kzgcore/crypto"
)

func TestBlobRoundTrip(t *testing.T) {
	scalars := make([]crypto.Scalar, crypto.KZGFieldElementsPerBlob)
	for i := range scalars {
		scalars[i] = crypto.ScalarFromUint64(uint64(i))
	}
	wire := SerializeBlob(scalars)
	if len(wire) != crypto.KZGBytesPerBlob {
		t.Fatalf("unexpected wire blob length %d", len(wire))
	}
	got, err := DeserializeBlob(wire)
	if err != nil {
		t.Fatalf("DeserializeBlob: %v", err)
	}
	for i := range scalars {
		if !got[i].Equal(&scalars[i]) {
			t.Errorf("scalar %d did not round-trip", i)
		}
	}
}

func TestDeserializeBlobWrongSize(t *testing.T) {
	_, err := DeserializeBlob(make([]byte, 10))
	if err != ErrSerializeWrongBlobSize {
		t.Errorf("expected ErrSerializeWrongBlobSize, got %v", err)
	}
}

func TestCellRoundTrip(t *testing.T) {
	scalars := make([]crypto.Scalar, crypto.KZGFieldElementsPerCell)
	for i := range scalars {
		scalars[i] = crypto.ScalarFromUint64(uint64(i * 7))
	}
	wire := SerializeCell(scalars)
	if len(wire) != crypto.KZGBytesPerCell {
		t.Fatalf("unexpected wire cell length %d", len(wire))
	}
	got, err := DeserializeCell(wire)
	if err != nil {
		t.Fatalf("DeserializeCell: %v", err)
	}
	for i := range scalars {
		if !got[i].Equal(&scalars[i]) {
			t.Errorf("scalar %d did not round-trip", i)
		}
	}
}

func TestDeserializeCellWrongSize(t *testing.T) {
	_, err := DeserializeCell(make([]byte, 5))
	if err != ErrSerializeWrongCellSize {
		t.Errorf("expected ErrSerializeWrongCellSize, got %v", err)
	}
}

func TestDeserializeUntrustedG1RoundTrip(t *testing.T) {
	gen := crypto.G1Generator()
	wire := crypto.G1SerializeCompressed(&gen)
	got, err := DeserializeUntrustedG1(wire[:])
	if err != nil {
		t.Fatalf("DeserializeUntrustedG1: %v", err)
	}
	gotWire := crypto.G1SerializeCompressed(&got)
	if !bytes.Equal(gotWire[:], wire[:]) {
		t.Errorf("round-tripped G1 point does not match original encoding")
	}
}

func TestDeserializeUntrustedG1WrongSize(t *testing.T) {
	_, err := DeserializeUntrustedG1(make([]byte, 10))
	if err != ErrSerializeMalformedPoint {
		t.Errorf("expected ErrSerializeMalformedPoint, got %v", err)
	}
}

func TestDeserializeUntrustedG2RoundTrip(t *testing.T) {
	gen := crypto.G2Generator()
	wire := crypto.G2SerializeCompressed(&gen)
	got, err := DeserializeUntrustedG2(wire[:])
	if err != nil {
		t.Fatalf("DeserializeUntrustedG2: %v", err)
	}
	gotWire := crypto.G2SerializeCompressed(&got)
	if !bytes.Equal(gotWire[:], wire[:]) {
		t.Errorf("round-tripped G2 point does not match original encoding")
	}
}

func TestDeserializeUntrustedG2WrongSize(t *testing.T) {
	_, err := DeserializeUntrustedG2(make([]byte, 10))
	if err != ErrSerializeMalformedPoint {
		t.Errorf("expected ErrSerializeMalformedPoint, got %v", err)
	}
}
