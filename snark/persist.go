package snark

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark/backend/groth16"
)

// EncodeProvingKey serializes pk to its canonical compressed byte
// encoding. The result is an opaque blob to callers.
func EncodeProvingKey(pk ProvingKey) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := pk.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("snark: encode proving key: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeProvingKey deserializes a proving key previously produced by
// EncodeProvingKey.
func DecodeProvingKey(data []byte) (ProvingKey, error) {
	pk := groth16.NewProvingKey(Curve)
	if _, err := pk.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("snark: decode proving key: %w", err)
	}
	return pk, nil
}

// EncodeVerifyingKey serializes vk to its canonical compressed byte
// encoding.
func EncodeVerifyingKey(vk VerifyingKey) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := vk.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("snark: encode verifying key: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeVerifyingKey deserializes a verifying key previously produced by
// EncodeVerifyingKey.
func DecodeVerifyingKey(data []byte) (VerifyingKey, error) {
	vk := groth16.NewVerifyingKey(Curve)
	if _, err := vk.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("snark: decode verifying key: %w", err)
	}
	return vk, nil
}

// EncodeProof serializes proof to its canonical compressed byte
// encoding.
func EncodeProof(proof Proof) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("snark: encode proof: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeProof deserializes a proof previously produced by EncodeProof.
func DecodeProof(data []byte) (Proof, error) {
	proof := groth16.NewProof(Curve)
	if _, err := proof.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("snark: decode proof: %w", err)
	}
	return proof, nil
}
