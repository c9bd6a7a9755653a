package snark

import "testing"

func TestProvingKeyEncodeDecodeRoundTrip(t *testing.T) {
	sys, _, _ := s1System(t)
	pk, vk, err := Setup(nil, sys)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	pkBytes, err := EncodeProvingKey(pk)
	if err != nil {
		t.Fatalf("EncodeProvingKey: %v", err)
	}
	if len(pkBytes) == 0 {
		t.Fatal("encoded proving key is empty")
	}
	decodedPK, err := DecodeProvingKey(pkBytes)
	if err != nil {
		t.Fatalf("DecodeProvingKey: %v", err)
	}
	reencoded, err := EncodeProvingKey(decodedPK)
	if err != nil {
		t.Fatalf("EncodeProvingKey (round-trip): %v", err)
	}
	if len(reencoded) != len(pkBytes) {
		t.Fatalf("round-tripped proving key length = %d, want %d", len(reencoded), len(pkBytes))
	}

	vkBytes, err := EncodeVerifyingKey(vk)
	if err != nil {
		t.Fatalf("EncodeVerifyingKey: %v", err)
	}
	if _, err := DecodeVerifyingKey(vkBytes); err != nil {
		t.Fatalf("DecodeVerifyingKey: %v", err)
	}
}

func TestProofEncodeDecodeRoundTrip(t *testing.T) {
	sys, assignment, publicInputs := s1System(t)
	pk, vk, err := Setup(nil, sys)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	proof, err := Prove(nil, sys, pk, assignment)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	encoded, err := EncodeProof(proof)
	if err != nil {
		t.Fatalf("EncodeProof: %v", err)
	}
	decoded, err := DecodeProof(encoded)
	if err != nil {
		t.Fatalf("DecodeProof: %v", err)
	}

	ok, err := Verify(sys, vk, decoded, publicInputs)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected decoded proof to verify")
	}
}
