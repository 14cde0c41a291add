package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(4) // minimum bcrypt cost keeps the test fast

	digest, err := h.Hash("Sup3r-secret")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if digest == "Sup3r-secret" {
		t.Fatal("digest equals plaintext")
	}
	if !h.Verify("Sup3r-secret", digest) {
		t.Fatal("verify rejected the correct password")
	}
	if h.Verify("wrong-password", digest) {
		t.Fatal("verify accepted the wrong password")
	}
}

func TestHash_Randomized(t *testing.T) {
	h := NewHasher(4)
	a, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("expected per-record salt to produce distinct digests")
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	h := NewHasher(4)
	for _, digest := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if h.Verify("anything", digest) {
			t.Fatalf("verify accepted malformed digest %q", digest)
		}
	}
}

func TestNewHasher_OutOfRangeCost(t *testing.T) {
	h := NewHasher(99)
	digest, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash with fallback cost: %v", err)
	}
	if !h.Verify("pw", digest) {
		t.Fatal("verify failed after cost fallback")
	}
}
