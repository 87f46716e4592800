package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("password123", 4)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h == "password123" {
		t.Fatalf("hash equals plaintext")
	}
	if !Verify(h, "password123") {
		t.Fatalf("expected verify to succeed for matching password")
	}
	if Verify(h, "password124") {
		t.Fatalf("expected verify to fail for wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("s3cret", 4)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("s3cret", 4)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password are identical")
	}
	if !Verify(h1, "s3cret") || !Verify(h2, "s3cret") {
		t.Fatalf("both salted hashes should verify")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	for _, h := range []string{"", "not-a-hash", "$1$legacy$abcdef"} {
		if Verify(h, "anything") {
			t.Fatalf("malformed hash %q verified", h)
		}
	}
}

func TestHashDefaultCost(t *testing.T) {
	h, err := Hash("password123", 0)
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !Verify(h, "password123") {
		t.Fatalf("default-cost hash should verify")
	}
}
