package common

import (
	"strings"
	"testing"
	"time"
)

func newTestSigner() *URLSignerService {
	cache := NewCacheService(60, 60)
	return NewURLSignerService([]byte("test-secret"), cache)
}

func TestSignAndValidate(t *testing.T) {
	signer := newTestSigner()

	token, err := signer.GeneratePresignedToken("session-123", time.Minute)
	if err != nil {
		t.Fatalf("GeneratePresignedToken: %v", err)
	}

	tok, err := signer.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if tok.SessionID != "session-123" {
		t.Errorf("session = %s, want session-123", tok.SessionID)
	}
	if tok.TokenID == "" {
		t.Errorf("expected a token ID claim")
	}
}

func TestTokenSingleUse(t *testing.T) {
	signer := newTestSigner()

	token, err := signer.GeneratePresignedToken("session-123", time.Minute)
	if err != nil {
		t.Fatalf("GeneratePresignedToken: %v", err)
	}

	tok, err := signer.ValidateToken(token)
	if err != nil {
		t.Fatalf("first use should pass: %v", err)
	}
	if err := signer.Consume(tok); err != nil {
		t.Fatalf("first consume should pass: %v", err)
	}
	if err := signer.Consume(tok); err == nil {
		t.Fatal("second consume should be rejected")
	}
	if _, err := signer.ValidateToken(token); err == nil {
		t.Fatal("consumed token should fail validation")
	}
}

func TestValidateDoesNotBurn(t *testing.T) {
	signer := newTestSigner()

	token, err := signer.GeneratePresignedToken("session-123", time.Minute)
	if err != nil {
		t.Fatalf("GeneratePresignedToken: %v", err)
	}

	// Repeated validation without consumption keeps the link alive, so a
	// fetch that fails downstream can be retried.
	if _, err := signer.ValidateToken(token); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	tok, err := signer.ValidateToken(token)
	if err != nil {
		t.Fatalf("second validate: %v", err)
	}
	if err := signer.Consume(tok); err != nil {
		t.Fatalf("consume after repeated validation: %v", err)
	}
}

func TestExpiredToken(t *testing.T) {
	signer := newTestSigner()

	token, err := signer.GeneratePresignedToken("session-123", -time.Minute)
	if err != nil {
		t.Fatalf("GeneratePresignedToken: %v", err)
	}
	if _, err := signer.ValidateToken(token); err == nil {
		t.Fatal("expired token should be rejected")
	}
}

func TestTamperedToken(t *testing.T) {
	signer := newTestSigner()

	token, err := signer.GeneratePresignedToken("session-123", time.Minute)
	if err != nil {
		t.Fatalf("GeneratePresignedToken: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected JWT shape")
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA"
	if _, err := signer.ValidateToken(tampered); err == nil {
		t.Fatal("tampered signature should be rejected")
	}
}

func TestWrongSecret(t *testing.T) {
	signer := newTestSigner()
	other := NewURLSignerService([]byte("different"), NewCacheService(60, 60))

	token, err := other.GeneratePresignedToken("session-123", time.Minute)
	if err != nil {
		t.Fatalf("GeneratePresignedToken: %v", err)
	}
	if _, err := signer.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret should be rejected")
	}
}
