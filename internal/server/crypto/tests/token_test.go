package tests

import (
	"encoding/hex"
	"testing"

	crypt "github.com/IvanChernomyrdin/go-recipe-api/internal/server/crypto"
)

// Генерация токена: 160 бит в hex
func TestNewToken_OK(t *testing.T) {
	token, err := crypt.NewToken()
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}

	raw, err := hex.DecodeString(token)
	if err != nil {
		t.Fatalf("token is not valid hex: %v", err)
	}
	if len(raw) != crypt.TokenBytes {
		t.Fatalf("expected %d bytes, got %d", crypt.TokenBytes, len(raw))
	}
}

// Уникальность токена
func TestNewToken_Unique(t *testing.T) {
	t1, _ := crypt.NewToken()
	t2, _ := crypt.NewToken()

	if t1 == t2 {
		t.Fatal("expected tokens to be unique")
	}
}

func TestHashToken(t *testing.T) {
	h1 := crypt.HashToken("token-1")
	h2 := crypt.HashToken("token-2")

	if len(h1) != 32 {
		t.Fatalf("expected hash length 32, got %d", len(h1))
	}
	if string(h1) == string(h2) {
		t.Fatal("expected different hashes for different tokens")
	}
	if string(h1) != string(crypt.HashToken("token-1")) {
		t.Fatal("expected hash to be deterministic")
	}
}
