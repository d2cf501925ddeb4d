package tests

import (
	"strings"
	"testing"

	crypt "github.com/IvanChernomyrdin/go-recipe-api/internal/server/crypto"
)

func argonParams() crypt.PasswordParams {
	return crypt.PasswordParams{
		Hasher: crypt.HasherArgon2id,
		Argon2: crypt.Argon2Params{
			Time:      1,
			MemoryKiB: 32 * 1024,
			Threads:   1,
			KeyLen:    32,
			SaltLen:   16,
		},
	}
}

func bcryptParams() crypt.PasswordParams {
	return crypt.PasswordParams{Hasher: crypt.HasherBcrypt, BcryptCost: 4}
}

// Хэширование и успешная проверка для обоих алгоритмов
func TestHashAndVerifyPassword_OK(t *testing.T) {
	for name, params := range map[string]crypt.PasswordParams{
		"argon2id": argonParams(),
		"bcrypt":   bcryptParams(),
	} {
		t.Run(name, func(t *testing.T) {
			hash, err := crypt.HashPassword("supersecretpassword", params)
			if err != nil {
				t.Fatalf("HashPassword error: %v", err)
			}
			if strings.Contains(hash, "supersecretpassword") {
				t.Fatal("hash must not contain plaintext")
			}

			ok, err := crypt.VerifyPassword("supersecretpassword", hash)
			if err != nil {
				t.Fatalf("VerifyPassword error: %v", err)
			}
			if !ok {
				t.Fatal("expected password to be valid")
			}

			ok, err = crypt.VerifyPassword("wrong-password", hash)
			if err != nil {
				t.Fatalf("VerifyPassword error: %v", err)
			}
			if ok {
				t.Fatal("expected password to be invalid")
			}
		})
	}
}

// Формат argon2id
func TestHashPassword_Argon2Format(t *testing.T) {
	hash, err := crypt.HashPassword("banana", argonParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "argon2id$v=19$m=32768,t=1,p=1$") {
		t.Fatalf("unexpected hash format: %q", hash)
	}
}

// Пустой пароль
func TestHashPassword_EmptyPassword(t *testing.T) {
	_, err := crypt.HashPassword("", argonParams())
	if err == nil {
		t.Fatal("expected error for empty password")
	}
}

// Неизвестный алгоритм
func TestHashPassword_UnknownHasher(t *testing.T) {
	_, err := crypt.HashPassword("banana", crypt.PasswordParams{Hasher: "md5"})
	if err == nil {
		t.Fatal("expected error for unknown hasher")
	}
}

// Нулевые параметры argon2id: ошибка вместо паники
func TestHashPassword_Argon2ZeroParams(t *testing.T) {
	_, err := crypt.HashPassword("banana", crypt.PasswordParams{Hasher: crypt.HasherArgon2id})
	if err == nil {
		t.Fatal("expected error for zero argon2 params")
	}
}

// Битый формат хэша
func TestVerifyPassword_InvalidFormat(t *testing.T) {
	_, err := crypt.VerifyPassword("password", "not-a-valid-hash")
	if err == nil {
		t.Fatal("expected error for invalid hash format")
	}
}

// Соль разная (хэши разные)
func TestHashPassword_DifferentSalt(t *testing.T) {
	h1, _ := crypt.HashPassword("same-password", argonParams())
	h2, _ := crypt.HashPassword("same-password", argonParams())

	if h1 == h2 {
		t.Fatal("expected different hashes for same password")
	}
}
