// Хэширование паролей
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	HasherArgon2id = "argon2id"
	HasherBcrypt   = "bcrypt"
)

type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

// PasswordParams выбирает алгоритм и его параметры.
type PasswordParams struct {
	Hasher     string // argon2id|bcrypt, пусто = argon2id
	Argon2     Argon2Params
	BcryptCost int
}

var ErrEmptyPassword = errors.New("empty password")

// HashPassword хэширует пароль выбранным алгоритмом.
//
// argon2id: argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<hash_b64>
// bcrypt:   стандартный формат $2a$...
func HashPassword(password string, p PasswordParams) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	switch strings.ToLower(p.Hasher) {
	case HasherBcrypt:
		cost := p.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return "", fmt.Errorf("bcrypt: %w", err)
		}
		return string(b), nil
	case "", HasherArgon2id:
		return hashArgon2(password, p.Argon2)
	default:
		return "", fmt.Errorf("unknown password hasher %q", p.Hasher)
	}
}

// VerifyPassword сверяет пароль с хэшем за постоянное время.
// Алгоритм определяется по формату хэша.
func VerifyPassword(password, encoded string) (bool, error) {
	if strings.HasPrefix(encoded, "$2") {
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
	return verifyArgon2(password, encoded)
}

func hashArgon2(password string, p Argon2Params) (string, error) {
	if p.Time == 0 || p.Threads == 0 || p.KeyLen == 0 {
		return "", errors.New("argon2id: invalid params")
	}
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)

	return fmt.Sprintf(
		"argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.MemoryKiB, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func verifyArgon2(password, encoded string) (bool, error) {
	// argon2id $ v=19 $ m=..,t=..,p=.. $ salt $ hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != HasherArgon2id {
		return false, errors.New("invalid hash format")
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, errors.New("invalid params format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, errors.New("invalid salt")
	}
	wantHash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errors.New("invalid hash")
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(wantHash)))
	return subtle.ConstantTimeCompare(got, wantHash) == 1, nil
}
