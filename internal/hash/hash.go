package hash

import (
	"crypto/sha1"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// Hasher produces one-way hashes of raw credentials.
type Hasher struct{}

func New() *Hasher {
	return &Hasher{}
}

// Hash hashes a raw password. Legacy mode is the SHA-1/base64 scheme used by
// accounts imported from the old fleet; new accounts use bcrypt.
func (h *Hasher) Hash(password string, legacy bool) (string, error) {
	if legacy {
		sum := sha1.Sum([]byte(password))
		return base64.StdEncoding.EncodeToString(sum[:]), nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether a raw password matches a stored hash, accepting
// either scheme. Legacy hashes are deterministic, so a direct re-hash
// comparison is sufficient for them.
func (h *Hasher) Compare(stored, password string) bool {
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil {
		return true
	}
	legacy, _ := h.Hash(password, true)
	return stored == legacy
}
