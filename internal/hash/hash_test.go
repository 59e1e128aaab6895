package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_Bcrypt(t *testing.T) {
	h := New()

	hashed, err := h.Hash("secret123", false)
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret123")))
}

func TestHasher_Legacy(t *testing.T) {
	h := New()

	h1, err := h.Hash("secret123", true)
	assert.NoError(t, err)
	h2, err := h.Hash("secret123", true)
	assert.NoError(t, err)

	// Legacy scheme is deterministic
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, "secret123", h1)
}

func TestHasher_Compare(t *testing.T) {
	h := New()

	modern, _ := h.Hash("pw", false)
	legacy, _ := h.Hash("pw", true)

	assert.True(t, h.Compare(modern, "pw"))
	assert.True(t, h.Compare(legacy, "pw"))
	assert.False(t, h.Compare(modern, "wrong"))
	assert.False(t, h.Compare(legacy, "wrong"))
}
