package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcryptKeyHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptKeyHasher()

	key := "kurator-rahasia-2026"
	hash, err := hasher.Hash(key)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, key, hash)

	assert.True(t, hasher.Check(key, hash))
}

func TestBcryptKeyHasher_Check(t *testing.T) {
	hasher := NewBcryptKeyHasher()

	hash, err := hasher.Hash("kurator-rahasia-2026")
	assert.NoError(t, err)

	// Wrong key
	assert.False(t, hasher.Check("kunci-salah", hash))

	// Empty key
	assert.False(t, hasher.Check("", hash))

	// Corrupt hash
	assert.False(t, hasher.Check("kurator-rahasia-2026", "invalid_hash"))
}
