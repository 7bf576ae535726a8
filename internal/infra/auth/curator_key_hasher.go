package auth

import (
	"golang.org/x/crypto/bcrypt"

	"ngopi/internal/domain/service"
)

// bcryptKeyHasher is a concrete implementation of the KeyHasher interface using bcrypt.
// It guards the curator key that unlocks verification endpoints; only the
// hash is ever configured on the server.
type bcryptKeyHasher struct{}

// NewBcryptKeyHasher is the constructor for bcryptKeyHasher.
func NewBcryptKeyHasher() service.KeyHasher {
	return &bcryptKeyHasher{}
}

// Hash generates a salted hash from a plaintext key.
// bcrypt handles salt generation internally.
func (h *bcryptKeyHasher) Hash(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)

	return string(bytes), err
}

// Check compares a plaintext key with a bcrypt hash.
func (h *bcryptKeyHasher) Check(key, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key))

	// err is nil if the key and hash match.
	return err == nil
}
