package service

// KeyHasher defines the interface for hashing and verifying shared secrets,
// such as the curator API key. This abstracts the underlying hashing algorithm
// (e.g., bcrypt), keeping the domain pure.
type KeyHasher interface {
	// Hash generates a salted hash from a plaintext key.
	Hash(key string) (string, error)

	// Check compares a plaintext key with a hash to see if they match.
	Check(key, hash string) bool
}
