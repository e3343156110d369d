// Package crypto implements one-way password hashing for the credential store.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable salted hashes and
// checks plaintexts against them. Plaintexts cannot be recovered from a hash.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. Two calls with the same
	// plaintext return different hashes, both accepted by Verify.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. The comparison is
	// constant-time; a malformed hash never matches.
	Verify(plaintext, hash string) bool
}
