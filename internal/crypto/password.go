package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/api-activity/internal/utils"
)

// MaxPasswordBytes is the longest plaintext bcrypt accepts. Peppered
// plaintexts are reduced to a fixed-size HMAC first and are not limited.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by Hash for an unpeppered plaintext longer
// than [MaxPasswordBytes].
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

type bcryptHasher struct {
	cost   int
	pepper string
}

// NewPasswordHasher returns a bcrypt based [PasswordHasher].
//
// cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// [bcrypt.DefaultCost]. A non-empty pepper is applied to every plaintext as
// an HMAC-SHA256 key before bcrypt, so hashes stored with one pepper only
// verify with the same pepper.
func NewPasswordHasher(cost int, pepper string) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{
		cost:   cost,
		pepper: pepper,
	}
}

// PasswordLimit returns the plaintext length limit in bytes for a hasher
// built with pepper, or 0 when there is none.
func PasswordLimit(pepper string) int {
	if pepper != "" {
		return 0
	}

	return MaxPasswordBytes
}

func (b *bcryptHasher) Hash(plaintext string) (string, error) {
	if b.pepper == "" && len(plaintext) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword(b.prepare(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (b *bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), b.prepare(plaintext)) == nil
}

func (b *bcryptHasher) prepare(plaintext string) []byte {
	if b.pepper == "" {
		return []byte(plaintext)
	}

	return []byte(utils.HashString(plaintext, b.pepper))
}
