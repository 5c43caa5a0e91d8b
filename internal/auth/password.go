package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost keeps a single hash in the tens of milliseconds on
// current hardware.
const DefaultBcryptCost = bcrypt.DefaultCost

// PasswordHasher hashes and verifies passwords with bcrypt. bcrypt embeds a
// fresh random salt and the cost factor in every hash it produces.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given cost. Values outside
// bcrypt's supported range fall back to the default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check reports whether plaintext matches the stored hash. A malformed hash
// reads as a mismatch, never an error. The comparison is constant time.
func (h *PasswordHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
