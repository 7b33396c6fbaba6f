package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher defines the interface for deriving a storable hash from a
// plaintext password.
type PasswordHasher interface {
	// Hash derives a salted one-way hash of the password. Repeated calls
	// with the same input produce different hashes (the salt is embedded in
	// the output), but each verifies against the original password.
	Hash(password string) (string, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a stored hash with a plaintext candidate.
	// Returns nil on match, or an error on mismatch or malformed hash.
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher and PasswordVerifier using bcrypt.
// The cost controls the work factor; higher costs are slower and more
// resistant to brute force.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost. Costs outside
// bcrypt's supported range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements PasswordHasher using bcrypt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements PasswordVerifier using bcrypt. A malformed stored hash
// is reported as an error, never a panic.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
