// Package password wraps bcrypt for one-way password hashing.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost matches the cost used for all pre-provisioned hashes; changing
// it only affects newly stored hashes, verification reads the cost embedded
// in each hash.
const DefaultCost = 10

// Hash returns a salted bcrypt hash of plain. Two calls on the same input
// produce different outputs.
func Hash(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compares plain against a stored bcrypt hash in constant time.
// Malformed or foreign-format hashes simply return false.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
