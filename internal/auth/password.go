// Package auth hashes and verifies passwords. Nothing here is stateful and
// no plaintext ever leaves the call stack.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost the stored hashes were generated with.
const bcryptCost = 10

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
