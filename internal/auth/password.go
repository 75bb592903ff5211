package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is a valid bcrypt hash of an unguessable value. Login runs a
// compare against it when the email is unknown so that "no such user" and
// "wrong password" cost the same amount of work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword derives a salted bcrypt hash from a plaintext password. The
// salt is generated per call, so two hashes of the same input differ.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// BurnPassword performs a throwaway comparison taking as long as a real one.
// It always fails.
func BurnPassword(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
}
