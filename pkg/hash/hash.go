package hash

import "golang.org/x/crypto/bcrypt"

// Hasher abstracts credential hashing so registration does not depend on a
// concrete algorithm. Credential verification lives with the external auth
// collaborator; this core only ever writes hashes.
type Hasher interface {
	Hash(plain string) (string, error)
}

type bcryptHasher struct {
	cost int
}

func NewBcryptHasher() Hasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
