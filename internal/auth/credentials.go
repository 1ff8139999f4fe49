package auth

import (
	"crypto/subtle"

	"finboard/internal/utils"
)

// Credentials verifies a login attempt. The service ships with a single
// static implementation; swapping in a real user store only touches
// this interface, not token issuance.
type Credentials interface {
	Verify(email, password string) bool
}

// StaticCredentials accepts exactly one configured email/password pair.
// The password is bcrypt-hashed at construction so the plaintext is not
// held for the life of the process.
type StaticCredentials struct {
	email string
	hash  string
}

func NewStaticCredentials(email, password string) (*StaticCredentials, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &StaticCredentials{email: email, hash: hash}, nil
}

func (c *StaticCredentials) Verify(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(c.email)) == 1
	return utils.CheckPasswordHash(password, c.hash) && emailOK
}
