package auth

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/types"
	"golang.org/x/crypto/bcrypt"
)

// Credential stores the password hash for an email/password account.
// The plaintext password never leaves the auth use case.
type Credential struct {
	ProfileID    types.ProfileID
	Email        string
	PasswordHash []byte `masq:"secret"`
	CreatedAt    time.Time
}

// NewCredential hashes the password with bcrypt and binds it to a profile
func NewCredential(profileID types.ProfileID, email, password string) (*Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to hash password")
	}
	return &Credential{
		ProfileID:    profileID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Verify compares the password against the stored hash
func (c *Credential) Verify(password string) error {
	if err := bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)); err != nil {
		return goerr.Wrap(err, "password mismatch")
	}
	return nil
}

// Validate checks required credential fields
func (c *Credential) Validate() error {
	if c.ProfileID == "" {
		return goerr.New("credential profile ID is empty")
	}
	if c.Email == "" {
		return goerr.New("credential email is empty")
	}
	if len(c.PasswordHash) == 0 {
		return goerr.New("credential password hash is empty")
	}
	return nil
}
