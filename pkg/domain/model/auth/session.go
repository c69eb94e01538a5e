package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/types"
)

// SessionID identifies a server-side session record
type SessionID string

func (id SessionID) String() string { return string(id) }

// Validate checks if the session ID is well-formed
func (id SessionID) Validate() error {
	if id == "" {
		return goerr.New("session ID is empty")
	}
	return nil
}

// Session is the server-side record backing an authenticated browser
// session. The signed cookie only carries the session ID; the record here
// is the revocation point and the snapshot of the principal.
type Session struct {
	ID        SessionID
	ProfileID types.ProfileID
	Name      string
	Email     string
	Role      types.Role
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewSession creates a session for the given principal snapshot
func NewSession(profileID types.ProfileID, name, email string, role types.Role, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        SessionID(uuid.NewString()),
		ProfileID: profileID,
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Validate checks required session fields
func (s *Session) Validate() error {
	if err := s.ID.Validate(); err != nil {
		return err
	}
	if s.ProfileID == "" {
		return goerr.New("session profile ID is empty")
	}
	if !s.Role.IsValid() {
		return goerr.New("session role is invalid", goerr.V("role", s.Role))
	}
	return nil
}

// Expired reports whether the session has passed its expiry
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
