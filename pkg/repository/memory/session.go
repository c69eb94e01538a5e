package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/model/auth"
)

type sessionStore struct {
	mu          sync.RWMutex
	sessions    map[auth.SessionID]*auth.Session
	credentials map[string]*auth.Credential // keyed by lowercased email
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions:    make(map[auth.SessionID]*auth.Session),
		credentials: make(map[string]*auth.Credential),
	}
}

func (m *Memory) PutSession(ctx context.Context, session *auth.Session) error {
	if err := session.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session")
	}

	m.sessions.mu.Lock()
	defer m.sessions.mu.Unlock()

	m.sessions.sessions[session.ID] = session
	return nil
}

func (m *Memory) GetSession(ctx context.Context, id auth.SessionID) (*auth.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid session ID")
	}

	m.sessions.mu.RLock()
	defer m.sessions.mu.RUnlock()

	session, ok := m.sessions.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return session, nil
}

func (m *Memory) DeleteSession(ctx context.Context, id auth.SessionID) error {
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session ID")
	}

	m.sessions.mu.Lock()
	defer m.sessions.mu.Unlock()

	if _, ok := m.sessions.sessions[id]; !ok {
		return ErrNotFound
	}

	delete(m.sessions.sessions, id)
	return nil
}

func (m *Memory) PutCredential(ctx context.Context, cred *auth.Credential) error {
	if err := cred.Validate(); err != nil {
		return goerr.Wrap(err, "invalid credential")
	}

	m.sessions.mu.Lock()
	defer m.sessions.mu.Unlock()

	m.sessions.credentials[strings.ToLower(cred.Email)] = cred
	return nil
}

func (m *Memory) GetCredentialByEmail(ctx context.Context, email string) (*auth.Credential, error) {
	m.sessions.mu.RLock()
	defer m.sessions.mu.RUnlock()

	cred, ok := m.sessions.credentials[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}

	return cred, nil
}
