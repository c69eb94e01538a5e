package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/model/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type sessionStore struct {
	client           *firestore.Client
	collectionPrefix string
}

func newSessionStore(client *firestore.Client) *sessionStore {
	return &sessionStore{client: client}
}

func (s *sessionStore) sessionCollection() string {
	return collectionName(s.collectionPrefix, "sessions")
}

func (s *sessionStore) credentialCollection() string {
	return collectionName(s.collectionPrefix, "credentials")
}

func (f *Firestore) PutSession(ctx context.Context, session *auth.Session) error {
	if err := session.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session")
	}

	col := f.sessions.sessionCollection()
	if _, err := f.client.Collection(col).Doc(session.ID.String()).Set(ctx, session); err != nil {
		return goerr.Wrap(err, "failed to store session", goerr.V("id", session.ID))
	}

	return nil
}

func (f *Firestore) GetSession(ctx context.Context, id auth.SessionID) (*auth.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid session ID")
	}

	col := f.sessions.sessionCollection()
	docSnap, err := f.client.Collection(col).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, goerr.Wrap(err, "failed to get session", goerr.V("id", id))
	}

	var session auth.Session
	if err := docSnap.DataTo(&session); err != nil {
		return nil, goerr.Wrap(err, "failed to decode session", goerr.V("id", id))
	}

	return &session, nil
}

func (f *Firestore) DeleteSession(ctx context.Context, id auth.SessionID) error {
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session ID")
	}

	col := f.sessions.sessionCollection()
	if _, err := f.client.Collection(col).Doc(id.String()).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete session", goerr.V("id", id))
	}

	return nil
}

func (f *Firestore) PutCredential(ctx context.Context, cred *auth.Credential) error {
	if err := cred.Validate(); err != nil {
		return goerr.Wrap(err, "invalid credential")
	}

	col := f.sessions.credentialCollection()
	docID := strings.ToLower(cred.Email)
	if _, err := f.client.Collection(col).Doc(docID).Set(ctx, cred); err != nil {
		return goerr.Wrap(err, "failed to store credential")
	}

	return nil
}

func (f *Firestore) GetCredentialByEmail(ctx context.Context, email string) (*auth.Credential, error) {
	col := f.sessions.credentialCollection()
	docSnap, err := f.client.Collection(col).Doc(strings.ToLower(email)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, goerr.Wrap(err, "failed to get credential")
	}

	var cred auth.Credential
	if err := docSnap.DataTo(&cred); err != nil {
		return nil, goerr.Wrap(err, "failed to decode credential")
	}

	return &cred, nil
}
