package auth

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

type ctxKey struct{}

// ContextWithSession attaches the session to the context
func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// SessionFromContext extracts the session from the context
func SessionFromContext(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	if !ok || s == nil {
		return nil, goerr.New("no session in context")
	}
	return s, nil
}
