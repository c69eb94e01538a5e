package usecase

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/policy"
)

// Sentinel errors for the use case layer. The HTTP controller maps these
// to status codes; everything else becomes a 500.
var (
	// ErrValidation reports missing or malformed input. The wrapped values
	// carry the offending field names.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition re-exports the policy sentinel so callers only
	// depend on this package's taxonomy.
	ErrInvalidTransition = policy.ErrInvalidTransition

	// ErrNotFound reports a missing record
	ErrNotFound = errors.New("not found")

	// ErrPermission reports an operation the actor's role does not allow
	ErrPermission = errors.New("permission denied")

	// ErrUnauthenticated reports a missing, invalid, or expired session
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUpstream reports a repository or storage failure. State is left
	// untouched when it is returned.
	ErrUpstream = errors.New("upstream failure")
)

// wrapStore classifies a repository or storage error into the taxonomy
func wrapStore(err error, msg string, options ...goerr.Option) error {
	if errors.Is(err, interfaces.ErrNotFound) {
		return goerr.Wrap(ErrNotFound, msg, options...)
	}
	return goerr.Wrap(errors.Join(ErrUpstream, err), msg, options...)
}

// validate returns an ErrValidation naming every missing field, or nil
func validate(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return goerr.Wrap(ErrValidation, "missing required fields", goerr.V("missing", missing))
}
