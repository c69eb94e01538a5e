package async

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/utils/logging"
)

// Dispatch runs the handler on its own goroutine, detached from the
// request's cancellation. The caller's logger is carried over so failures
// land in the same stream, with goerr values when the error carries them.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bg := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bg).Error("async handler panicked", "panic", r)
			}
		}()

		err := handler(bg)
		if err == nil {
			return
		}

		var ge *goerr.Error
		if errors.As(err, &ge) {
			logging.From(bg).Error("async handler failed",
				"error", err.Error(),
				"values", ge.Values(),
			)
			return
		}
		logging.From(bg).Error("async handler failed", "error", err.Error())
	}()
}
