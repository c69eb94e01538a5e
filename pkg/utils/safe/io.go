package safe

import (
	"context"
	"io"

	"github.com/maham-hq/maham/pkg/utils/logging"
)

// Close closes c and logs the failure. Nil closers are ignored, so it can
// guard an optional resource.
func Close(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logging.From(ctx).Error("failed to close resource", "error", err.Error())
	}
}

// Copy streams src into dst, logging any failure. Used where the response
// body is already committed and an error can no longer change the status.
func Copy(ctx context.Context, dst io.Writer, src io.Reader) {
	if _, err := io.Copy(dst, src); err != nil {
		logging.From(ctx).Error("failed to copy stream", "error", err.Error())
	}
}
