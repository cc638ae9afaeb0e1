package output

import (
	"context"
	"log/slog"

	"github.com/vk/outputs/internal/ctxlog"
)

// logFromContext logs msg at debug level using whatever logger ctx carries,
// falling back to the default logger when ctx was built without one —
// unlike ctxlog.FromContext itself, this package's diagnostics must never
// panic on a missing logger, since Get/Index misses are routine.
func logFromContext(ctx context.Context, msg string) {
	logger := slog.Default()
	func() {
		defer func() { recover() }()
		logger = ctxlog.FromContext(ctx)
	}()
	logger.DebugContext(ctx, msg)
}
