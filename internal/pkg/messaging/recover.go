package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/shandysiswandi/formbite/internal/pkg/stacktrace"
)

func callHandlerWithRecover(ctx context.Context, driver string, handler Handler, msg Message) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			stack := debug.Stack()
			if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
				slog.ErrorContext(ctx, "panic in messaging handler", "driver", driver, "topic", msg.Topic(), "panic", rvr, "stack", paths)
			} else {
				slog.ErrorContext(ctx, "panic in messaging handler", "driver", driver, "topic", msg.Topic(), "panic", rvr, "stack", string(stack))
			}
			err = fmt.Errorf("messaging: panic in %s handler: %v", driver, rvr)
		}
	}()

	return handler(ctx, msg)
}

// dispatch runs handler and applies auto-ack unless the handler already
// responded.
func dispatch(ctx context.Context, driver string, handler Handler, msg interface {
	Message
	hasResponded() bool
}, autoAck bool,
) error {
	herr := callHandlerWithRecover(ctx, driver, handler, msg)
	if msg.hasResponded() || !autoAck {
		return nil
	}

	if herr == nil {
		return msg.Ack(ctx)
	}
	return msg.Nack(ctx)
}
