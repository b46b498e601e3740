package server

import (
	"context"
	"os/signal"
	"syscall"
)

// WithSignal derives a context that is canceled on SIGINT or SIGTERM,
// which drives the graceful shutdown path in App.Run. The returned stop
// function restores default signal handling, so a second signal kills
// the process instead of waiting out the shutdown timeout.
func WithSignal(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
