package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// ErrShutdownSignal is the cancellation cause when SIGINT or SIGTERM arrives.
var ErrShutdownSignal = errors.New("shutdown signal received")

// WithSignal returns a context canceled on SIGINT or SIGTERM. The cause,
// readable with context.Cause, names the signal.
func WithSignal(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			cancel(fmt.Errorf("%w: %s", ErrShutdownSignal, sig))
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel(context.Canceled)
	}
}
