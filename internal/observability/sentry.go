package observability

import (
	"fmt"
	"time"

	"care-app-go/internal/config"
	"github.com/getsentry/sentry-go"
)

// InitSentry initializes sentry when a DSN is configured and returns a
// flush function to call on shutdown. With no DSN it is a no-op.
func InitSentry(cfg config.SentryConfig, env string) (func(), error) {
	if cfg.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      env,
		TracesSampleRate: cfg.TracesSampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("sentry init: %w", err)
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureError reports an unexpected failure to sentry with request
// context tags. Safe to call when sentry is not initialized.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	hub := sentry.CurrentHub()
	if hub == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		for key, value := range tags {
			scope.SetTag(key, value)
		}
		hub.CaptureException(err)
	})
}
