package observability

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryClient forwards captured errors to Sentry.
//
// A nil or disabled client is safe to use; all capture calls become no-ops.
type SentryClient struct {
	enabled bool
}

// SentryParams configures error reporting.
type SentryParams struct {
	// DSN identifies the Sentry project. Empty disables reporting.
	DSN string

	// Release tags captured events with the build version.
	Release string
}

// NewSentryClient initializes the Sentry SDK. Reporting is disabled when the
// DSN is empty or initialization fails.
func NewSentryClient(params SentryParams) *SentryClient {
	if params.DSN == "" {
		return &SentryClient{}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              params.DSN,
		Release:          params.Release,
		AttachStacktrace: true,
	})
	if err != nil {
		return &SentryClient{}
	}

	return &SentryClient{enabled: true}
}

// CaptureException sends an error to Sentry with the given tags.
func (s *SentryClient) CaptureException(err error, tags Tags) {
	if s == nil || !s.enabled {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// CaptureMessage sends a message to Sentry with the given tags.
func (s *SentryClient) CaptureMessage(msg string, tags Tags) {
	if s == nil || !s.enabled {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureMessage(msg)
	})
}

// Flush waits for buffered events to be sent.
func (s *SentryClient) Flush(timeout time.Duration) {
	if s == nil || !s.enabled {
		return
	}
	sentry.Flush(timeout)
}
