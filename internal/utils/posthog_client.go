package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// PosthogClientWrapper wraps the PostHog client so callers never have to
// nil-check analytics availability.
type PosthogClientWrapper struct {
	client posthog.Client
}

// NewPosthogClient initializes the PostHog client. Returns an uninitialized
// wrapper when no API key is configured; all methods are then no-ops.
func NewPosthogClient(apiKey string, endpoint string) *PosthogClientWrapper {
	if apiKey == "" {
		return &PosthogClientWrapper{}
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		slog.Warn("Failed to initialize PostHog client, analytics disabled", slog.String("error", err.Error()))
		return &PosthogClientWrapper{}
	}
	return &PosthogClientWrapper{client: client}
}

// IsInitialized reports whether analytics events will actually be sent.
func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.client != nil
}

// Enqueue sends a capture event for the given user.
func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}

	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}

	if err := w.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: props,
	}); err != nil {
		slog.Warn("Failed to enqueue PostHog event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes and shuts down the underlying client.
func (w *PosthogClientWrapper) Close() {
	if w.IsInitialized() {
		_ = w.client.Close()
	}
}
