// Package notify provides the in-process notification feed.
// Notifications are advisory: they never outlive the process and losing them
// does not affect workflow state, so the feed keeps them in memory per
// audience rather than in the database.
package notify

import (
	"context"
	"sync"
	"time"

	"feedback/internal/core/ports"
)

// InMemoryFeed implements ports.Notifier with per-audience in-memory feeds.
// Safe for concurrent use.
type InMemoryFeed struct {
	mu    sync.Mutex
	feeds map[string][]ports.Notification
}

// NewInMemoryFeed creates an empty notification feed.
func NewInMemoryFeed() *InMemoryFeed {
	return &InMemoryFeed{
		feeds: make(map[string][]ports.Notification),
	}
}

// Publish appends a notification to the audience's feed.
func (f *InMemoryFeed) Publish(_ context.Context, audience, message string, severity ports.Severity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.feeds[audience] = append(f.feeds[audience], ports.Notification{
		Audience:  audience,
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	})
	return nil
}

// Feed returns a copy of the audience's notifications in insertion order.
// Reading does not consume the feed.
func (f *InMemoryFeed) Feed(_ context.Context, audience string) ([]ports.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := f.feeds[audience]
	out := make([]ports.Notification, len(entries))
	copy(out, entries)
	return out, nil
}
