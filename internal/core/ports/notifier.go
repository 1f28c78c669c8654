package ports

import (
	"context"
	"time"
)

// Severity classifies a notification for presentation.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

// Notification is one entry in an audience's feed.
// Audience is a free-form routing key: a user id, or a role name such as
// "admin" for announcements every admin should see.
type Notification struct {
	Audience  string
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

// Notifier delivers workflow notifications to their audience.
// Publishing never deduplicates: repeating events produce repeating entries.
type Notifier interface {
	// Publish appends a notification to the audience's feed.
	Publish(ctx context.Context, audience, message string, severity Severity) error

	// Feed returns the audience's notifications in insertion order.
	// Reading does not consume the feed.
	Feed(ctx context.Context, audience string) ([]Notification, error)
}
