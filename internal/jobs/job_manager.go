// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the listing expiry sweep;
// JobManager exists so further jobs slot in without touching the composition
// root's start/stop handling.
package jobs

import (
	"fmt"
	"log/slog"

	"feedback/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	listingExpiryJob *ListingExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expireListingsHandler commands.ExpireListingsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		listingExpiryJob: NewListingExpiryJob(expireListingsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.listingExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start listing expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.listingExpiryJob.Stop()
}
