package jobs

import (
	"context"
	"log/slog"
	"time"

	"feedback/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ListingExpiryJob sweeps active listings past their best-before time.
// Runs every minute so listings leave the catalog shortly after they expire
// rather than waiting for someone to browse them.
type ListingExpiryJob struct {
	handler commands.ExpireListingsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewListingExpiryJob creates a new job for the expiry sweep.
func NewListingExpiryJob(handler commands.ExpireListingsCommandHandler, logger *slog.Logger) *ListingExpiryJob {
	return &ListingExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "listing_expiry_job"),
	}
}

// Start begins the expiry sweep, running at the top of every minute.
func (j *ListingExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireListingsCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Listing expiry sweep could not be built", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Listing expiry sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Listing expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry sweep.
func (j *ListingExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Listing expiry job stopped")
}
