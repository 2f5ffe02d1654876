package jobs

import (
	"context"
	"fmt"
	"time"

	"bizdesk-server/internal/observability"
)

const defaultDraftRetention = 30 * 24 * time.Hour

// DraftCleanupJob deletes AI drafts older than the retention window
type DraftCleanupJob struct {
	store     DraftStore
	retention time.Duration
	schedule  string
	logger    *observability.Logger
	now       func() time.Time
}

func NewDraftCleanupJob(store DraftStore, retention time.Duration, schedule string, logger *observability.Logger) *DraftCleanupJob {
	if retention <= 0 {
		retention = defaultDraftRetention
	}
	return &DraftCleanupJob{
		store:     store,
		retention: retention,
		schedule:  schedule,
		logger:    logger,
		now:       time.Now,
	}
}

// Name returns the job name
func (j *DraftCleanupJob) Name() string {
	return "draft_cleanup"
}

// Schedule returns the cron spec the job runs on
func (j *DraftCleanupJob) Schedule() string {
	return j.schedule
}

// Run executes the cleanup
func (j *DraftCleanupJob) Run(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-j.retention)
	deleted, err := j.store.DeleteDraftEmailsOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to delete old drafts: %w", err)
	}
	j.logger.Info(ctx, fmt.Sprintf("Deleted %d drafts older than %s", deleted, cutoff.Format(time.RFC3339)))
	return nil
}
