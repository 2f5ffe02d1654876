package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bizdesk-server/internal/clients/gmail"
	"bizdesk-server/internal/observability"
	"bizdesk-server/internal/store"
)

const (
	defaultInboundBatch = 50
	firstSyncWindow     = 24 * time.Hour
)

// InboundSyncJob pulls new inbox mail for every connected Gmail mailbox and
// hands it to ingestion
type InboundSyncJob struct {
	store     InboundStore
	mailboxes MailboxReader
	ingester  Ingester
	batchSize int64
	schedule  string
	logger    *observability.Logger
	now       func() time.Time
}

func NewInboundSyncJob(store InboundStore, mailboxes MailboxReader, ingester Ingester, batchSize int64, schedule string, logger *observability.Logger) *InboundSyncJob {
	if batchSize <= 0 {
		batchSize = defaultInboundBatch
	}
	return &InboundSyncJob{
		store:     store,
		mailboxes: mailboxes,
		ingester:  ingester,
		batchSize: batchSize,
		schedule:  schedule,
		logger:    logger,
		now:       time.Now,
	}
}

// Name returns the job name
func (j *InboundSyncJob) Name() string {
	return "inbound_mail_sync"
}

// Schedule returns the cron spec the job runs on
func (j *InboundSyncJob) Schedule() string {
	return j.schedule
}

// Run syncs every mailbox. One failing mailbox does not stop the others.
func (j *InboundSyncJob) Run(ctx context.Context) error {
	conns, err := j.store.ListMailboxConnections(ctx, store.MailboxProviderGmail)
	if err != nil {
		return fmt.Errorf("failed to list mailbox connections: %w", err)
	}

	successCount := 0
	errorCount := 0
	for _, conn := range conns {
		connCtx := observability.WithFields(ctx,
			observability.Field{Key: "user_id", Value: conn.UserID},
			observability.Field{Key: "mailbox_connection_id", Value: conn.ID},
		)
		if err := j.syncMailbox(connCtx, conn); err != nil {
			j.logger.Error(connCtx, "Failed to sync mailbox", err)
			errorCount++
			continue
		}
		successCount++
	}

	j.logger.Info(ctx, fmt.Sprintf("Inbound mail sync completed: %d succeeded, %d failed", successCount, errorCount))
	return nil
}

func (j *InboundSyncJob) syncMailbox(ctx context.Context, conn store.MailboxConnection) error {
	user, err := j.store.GetUserByID(ctx, conn.UserID)
	if err != nil {
		return fmt.Errorf("failed to get mailbox owner: %w", err)
	}

	started := j.now().UTC()
	since := started.Add(-firstSyncWindow)
	if conn.LastSyncedAt != nil {
		since = *conn.LastSyncedAt
	}

	// The sync mark only advances once every page of the window is stored.
	pageToken := ""
	for {
		page, err := j.mailboxes.ListInbox(ctx, conn, since, j.batchSize, pageToken)
		if err != nil {
			return fmt.Errorf("failed to list inbox: %w", err)
		}
		if err := j.storePage(ctx, user, conn, page.Messages); err != nil {
			return err
		}
		if page.NextPageToken == "" || page.NextPageToken == pageToken {
			break
		}
		pageToken = page.NextPageToken
	}

	if err := j.store.TouchMailboxSynced(ctx, conn.ID, started); err != nil {
		return fmt.Errorf("failed to record mailbox sync: %w", err)
	}
	return nil
}

func (j *InboundSyncJob) storePage(ctx context.Context, user store.User, conn store.MailboxConnection, messages []gmail.InboundMessage) error {
	stored := make([]store.InboundEmail, 0, len(messages))
	for _, msg := range messages {
		email, err := j.store.CreateInboundEmail(ctx, inboundParams(user, conn, msg))
		if errors.Is(err, store.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to store inbound email %s: %w", msg.ExternalID, err)
		}
		stored = append(stored, email)
	}
	if len(stored) == 0 {
		return nil
	}

	summary := j.ingester.Ingest(ctx, user, stored)
	j.logger.Metrics(ctx,
		observability.MetricField{Key: "inbound_stored", Value: len(stored)},
		observability.MetricField{Key: "inbound_replied", Value: summary.Replied},
		observability.MetricField{Key: "inbound_failed", Value: summary.Failed},
	)
	return nil
}

func inboundParams(user store.User, conn store.MailboxConnection, msg gmail.InboundMessage) store.CreateInboundEmailParams {
	params := store.CreateInboundEmailParams{
		UserID:      user.ID,
		ExternalID:  msg.ExternalID,
		FromAddress: strings.ToLower(strings.TrimSpace(msg.From)),
		ToAddress:   strings.ToLower(strings.TrimSpace(msg.To)),
		Subject:     msg.Subject,
		Body:        msg.Text,
		ReceivedAt:  msg.ReceivedAt,
	}
	if params.ToAddress == "" {
		params.ToAddress = strings.ToLower(conn.EmailAddress)
	}
	if msg.ThreadID != "" {
		params.ThreadID = &msg.ThreadID
	}
	if msg.FromName != "" {
		params.FromName = &msg.FromName
	}
	if len(msg.Headers) > 0 {
		params.Headers = store.JSONB{}
		for k, v := range msg.Headers {
			params.Headers[k] = v
		}
	}
	return params
}
