package inbound

//go:generate go run go.uber.org/mock/mockgen@latest -source=ingester.go -destination=mocks_test.go -package=inbound

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/automation/processor"
	"bizdesk-server/internal/observability"
	"bizdesk-server/internal/store"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultProcessedCacheSize bounds the processed-email set when no size is configured.
const DefaultProcessedCacheSize = 5000

// ReplyStore records that an inbound email has been answered.
type ReplyStore interface {
	MarkInboundEmailReplied(ctx context.Context, userID, emailID uuid.UUID, at time.Time) error
}

// Engine runs automations for one trigger event.
type Engine interface {
	RunAutomations(ctx context.Context, req processor.RunRequest) ([]automation.Outcome, error)
}

// ProcessedSet remembers which inbound emails were already handled. Oldest
// entries are evicted once the cache is full, so a restart or a long gap may
// reprocess a few emails.
type ProcessedSet = lru.Cache[string, struct{}]

func NewProcessedSet(size int) (*ProcessedSet, error) {
	if size <= 0 {
		size = DefaultProcessedCacheSize
	}
	set, err := lru.New[string, struct{}](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create processed email set: %w", err)
	}
	return set, nil
}

// Summary counts what one ingestion pass did.
type Summary struct {
	Received   int
	Duplicates int
	SelfSent   int
	Automated  int
	Processed  int
	Replied    int
	Failed     int
}

// Ingester runs EmailReceived automations for newly synced inbound email.
type Ingester struct {
	store     ReplyStore
	engine    Engine
	processed *ProcessedSet
	logger    *observability.Logger
	now       func() time.Time
}

func New(store ReplyStore, engine Engine, processed *ProcessedSet, logger *observability.Logger) *Ingester {
	return &Ingester{
		store:     store,
		engine:    engine,
		processed: processed,
		logger:    logger,
		now:       time.Now,
	}
}

// Ingest runs EmailReceived for every email not yet processed and not sent by
// the mailbox owner. An email that got a reply sent is marked replied.
func (i *Ingester) Ingest(ctx context.Context, user store.User, emails []store.InboundEmail) Summary {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID})

	var summary Summary
	for _, email := range emails {
		summary.Received++
		emailCtx := observability.WithFields(ctx,
			observability.Field{Key: "inbound_email_id", Value: email.ID},
			observability.Field{Key: "external_id", Value: email.ExternalID},
		)

		key := user.ID.String() + ":" + email.ExternalID
		if email.RepliedAt != nil || i.processed.Contains(key) {
			summary.Duplicates++
			continue
		}
		i.processed.Add(key, struct{}{})

		if sentByOwner(user, email) {
			summary.SelfSent++
			i.logger.Debug(emailCtx, "skipping email sent by the mailbox owner")
			continue
		}
		if automated(email) {
			summary.Automated++
			i.logger.Debug(emailCtx, "skipping automated email")
			continue
		}

		outcomes, err := i.engine.RunAutomations(emailCtx, processor.RunRequest{
			TriggerType: automation.TriggerEmailReceived,
			Context: automation.TriggerContext{
				User:  user.Values(),
				Email: email.Values(),
			},
		})
		if err != nil {
			i.logger.Error(emailCtx, "failed to run automations for inbound email", err)
			summary.Failed++
			continue
		}
		summary.Processed++

		if !anySent(outcomes) {
			continue
		}
		err = i.store.MarkInboundEmailReplied(emailCtx, user.ID, email.ID, i.now())
		switch {
		case err == nil:
			summary.Replied++
		case errors.Is(err, store.ErrAlreadyReplied):
			i.logger.Warn(emailCtx, "inbound email was already replied to")
		default:
			i.logger.Error(emailCtx, "failed to mark inbound email replied", err)
		}
	}

	i.logger.Info(ctx, fmt.Sprintf("Inbound ingestion completed: %d received, %d processed, %d replied, %d skipped, %d failed",
		summary.Received, summary.Processed, summary.Replied, summary.Duplicates+summary.SelfSent+summary.Automated, summary.Failed))
	return summary
}

func sentByOwner(user store.User, email store.InboundEmail) bool {
	from := strings.TrimSpace(email.FromAddress)
	if from == "" {
		return false
	}
	return strings.EqualFold(from, user.Email) || strings.EqualFold(from, strings.TrimSpace(email.ToAddress))
}

// automated reports auto-replies and list traffic, which must not be answered.
func automated(email store.InboundEmail) bool {
	if v, ok := email.Headers["Auto-Submitted"].(string); ok && !strings.EqualFold(strings.TrimSpace(v), "no") {
		return true
	}
	if v, ok := email.Headers["Precedence"].(string); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "bulk", "junk", "list", "auto_reply":
			return true
		}
	}
	return false
}

func anySent(outcomes []automation.Outcome) bool {
	for _, o := range outcomes {
		if o.Sent() {
			return true
		}
	}
	return false
}
