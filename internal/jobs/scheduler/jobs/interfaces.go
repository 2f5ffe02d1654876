package jobs

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=jobs

import (
	"context"
	"time"

	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/automation/triggers"
	"bizdesk-server/internal/clients/gmail"
	"bizdesk-server/internal/inbound"
	"bizdesk-server/internal/store"

	"github.com/google/uuid"
)

// InvoiceSweeper runs the batch invoice triggers.
type InvoiceSweeper interface {
	RunDueTomorrow(ctx context.Context) (triggers.Summary, error)
	RunCadence(ctx context.Context, cadence automation.SubTrigger) (triggers.Summary, error)
}

// InboundStore persists synced mail for connected mailboxes.
type InboundStore interface {
	ListMailboxConnections(ctx context.Context, provider string) ([]store.MailboxConnection, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	CreateInboundEmail(ctx context.Context, params store.CreateInboundEmailParams) (store.InboundEmail, error)
	TouchMailboxSynced(ctx context.Context, connectionID uuid.UUID, at time.Time) error
}

// MailboxReader pages through recent inbox messages of a connected mailbox.
type MailboxReader interface {
	ListInbox(ctx context.Context, conn store.MailboxConnection, since time.Time, pageSize int64, pageToken string) (gmail.InboxPage, error)
}

// Ingester runs EmailReceived automations for stored inbound mail.
type Ingester interface {
	Ingest(ctx context.Context, user store.User, emails []store.InboundEmail) inbound.Summary
}

// DraftStore purges stale AI drafts.
type DraftStore interface {
	DeleteDraftEmailsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
