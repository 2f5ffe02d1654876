package mailbox

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=mailbox

import (
	"context"

	"bizdesk-server/internal/clients/gmail"
	"bizdesk-server/internal/clients/mail"
	"bizdesk-server/internal/store"

	"github.com/google/uuid"
)

// Store is the persistence the router needs to pick a transport and thread replies.
type Store interface {
	GetMailboxConnection(ctx context.Context, userID uuid.UUID) (store.MailboxConnection, error)
	GetInboundEmailByExternalID(ctx context.Context, userID uuid.UUID, externalID string) (store.InboundEmail, error)
}

// MailboxSender sends from a user's connected mailbox.
type MailboxSender interface {
	Send(ctx context.Context, conn store.MailboxConnection, msg gmail.OutgoingMessage) (string, error)
}

// FallbackSender sends from the platform address.
type FallbackSender interface {
	SendEmail(ctx context.Context, email mail.Email) (string, error)
}
