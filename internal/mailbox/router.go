package mailbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bizdesk-server/internal/clients/gmail"
	"bizdesk-server/internal/clients/mail"
	"bizdesk-server/internal/observability"
	"bizdesk-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrNoRecipient = errors.New("message has no recipient")
	ErrEmptyBody   = errors.New("message has no body")
)

const defaultTimeout = 30 * time.Second

// Message is an outbound mail sent on behalf of a user.
type Message struct {
	UserID            uuid.UUID
	To                string
	ReplyTo           string
	Subject           string
	BodyText          string
	BodyHTML          string
	ReplyToExternalID string
	ThreadID          string
}

// Router sends through the user's connected mailbox when there is one and
// through Resend otherwise.
type Router struct {
	store         Store
	mailbox       MailboxSender
	fallback      FallbackSender
	defaultSender string
	timeout       time.Duration
	logger        *observability.Logger
}

func New(store Store, mailbox MailboxSender, fallback FallbackSender, defaultSender string, timeout time.Duration, logger *observability.Logger) *Router {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Router{
		store:         store,
		mailbox:       mailbox,
		fallback:      fallback,
		defaultSender: defaultSender,
		timeout:       timeout,
		logger:        logger,
	}
}

func (r *Router) Send(ctx context.Context, msg Message) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: msg.UserID},
		observability.Field{Key: "email_to", Value: msg.To},
	)
	if strings.TrimSpace(msg.To) == "" {
		return ErrNoRecipient
	}
	if strings.TrimSpace(msg.BodyText) == "" && strings.TrimSpace(msg.BodyHTML) == "" {
		return ErrEmptyBody
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	conn, err := r.store.GetMailboxConnection(ctx, msg.UserID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return r.sendFallback(ctx, msg)
	case err != nil:
		r.logger.Error(ctx, "failed to load mailbox connection", err)
		return fmt.Errorf("failed to load mailbox connection: %w", err)
	}
	return r.sendFromMailbox(ctx, conn, msg)
}

func (r *Router) sendFromMailbox(ctx context.Context, conn store.MailboxConnection, msg Message) error {
	out := gmail.OutgoingMessage{
		From:     conn.EmailAddress,
		To:       msg.To,
		Subject:  msg.Subject,
		Text:     msg.BodyText,
		HTML:     msg.BodyHTML,
		ThreadID: msg.ThreadID,
	}
	if msg.ReplyToExternalID != "" {
		source, err := r.store.GetInboundEmailByExternalID(ctx, msg.UserID, msg.ReplyToExternalID)
		switch {
		case err == nil:
			if id, ok := source.Headers["Message-Id"].(string); ok {
				out.InReplyTo = id
			}
			if out.ThreadID == "" && source.ThreadID != nil {
				out.ThreadID = *source.ThreadID
			}
		case errors.Is(err, store.ErrNotFound):
			r.logger.Warn(ctx, "reply source email not found, sending unthreaded")
		default:
			return fmt.Errorf("failed to load reply source email: %w", err)
		}
	}

	id, err := r.mailbox.Send(ctx, conn, out)
	if err != nil {
		return fmt.Errorf("failed to send from mailbox: %w", err)
	}
	r.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "transport", Value: conn.Provider},
		observability.Field{Key: "message_id", Value: id},
	), "mail sent")
	return nil
}

func (r *Router) sendFallback(ctx context.Context, msg Message) error {
	html := msg.BodyHTML
	if html == "" {
		html = msg.BodyText
	}
	id, err := r.fallback.SendEmail(ctx, mail.Email{
		From:    r.defaultSender,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    html,
		Text:    msg.BodyText,
	})
	if err != nil {
		return fmt.Errorf("failed to send fallback email: %w", err)
	}
	r.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "transport", Value: "resend"},
		observability.Field{Key: "message_id", Value: id},
	), "mail sent")
	return nil
}
