package gmail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"bizdesk-server/internal/observability"
	"bizdesk-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const userMe = "me"

// TokenStore persists refreshed OAuth tokens for a mailbox connection.
type TokenStore interface {
	UpdateMailboxTokens(ctx context.Context, connectionID uuid.UUID, accessToken, refreshToken string, expiry time.Time) error
}

type Client struct {
	oauth  *oauth2.Config
	tokens TokenStore
	logger *observability.Logger
	now    func() time.Time
}

func NewClient(clientID, clientSecret string, tokens TokenStore, logger *observability.Logger) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmailapi.GmailModifyScope},
		},
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// Send delivers a message from the connected mailbox and returns the Gmail message id.
func (c *Client) Send(ctx context.Context, conn store.MailboxConnection, msg OutgoingMessage) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "mailbox", Value: conn.EmailAddress},
		observability.Field{Key: "email_to", Value: msg.To},
	)
	if msg.From == "" {
		msg.From = conn.EmailAddress
	}

	raw, err := composeMIME(msg, c.now())
	if err != nil {
		return "", err
	}

	svc, finish, err := c.service(ctx, conn)
	if err != nil {
		return "", err
	}
	defer finish()

	sent, err := svc.Users.Messages.Send(userMe, &gmailapi.Message{
		Raw:      base64.URLEncoding.EncodeToString(raw),
		ThreadId: msg.ThreadID,
	}).Context(ctx).Do()
	if err != nil {
		c.logger.Error(ctx, "failed to send gmail message", err)
		return "", fmt.Errorf("failed to send gmail message: %w", err)
	}

	c.logger.Info(ctx, "gmail message sent")
	return sent.Id, nil
}

// InboxPage is one page of inbox messages. NextPageToken is empty on the last page.
type InboxPage struct {
	Messages      []InboundMessage
	NextPageToken string
}

// ListInbox fetches one page of inbox messages received after since, newest first.
func (c *Client) ListInbox(ctx context.Context, conn store.MailboxConnection, since time.Time, pageSize int64, pageToken string) (InboxPage, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "mailbox", Value: conn.EmailAddress})

	svc, finish, err := c.service(ctx, conn)
	if err != nil {
		return InboxPage{}, err
	}
	defer finish()

	query := "in:inbox"
	if !since.IsZero() {
		query = fmt.Sprintf("%s after:%d", query, since.Unix())
	}
	call := svc.Users.Messages.List(userMe).Q(query).MaxResults(pageSize)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	list, err := call.Context(ctx).Do()
	if err != nil {
		c.logger.Error(ctx, "failed to list gmail messages", err)
		return InboxPage{}, fmt.Errorf("failed to list gmail messages: %w", err)
	}

	messages := make([]InboundMessage, 0, len(list.Messages))
	for _, ref := range list.Messages {
		full, err := svc.Users.Messages.Get(userMe, ref.Id).Format("raw").Context(ctx).Do()
		if err != nil {
			c.logger.Error(ctx, "failed to get gmail message", err)
			continue
		}
		msg, err := decodeMessage(full)
		if err != nil {
			c.logger.Error(ctx, "failed to parse gmail message", err)
			continue
		}
		messages = append(messages, msg)
	}
	return InboxPage{Messages: messages, NextPageToken: list.NextPageToken}, nil
}

func decodeMessage(m *gmailapi.Message) (InboundMessage, error) {
	raw, err := base64.URLEncoding.DecodeString(m.Raw)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(m.Raw)
		if err != nil {
			return InboundMessage{}, fmt.Errorf("failed to decode raw message: %w", err)
		}
	}
	msg, err := parseMIME(raw)
	if err != nil {
		return InboundMessage{}, err
	}
	msg.ExternalID = m.Id
	msg.ThreadID = m.ThreadId
	if m.InternalDate > 0 {
		msg.ReceivedAt = time.UnixMilli(m.InternalDate).UTC()
	}
	if msg.ReceivedAt.IsZero() {
		return InboundMessage{}, errors.New("message has no date")
	}
	return msg, nil
}

// service builds a Gmail service for the connection. finish persists a
// refreshed token, if any.
func (c *Client) service(ctx context.Context, conn store.MailboxConnection) (*gmailapi.Service, func(), error) {
	tok := &oauth2.Token{
		AccessToken:  conn.AccessToken,
		RefreshToken: conn.RefreshToken,
		TokenType:    "Bearer",
	}
	if conn.TokenExpiry != nil {
		tok.Expiry = *conn.TokenExpiry
	}
	ts := oauth2.ReuseTokenSource(tok, c.oauth.TokenSource(ctx, tok))

	svc, err := gmailapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	finish := func() {
		current, err := ts.Token()
		if err != nil || current.AccessToken == conn.AccessToken || c.tokens == nil {
			return
		}
		refresh := current.RefreshToken
		if refresh == "" {
			refresh = conn.RefreshToken
		}
		if err := c.tokens.UpdateMailboxTokens(ctx, conn.ID, current.AccessToken, refresh, current.Expiry); err != nil {
			c.logger.Error(ctx, "failed to persist refreshed mailbox token", err)
		}
	}
	return svc, finish, nil
}
