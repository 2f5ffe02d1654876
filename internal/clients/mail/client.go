package mail

import (
	"context"
	"errors"
	"fmt"

	"bizdesk-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

var ErrNoRecipient = errors.New("email has no recipient")

// Email is a message sent through Resend on behalf of a user without a connected mailbox.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

type ResendClient struct {
	client *resend.Client
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		logger: logger,
	}, nil
}

func (c *ResendClient) SendEmail(ctx context.Context, email Email) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: email.To},
		observability.Field{Key: "email_subject", Value: email.Subject},
	)
	if email.To == "" {
		return "", ErrNoRecipient
	}

	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
