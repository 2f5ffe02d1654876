package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreateInboundEmailParams struct {
	UserID      uuid.UUID
	ExternalID  string
	ThreadID    *string
	FromAddress string
	FromName    *string
	ToAddress   string
	Subject     string
	Body        string
	Headers     JSONB
	ReceivedAt  time.Time
}

const inboundEmailColumns = `id, user_id, external_id, thread_id, from_address, from_name, to_address, subject, body, headers, received_at, replied_at, created_at`

const sqlCreateInboundEmail = `
INSERT INTO inbound_emails (user_id, external_id, thread_id, from_address, from_name, to_address, subject, body, headers, received_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (user_id, external_id) DO NOTHING
RETURNING ` + inboundEmailColumns

// CreateInboundEmail stores a synced message. It returns ErrAlreadyExists when
// the (user, external id) pair was stored before.
func (s *Store) CreateInboundEmail(ctx context.Context, params CreateInboundEmailParams) (InboundEmail, error) {
	var email InboundEmail
	err := s.db.GetContext(ctx, &email, sqlCreateInboundEmail,
		params.UserID,
		params.ExternalID,
		params.ThreadID,
		params.FromAddress,
		params.FromName,
		params.ToAddress,
		params.Subject,
		params.Body,
		params.Headers,
		params.ReceivedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InboundEmail{}, ErrAlreadyExists
		}
		return InboundEmail{}, fmt.Errorf("failed to create inbound email: %w", err)
	}
	return email, nil
}

const sqlGetInboundEmailByExternalID = `
SELECT ` + inboundEmailColumns + `
FROM inbound_emails
WHERE user_id = $1 AND external_id = $2`

func (s *Store) GetInboundEmailByExternalID(ctx context.Context, userID uuid.UUID, externalID string) (InboundEmail, error) {
	var email InboundEmail
	err := s.db.GetContext(ctx, &email, sqlGetInboundEmailByExternalID, userID, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InboundEmail{}, ErrNotFound
		}
		return InboundEmail{}, fmt.Errorf("failed to get inbound email: %w", err)
	}
	return email, nil
}

const sqlMarkInboundEmailReplied = `
UPDATE inbound_emails
SET replied_at = $3
WHERE id = $1 AND user_id = $2 AND replied_at IS NULL`

// MarkInboundEmailReplied records the reply time once. A second call for the
// same email returns ErrAlreadyReplied.
func (s *Store) MarkInboundEmailReplied(ctx context.Context, userID, emailID uuid.UUID, at time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlMarkInboundEmailReplied, emailID, userID, at)
	if err != nil {
		return fmt.Errorf("failed to mark inbound email replied: %w", err)
	}
	if err := requireAffected(res); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrAlreadyReplied
		}
		return err
	}
	return nil
}
