package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreateDraftEmailParams struct {
	UserID       uuid.UUID
	AutomationID *uuid.UUID
	ToAddress    string
	Subject      string
	Body         string
	HTMLBody     *string
	InReplyTo    *string
}

const sqlCreateDraftEmail = `
INSERT INTO draft_emails (user_id, automation_id, to_address, subject, body, html_body, in_reply_to)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, automation_id, to_address, subject, body, html_body, in_reply_to, created_at`

func (s *Store) CreateDraftEmail(ctx context.Context, params CreateDraftEmailParams) (DraftEmail, error) {
	var draft DraftEmail
	err := s.db.GetContext(ctx, &draft, sqlCreateDraftEmail,
		params.UserID,
		params.AutomationID,
		params.ToAddress,
		params.Subject,
		params.Body,
		params.HTMLBody,
		params.InReplyTo)
	if err != nil {
		return DraftEmail{}, fmt.Errorf("failed to create draft email: %w", err)
	}
	return draft, nil
}

const sqlListDraftEmailsByUser = `
SELECT id, user_id, automation_id, to_address, subject, body, html_body, in_reply_to, created_at
FROM draft_emails
WHERE user_id = $1
ORDER BY created_at DESC`

func (s *Store) ListDraftEmailsByUser(ctx context.Context, userID uuid.UUID) ([]DraftEmail, error) {
	var drafts []DraftEmail
	if err := s.db.SelectContext(ctx, &drafts, sqlListDraftEmailsByUser, userID); err != nil {
		return nil, fmt.Errorf("failed to list draft emails: %w", err)
	}
	return drafts, nil
}

const sqlDeleteDraftEmailsOlderThan = `
DELETE FROM draft_emails
WHERE created_at < $1`

// DeleteDraftEmailsOlderThan purges drafts created before cutoff and returns how many were removed.
func (s *Store) DeleteDraftEmailsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlDeleteDraftEmailsOlderThan, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old draft emails: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
