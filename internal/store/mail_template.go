package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type CreateMailTemplateParams struct {
	UserID  uuid.UUID
	Name    string
	Subject string
	Body    string
}

const sqlCreateMailTemplate = `
INSERT INTO mail_templates (user_id, name, subject, body)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, name, subject, body, created_at, updated_at`

func (s *Store) CreateMailTemplate(ctx context.Context, params CreateMailTemplateParams) (MailTemplate, error) {
	var tmpl MailTemplate
	err := s.db.GetContext(ctx, &tmpl, sqlCreateMailTemplate, params.UserID, params.Name, params.Subject, params.Body)
	if err != nil {
		if isUniqueViolation(err) {
			return MailTemplate{}, ErrAlreadyExists
		}
		return MailTemplate{}, fmt.Errorf("failed to create mail template: %w", err)
	}
	return tmpl, nil
}

const sqlGetMailTemplate = `
SELECT id, user_id, name, subject, body, created_at, updated_at
FROM mail_templates
WHERE id = $1 AND user_id = $2`

// GetMailTemplate returns a template only when it belongs to the given user.
func (s *Store) GetMailTemplate(ctx context.Context, userID, templateID uuid.UUID) (MailTemplate, error) {
	var tmpl MailTemplate
	err := s.db.GetContext(ctx, &tmpl, sqlGetMailTemplate, templateID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MailTemplate{}, ErrNotFound
		}
		return MailTemplate{}, fmt.Errorf("failed to get mail template: %w", err)
	}
	return tmpl, nil
}

const sqlUpdateMailTemplateContent = `
UPDATE mail_templates
SET subject = $3, body = $4, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND user_id = $2`

func (s *Store) UpdateMailTemplateContent(ctx context.Context, userID, templateID uuid.UUID, subject, body string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateMailTemplateContent, templateID, userID, subject, body)
	if err != nil {
		return fmt.Errorf("failed to update mail template: %w", err)
	}
	return requireAffected(res)
}
