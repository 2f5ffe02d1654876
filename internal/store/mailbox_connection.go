package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const MailboxProviderGmail = "gmail"

const mailboxConnectionColumns = `id, user_id, provider, email_address, access_token, refresh_token, token_expiry, last_synced_at, created_at, updated_at`

const sqlGetMailboxConnection = `
SELECT ` + mailboxConnectionColumns + `
FROM mailbox_connections
WHERE user_id = $1`

func (s *Store) GetMailboxConnection(ctx context.Context, userID uuid.UUID) (MailboxConnection, error) {
	var conn MailboxConnection
	err := s.db.GetContext(ctx, &conn, sqlGetMailboxConnection, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MailboxConnection{}, ErrNotFound
		}
		return MailboxConnection{}, fmt.Errorf("failed to get mailbox connection: %w", err)
	}
	return conn, nil
}

const sqlListMailboxConnections = `
SELECT ` + mailboxConnectionColumns + `
FROM mailbox_connections
WHERE provider = $1
ORDER BY last_synced_at NULLS FIRST`

func (s *Store) ListMailboxConnections(ctx context.Context, provider string) ([]MailboxConnection, error) {
	var conns []MailboxConnection
	if err := s.db.SelectContext(ctx, &conns, sqlListMailboxConnections, provider); err != nil {
		return nil, fmt.Errorf("failed to list mailbox connections: %w", err)
	}
	return conns, nil
}

const sqlUpdateMailboxTokens = `
UPDATE mailbox_connections
SET access_token = $2, refresh_token = $3, token_expiry = $4, updated_at = CURRENT_TIMESTAMP
WHERE id = $1`

func (s *Store) UpdateMailboxTokens(ctx context.Context, connectionID uuid.UUID, accessToken, refreshToken string, expiry time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateMailboxTokens, connectionID, accessToken, refreshToken, expiry)
	if err != nil {
		return fmt.Errorf("failed to update mailbox tokens: %w", err)
	}
	return requireAffected(res)
}

const sqlTouchMailboxSynced = `
UPDATE mailbox_connections
SET last_synced_at = $2
WHERE id = $1`

func (s *Store) TouchMailboxSynced(ctx context.Context, connectionID uuid.UUID, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, sqlTouchMailboxSynced, connectionID, at); err != nil {
		return fmt.Errorf("failed to update mailbox sync time: %w", err)
	}
	return nil
}
