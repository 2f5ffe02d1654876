package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlListVerifiedUsers = `
SELECT id, name, email, organization_name, email_verified, created_at
FROM users
WHERE email_verified = TRUE
ORDER BY created_at`

func (s *Store) ListVerifiedUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.db.SelectContext(ctx, &users, sqlListVerifiedUsers); err != nil {
		return nil, fmt.Errorf("failed to list verified users: %w", err)
	}
	return users, nil
}

const sqlGetUserByID = `
SELECT id, name, email, organization_name, email_verified, created_at
FROM users
WHERE id = $1`

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
