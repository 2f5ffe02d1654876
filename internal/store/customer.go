package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type UpsertCustomerParams struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Client  string
	Contact string
	Status  string
	Value   string
}

const sqlGetCustomerByEmail = `
SELECT id, user_id, name, email, client, contact, status, value, created_at, updated_at
FROM customers
WHERE user_id = $1 AND lower(email) = lower($2)`

func (s *Store) GetCustomerByEmail(ctx context.Context, userID uuid.UUID, email string) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlGetCustomerByEmail, userID, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, fmt.Errorf("failed to get customer by email: %w", err)
	}
	return customer, nil
}

const sqlGetCustomerByID = `
SELECT id, user_id, name, email, client, contact, status, value, created_at, updated_at
FROM customers
WHERE id = $1 AND user_id = $2`

func (s *Store) GetCustomerByID(ctx context.Context, userID, customerID uuid.UUID) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlGetCustomerByID, customerID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

const sqlUpsertCustomer = `
INSERT INTO customers (user_id, name, email, client, contact, status, value)
VALUES ($1, $2, lower($3), $4, $5, $6, $7)
ON CONFLICT (user_id, email) DO UPDATE SET
    name = EXCLUDED.name,
    client = EXCLUDED.client,
    contact = EXCLUDED.contact,
    status = EXCLUDED.status,
    value = EXCLUDED.value,
    updated_at = CURRENT_TIMESTAMP
RETURNING id, user_id, name, email, client, contact, status, value, created_at, updated_at`

// UpsertCustomer creates or updates the customer keyed by (user, email).
// Repeating the call with the same params leaves one row.
func (s *Store) UpsertCustomer(ctx context.Context, params UpsertCustomerParams) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlUpsertCustomer,
		params.UserID,
		params.Name,
		params.Email,
		params.Client,
		params.Contact,
		params.Status,
		params.Value)
	if err != nil {
		return Customer{}, fmt.Errorf("failed to upsert customer: %w", err)
	}
	return customer, nil
}
