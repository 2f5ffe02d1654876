package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InvoiceFilter narrows ListInvoicesForAutomation. Empty Statuses and a nil
// DueDate apply no filter.
type InvoiceFilter struct {
	UserID   uuid.UUID
	Statuses []string
	DueDate  *time.Time
}

type InvoiceItemParams struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

type UpsertInvoiceParams struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	InvoiceNumber string
	Status        string
	Currency      string
	Subtotal      float64
	TaxAmount     float64
	TotalAmount   float64
	AmountPaid    float64
	IssueDate     time.Time
	DueDate       time.Time
	Notes         *string
	Items         []InvoiceItemParams
}

const invoiceWithCustomerColumns = `
    i.id, i.user_id, i.customer_id, i.invoice_number, i.status, i.currency,
    i.subtotal, i.tax_amount, i.total_amount, i.amount_paid, i.balance_due,
    i.issue_date, i.due_date, i.paid_at, i.notes, i.created_at, i.updated_at,
    c.name AS customer_name, c.email AS customer_email`

const sqlListInvoicesForAutomation = `
SELECT` + invoiceWithCustomerColumns + `
FROM invoices i
LEFT JOIN customers c ON c.id = i.customer_id
WHERE i.user_id = $1
  AND ($2::text[] IS NULL OR i.status = ANY($2::text[]))
  AND ($3::date IS NULL OR i.due_date = $3::date)
ORDER BY i.due_date, i.created_at`

func (s *Store) ListInvoicesForAutomation(ctx context.Context, filter InvoiceFilter) ([]InvoiceWithCustomer, error) {
	var statuses StringArray
	if len(filter.Statuses) > 0 {
		statuses = StringArray(filter.Statuses)
	}
	var dueDate *string
	if filter.DueDate != nil {
		d := filter.DueDate.Format(time.DateOnly)
		dueDate = &d
	}

	var invoices []InvoiceWithCustomer
	err := s.db.SelectContext(ctx, &invoices, sqlListInvoicesForAutomation, filter.UserID, statuses, dueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for automation: %w", err)
	}
	return invoices, nil
}

const sqlGetInvoiceWithCustomer = `
SELECT` + invoiceWithCustomerColumns + `
FROM invoices i
LEFT JOIN customers c ON c.id = i.customer_id
WHERE i.id = $1 AND i.user_id = $2`

func (s *Store) GetInvoiceWithCustomer(ctx context.Context, userID, invoiceID uuid.UUID) (InvoiceWithCustomer, error) {
	var invoice InvoiceWithCustomer
	err := s.db.GetContext(ctx, &invoice, sqlGetInvoiceWithCustomer, invoiceID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InvoiceWithCustomer{}, ErrNotFound
		}
		return InvoiceWithCustomer{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

const sqlGetInvoiceByNumber = `
SELECT` + invoiceWithCustomerColumns + `
FROM invoices i
LEFT JOIN customers c ON c.id = i.customer_id
WHERE i.user_id = $1 AND upper(i.invoice_number) = upper($2)`

func (s *Store) GetInvoiceByNumber(ctx context.Context, userID uuid.UUID, invoiceNumber string) (InvoiceWithCustomer, error) {
	var invoice InvoiceWithCustomer
	err := s.db.GetContext(ctx, &invoice, sqlGetInvoiceByNumber, userID, invoiceNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InvoiceWithCustomer{}, ErrNotFound
		}
		return InvoiceWithCustomer{}, fmt.Errorf("failed to get invoice by number: %w", err)
	}
	return invoice, nil
}

const sqlGetInvoiceItems = `
SELECT id, invoice_id, description, quantity, unit_price, amount, position
FROM invoice_items
WHERE invoice_id = $1
ORDER BY position`

func (s *Store) GetInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error) {
	var items []InvoiceItem
	if err := s.db.SelectContext(ctx, &items, sqlGetInvoiceItems, invoiceID); err != nil {
		return nil, fmt.Errorf("failed to get invoice items: %w", err)
	}
	return items, nil
}

const sqlUpsertInvoice = `
INSERT INTO invoices (user_id, customer_id, invoice_number, status, currency, subtotal, tax_amount, total_amount, amount_paid, balance_due, issue_date, due_date, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (user_id, invoice_number) DO UPDATE SET
    customer_id = COALESCE(EXCLUDED.customer_id, invoices.customer_id),
    status = EXCLUDED.status,
    currency = EXCLUDED.currency,
    subtotal = EXCLUDED.subtotal,
    tax_amount = EXCLUDED.tax_amount,
    total_amount = EXCLUDED.total_amount,
    amount_paid = EXCLUDED.amount_paid,
    balance_due = EXCLUDED.balance_due,
    issue_date = EXCLUDED.issue_date,
    due_date = EXCLUDED.due_date,
    notes = COALESCE(EXCLUDED.notes, invoices.notes),
    updated_at = CURRENT_TIMESTAMP
RETURNING id, user_id, customer_id, invoice_number, status, currency, subtotal, tax_amount, total_amount, amount_paid, balance_due, issue_date, due_date, paid_at, notes, created_at, updated_at`

const sqlDeleteInvoiceItems = `
DELETE FROM invoice_items
WHERE invoice_id = $1`

const sqlCreateInvoiceItem = `
INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, amount, position)
VALUES ($1, $2, $3, $4, $5, $6)`

// UpsertInvoice creates or updates the invoice keyed by (user, invoice number).
// When items are supplied they replace the stored line items.
func (s *Store) UpsertInvoice(ctx context.Context, params UpsertInvoiceParams) (Invoice, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Invoice{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var invoice Invoice
	err = tx.GetContext(ctx, &invoice, sqlUpsertInvoice,
		params.UserID,
		params.CustomerID,
		params.InvoiceNumber,
		params.Status,
		params.Currency,
		params.Subtotal,
		params.TaxAmount,
		params.TotalAmount,
		params.AmountPaid,
		params.TotalAmount-params.AmountPaid,
		params.IssueDate,
		params.DueDate,
		params.Notes)
	if err != nil {
		return Invoice{}, fmt.Errorf("failed to upsert invoice: %w", err)
	}

	if len(params.Items) > 0 {
		if _, err := tx.ExecContext(ctx, sqlDeleteInvoiceItems, invoice.ID); err != nil {
			return Invoice{}, fmt.Errorf("failed to clear invoice items: %w", err)
		}
		for i, item := range params.Items {
			_, err := tx.ExecContext(ctx, sqlCreateInvoiceItem,
				invoice.ID, item.Description, item.Quantity, item.UnitPrice, item.Quantity*item.UnitPrice, i)
			if err != nil {
				return Invoice{}, fmt.Errorf("failed to create invoice item: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return Invoice{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return invoice, nil
}
