package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB object fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// JSONValue holds an arbitrary JSON scalar or array, such as a condition value.
// A nil Data is stored as SQL NULL.
type JSONValue struct {
	Data any
}

func (v JSONValue) Value() (driver.Value, error) {
	if v.Data == nil {
		return nil, nil
	}
	return json.Marshal(v.Data)
}

func (v *JSONValue) Scan(value interface{}) error {
	if value == nil {
		v.Data = nil
		return nil
	}

	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(bytes) == 0 {
		v.Data = nil
		return nil
	}

	var data any
	if err := json.Unmarshal(bytes, &data); err != nil {
		return err
	}
	v.Data = data
	return nil
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, errors.New("incompatible type for JSON column")
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}
	*a = strings.Split(str, ",")
	return nil
}

func uuidArray(ids []uuid.UUID) StringArray {
	out := make(StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

type User struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Email            string    `db:"email" json:"email"`
	OrganizationName *string   `db:"organization_name" json:"organization_name,omitempty"`
	EmailVerified    bool      `db:"email_verified" json:"email_verified"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

type MailboxConnection struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UserID       uuid.UUID  `db:"user_id" json:"user_id"`
	Provider     string     `db:"provider" json:"provider"`
	EmailAddress string     `db:"email_address" json:"email_address"`
	AccessToken  string     `db:"access_token" json:"-"`
	RefreshToken string     `db:"refresh_token" json:"-"`
	TokenExpiry  *time.Time `db:"token_expiry" json:"token_expiry,omitempty"`
	LastSyncedAt *time.Time `db:"last_synced_at" json:"last_synced_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type MailTemplate struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Subject   string    `db:"subject" json:"subject"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Client    string    `db:"client" json:"client"`
	Contact   string    `db:"contact" json:"contact"`
	Status    string    `db:"status" json:"status"`
	Value     string    `db:"value" json:"value"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Invoice struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	CustomerID    *uuid.UUID `db:"customer_id" json:"customer_id,omitempty"`
	InvoiceNumber string     `db:"invoice_number" json:"invoice_number"`
	Status        string     `db:"status" json:"status"`
	Currency      string     `db:"currency" json:"currency"`
	Subtotal      float64    `db:"subtotal" json:"subtotal"`
	TaxAmount     float64    `db:"tax_amount" json:"tax_amount"`
	TotalAmount   float64    `db:"total_amount" json:"total_amount"`
	AmountPaid    float64    `db:"amount_paid" json:"amount_paid"`
	BalanceDue    float64    `db:"balance_due" json:"balance_due"`
	IssueDate     time.Time  `db:"issue_date" json:"issue_date"`
	DueDate       time.Time  `db:"due_date" json:"due_date"`
	PaidAt        *time.Time `db:"paid_at" json:"paid_at,omitempty"`
	Notes         *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// InvoiceWithCustomer is an invoice joined with its customer's contact details.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName  *string `db:"customer_name" json:"customer_name,omitempty"`
	CustomerEmail *string `db:"customer_email" json:"customer_email,omitempty"`
}

type InvoiceItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InvoiceID   uuid.UUID `db:"invoice_id" json:"invoice_id"`
	Description string    `db:"description" json:"description"`
	Quantity    float64   `db:"quantity" json:"quantity"`
	UnitPrice   float64   `db:"unit_price" json:"unit_price"`
	Amount      float64   `db:"amount" json:"amount"`
	Position    int       `db:"position" json:"position"`
}

type DraftEmail struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UserID       uuid.UUID  `db:"user_id" json:"user_id"`
	AutomationID *uuid.UUID `db:"automation_id" json:"automation_id,omitempty"`
	ToAddress    string     `db:"to_address" json:"to_address"`
	Subject      string     `db:"subject" json:"subject"`
	Body         string     `db:"body" json:"body"`
	HTMLBody     *string    `db:"html_body" json:"html_body,omitempty"`
	InReplyTo    *string    `db:"in_reply_to" json:"in_reply_to,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

type InboundEmail struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	ExternalID  string     `db:"external_id" json:"external_id"`
	ThreadID    *string    `db:"thread_id" json:"thread_id,omitempty"`
	FromAddress string     `db:"from_address" json:"from_address"`
	FromName    *string    `db:"from_name" json:"from_name,omitempty"`
	ToAddress   string     `db:"to_address" json:"to_address"`
	Subject     string     `db:"subject" json:"subject"`
	Body        string     `db:"body" json:"body"`
	Headers     JSONB      `db:"headers" json:"headers,omitempty"`
	ReceivedAt  time.Time  `db:"received_at" json:"received_at"`
	RepliedAt   *time.Time `db:"replied_at" json:"replied_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}
