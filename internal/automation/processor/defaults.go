package processor

import (
	"strings"
	"time"

	"bizdesk-server/internal/store"
)

// Field defaults applied before customer and invoice records are persisted.
const (
	DefaultCustomerName    = "Unknown"
	DefaultCustomerClient  = "Unknown Client"
	DefaultCustomerContact = "N/A"
	DefaultCustomerStatus  = "Active"
	DefaultCustomerValue   = "$0"

	DefaultInvoiceStatus   = "Unpaid"
	DefaultInvoiceCurrency = "USD"
	DefaultLineItemText    = "Services"
)

func applyCustomerDefaults(p *store.UpsertCustomerParams) {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Name = orDefault(p.Name, DefaultCustomerName)
	p.Client = orDefault(p.Client, DefaultCustomerClient)
	p.Contact = orDefault(p.Contact, DefaultCustomerContact)
	p.Status = orDefault(p.Status, DefaultCustomerStatus)
	p.Value = orDefault(p.Value, DefaultCustomerValue)
}

// applyInvoiceDefaults fills dates with today, derives missing totals and, for a new
// invoice without items, adds one line item covering the total.
func applyInvoiceDefaults(p *store.UpsertInvoiceParams, today time.Time, isNew bool) {
	p.InvoiceNumber = strings.TrimSpace(p.InvoiceNumber)
	p.Status = orDefault(p.Status, DefaultInvoiceStatus)
	p.Currency = strings.ToUpper(orDefault(p.Currency, DefaultInvoiceCurrency))

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if p.IssueDate.IsZero() {
		p.IssueDate = day
	}
	if p.DueDate.IsZero() {
		p.DueDate = day
	}

	if p.TotalAmount == 0 && p.Subtotal != 0 {
		p.TotalAmount = p.Subtotal + p.TaxAmount
	}
	if p.Subtotal == 0 && p.TotalAmount != 0 {
		p.Subtotal = p.TotalAmount - p.TaxAmount
	}

	if isNew && len(p.Items) == 0 {
		p.Items = []store.InvoiceItemParams{{
			Description: DefaultLineItemText,
			Quantity:    1,
			UnitPrice:   p.Subtotal,
		}}
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
