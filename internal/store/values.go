package store

import (
	"bizdesk-server/internal/automation"
)

// Values returns the user as a trigger context node.
func (u User) Values() automation.Values {
	v := automation.Values{
		"id":    u.ID.String(),
		"name":  u.Name,
		"email": u.Email,
	}
	if u.OrganizationName != nil {
		v["organization_name"] = *u.OrganizationName
	}
	return v
}

func (c Customer) Values() automation.Values {
	return automation.Values{
		"id":         c.ID.String(),
		"name":       c.Name,
		"email":      c.Email,
		"client":     c.Client,
		"contact":    c.Contact,
		"status":     c.Status,
		"value":      c.Value,
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
	}
}

func (i Invoice) Values() automation.Values {
	v := automation.Values{
		"id":             i.ID.String(),
		"invoice_number": i.InvoiceNumber,
		"status":         i.Status,
		"currency":       i.Currency,
		"subtotal":       i.Subtotal,
		"tax_amount":     i.TaxAmount,
		"total_amount":   i.TotalAmount,
		"amount_paid":    i.AmountPaid,
		"balance_due":    i.BalanceDue,
		"issue_date":     i.IssueDate,
		"due_date":       i.DueDate,
		"created_at":     i.CreatedAt,
		"updated_at":     i.UpdatedAt,
	}
	if i.CustomerID != nil {
		v["customer_id"] = i.CustomerID.String()
	}
	if i.PaidAt != nil {
		v["paid_at"] = *i.PaidAt
	}
	if i.Notes != nil {
		v["notes"] = *i.Notes
	}
	return v
}

func (i InvoiceWithCustomer) Values() automation.Values {
	v := i.Invoice.Values()
	if i.CustomerName != nil {
		v["customer_name"] = *i.CustomerName
	}
	if i.CustomerEmail != nil {
		v["customer_email"] = *i.CustomerEmail
	}
	return v
}

func (e InboundEmail) Values() automation.Values {
	v := automation.Values{
		"id":          e.ID.String(),
		"external_id": e.ExternalID,
		"from":        e.FromAddress,
		"to":          e.ToAddress,
		"subject":     e.Subject,
		"body":        e.Body,
		"received_at": e.ReceivedAt,
	}
	if e.FromName != nil {
		v["from_name"] = *e.FromName
	}
	if e.ThreadID != nil {
		v["thread_id"] = *e.ThreadID
	}
	return v
}
