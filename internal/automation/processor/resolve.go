package processor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/store"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

var (
	invoiceNumberPattern = regexp.MustCompile(`(?i)\b(INV[-_ ]?\d[\w-]*)\b`)
	invoiceRefPattern    = regexp.MustCompile(`(?i)\binvoice\s*(?:no\.?|number|num|#)?\s*[:#]?\s*([A-Z]{0,6}-?\d[\w-]*)`)
	currencyCleaner      = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "")
)

// resolveInvoice replaces the context invoice with the stored one when the context
// carries an invoice id. Without any invoice the call fails only when required.
func (p *AutomationProcessor) resolveInvoice(ctx context.Context, userID uuid.UUID, tc automation.TriggerContext, required bool) (automation.TriggerContext, error) {
	if tc.Invoice == nil {
		if required {
			return tc, ErrInvoiceRequired
		}
		return tc, nil
	}

	id, ok := uuidValue(tc.Invoice.String("id"))
	if !ok {
		return tc, nil
	}
	inv, err := p.store.GetInvoiceWithCustomer(ctx, userID, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		p.logger.Warn(ctx, "context invoice not found in store, using context copy")
		return tc, nil
	case err != nil:
		return tc, fmt.Errorf("failed to load invoice: %w", err)
	}

	resolved := inv.Values()
	// keep extra context keys the store does not know about
	for k, v := range tc.Invoice {
		if _, ok := resolved[k]; !ok {
			resolved[k] = v
		}
	}
	tc.Invoice = resolved
	return tc, nil
}

// resolveRecipient picks the first address-like candidate from the sender, the
// customer and the invoice's customer, in that order.
func resolveRecipient(tc automation.TriggerContext) (string, error) {
	candidates := []string{
		tc.Email.String("from"),
		tc.Customer.String("email"),
		tc.Invoice.String("customer_email"),
		tc.Invoice.String("customerEmail"),
	}
	for _, c := range candidates {
		if strings.Contains(c, "@") {
			return c, nil
		}
	}
	return "", ErrNoRecipient
}

// contactEmail is the address a CRM record is keyed on.
func contactEmail(tc automation.TriggerContext) string {
	candidates := []string{
		tc.Customer.String("email"),
		tc.Email.String("from"),
		tc.Invoice.String("customer_email"),
		tc.Invoice.String("customerEmail"),
	}
	for _, c := range candidates {
		if strings.Contains(c, "@") {
			return strings.ToLower(c)
		}
	}
	return ""
}

// extractInvoiceNumber finds an invoice-number-like token in free text.
func extractInvoiceNumber(text string) string {
	if m := invoiceNumberPattern.FindStringSubmatch(text); m != nil {
		return normalizeInvoiceNumber(m[1])
	}
	if m := invoiceRefPattern.FindStringSubmatch(text); m != nil {
		return normalizeInvoiceNumber(m[1])
	}
	return ""
}

func normalizeInvoiceNumber(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	return strings.TrimRight(s, "-")
}

func floatValue(v any) float64 {
	if s, ok := v.(string); ok {
		v = currencyCleaner.Replace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

func timeValue(v any) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	case string:
		if strings.TrimSpace(t) == "" {
			return time.Time{}
		}
		parsed, err := dateparse.ParseIn(t, time.UTC)
		if err != nil {
			return time.Time{}
		}
		return parsed
	}
	return time.Time{}
}
