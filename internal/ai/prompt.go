package ai

import (
	"fmt"
	"strings"

	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/automation/templating"
)

const classifierInstructions = `You label incoming business emails.
Answer with exactly three tokens separated by spaces and nothing else:
1. category: one of Invoice, Query, Support, Customer, Other
2. invoicePresent if the email mentions a specific invoice, otherwise noInvoice
3. the invoice number mentioned in the email, or null`

const writerInstructions = `You write short, polite emails on behalf of a small business owner.
Use only facts present in the context. Do not invent amounts, dates or invoice numbers.
Return only the email body text without a subject line or signature placeholder.`

// PromptContext is the structured input for text generation.
type PromptContext struct {
	Purpose        string
	User           automation.Values
	Customer       automation.Values
	Invoice        automation.Values
	Email          automation.Values
	Classification *Classification
}

// Prompt renders the context as plain text for the provider.
func (pc PromptContext) Prompt() string {
	var b strings.Builder
	purpose := pc.Purpose
	if purpose == "" {
		purpose = "Write a message to the customer."
	}
	b.WriteString(purpose)
	b.WriteString("\n")

	writeSection(&b, "Business", pc.User, "name", "organization_name", "email")
	writeSection(&b, "Customer", pc.Customer, "name", "email", "client", "contact", "status")
	if pc.Invoice != nil {
		writeSection(&b, "Invoice", pc.Invoice, "invoice_number", "status", "currency", "total_amount", "amount_paid", "balance_due", "issue_date", "due_date")
	}
	if pc.Email != nil {
		writeSection(&b, "Incoming email", pc.Email, "from", "from_name", "subject", "body")
	}
	if pc.Classification != nil {
		fmt.Fprintf(&b, "\nEmail category: %s\n", pc.Classification.Category)
		if pc.Classification.InvoiceNumber != nil && pc.Invoice == nil {
			fmt.Fprintf(&b, "The email mentions invoice %s but no matching invoice was found. Do not quote invoice details.\n", *pc.Classification.InvoiceNumber)
		}
	}
	return b.String()
}

func writeSection(b *strings.Builder, title string, v automation.Values, keys ...string) {
	if len(v) == 0 {
		return
	}
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		val, ok := v[k]
		if !ok || val == nil {
			continue
		}
		s := templating.Format(val)
		if strings.TrimSpace(s) == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", k, s))
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n%s\n", title, strings.Join(lines, "\n"))
}

func classifierPrompt(body string) string {
	return "Email:\n" + body
}
