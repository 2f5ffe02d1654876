package processor

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"bizdesk-server/internal/ai"
	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/automation/templating"
	"bizdesk-server/internal/mailbox"
	"bizdesk-server/internal/observability"
	"bizdesk-server/internal/store"

	"github.com/google/uuid"
)

const aiReplyPath = "ai.reply"

// ExecuteAction performs the automation's action against the trigger context.
func (p *AutomationProcessor) ExecuteAction(ctx context.Context, a automation.Automation, tc automation.TriggerContext) (automation.ActionResult, error) {
	userID, ok := uuidValue(tc.User.String("id"))
	if !ok {
		return automation.ActionResult{}, ErrMissingUser
	}
	if want, ok := a.ActionType.RequiredSubType(); ok && (a.ActionSubType == nil || *a.ActionSubType != want) {
		return automation.ActionResult{}, fmt.Errorf("%w: %s requires sub type %s", ErrUnsupportedAction, a.ActionType, want)
	}

	switch a.ActionType {
	case automation.ActionSendMail:
		return p.sendMail(ctx, userID, a, tc)
	case automation.ActionAiGenerateAutoSend:
		return p.aiMail(ctx, userID, a, tc, false)
	case automation.ActionAiGenerateDraft:
		return p.aiMail(ctx, userID, a, tc, true)
	case automation.ActionCrm:
		return p.upsertCustomer(ctx, userID, tc)
	case automation.ActionInvoice:
		return p.upsertInvoice(ctx, userID, tc)
	}
	return automation.ActionResult{}, fmt.Errorf("%w: %s", ErrUnsupportedAction, a.ActionType)
}

func (p *AutomationProcessor) sendMail(ctx context.Context, userID uuid.UUID, a automation.Automation, tc automation.TriggerContext) (automation.ActionResult, error) {
	tmpl, err := p.loadTemplate(ctx, userID, a)
	if err != nil {
		return automation.ActionResult{}, err
	}
	tc, err = p.resolveInvoice(ctx, userID, tc, a.InvoiceTyped())
	if err != nil {
		return automation.ActionResult{}, err
	}
	to, err := resolveRecipient(tc)
	if err != nil {
		return automation.ActionResult{}, err
	}

	data := tc.Tree()
	subject := templating.Render(tmpl.Subject, data)
	body := templating.Render(tmpl.Body, data)
	return p.deliver(ctx, userID, a, tc, to, subject, body, false)
}

func (p *AutomationProcessor) aiMail(ctx context.Context, userID uuid.UUID, a automation.Automation, tc automation.TriggerContext, draft bool) (automation.ActionResult, error) {
	tmpl, err := p.loadTemplate(ctx, userID, a)
	if err != nil {
		return automation.ActionResult{}, err
	}

	var cls *ai.Classification
	if a.TriggerType == automation.TriggerEmailReceived && tc.Email != nil {
		tc, cls, err = p.classifyEmail(ctx, userID, tc)
		if err != nil {
			return automation.ActionResult{}, err
		}
	}
	tc, err = p.resolveInvoice(ctx, userID, tc, a.InvoiceTyped())
	if err != nil {
		return automation.ActionResult{}, err
	}
	to, err := resolveRecipient(tc)
	if err != nil {
		return automation.ActionResult{}, err
	}

	text, err := p.text.Generate(ctx, ai.PromptContext{
		Purpose:        purposeFor(a),
		User:           tc.User,
		Customer:       tc.Customer,
		Invoice:        tc.Invoice,
		Email:          tc.Email,
		Classification: cls,
	})
	if err != nil {
		return automation.ActionResult{}, fmt.Errorf("failed to generate reply: %w", err)
	}

	data := tc.Tree()
	data["ai"] = map[string]any{"reply": text}
	subject := templating.Render(tmpl.Subject, data)
	body := templating.Render(tmpl.Body, data)
	if !templating.References(tmpl.Body, aiReplyPath) {
		body = strings.TrimRight(body, " \t\r\n") + "\n\n" + text
	}
	return p.deliver(ctx, userID, a, tc, to, subject, body, draft)
}

// classifyEmail labels the incoming email and, when it concerns an invoice, loads
// the invoice and the sender's customer record into the context.
func (p *AutomationProcessor) classifyEmail(ctx context.Context, userID uuid.UUID, tc automation.TriggerContext) (automation.TriggerContext, *ai.Classification, error) {
	subject := tc.Email.String("subject")
	body := tc.Email.String("body")

	cls, err := p.text.Classify(ctx, body)
	if err != nil {
		return tc, nil, fmt.Errorf("failed to classify email: %w", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "email_category", Value: cls.Category})
	if !cls.ConcernsInvoice() {
		return tc, &cls, nil
	}

	if tc.Customer == nil {
		if from := tc.Email.String("from"); from != "" {
			customer, err := p.store.GetCustomerByEmail(ctx, userID, from)
			switch {
			case err == nil:
				tc.Customer = customer.Values()
			case !errors.Is(err, store.ErrNotFound):
				return tc, nil, fmt.Errorf("failed to load sender customer: %w", err)
			}
		}
	}

	number := extractInvoiceNumber(subject + "\n" + body)
	if number == "" && cls.InvoiceNumber != nil {
		number = *cls.InvoiceNumber
	}
	if number == "" {
		return tc, &cls, nil
	}

	inv, err := p.store.GetInvoiceByNumber(ctx, userID, number)
	switch {
	case errors.Is(err, store.ErrNotFound):
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "invoice_number", Value: number}), "invoice mentioned in email not found")
		cls.InvoiceNumber = &number
		return tc, &cls, nil
	case err != nil:
		return tc, nil, fmt.Errorf("failed to load mentioned invoice: %w", err)
	}
	cls.InvoiceNumber = &inv.InvoiceNumber
	tc.Invoice = inv.Values()
	return tc, &cls, nil
}

func (p *AutomationProcessor) deliver(ctx context.Context, userID uuid.UUID, a automation.Automation, tc automation.TriggerContext, to, subject, body string, draft bool) (automation.ActionResult, error) {
	htmlBody := textToHTML(body)
	externalID := tc.Email.String("external_id")

	if draft {
		params := store.CreateDraftEmailParams{
			UserID:       userID,
			AutomationID: &a.ID,
			ToAddress:    to,
			Subject:      subject,
			Body:         body,
			HTMLBody:     &htmlBody,
		}
		if externalID != "" {
			params.InReplyTo = &externalID
		}
		d, err := p.store.CreateDraftEmail(ctx, params)
		if err != nil {
			return automation.ActionResult{}, fmt.Errorf("failed to save draft: %w", err)
		}
		return automation.ActionResult{Mode: automation.ResultDraft, Recipient: to, Subject: subject, RecordID: &d.ID}, nil
	}

	err := p.mailer.Send(ctx, mailbox.Message{
		UserID:            userID,
		To:                to,
		ReplyTo:           tc.User.String("email"),
		Subject:           subject,
		BodyText:          body,
		BodyHTML:          htmlBody,
		ReplyToExternalID: externalID,
		ThreadID:          tc.Email.String("thread_id"),
	})
	if err != nil {
		return automation.ActionResult{}, fmt.Errorf("failed to send mail: %w", err)
	}
	return automation.ActionResult{Mode: automation.ResultSent, Recipient: to, Subject: subject}, nil
}

func (p *AutomationProcessor) upsertCustomer(ctx context.Context, userID uuid.UUID, tc automation.TriggerContext) (automation.ActionResult, error) {
	email := contactEmail(tc)
	if email == "" {
		return automation.ActionResult{Mode: automation.ResultNoop}, nil
	}

	params := store.UpsertCustomerParams{
		UserID:  userID,
		Email:   email,
		Name:    firstNonBlank(tc.Customer.String("name"), tc.Email.String("from_name"), tc.Invoice.String("customer_name", "customerName")),
		Client:  tc.Customer.String("client"),
		Contact: tc.Customer.String("contact"),
		Status:  tc.Customer.String("status"),
		Value:   tc.Customer.String("value"),
	}

	existing, err := p.store.GetCustomerByEmail(ctx, userID, email)
	switch {
	case err == nil:
		params.Name = firstNonBlank(params.Name, existing.Name)
		params.Client = firstNonBlank(params.Client, existing.Client)
		params.Contact = firstNonBlank(params.Contact, existing.Contact)
		params.Status = firstNonBlank(params.Status, existing.Status)
		params.Value = firstNonBlank(params.Value, existing.Value)
	case !errors.Is(err, store.ErrNotFound):
		return automation.ActionResult{}, fmt.Errorf("failed to load customer: %w", err)
	}

	applyCustomerDefaults(&params)
	customer, err := p.store.UpsertCustomer(ctx, params)
	if err != nil {
		return automation.ActionResult{}, fmt.Errorf("failed to upsert customer: %w", err)
	}
	return automation.ActionResult{Mode: automation.ResultUpserted, Recipient: customer.Email, RecordID: &customer.ID}, nil
}

func (p *AutomationProcessor) upsertInvoice(ctx context.Context, userID uuid.UUID, tc automation.TriggerContext) (automation.ActionResult, error) {
	if tc.Invoice == nil && tc.Email != nil {
		if n := extractInvoiceNumber(tc.Email.String("subject") + "\n" + tc.Email.String("body")); n != "" {
			tc.Invoice = automation.Values{"invoice_number": n}
		}
	}
	tc, err := p.resolveInvoice(ctx, userID, tc, true)
	if err != nil {
		return automation.ActionResult{}, err
	}
	number := tc.Invoice.String("invoice_number", "invoiceNumber")
	if number == "" {
		return automation.ActionResult{Mode: automation.ResultNoop}, nil
	}

	fields := tc.Invoice
	isNew := true
	existing, err := p.store.GetInvoiceByNumber(ctx, userID, number)
	switch {
	case err == nil:
		isNew = false
		fields = existing.Values()
		for k, v := range tc.Invoice {
			fields[k] = v
		}
	case !errors.Is(err, store.ErrNotFound):
		return automation.ActionResult{}, fmt.Errorf("failed to load invoice: %w", err)
	}
	tc.Invoice = fields

	total, _ := fields.Get("total_amount", "totalAmount", "amount")
	params := store.UpsertInvoiceParams{
		UserID:        userID,
		InvoiceNumber: number,
		Status:        fields.String("status"),
		Currency:      fields.String("currency"),
		Subtotal:      floatValue(fields["subtotal"]),
		TaxAmount:     floatValue(fields["tax_amount"]),
		TotalAmount:   floatValue(total),
		AmountPaid:    floatValue(fields["amount_paid"]),
		IssueDate:     timeValue(fields["issue_date"]),
		DueDate:       timeValue(fields["due_date"]),
		Items:         invoiceItems(fields["items"]),
	}
	if notes := fields.String("notes"); notes != "" {
		params.Notes = &notes
	}
	if id, ok := uuidValue(fields.String("customer_id")); ok {
		params.CustomerID = &id
	} else if email := contactEmail(tc); email != "" {
		customer, err := p.store.GetCustomerByEmail(ctx, userID, email)
		switch {
		case err == nil:
			params.CustomerID = &customer.ID
		case !errors.Is(err, store.ErrNotFound):
			return automation.ActionResult{}, fmt.Errorf("failed to load invoice customer: %w", err)
		}
	}

	applyInvoiceDefaults(&params, p.now(), isNew)
	inv, err := p.store.UpsertInvoice(ctx, params)
	if err != nil {
		return automation.ActionResult{}, fmt.Errorf("failed to upsert invoice: %w", err)
	}
	return automation.ActionResult{Mode: automation.ResultUpserted, RecordID: &inv.ID}, nil
}

func (p *AutomationProcessor) loadTemplate(ctx context.Context, userID uuid.UUID, a automation.Automation) (store.MailTemplate, error) {
	if a.MailTemplateID == nil {
		return store.MailTemplate{}, fmt.Errorf("%w: automation has no mail template", ErrTemplateMisconfigured)
	}
	tmpl, err := p.store.GetMailTemplate(ctx, userID, *a.MailTemplateID)
	if errors.Is(err, store.ErrNotFound) {
		return store.MailTemplate{}, fmt.Errorf("%w: template %s not found", ErrTemplateMisconfigured, *a.MailTemplateID)
	}
	if err != nil {
		return store.MailTemplate{}, fmt.Errorf("failed to load mail template: %w", err)
	}
	if strings.TrimSpace(tmpl.Subject) == "" || strings.TrimSpace(tmpl.Body) == "" {
		return store.MailTemplate{}, fmt.Errorf("%w: template %s has an empty subject or body", ErrTemplateMisconfigured, tmpl.ID)
	}
	return tmpl, nil
}

func purposeFor(a automation.Automation) string {
	switch a.TriggerType {
	case automation.TriggerEmailReceived:
		return "Write a reply to the incoming email."
	case automation.TriggerInvoice:
		if a.SubTrigger == nil {
			break
		}
		switch *a.SubTrigger {
		case automation.SubTriggerDayBeforeOverdue:
			return "Write a friendly reminder that the invoice below is due tomorrow."
		case automation.SubTriggerOnChange:
			return "Write a short note telling the customer about the update to the invoice below."
		case automation.SubTriggerDaily, automation.SubTriggerWeekly, automation.SubTriggerMonthly:
			return "Write a short status update about the invoice below."
		}
	}
	return "Write a short message to the customer."
}

func invoiceItems(v any) []store.InvoiceItemParams {
	var raw []map[string]any
	switch t := v.(type) {
	case []map[string]any:
		raw = t
	case []any:
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				raw = append(raw, m)
			}
		}
	}

	items := make([]store.InvoiceItemParams, 0, len(raw))
	for _, m := range raw {
		values := automation.Values(m)
		qty := floatValue(m["quantity"])
		if qty == 0 {
			qty = 1
		}
		price, _ := values.Get("unit_price", "unitPrice", "amount")
		items = append(items, store.InvoiceItemParams{
			Description: firstNonBlank(values.String("description"), DefaultLineItemText),
			Quantity:    qty,
			UnitPrice:   floatValue(price),
		})
	}
	return items
}

func textToHTML(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
