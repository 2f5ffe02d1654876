package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizdesk-server/internal/ai"
	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/automation/conditions"
	"bizdesk-server/internal/mailbox"
	"bizdesk-server/internal/observability"
	"bizdesk-server/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AutomationStore defines the database operations required by AutomationProcessor
type AutomationStore interface {
	// Automations
	CreateAutomation(ctx context.Context, a automation.Automation) (automation.Automation, error)
	GetActiveAutomations(ctx context.Context, userID uuid.UUID, trigger automation.TriggerType, subTrigger *automation.SubTrigger) ([]automation.Automation, error)
	ListAutomationsByUser(ctx context.Context, userID uuid.UUID) ([]automation.Automation, error)
	SetAutomationActive(ctx context.Context, userID, automationID uuid.UUID, active bool) error
	DeleteAutomation(ctx context.Context, userID, automationID uuid.UUID) error

	// Mail templates
	GetMailTemplate(ctx context.Context, userID, templateID uuid.UUID) (store.MailTemplate, error)

	// Invoices
	GetInvoiceWithCustomer(ctx context.Context, userID, invoiceID uuid.UUID) (store.InvoiceWithCustomer, error)
	GetInvoiceByNumber(ctx context.Context, userID uuid.UUID, invoiceNumber string) (store.InvoiceWithCustomer, error)
	UpsertInvoice(ctx context.Context, params store.UpsertInvoiceParams) (store.Invoice, error)

	// Customers
	GetCustomerByEmail(ctx context.Context, userID uuid.UUID, email string) (store.Customer, error)
	UpsertCustomer(ctx context.Context, params store.UpsertCustomerParams) (store.Customer, error)

	// Drafts
	CreateDraftEmail(ctx context.Context, params store.CreateDraftEmailParams) (store.DraftEmail, error)
}

// TextService classifies incoming email and writes message text.
type TextService interface {
	Classify(ctx context.Context, body string) (ai.Classification, error)
	Generate(ctx context.Context, pc ai.PromptContext) (string, error)
}

// Mailer delivers rendered mail for a user.
type Mailer interface {
	Send(ctx context.Context, msg mailbox.Message) error
}

var (
	ErrMissingUser           = errors.New("trigger context has no user id")
	ErrInvalidAutomation     = errors.New("invalid automation")
	ErrAutomationNotFound    = errors.New("automation not found")
	ErrAutomationNameTaken   = errors.New("automation name already exists")
	ErrUnsupportedAction     = errors.New("unsupported action")
	ErrTemplateMisconfigured = errors.New("mail template missing or empty")
	ErrInvoiceRequired       = errors.New("no invoice could be resolved")
	ErrNoRecipient           = errors.New("no recipient could be resolved")
)

type AutomationProcessor struct {
	store     AutomationStore
	text      TextService
	mailer    Mailer
	registry  *conditions.Registry
	validator *validator.Validate
	logger    *observability.Logger
	now       func() time.Time
}

func New(store AutomationStore, text TextService, mailer Mailer, logger *observability.Logger) AutomationProcessor {
	return AutomationProcessor{
		store:     store,
		text:      text,
		mailer:    mailer,
		registry:  conditions.DefaultRegistry(),
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
		now:       time.Now,
	}
}

// RunRequest is one trigger event handed to the engine.
type RunRequest struct {
	TriggerType automation.TriggerType
	SubTrigger  *automation.SubTrigger
	Context     automation.TriggerContext
}

// RunAutomations evaluates every active automation of the user for the trigger and
// executes the action of each one whose conditions pass. A failing automation is
// reported in its outcome and does not stop the others.
func (p *AutomationProcessor) RunAutomations(ctx context.Context, req RunRequest) ([]automation.Outcome, error) {
	userID, ok := uuidValue(req.Context.User.String("id"))
	if !ok {
		return nil, ErrMissingUser
	}
	subTrigger := ""
	if req.SubTrigger != nil {
		subTrigger = string(*req.SubTrigger)
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "trigger_type", Value: req.TriggerType},
		observability.Field{Key: "sub_trigger", Value: subTrigger},
		observability.Field{Key: "user_id", Value: userID},
	)

	automations, err := p.store.GetActiveAutomations(ctx, userID, req.TriggerType, req.SubTrigger)
	if err != nil {
		p.logger.Error(ctx, "failed to load active automations", err)
		return nil, fmt.Errorf("failed to load active automations: %w", err)
	}

	outcomes := make([]automation.Outcome, 0, len(automations))
	var executed, skipped, failed int
	for _, a := range automations {
		actx := observability.WithFields(ctx,
			observability.Field{Key: "automation_id", Value: a.ID},
			observability.Field{Key: "automation_name", Value: a.Name},
			observability.Field{Key: "action_type", Value: a.ActionType},
		)
		outcome := automation.Outcome{AutomationID: a.ID, AutomationName: a.Name}

		if !p.matches(actx, a, req) {
			skipped++
			outcome.Result = &automation.ActionResult{Mode: automation.ResultSkipped}
			outcomes = append(outcomes, outcome)
			continue
		}

		result, err := p.execute(actx, a, req.Context)
		if err != nil {
			failed++
			p.logger.Error(actx, "automation action failed", err)
			outcome.Err = err
		} else {
			executed++
			p.logger.Info(observability.WithFields(actx, observability.Field{Key: "result_mode", Value: result.Mode}), "automation action completed")
			outcome.Result = &result
		}
		outcomes = append(outcomes, outcome)
	}

	p.logger.Metrics(ctx,
		observability.MetricField{Key: "automations_loaded", Value: len(automations)},
		observability.MetricField{Key: "automations_executed", Value: executed},
		observability.MetricField{Key: "automations_skipped", Value: skipped},
		observability.MetricField{Key: "automations_failed", Value: failed},
	)
	return outcomes, nil
}

// ProcessInvoiceStatusChangeAutomations runs the Invoice/OnChange trigger for a
// just-written invoice.
func (p *AutomationProcessor) ProcessInvoiceStatusChangeAutomations(ctx context.Context, user store.User, invoice store.InvoiceWithCustomer, customer *store.Customer) ([]automation.Outcome, error) {
	onChange := automation.SubTriggerOnChange
	return p.RunAutomations(ctx, RunRequest{
		TriggerType: automation.TriggerInvoice,
		SubTrigger:  &onChange,
		Context:     InvoiceContext(user, invoice, customer),
	})
}

// InvoiceContext builds the trigger context for an invoice event. Without a stored
// customer the customer node is taken from the invoice join.
func InvoiceContext(user store.User, invoice store.InvoiceWithCustomer, customer *store.Customer) automation.TriggerContext {
	tc := automation.TriggerContext{
		User:    user.Values(),
		Invoice: invoice.Values(),
	}
	switch {
	case customer != nil:
		tc.Customer = customer.Values()
	case invoice.CustomerEmail != nil || invoice.CustomerName != nil:
		tc.Customer = automation.Values{}
		if invoice.CustomerName != nil {
			tc.Customer["name"] = *invoice.CustomerName
		}
		if invoice.CustomerEmail != nil {
			tc.Customer["email"] = *invoice.CustomerEmail
		}
	}
	return tc
}

// matches evaluates the automation's condition set. Bad data resolves to false.
func (p *AutomationProcessor) matches(ctx context.Context, a automation.Automation, req RunRequest) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error(ctx, "condition evaluation panicked", fmt.Errorf("%v", r))
			ok = false
		}
	}()
	if !a.IsActive || a.TriggerType != req.TriggerType {
		return false
	}
	if req.SubTrigger != nil && (a.SubTrigger == nil || *a.SubTrigger != *req.SubTrigger) {
		return false
	}
	return conditions.EvaluateAll(p.registry, a.Conditions, a.ConditionLogic, req.Context)
}

// execute runs the action and turns a panic into an error so one automation
// cannot unwind the batch.
func (p *AutomationProcessor) execute(ctx context.Context, a automation.Automation, tc automation.TriggerContext) (result automation.ActionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("automation action panicked: %v", r)
		}
	}()
	return p.ExecuteAction(ctx, a, tc)
}

// FieldTypes lists the fields conditions may address.
func (p *AutomationProcessor) FieldTypes() []conditions.Field {
	return p.registry.Fields()
}

func uuidValue(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
