package triggers

//go:generate go run go.uber.org/mock/mockgen@latest -source=sweeper.go -destination=mocks_test.go -package=triggers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/automation/processor"
	"bizdesk-server/internal/observability"
	"bizdesk-server/internal/store"
)

// SweepStore lists the users and invoices a sweep walks over.
type SweepStore interface {
	ListVerifiedUsers(ctx context.Context) ([]store.User, error)
	ListInvoicesForAutomation(ctx context.Context, filter store.InvoiceFilter) ([]store.InvoiceWithCustomer, error)
}

// Engine runs automations for one trigger event.
type Engine interface {
	RunAutomations(ctx context.Context, req processor.RunRequest) ([]automation.Outcome, error)
	ProcessInvoiceStatusChangeAutomations(ctx context.Context, user store.User, invoice store.InvoiceWithCustomer, customer *store.Customer) ([]automation.Outcome, error)
}

var ErrUnsupportedCadence = errors.New("unsupported sweep cadence")

// Summary counts what a sweep did.
type Summary struct {
	Users          int
	Invoices       int
	Executed       int
	Failed         int
	FailedUsers    int
	FailedInvoices int
}

// Sweeper turns invoice events and scheduled cadences into engine runs.
type Sweeper struct {
	store    SweepStore
	engine   Engine
	location *time.Location
	logger   *observability.Logger
	now      func() time.Time
}

func New(store SweepStore, engine Engine, location *time.Location, logger *observability.Logger) *Sweeper {
	if location == nil {
		location = time.UTC
	}
	return &Sweeper{
		store:    store,
		engine:   engine,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// InvoiceChanged runs Invoice/OnChange once for an invoice that was just created
// or updated.
func (s *Sweeper) InvoiceChanged(ctx context.Context, user store.User, invoice store.InvoiceWithCustomer, customer *store.Customer) ([]automation.Outcome, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: user.ID},
		observability.Field{Key: "invoice_id", Value: invoice.ID},
	)
	outcomes, err := s.engine.ProcessInvoiceStatusChangeAutomations(ctx, user, invoice, customer)
	if err != nil {
		s.logger.Error(ctx, "failed to run invoice change automations", err)
		return nil, err
	}
	return outcomes, nil
}

// RunDueTomorrow runs Invoice/DayBeforeOverdue for every invoice due tomorrow.
func (s *Sweeper) RunDueTomorrow(ctx context.Context) (Summary, error) {
	now := s.now().In(s.location)
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return s.sweep(ctx, automation.SubTriggerDayBeforeOverdue, &tomorrow)
}

// RunCadence runs Invoice/{Daily,Weekly,Monthly} for every invoice of every
// verified user.
func (s *Sweeper) RunCadence(ctx context.Context, cadence automation.SubTrigger) (Summary, error) {
	switch cadence {
	case automation.SubTriggerDaily, automation.SubTriggerWeekly, automation.SubTriggerMonthly:
		return s.sweep(ctx, cadence, nil)
	}
	return Summary{}, fmt.Errorf("%w: %s", ErrUnsupportedCadence, cadence)
}

func (s *Sweeper) sweep(ctx context.Context, subTrigger automation.SubTrigger, dueDate *time.Time) (Summary, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "sub_trigger", Value: subTrigger})

	users, err := s.store.ListVerifiedUsers(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to list verified users: %w", err)
	}

	var summary Summary
	for _, user := range users {
		userCtx := observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID})
		summary.Users++

		invoices, err := s.store.ListInvoicesForAutomation(userCtx, store.InvoiceFilter{UserID: user.ID, DueDate: dueDate})
		if err != nil {
			s.logger.Error(userCtx, "failed to list invoices for sweep", err)
			summary.FailedUsers++
			continue
		}

		for _, invoice := range invoices {
			summary.Invoices++
			invoiceCtx := observability.WithFields(userCtx, observability.Field{Key: "invoice_id", Value: invoice.ID})
			sub := subTrigger
			outcomes, err := s.engine.RunAutomations(invoiceCtx, processor.RunRequest{
				TriggerType: automation.TriggerInvoice,
				SubTrigger:  &sub,
				Context:     processor.InvoiceContext(user, invoice, nil),
			})
			if err != nil {
				s.logger.Error(invoiceCtx, "failed to run automations for invoice", err)
				summary.FailedInvoices++
				continue
			}
			for _, o := range outcomes {
				switch {
				case o.Err != nil:
					summary.Failed++
				case o.Result != nil && o.Result.Mode != automation.ResultSkipped:
					summary.Executed++
				}
			}
		}
	}

	s.logger.Info(ctx, fmt.Sprintf("Invoice sweep completed: %d users, %d invoices, %d actions executed, %d actions failed",
		summary.Users, summary.Invoices, summary.Executed, summary.Failed))
	return summary, nil
}
