package jobs

import (
	"context"
	"fmt"

	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/automation/triggers"
	"bizdesk-server/internal/observability"
)

// InvoiceSweepJob runs one invoice sweep on a cron schedule
type InvoiceSweepJob struct {
	sweeper  InvoiceSweeper
	cadence  automation.SubTrigger
	schedule string
	logger   *observability.Logger
}

// NewDueTomorrowJob sweeps invoices due tomorrow for DayBeforeOverdue automations.
func NewDueTomorrowJob(sweeper InvoiceSweeper, schedule string, logger *observability.Logger) *InvoiceSweepJob {
	return &InvoiceSweepJob{
		sweeper:  sweeper,
		cadence:  automation.SubTriggerDayBeforeOverdue,
		schedule: schedule,
		logger:   logger,
	}
}

// NewCadenceJob sweeps every invoice for Daily, Weekly or Monthly automations.
func NewCadenceJob(sweeper InvoiceSweeper, cadence automation.SubTrigger, schedule string, logger *observability.Logger) *InvoiceSweepJob {
	return &InvoiceSweepJob{
		sweeper:  sweeper,
		cadence:  cadence,
		schedule: schedule,
		logger:   logger,
	}
}

// Name returns the job name
func (j *InvoiceSweepJob) Name() string {
	switch j.cadence {
	case automation.SubTriggerDayBeforeOverdue:
		return "invoice_due_tomorrow_sweep"
	case automation.SubTriggerDaily:
		return "invoice_daily_sweep"
	case automation.SubTriggerWeekly:
		return "invoice_weekly_sweep"
	case automation.SubTriggerMonthly:
		return "invoice_monthly_sweep"
	}
	return "invoice_sweep"
}

// Schedule returns the cron spec the job runs on
func (j *InvoiceSweepJob) Schedule() string {
	return j.schedule
}

// Run executes the sweep
func (j *InvoiceSweepJob) Run(ctx context.Context) error {
	var (
		summary triggers.Summary
		err     error
	)
	if j.cadence == automation.SubTriggerDayBeforeOverdue {
		summary, err = j.sweeper.RunDueTomorrow(ctx)
	} else {
		summary, err = j.sweeper.RunCadence(ctx, j.cadence)
	}
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", j.Name(), err)
	}

	j.logger.Metrics(ctx,
		observability.MetricField{Key: "sweep_users", Value: summary.Users},
		observability.MetricField{Key: "sweep_invoices", Value: summary.Invoices},
		observability.MetricField{Key: "sweep_executed", Value: summary.Executed},
		observability.MetricField{Key: "sweep_failed", Value: summary.Failed + summary.FailedInvoices},
	)
	if summary.FailedUsers > 0 {
		j.logger.Warn(ctx, fmt.Sprintf("Sweep skipped %d users after invoice lookup failures", summary.FailedUsers))
	}
	return nil
}
