package bootstrap

import (
	"context"
	"fmt"

	"bizdesk-server/internal/ai"
	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/automation/processor"
	"bizdesk-server/internal/automation/triggers"
	"bizdesk-server/internal/clients/gmail"
	"bizdesk-server/internal/clients/googleai"
	"bizdesk-server/internal/clients/mail"
	"bizdesk-server/internal/clients/openai"
	"bizdesk-server/internal/clients/redis"
	"bizdesk-server/internal/config"
	"bizdesk-server/internal/inbound"
	"bizdesk-server/internal/jobs/scheduler"
	"bizdesk-server/internal/jobs/scheduler/jobs"
	"bizdesk-server/internal/mailbox"
	"bizdesk-server/internal/observability"
	"bizdesk-server/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Automation engine and its trigger sources
	Processor processor.AutomationProcessor
	Sweeper   *triggers.Sweeper
	Ingester  *inbound.Ingester

	// Background jobs
	Scheduler *scheduler.Scheduler

	// Clients (for cleanup)
	Redis    *redis.Client
	GoogleAI *googleai.CompletionClient
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize AI provider
	var provider ai.Completer
	switch cfg.Services.AIProvider {
	case config.AIProviderGemini:
		deps.GoogleAI, err = googleai.NewCompletionClient(ctx, cfg.Services.GoogleAIAPIKey, cfg.Services.AIModel, logger)
		if err != nil {
			deps.Cleanup()
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		provider = deps.GoogleAI
	default:
		provider, err = openai.NewCompletionClient(cfg.Services.OpenAIAPIKey, cfg.Services.AIModel, logger)
		if err != nil {
			deps.Cleanup()
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
	}
	textService := ai.New(provider, cfg.Automation.AITimeout, ai.BreakerSettings{}, logger)

	// Initialize mail transports
	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}
	gmailClient := gmail.NewClient(cfg.Gmail.ClientID, cfg.Gmail.ClientSecret, &deps.Store, logger)
	router := mailbox.New(&deps.Store, gmailClient, mailClient, cfg.Services.DefaultEmailSender, cfg.Automation.MailTimeout, logger)

	// Initialize automation engine and trigger sources
	location := cfg.Automation.Location()
	deps.Processor = processor.New(&deps.Store, textService, router, logger)
	deps.Sweeper = triggers.New(&deps.Store, &deps.Processor, location, logger)

	processed, err := inbound.NewProcessedSet(cfg.Automation.ProcessedCacheSize)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}
	deps.Ingester = inbound.New(&deps.Store, &deps.Processor, processed, logger)

	// Initialize scheduler with an optional run lock
	deps.Redis, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}
	var locker scheduler.Locker
	if deps.Redis.IsEnabled() {
		locker = deps.Redis
	}
	deps.Scheduler = scheduler.New(locker, cfg.Automation.LockTTL, location, logger)

	schedules := cfg.Automation.Schedules
	registered := []scheduler.Job{
		jobs.NewDueTomorrowJob(deps.Sweeper, schedules.DueTomorrow, logger),
		jobs.NewCadenceJob(deps.Sweeper, automation.SubTriggerDaily, schedules.Daily, logger),
		jobs.NewCadenceJob(deps.Sweeper, automation.SubTriggerWeekly, schedules.Weekly, logger),
		jobs.NewCadenceJob(deps.Sweeper, automation.SubTriggerMonthly, schedules.Monthly, logger),
		jobs.NewInboundSyncJob(&deps.Store, gmailClient, deps.Ingester, cfg.Automation.InboundBatchSize, schedules.InboundSync, logger),
		jobs.NewDraftCleanupJob(&deps.Store, cfg.Automation.DraftRetention, schedules.Cleanup, logger),
	}
	for _, job := range registered {
		if err := deps.Scheduler.Register(job); err != nil {
			deps.Cleanup()
			return nil, err
		}
	}

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.GoogleAI != nil {
		if err := d.GoogleAI.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close gemini client", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
