package processor

import (
	"context"
	"errors"
	"fmt"

	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/observability"
	"bizdesk-server/internal/store"

	"github.com/google/uuid"
)

// CreateAutomation validates and stores a new automation. Invalid definitions are
// never persisted.
func (p *AutomationProcessor) CreateAutomation(ctx context.Context, userID uuid.UUID, params CreateAutomationParams) (automation.Automation, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "automation_name", Value: params.Name},
	)

	a, err := p.validate(ctx, userID, params)
	if err != nil {
		p.logger.Warn(ctx, err.Error())
		return automation.Automation{}, err
	}

	created, err := p.store.CreateAutomation(ctx, a)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return automation.Automation{}, ErrAutomationNameTaken
		}
		p.logger.Error(ctx, "failed to create automation", err)
		return automation.Automation{}, fmt.Errorf("failed to create automation: %w", err)
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "automation_id", Value: created.ID}), "automation created")
	return created, nil
}

func (p *AutomationProcessor) ListAutomations(ctx context.Context, userID uuid.UUID) ([]automation.Automation, error) {
	automations, err := p.store.ListAutomationsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID}), "failed to list automations", err)
		return nil, fmt.Errorf("failed to list automations: %w", err)
	}
	return automations, nil
}

// SetAutomationActive toggles whether the automation is loaded for execution.
func (p *AutomationProcessor) SetAutomationActive(ctx context.Context, userID, automationID uuid.UUID, active bool) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "automation_id", Value: automationID},
	)
	if err := p.store.SetAutomationActive(ctx, userID, automationID, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAutomationNotFound
		}
		p.logger.Error(ctx, "failed to update automation", err)
		return fmt.Errorf("failed to update automation: %w", err)
	}
	return nil
}

// DeleteAutomation removes the automation together with its conditions.
func (p *AutomationProcessor) DeleteAutomation(ctx context.Context, userID, automationID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "automation_id", Value: automationID},
	)
	if err := p.store.DeleteAutomation(ctx, userID, automationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAutomationNotFound
		}
		p.logger.Error(ctx, "failed to delete automation", err)
		return fmt.Errorf("failed to delete automation: %w", err)
	}
	p.logger.Info(ctx, "automation deleted")
	return nil
}
