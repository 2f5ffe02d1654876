package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bizdesk-server/internal/automation"
	"bizdesk-server/internal/automation/conditions"
	"bizdesk-server/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateAutomationParams is the user input for a new automation.
type CreateAutomationParams struct {
	Name           string                    `json:"name" validate:"required,max=120"`
	TriggerType    automation.TriggerType    `json:"trigger_type" validate:"required,oneof=EmailReceived Customer Invoice"`
	SubTrigger     *automation.SubTrigger    `json:"sub_trigger,omitempty"`
	ConditionLogic automation.ConditionLogic `json:"condition_logic" validate:"omitempty,oneof=AND OR"`
	Conditions     []ConditionParams         `json:"conditions" validate:"max=50,dive"`
	ActionType     automation.ActionType     `json:"action_type" validate:"required,oneof=SendMail AiGenerateAutoSend AiGenerateDraft Crm Invoice"`
	ActionSubType  *automation.ActionSubType `json:"action_sub_type,omitempty"`
	MailTemplateID *uuid.UUID                `json:"mail_template_id,omitempty"`
	IsActive       *bool                     `json:"is_active,omitempty"`
}

type ConditionParams struct {
	Entity   automation.Entity   `json:"entity" validate:"required,oneof=customer invoice"`
	Field    string              `json:"field" validate:"required"`
	Operator automation.Operator `json:"operator" validate:"required"`
	Value    any                 `json:"value"`
}

// validate checks the definition and returns the automation to persist.
func (p *AutomationProcessor) validate(ctx context.Context, userID uuid.UUID, params CreateAutomationParams) (automation.Automation, error) {
	if userID == uuid.Nil {
		return automation.Automation{}, fmt.Errorf("%w: user id is required", ErrInvalidAutomation)
	}
	params.Name = strings.TrimSpace(params.Name)
	if err := p.validator.Struct(params); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return automation.Automation{}, fmt.Errorf("%w: %s", ErrInvalidAutomation, validationMessage(validationErrs))
		}
		return automation.Automation{}, fmt.Errorf("%w: %s", ErrInvalidAutomation, err.Error())
	}

	var problems []string

	switch {
	case params.TriggerType == automation.TriggerInvoice && params.SubTrigger == nil:
		problems = append(problems, "sub_trigger is required for Invoice triggers")
	case params.TriggerType == automation.TriggerInvoice && !params.SubTrigger.Valid():
		problems = append(problems, fmt.Sprintf("sub_trigger %q is not supported", *params.SubTrigger))
	case params.TriggerType != automation.TriggerInvoice && params.SubTrigger != nil:
		problems = append(problems, "sub_trigger is only allowed for Invoice triggers")
	}

	want, needsSubType := params.ActionType.RequiredSubType()
	switch {
	case needsSubType && (params.ActionSubType == nil || *params.ActionSubType != want):
		problems = append(problems, fmt.Sprintf("action_sub_type must be %s for %s actions", want, params.ActionType))
	case !needsSubType && params.ActionSubType != nil:
		problems = append(problems, fmt.Sprintf("action_sub_type is not allowed for %s actions", params.ActionType))
	}

	conds := make([]automation.Condition, 0, len(params.Conditions))
	for i, c := range params.Conditions {
		if msg := p.checkCondition(c); msg != "" {
			problems = append(problems, fmt.Sprintf("conditions[%d]: %s", i, msg))
			continue
		}
		conds = append(conds, automation.Condition{
			Entity:   c.Entity,
			Field:    c.Field,
			Operator: c.Operator,
			Value:    c.Value,
			Position: i,
		})
	}

	if params.ActionType.UsesMailTemplate() {
		msg, err := p.checkTemplate(ctx, userID, params.MailTemplateID)
		if err != nil {
			return automation.Automation{}, err
		}
		if msg != "" {
			problems = append(problems, msg)
		}
	} else if params.MailTemplateID != nil {
		problems = append(problems, fmt.Sprintf("mail_template_id is not used by %s actions", params.ActionType))
	}

	if len(problems) > 0 {
		return automation.Automation{}, fmt.Errorf("%w: %s", ErrInvalidAutomation, strings.Join(problems, "; "))
	}

	logic := params.ConditionLogic
	if logic == "" {
		logic = automation.LogicAnd
	}
	active := true
	if params.IsActive != nil {
		active = *params.IsActive
	}
	return automation.Automation{
		UserID:         userID,
		Name:           params.Name,
		TriggerType:    params.TriggerType,
		SubTrigger:     params.SubTrigger,
		ConditionLogic: logic,
		Conditions:     conds,
		ActionType:     params.ActionType,
		ActionSubType:  params.ActionSubType,
		MailTemplateID: params.MailTemplateID,
		IsActive:       active,
	}, nil
}

func (p *AutomationProcessor) checkCondition(c ConditionParams) string {
	dt, ok := p.registry.TypeOf(c.Entity, c.Field)
	if !ok {
		return fmt.Sprintf("unknown field %s.%s", c.Entity, c.Field)
	}
	if !conditions.OperatorAllowed(c.Operator, dt) {
		return fmt.Sprintf("operator %q is not allowed for %s field %s", c.Operator, dt, c.Field)
	}
	switch {
	case c.Operator.TakesNoValue():
		if c.Value != nil {
			return fmt.Sprintf("operator %q takes no value", c.Operator)
		}
	case c.Operator == automation.OpBetween:
		if !isPair(c.Value) {
			return "between needs a [from, to] value"
		}
	default:
		if c.Value == nil || isCollection(c.Value) {
			return fmt.Sprintf("operator %q needs a single value", c.Operator)
		}
	}
	return ""
}

// checkTemplate returns a problem message for a missing or foreign template.
func (p *AutomationProcessor) checkTemplate(ctx context.Context, userID uuid.UUID, templateID *uuid.UUID) (string, error) {
	if templateID == nil {
		return "mail_template_id is required for mail actions", nil
	}
	if _, err := p.store.GetMailTemplate(ctx, userID, *templateID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Sprintf("mail template %s not found", *templateID), nil
		}
		return "", fmt.Errorf("failed to load mail template: %w", err)
	}
	return "", nil
}

func isPair(v any) bool {
	switch t := v.(type) {
	case []any:
		return len(t) == 2 && t[0] != nil && t[1] != nil
	case []string:
		return len(t) == 2
	case []float64:
		return len(t) == 2
	case []int:
		return len(t) == 2
	}
	return false
}

func isCollection(v any) bool {
	switch v.(type) {
	case []any, []string, []float64, []int, map[string]any:
		return true
	}
	return false
}

func validationMessage(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return strings.Join(messages, "; ")
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
