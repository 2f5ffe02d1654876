package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bizdesk-server/internal/automation"

	"github.com/google/uuid"
)

type automationRow struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	Name           string     `db:"name"`
	TriggerType    string     `db:"trigger_type"`
	SubTrigger     *string    `db:"sub_trigger"`
	ConditionLogic string     `db:"condition_logic"`
	ActionType     string     `db:"action_type"`
	ActionSubType  *string    `db:"action_sub_type"`
	MailTemplateID *uuid.UUID `db:"mail_template_id"`
	IsActive       bool       `db:"is_active"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type conditionRow struct {
	ID           uuid.UUID `db:"id"`
	AutomationID uuid.UUID `db:"automation_id"`
	Entity       string    `db:"entity"`
	Field        string    `db:"field"`
	Operator     string    `db:"operator"`
	Value        JSONValue `db:"value"`
	Position     int       `db:"position"`
}

func (r automationRow) toAutomation(conds []automation.Condition) automation.Automation {
	a := automation.Automation{
		ID:             r.ID,
		UserID:         r.UserID,
		Name:           r.Name,
		TriggerType:    automation.TriggerType(r.TriggerType),
		ConditionLogic: automation.ConditionLogic(r.ConditionLogic),
		Conditions:     conds,
		ActionType:     automation.ActionType(r.ActionType),
		MailTemplateID: r.MailTemplateID,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.SubTrigger != nil {
		st := automation.SubTrigger(*r.SubTrigger)
		a.SubTrigger = &st
	}
	if r.ActionSubType != nil {
		ast := automation.ActionSubType(*r.ActionSubType)
		a.ActionSubType = &ast
	}
	if a.Conditions == nil {
		a.Conditions = []automation.Condition{}
	}
	return a
}

func (r conditionRow) toCondition() automation.Condition {
	return automation.Condition{
		ID:       r.ID,
		Entity:   automation.Entity(r.Entity),
		Field:    r.Field,
		Operator: automation.Operator(r.Operator),
		Value:    r.Value.Data,
		Position: r.Position,
	}
}

const automationColumns = `id, user_id, name, trigger_type, sub_trigger, condition_logic, action_type, action_sub_type, mail_template_id, is_active, created_at, updated_at`

const sqlCreateAutomation = `
INSERT INTO automations (user_id, name, trigger_type, sub_trigger, condition_logic, action_type, action_sub_type, mail_template_id, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + automationColumns

const sqlCreateAutomationCondition = `
INSERT INTO automation_conditions (automation_id, entity, field, operator, value, position)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

// CreateAutomation persists an automation and its ordered conditions atomically.
func (s *Store) CreateAutomation(ctx context.Context, a automation.Automation) (automation.Automation, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return automation.Automation{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var row automationRow
	err = tx.GetContext(ctx, &row, sqlCreateAutomation,
		a.UserID,
		a.Name,
		string(a.TriggerType),
		subTriggerParam(a.SubTrigger),
		string(a.ConditionLogic),
		string(a.ActionType),
		actionSubTypeParam(a.ActionSubType),
		a.MailTemplateID,
		a.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return automation.Automation{}, ErrAlreadyExists
		}
		return automation.Automation{}, fmt.Errorf("failed to create automation: %w", err)
	}

	conds := make([]automation.Condition, 0, len(a.Conditions))
	for i, c := range a.Conditions {
		var id uuid.UUID
		err := tx.GetContext(ctx, &id, sqlCreateAutomationCondition,
			row.ID, string(c.Entity), c.Field, string(c.Operator), JSONValue{Data: c.Value}, i)
		if err != nil {
			return automation.Automation{}, fmt.Errorf("failed to create automation condition: %w", err)
		}
		c.ID = id
		c.Position = i
		conds = append(conds, c)
	}

	if err := tx.Commit(); err != nil {
		return automation.Automation{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return row.toAutomation(conds), nil
}

const sqlGetActiveAutomations = `
SELECT ` + automationColumns + `
FROM automations
WHERE user_id = $1
  AND trigger_type = $2
  AND is_active = TRUE
  AND ($3::text IS NULL OR sub_trigger = $3)
ORDER BY created_at DESC`

// GetActiveAutomations loads the active automations of a user for a trigger.
// A nil subTrigger matches every sub trigger.
func (s *Store) GetActiveAutomations(ctx context.Context, userID uuid.UUID, trigger automation.TriggerType, subTrigger *automation.SubTrigger) ([]automation.Automation, error) {
	var rows []automationRow
	err := s.db.SelectContext(ctx, &rows, sqlGetActiveAutomations, userID, string(trigger), subTriggerParam(subTrigger))
	if err != nil {
		return nil, fmt.Errorf("failed to get active automations: %w", err)
	}
	return s.withConditions(ctx, rows)
}

const sqlListAutomationsByUser = `
SELECT ` + automationColumns + `
FROM automations
WHERE user_id = $1
ORDER BY created_at DESC`

func (s *Store) ListAutomationsByUser(ctx context.Context, userID uuid.UUID) ([]automation.Automation, error) {
	var rows []automationRow
	if err := s.db.SelectContext(ctx, &rows, sqlListAutomationsByUser, userID); err != nil {
		return nil, fmt.Errorf("failed to list automations: %w", err)
	}
	return s.withConditions(ctx, rows)
}

const sqlGetAutomationByID = `
SELECT ` + automationColumns + `
FROM automations
WHERE id = $1 AND user_id = $2`

func (s *Store) GetAutomationByID(ctx context.Context, userID, automationID uuid.UUID) (automation.Automation, error) {
	var row automationRow
	err := s.db.GetContext(ctx, &row, sqlGetAutomationByID, automationID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return automation.Automation{}, ErrNotFound
		}
		return automation.Automation{}, fmt.Errorf("failed to get automation: %w", err)
	}
	list, err := s.withConditions(ctx, []automationRow{row})
	if err != nil {
		return automation.Automation{}, err
	}
	return list[0], nil
}

const sqlGetConditionsByAutomationIDs = `
SELECT id, automation_id, entity, field, operator, value, position
FROM automation_conditions
WHERE automation_id = ANY($1::uuid[])
ORDER BY automation_id, position`

func (s *Store) withConditions(ctx context.Context, rows []automationRow) ([]automation.Automation, error) {
	if len(rows) == 0 {
		return []automation.Automation{}, nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var condRows []conditionRow
	if err := s.db.SelectContext(ctx, &condRows, sqlGetConditionsByAutomationIDs, uuidArray(ids)); err != nil {
		return nil, fmt.Errorf("failed to get automation conditions: %w", err)
	}
	byAutomation := make(map[uuid.UUID][]automation.Condition, len(rows))
	for _, cr := range condRows {
		byAutomation[cr.AutomationID] = append(byAutomation[cr.AutomationID], cr.toCondition())
	}

	out := make([]automation.Automation, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toAutomation(byAutomation[r.ID]))
	}
	return out, nil
}

const sqlSetAutomationActive = `
UPDATE automations
SET is_active = $3, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND user_id = $2`

func (s *Store) SetAutomationActive(ctx context.Context, userID, automationID uuid.UUID, active bool) error {
	res, err := s.db.ExecContext(ctx, sqlSetAutomationActive, automationID, userID, active)
	if err != nil {
		return fmt.Errorf("failed to update automation: %w", err)
	}
	return requireAffected(res)
}

const sqlDeleteAutomationConditions = `
DELETE FROM automation_conditions
WHERE automation_id = $1`

const sqlDeleteAutomation = `
DELETE FROM automations
WHERE id = $1 AND user_id = $2`

// DeleteAutomation removes an automation together with its condition rows.
func (s *Store) DeleteAutomation(ctx context.Context, userID, automationID uuid.UUID) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Ownership is checked by the automation delete below; a foreign id leaves
	// the transaction uncommitted.
	if _, err := tx.ExecContext(ctx, sqlDeleteAutomationConditions, automationID); err != nil {
		return fmt.Errorf("failed to delete automation conditions: %w", err)
	}
	res, err := tx.ExecContext(ctx, sqlDeleteAutomation, automationID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete automation: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func subTriggerParam(st *automation.SubTrigger) *string {
	if st == nil {
		return nil
	}
	v := string(*st)
	return &v
}

func actionSubTypeParam(ast *automation.ActionSubType) *string {
	if ast == nil {
		return nil
	}
	v := string(*ast)
	return &v
}
