package automation

import (
	"time"

	"github.com/google/uuid"
)

// TriggerType is the event category that causes automation evaluation.
type TriggerType string

const (
	TriggerEmailReceived TriggerType = "EmailReceived"
	TriggerCustomer      TriggerType = "Customer"
	TriggerInvoice       TriggerType = "Invoice"
)

func (t TriggerType) Valid() bool {
	switch t {
	case TriggerEmailReceived, TriggerCustomer, TriggerInvoice:
		return true
	}
	return false
}

// SubTrigger selects the cadence or change detection of an Invoice trigger.
type SubTrigger string

const (
	SubTriggerOnChange         SubTrigger = "OnChange"
	SubTriggerDaily            SubTrigger = "Daily"
	SubTriggerWeekly           SubTrigger = "Weekly"
	SubTriggerMonthly          SubTrigger = "Monthly"
	SubTriggerDayBeforeOverdue SubTrigger = "DayBeforeOverdue"
)

func (s SubTrigger) Valid() bool {
	switch s {
	case SubTriggerOnChange, SubTriggerDaily, SubTriggerWeekly, SubTriggerMonthly, SubTriggerDayBeforeOverdue:
		return true
	}
	return false
}

// ActionType is the side effect an automation performs once its conditions pass.
type ActionType string

const (
	ActionSendMail           ActionType = "SendMail"
	ActionAiGenerateAutoSend ActionType = "AiGenerateAutoSend"
	ActionAiGenerateDraft    ActionType = "AiGenerateDraft"
	ActionCrm                ActionType = "Crm"
	ActionInvoice            ActionType = "Invoice"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionSendMail, ActionAiGenerateAutoSend, ActionAiGenerateDraft, ActionCrm, ActionInvoice:
		return true
	}
	return false
}

// RequiredSubType returns the only sub type allowed for the action, if it takes one.
func (a ActionType) RequiredSubType() (ActionSubType, bool) {
	switch a {
	case ActionCrm:
		return ActionSubTypeUpsertCrm, true
	case ActionInvoice:
		return ActionSubTypeUpsertInvoice, true
	}
	return "", false
}

// UsesMailTemplate reports whether the action renders a mail template.
func (a ActionType) UsesMailTemplate() bool {
	switch a {
	case ActionSendMail, ActionAiGenerateAutoSend, ActionAiGenerateDraft:
		return true
	}
	return false
}

// UsesAI reports whether the action generates text through the AI service.
func (a ActionType) UsesAI() bool {
	return a == ActionAiGenerateAutoSend || a == ActionAiGenerateDraft
}

type ActionSubType string

const (
	ActionSubTypeUpsertCrm     ActionSubType = "UpsertCrm"
	ActionSubTypeUpsertInvoice ActionSubType = "UpsertInvoice"
)

type ConditionLogic string

const (
	LogicAnd ConditionLogic = "AND"
	LogicOr  ConditionLogic = "OR"
)

func (l ConditionLogic) Valid() bool {
	return l == LogicAnd || l == LogicOr
}

// Entity names the context sub-object a condition reads from.
type Entity string

const (
	EntityCustomer Entity = "customer"
	EntityInvoice  Entity = "invoice"
)

type DataType string

const (
	DataTypeString DataType = "string"
	DataTypeNumber DataType = "number"
	DataTypeDate   DataType = "date"
)

type Operator string

const (
	OpEquals             Operator = "equals"
	OpNotEquals          Operator = "not equals"
	OpContains           Operator = "contains"
	OpStartsWith         Operator = "starts with"
	OpEndsWith           Operator = "ends with"
	OpGreaterThan        Operator = "greater than"
	OpLessThan           Operator = "less than"
	OpGreaterThanOrEqual Operator = "greater than or equal"
	OpLessThanOrEqual    Operator = "less than or equal"
	OpBetween            Operator = "between"
	OpIsNull             Operator = "is null"
	OpIsNotNull          Operator = "is not null"
)

// TakesNoValue reports whether the operator must be stored without a value.
func (o Operator) TakesNoValue() bool {
	return o == OpIsNull || o == OpIsNotNull
}

// Condition is a single comparison clause over one entity field.
type Condition struct {
	ID       uuid.UUID `json:"id"`
	Entity   Entity    `json:"entity"`
	Field    string    `json:"field"`
	Operator Operator  `json:"operator"`
	Value    any       `json:"value"`
	Position int       `json:"position"`
}

// Automation is a per-user rule: trigger, condition set and one action.
type Automation struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	Name           string         `json:"name"`
	TriggerType    TriggerType    `json:"trigger_type"`
	SubTrigger     *SubTrigger    `json:"sub_trigger,omitempty"`
	ConditionLogic ConditionLogic `json:"condition_logic"`
	Conditions     []Condition    `json:"conditions"`
	ActionType     ActionType     `json:"action_type"`
	ActionSubType  *ActionSubType `json:"action_sub_type,omitempty"`
	MailTemplateID *uuid.UUID     `json:"mail_template_id,omitempty"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// InvoiceTyped reports whether the automation needs a resolvable invoice to act.
func (a Automation) InvoiceTyped() bool {
	return a.TriggerType == TriggerInvoice || a.ActionType == ActionInvoice
}

// ResultMode describes what an action ended up doing.
type ResultMode string

const (
	ResultSent     ResultMode = "sent"
	ResultDraft    ResultMode = "draft"
	ResultUpserted ResultMode = "upserted"
	ResultNoop     ResultMode = "noop"
	ResultSkipped  ResultMode = "skipped"
)

type ActionResult struct {
	Mode      ResultMode `json:"mode"`
	Recipient string     `json:"recipient,omitempty"`
	Subject   string     `json:"subject,omitempty"`
	RecordID  *uuid.UUID `json:"record_id,omitempty"`
}

// Outcome is the per-automation entry of a run. Exactly one of Result or Err is set.
type Outcome struct {
	AutomationID   uuid.UUID     `json:"automation_id"`
	AutomationName string        `json:"automation_name"`
	Result         *ActionResult `json:"result,omitempty"`
	Err            error         `json:"-"`
}

func (o Outcome) Sent() bool {
	return o.Err == nil && o.Result != nil && o.Result.Mode == ResultSent
}
