package conditions

import (
	"bizdesk-server/internal/automation"
)

// Field describes one condition-addressable field of an entity.
type Field struct {
	Entity   automation.Entity   `json:"entity"`
	Key      string              `json:"key"`
	Label    string              `json:"label"`
	DataType automation.DataType `json:"data_type"`
}

// Registry is the static field type metadata shared by every user.
type Registry struct {
	fields map[automation.Entity]map[string]Field
	order  []Field
}

var defaultFields = []Field{
	{automation.EntityCustomer, "name", "Name", automation.DataTypeString},
	{automation.EntityCustomer, "email", "Email", automation.DataTypeString},
	{automation.EntityCustomer, "client", "Client", automation.DataTypeString},
	{automation.EntityCustomer, "contact", "Contact", automation.DataTypeString},
	{automation.EntityCustomer, "status", "Status", automation.DataTypeString},
	{automation.EntityCustomer, "value", "Value", automation.DataTypeNumber},
	{automation.EntityCustomer, "created_at", "Created At", automation.DataTypeDate},
	{automation.EntityCustomer, "updated_at", "Updated At", automation.DataTypeDate},

	{automation.EntityInvoice, "invoice_number", "Invoice Number", automation.DataTypeString},
	{automation.EntityInvoice, "status", "Status", automation.DataTypeString},
	{automation.EntityInvoice, "customer_name", "Customer Name", automation.DataTypeString},
	{automation.EntityInvoice, "customer_email", "Customer Email", automation.DataTypeString},
	{automation.EntityInvoice, "currency", "Currency", automation.DataTypeString},
	{automation.EntityInvoice, "notes", "Notes", automation.DataTypeString},
	{automation.EntityInvoice, "subtotal", "Subtotal", automation.DataTypeNumber},
	{automation.EntityInvoice, "tax_amount", "Tax Amount", automation.DataTypeNumber},
	{automation.EntityInvoice, "total_amount", "Total Amount", automation.DataTypeNumber},
	{automation.EntityInvoice, "amount_paid", "Amount Paid", automation.DataTypeNumber},
	{automation.EntityInvoice, "balance_due", "Balance Due", automation.DataTypeNumber},
	{automation.EntityInvoice, "issue_date", "Issue Date", automation.DataTypeDate},
	{automation.EntityInvoice, "due_date", "Due Date", automation.DataTypeDate},
	{automation.EntityInvoice, "paid_at", "Paid At", automation.DataTypeDate},
	{automation.EntityInvoice, "created_at", "Created At", automation.DataTypeDate},
	{automation.EntityInvoice, "updated_at", "Updated At", automation.DataTypeDate},
}

var defaultRegistry = NewRegistry(defaultFields)

// DefaultRegistry returns the registry of customer and invoice fields.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func NewRegistry(fields []Field) *Registry {
	r := &Registry{
		fields: make(map[automation.Entity]map[string]Field),
		order:  make([]Field, 0, len(fields)),
	}
	for _, f := range fields {
		if r.fields[f.Entity] == nil {
			r.fields[f.Entity] = make(map[string]Field)
		}
		r.fields[f.Entity][f.Key] = f
		r.order = append(r.order, f)
	}
	return r
}

// TypeOf returns the declared data type of entity.field.
func (r *Registry) TypeOf(entity automation.Entity, field string) (automation.DataType, bool) {
	f, ok := r.fields[entity][field]
	if !ok {
		return "", false
	}
	return f.DataType, true
}

// Fields lists every registered field in declaration order.
func (r *Registry) Fields() []Field {
	out := make([]Field, len(r.order))
	copy(out, r.order)
	return out
}

var stringOperators = []automation.Operator{
	automation.OpEquals,
	automation.OpNotEquals,
	automation.OpContains,
	automation.OpStartsWith,
	automation.OpEndsWith,
	automation.OpIsNull,
	automation.OpIsNotNull,
}

var orderedOperators = []automation.Operator{
	automation.OpEquals,
	automation.OpNotEquals,
	automation.OpGreaterThan,
	automation.OpLessThan,
	automation.OpGreaterThanOrEqual,
	automation.OpLessThanOrEqual,
	automation.OpBetween,
	automation.OpIsNull,
	automation.OpIsNotNull,
}

// OperatorsFor lists the operators valid for a data type.
func OperatorsFor(dt automation.DataType) []automation.Operator {
	switch dt {
	case automation.DataTypeString:
		return stringOperators
	case automation.DataTypeNumber, automation.DataTypeDate:
		return orderedOperators
	}
	return nil
}

// OperatorAllowed reports whether op may be used on a field of type dt.
func OperatorAllowed(op automation.Operator, dt automation.DataType) bool {
	for _, allowed := range OperatorsFor(dt) {
		if allowed == op {
			return true
		}
	}
	return false
}
