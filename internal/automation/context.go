package automation

import (
	"strings"

	"github.com/spf13/cast"
)

// Values is one node of the trigger context tree. Keys are snake_case field names;
// nested maps are allowed.
type Values map[string]any

// Get returns the first present, non-nil value among keys.
func (v Values) Get(keys ...string) (any, bool) {
	for _, k := range keys {
		if val, ok := v[k]; ok && val != nil {
			return val, true
		}
	}
	return nil, false
}

// String returns the first non-blank string value among keys.
func (v Values) String(keys ...string) string {
	for _, k := range keys {
		val, ok := v[k]
		if !ok || val == nil {
			continue
		}
		s, err := cast.ToStringE(val)
		if err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

// TriggerContext is the transient, read-only bag handed to evaluation and actions
// for one trigger event.
type TriggerContext struct {
	User     Values
	Customer Values
	Invoice  Values
	Email    Values
}

// Entity returns the sub-object a condition entity refers to, nil when absent.
func (c TriggerContext) Entity(e Entity) Values {
	switch e {
	case EntityCustomer:
		return c.Customer
	case EntityInvoice:
		return c.Invoice
	}
	return nil
}

// Tree returns the context as a generic key-value tree for template rendering.
// Absent sub-objects are omitted.
func (c TriggerContext) Tree() map[string]any {
	tree := make(map[string]any, 4)
	if c.User != nil {
		tree["user"] = map[string]any(c.User)
	}
	if c.Customer != nil {
		tree["customer"] = map[string]any(c.Customer)
	}
	if c.Invoice != nil {
		tree["invoice"] = map[string]any(c.Invoice)
	}
	if c.Email != nil {
		tree["email"] = map[string]any(c.Email)
	}
	return tree
}
