package conditions

import (
	"bizdesk-server/internal/automation"
)

// EvaluateAll combines conditions with AND/OR logic against a trigger context.
// An empty condition list always passes. Any logic other than OR is treated as AND.
func EvaluateAll(reg *Registry, conds []automation.Condition, logic automation.ConditionLogic, tc automation.TriggerContext) bool {
	if len(conds) == 0 {
		return true
	}
	if reg == nil {
		reg = DefaultRegistry()
	}

	for _, c := range conds {
		ok := evaluateOne(reg, c, tc)
		if logic == automation.LogicOr && ok {
			return true
		}
		if logic != automation.LogicOr && !ok {
			return false
		}
	}
	return logic != automation.LogicOr
}

func evaluateOne(reg *Registry, c automation.Condition, tc automation.TriggerContext) bool {
	var actual any
	if values := tc.Entity(c.Entity); values != nil {
		actual = values[c.Field]
	}
	dt, ok := reg.TypeOf(c.Entity, c.Field)
	if !ok {
		dt = automation.DataTypeString
	}
	return Evaluate(c.Operator, actual, c.Value, dt)
}
