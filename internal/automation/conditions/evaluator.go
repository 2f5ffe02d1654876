package conditions

import (
	"math"
	"strconv"
	"strings"
	"time"

	"bizdesk-server/internal/automation"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
)

// Evaluate compares an actual field value against the expected value of a condition.
// It never panics: unknown operators, unsupported operator/type pairs and values that
// fail to normalize all evaluate to false.
func Evaluate(op automation.Operator, actual, expected any, dt automation.DataType) bool {
	switch op {
	case automation.OpIsNull:
		return isNull(actual, dt)
	case automation.OpIsNotNull:
		return !isNull(actual, dt)
	case automation.OpBetween:
		return between(actual, expected, dt)
	}

	switch dt {
	case automation.DataTypeString:
		a, okA := toString(actual)
		e, okE := toString(expected)
		if !okA || !okE {
			return false
		}
		return compareStrings(op, a, e)
	case automation.DataTypeNumber:
		a, okA := toNumber(actual)
		e, okE := toNumber(expected)
		if !okA || !okE {
			return false
		}
		return compareOrdered(op, cmpFloat(a, e))
	case automation.DataTypeDate:
		a, okA := toTime(actual)
		e, okE := toTime(expected)
		if !okA || !okE {
			return false
		}
		return compareOrdered(op, a.Compare(e))
	}
	return false
}

func isNull(v any, dt automation.DataType) bool {
	if v == nil {
		return true
	}
	switch dt {
	case automation.DataTypeNumber:
		_, ok := toNumber(v)
		return !ok
	case automation.DataTypeDate:
		_, ok := toTime(v)
		return !ok
	default:
		s, ok := toString(v)
		return !ok || s == ""
	}
}

// between uses the bounds in the order given: start <= actual <= end.
// Swapped bounds therefore never match.
func between(actual, expected any, dt automation.DataType) bool {
	lo, hi, ok := boundsOf(expected)
	if !ok {
		return false
	}
	switch dt {
	case automation.DataTypeNumber:
		a, okA := toNumber(actual)
		start, okS := toNumber(lo)
		end, okE := toNumber(hi)
		if !okA || !okS || !okE {
			return false
		}
		return start <= a && a <= end
	case automation.DataTypeDate:
		a, okA := toTime(actual)
		start, okS := toTime(lo)
		end, okE := toTime(hi)
		if !okA || !okS || !okE {
			return false
		}
		return !a.Before(start) && !a.After(end)
	}
	return false
}

func boundsOf(expected any) (any, any, bool) {
	switch b := expected.(type) {
	case []any:
		if len(b) == 2 {
			return b[0], b[1], true
		}
	case [2]any:
		return b[0], b[1], true
	case []string:
		if len(b) == 2 {
			return b[0], b[1], true
		}
	case []float64:
		if len(b) == 2 {
			return b[0], b[1], true
		}
	case []int:
		if len(b) == 2 {
			return b[0], b[1], true
		}
	}
	return nil, nil, false
}

func compareStrings(op automation.Operator, actual, expected string) bool {
	a := strings.ToLower(actual)
	e := strings.ToLower(expected)
	switch op {
	case automation.OpEquals:
		return a == e
	case automation.OpNotEquals:
		return a != e
	case automation.OpContains:
		return strings.Contains(a, e)
	case automation.OpStartsWith:
		return strings.HasPrefix(a, e)
	case automation.OpEndsWith:
		return strings.HasSuffix(a, e)
	}
	return false
}

func compareOrdered(op automation.Operator, c int) bool {
	switch op {
	case automation.OpEquals:
		return c == 0
	case automation.OpNotEquals:
		return c != 0
	case automation.OpGreaterThan:
		return c > 0
	case automation.OpLessThan:
		return c < 0
	case automation.OpGreaterThanOrEqual:
		return c >= 0
	case automation.OpLessThanOrEqual:
		return c <= 0
	}
	return false
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// toString reports false for values without a scalar string form. Nil is the empty string.
func toString(v any) (string, bool) {
	if v == nil {
		return "", true
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// toNumber accepts numeric values and numeric strings. A leading currency symbol and
// thousands separators are tolerated ("$1,200" is 1200).
func toNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimLeft(s, "$€£¥")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		parsed, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toTime parses dates leniently. Zone-less inputs are read as UTC; numbers are epoch
// milliseconds.
func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		parsed, err := dateparse.ParseIn(s, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	ms, ok := toNumber(v)
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}
