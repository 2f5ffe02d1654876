package templating

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cast"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}]*?)\s*\}\}`)

// legacyAliases maps short placeholder names used by older templates to their
// canonical dot paths.
var legacyAliases = map[string]string{
	"customerName":     "customer.name",
	"customerEmail":    "customer.email",
	"clientName":       "customer.client",
	"contactName":      "customer.contact",
	"invoiceNumber":    "invoice.invoice_number",
	"invoiceStatus":    "invoice.status",
	"invoiceAmount":    "invoice.total_amount",
	"amount":           "invoice.total_amount",
	"totalAmount":      "invoice.total_amount",
	"balanceDue":       "invoice.balance_due",
	"currency":         "invoice.currency",
	"dueDate":          "invoice.due_date",
	"issueDate":        "invoice.issue_date",
	"userName":         "user.name",
	"userEmail":        "user.email",
	"companyName":      "user.organization_name",
	"organizationName": "user.organization_name",
	"senderEmail":      "email.from",
	"senderName":       "email.from_name",
	"emailSubject":     "email.subject",
	"aiReply":          "ai.reply",
}

// Render replaces every {{path.to.value}} placeholder with the value found in data.
// Unresolvable placeholders render as the empty string.
func Render(tmpl string, data map[string]any) string {
	if tmpl == "" {
		return ""
	}
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		m := placeholderPattern.FindStringSubmatch(token)
		if len(m) < 2 {
			return ""
		}
		v, ok := Lookup(data, m[1])
		if !ok {
			return ""
		}
		return Format(v)
	})
}

// References reports whether tmpl contains a placeholder that resolves to path,
// either directly or through a legacy alias.
func References(tmpl, path string) bool {
	for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
		if canonical(m[1]) == path {
			return true
		}
	}
	return false
}

// Lookup resolves a dot path (or legacy alias) against a key-value tree.
func Lookup(data map[string]any, path string) (any, bool) {
	path = canonical(path)
	if path == "" {
		return nil, false
	}
	var cur any = data
	for _, seg := range strings.Split(path, ".") {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

func canonical(path string) string {
	path = strings.TrimSpace(path)
	if alias, ok := legacyAliases[path]; ok {
		return alias
	}
	return path
}

func child(node any, key string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		if v, ok := n[key]; ok {
			return v, true
		}
		v, ok := n[snakeCase(key)]
		return v, ok
	case map[string]string:
		if v, ok := n[key]; ok {
			return v, true
		}
		v, ok := n[snakeCase(key)]
		return v, ok
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(n) {
			return nil, false
		}
		return n[i], true
	}
	return nil, false
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Format renders a context value the way placeholders print it.
func Format(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return formatTime(t)
	case *time.Time:
		if t == nil {
			return ""
		}
		return formatTime(*t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any, []any:
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
