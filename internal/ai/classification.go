package ai

import (
	"regexp"
	"strings"
)

type Category string

const (
	CategoryInvoice  Category = "Invoice"
	CategoryQuery    Category = "Query"
	CategorySupport  Category = "Support"
	CategoryCustomer Category = "Customer"
	CategoryOther    Category = "Other"
)

type InvoiceFlag string

const (
	InvoicePresent InvoiceFlag = "invoicePresent"
	NoInvoice      InvoiceFlag = "noInvoice"
)

// Classification is the structured reading of an incoming email.
type Classification struct {
	Category      Category    `json:"category"`
	InvoiceFlag   InvoiceFlag `json:"invoice_flag"`
	InvoiceNumber *string     `json:"invoice_number,omitempty"`
}

// Unclassified is returned whenever a classifier response cannot be read.
func Unclassified() Classification {
	return Classification{Category: CategoryOther, InvoiceFlag: NoInvoice}
}

// ConcernsInvoice reports whether the email should be answered with invoice details.
func (c Classification) ConcernsInvoice() bool {
	return c.Category == CategoryInvoice || c.InvoiceFlag == InvoicePresent
}

var (
	tokenSplitter      = regexp.MustCompile(`[\s,;|:"'\[\]{}()<>]+`)
	invoiceNumberToken = regexp.MustCompile(`^#?([A-Za-z]{0,6}[-_/]?\d[\w\-/]*)$`)
	listMarkerToken    = regexp.MustCompile(`^\d+\.$`)
)

var categoryTokens = map[string]Category{
	"invoice":  CategoryInvoice,
	"query":    CategoryQuery,
	"support":  CategorySupport,
	"customer": CategoryCustomer,
	"other":    CategoryOther,
}

var flagTokens = map[string]InvoiceFlag{
	"invoicepresent":  InvoicePresent,
	"invoice_present": InvoicePresent,
	"noinvoice":       NoInvoice,
	"no_invoice":      NoInvoice,
}

// ParseClassification reads a free-form "category flag number" classifier
// response. Token order does not matter. Matching is best effort: a response
// without a recognizable category yields Unclassified.
func ParseClassification(raw string) Classification {
	var (
		category Category
		flag     InvoiceFlag
		number   *string
	)

	var tokens []string
	for _, tok := range tokenSplitter.Split(raw, -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	for i, tok := range tokens {
		lower := strings.ToLower(strings.Trim(tok, ".*`"))
		if c, ok := categoryTokens[lower]; ok {
			if category == "" {
				category = c
			}
			continue
		}
		if f, ok := flagTokens[lower]; ok {
			if flag == "" {
				flag = f
			}
			continue
		}
		// "1." followed by more text numbers a list item.
		if i < len(tokens)-1 && listMarkerToken.MatchString(strings.Trim(tok, "*`")) {
			continue
		}
		if number == nil {
			if m := invoiceNumberToken.FindStringSubmatch(strings.Trim(tok, ".*`")); m != nil {
				n := strings.ToUpper(m[1])
				number = &n
			}
		}
	}

	if category == "" {
		return Unclassified()
	}
	if flag == "" {
		flag = NoInvoice
		if number != nil {
			flag = InvoicePresent
		}
	}
	if flag == NoInvoice {
		number = nil
	}
	return Classification{Category: category, InvoiceFlag: flag, InvoiceNumber: number}
}
