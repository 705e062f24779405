package enums

import "fmt"

// QuoteStatus describes the allowed values for the `status` column in quotes.
//
// The intended progression is draft -> quote -> invoice -> validated, but no
// transition is enforced at this layer: any value of the set is accepted.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusQuote     QuoteStatus = "quote"
	QuoteStatusInvoice   QuoteStatus = "invoice"
	QuoteStatusValidated QuoteStatus = "validated"
)

var validQuoteStatuses = []QuoteStatus{
	QuoteStatusDraft,
	QuoteStatusQuote,
	QuoteStatusInvoice,
	QuoteStatusValidated,
}

// IsValid reports whether the value matches the canonical quote status enum.
func (s QuoteStatus) IsValid() bool {
	for _, candidate := range validQuoteStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseQuoteStatus converts the raw string to QuoteStatus.
func ParseQuoteStatus(value string) (QuoteStatus, error) {
	for _, candidate := range validQuoteStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quote status %q", value)
}

// QuoteStatusValues returns the enum set for schema declarations.
func QuoteStatusValues() []string {
	values := make([]string, len(validQuoteStatuses))
	for i, candidate := range validQuoteStatuses {
		values[i] = string(candidate)
	}
	return values
}
