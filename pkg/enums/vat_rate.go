package enums

import "fmt"

// VATRate describes the allowed values for the `vat` column in quote_elements.
// Rates are stored as their French percentage labels.
type VATRate string

const (
	VATRateStandard     VATRate = "20"
	VATRateIntermediate VATRate = "10"
	VATRateReduced      VATRate = "5.5"
	VATRateZero         VATRate = "0"
)

var validVATRates = []VATRate{
	VATRateStandard,
	VATRateIntermediate,
	VATRateReduced,
	VATRateZero,
}

// IsValid reports whether the value matches the canonical VAT rate enum.
func (v VATRate) IsValid() bool {
	for _, candidate := range validVATRates {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVATRate converts the raw string to VATRate.
func ParseVATRate(value string) (VATRate, error) {
	for _, candidate := range validVATRates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vat rate %q", value)
}

// VATRateValues returns the enum set for schema declarations.
func VATRateValues() []string {
	values := make([]string, len(validVATRates))
	for i, candidate := range validVATRates {
		values[i] = string(candidate)
	}
	return values
}
