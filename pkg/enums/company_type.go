package enums

import "fmt"

// CompanyType describes the legal form of an artisan's business.
type CompanyType string

const (
	CompanyTypeIndividuelle CompanyType = "Individuelle"
	CompanyTypeSAS          CompanyType = "SAS"
	CompanyTypeSARL         CompanyType = "SARL"
	CompanyTypeEURL         CompanyType = "EURL"
)

var validCompanyTypes = []CompanyType{
	CompanyTypeIndividuelle,
	CompanyTypeSAS,
	CompanyTypeSARL,
	CompanyTypeEURL,
}

// IsValid reports whether the value matches the canonical company type enum.
func (c CompanyType) IsValid() bool {
	for _, candidate := range validCompanyTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCompanyType converts the raw string to CompanyType.
func ParseCompanyType(value string) (CompanyType, error) {
	for _, candidate := range validCompanyTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid company type %q", value)
}

// CompanyTypeValues returns the enum set for schema declarations.
func CompanyTypeValues() []string {
	values := make([]string, len(validCompanyTypes))
	for i, candidate := range validCompanyTypes {
		values[i] = string(candidate)
	}
	return values
}
