package enums

import "fmt"

// AccountStatus describes the allowed values for the `account_status` column in users.
type AccountStatus string

const (
	AccountStatusValid   AccountStatus = "valid"
	AccountStatusBlocked AccountStatus = "blocked"
	AccountStatusDeleted AccountStatus = "deleted"
)

var validAccountStatuses = []AccountStatus{
	AccountStatusValid,
	AccountStatusBlocked,
	AccountStatusDeleted,
}

// IsValid reports whether the value matches the canonical account status enum.
func (a AccountStatus) IsValid() bool {
	for _, candidate := range validAccountStatuses {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAccountStatus converts the raw string to AccountStatus.
func ParseAccountStatus(value string) (AccountStatus, error) {
	for _, candidate := range validAccountStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid account status %q", value)
}
