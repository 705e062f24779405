package schema

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,}$`)

// passwordSymbols is the punctuation set of which at least one character is
// required in a password.
const passwordSymbols = `!#$%&? ".,`

const (
	dateOnlyLayout = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

func parseString(raw any, r Rule) (string, *Error) {
	value, ok := stringify(raw)
	if !ok {
		return "", newError(CategoryNotString, "value is not a string")
	}
	if err := checkStringBounds(value, r); err != nil {
		return "", err
	}
	return value, nil
}

// stringify accepts strings as-is and coerces numeric inputs to their
// decimal representation.
func stringify(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}

func checkStringBounds(value string, r Rule) *Error {
	length := len([]rune(value))
	if r.minLen != nil && length < *r.minLen {
		return newError(CategoryOutOfRange, "string is shorter than %d characters", *r.minLen)
	}
	if r.maxLen != nil && length > *r.maxLen {
		return newError(CategoryOutOfRange, "string is longer than %d characters", *r.maxLen)
	}
	return nil
}

func parseEmail(raw any, r Rule) (string, *Error) {
	value, ok := raw.(string)
	if !ok {
		return "", newError(CategoryInvalidEmail, "email is not a string")
	}
	if err := checkStringBounds(value, r); err != nil {
		return "", err
	}
	if !emailPattern.MatchString(value) {
		return "", newError(CategoryInvalidEmail, "invalid email format")
	}
	return value, nil
}

func parsePassword(raw any, r Rule) (string, *Error) {
	value, ok := raw.(string)
	if !ok {
		return "", newError(CategoryNotString, "password is not a string")
	}
	if err := checkStringBounds(value, r); err != nil {
		return "", err
	}
	if !isSecurePassword(value) {
		return "", newError(CategoryInsecurePassword, "password must be at least 8 characters and mix letters, digits and punctuation")
	}
	return value, nil
}

// SecurePassword reports whether the value satisfies the password policy:
// at least 8 characters mixing letters, digits and punctuation.
func SecurePassword(value string) bool {
	return isSecurePassword(value)
}

func isSecurePassword(value string) bool {
	if len([]rune(value)) < 8 {
		return false
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, c := range value {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		}
	}
	return hasLetter && hasDigit && hasSymbol
}

// parseNumber coerces strings to numbers and enforces bounds. Integer rules
// yield int64, float rules yield float64. A float rule also accepts a comma
// as the decimal separator, a common habit of French-locale users.
func parseNumber(raw any, r Rule) (any, *Error) {
	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	case string:
		parsed, err := parseNumericString(v, r.float)
		if err != nil {
			return nil, err
		}
		value = parsed
	default:
		return nil, newError(CategoryNotNumber, "value is not a number")
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, newError(CategoryNotNumber, "value is not a finite number")
	}
	if r.min != nil && value < *r.min {
		return nil, newError(CategoryOutOfRange, "number is below %v", *r.min)
	}
	if r.max != nil && value > *r.max {
		return nil, newError(CategoryOutOfRange, "number is above %v", *r.max)
	}
	if r.float {
		return value, nil
	}
	if value != math.Trunc(value) {
		return nil, newError(CategoryNotNumber, "value is not an integer")
	}
	return int64(value), nil
}

func parseNumericString(value string, allowFloat bool) (float64, *Error) {
	trimmed := strings.TrimSpace(value)
	if allowFloat {
		trimmed = strings.ReplaceAll(trimmed, ",", ".")
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, newError(CategoryNotNumber, "string %q is not a number", value)
		}
		return parsed, nil
	}
	parsed, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, newError(CategoryNotNumber, "string %q is not an integer", value)
	}
	return float64(parsed), nil
}

func parseBoolean(raw any) (bool, *Error) {
	value, ok := raw.(bool)
	if !ok {
		return false, newError(CategoryNotBoolean, "value is not a boolean")
	}
	return value, nil
}

// parseDate accepts either a time.Time or a string. A bare "YYYY-MM-DD"
// string is interpreted as midnight UTC of that day.
func parseDate(raw any, r Rule) (time.Time, *Error) {
	var value time.Time
	switch v := raw.(type) {
	case time.Time:
		value = v
	case string:
		parsed, err := parseDateString(v)
		if err != nil {
			return time.Time{}, err
		}
		value = parsed
	default:
		return time.Time{}, newError(CategoryNotDateObject, "value is not a date")
	}
	if r.minDate != nil && value.Before(*r.minDate) {
		return time.Time{}, newError(CategoryOutOfRange, "date is before %s", r.minDate.Format(time.RFC3339))
	}
	if r.maxDate != nil && value.After(*r.maxDate) {
		return time.Time{}, newError(CategoryOutOfRange, "date is after %s", r.maxDate.Format(time.RFC3339))
	}
	return value, nil
}

func parseDateString(value string) (time.Time, *Error) {
	for _, layout := range []string{time.RFC3339, dateTimeLayout, dateOnlyLayout} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, newError(CategoryNotDateString, "string %q is not a date", value)
}

func parseEnum(raw any, r Rule) (string, *Error) {
	value, ok := stringify(raw)
	if !ok {
		return "", newError(CategoryNotString, "value is not a string")
	}
	for _, candidate := range r.values {
		if value == candidate {
			return value, nil
		}
	}
	return "", newError(CategoryOutOfRange, "value %q is not one of %s", value, fmt.Sprintf("[%s]", strings.Join(r.values, ", ")))
}
