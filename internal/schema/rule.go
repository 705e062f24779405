package schema

import "time"

// Kind tags the shape a Rule validates.
type Kind int

const (
	KindString Kind = iota
	KindEmail
	KindPassword
	KindNumber
	KindBoolean
	KindDate
	KindEnum
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindEmail:
		return "email"
	case KindPassword:
		return "password"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Rule is an immutable validation descriptor. Modifier methods use value
// receivers and return copies, so a rule can be declared once and reused
// across schemas without aliasing.
type Rule struct {
	kind     Kind
	optional bool
	nullable bool

	minLen *int
	maxLen *int

	min   *float64
	max   *float64
	float bool

	minDate *time.Time
	maxDate *time.Time

	values []string

	elem   *Rule
	fields Schema
}

// Field binds a payload key to its rule. Order in a Schema is the order
// fields are validated in, which makes failure reporting deterministic.
type Field struct {
	Name string
	Rule Rule
}

// Schema is an ordered set of fields describing one object payload.
type Schema []Field

func String() Rule   { return Rule{kind: KindString} }
func Email() Rule    { return Rule{kind: KindEmail} }
func Password() Rule { return Rule{kind: KindPassword} }
func Number() Rule   { return Rule{kind: KindNumber} }
func Boolean() Rule  { return Rule{kind: KindBoolean} }
func Date() Rule     { return Rule{kind: KindDate} }

// Enum restricts a value to a fixed set of string literals.
func Enum(values ...string) Rule {
	return Rule{kind: KindEnum, values: values}
}

// Object validates a nested map against the given schema.
func Object(fields Schema) Rule {
	return Rule{kind: KindObject, fields: fields}
}

// Array validates a slice whose every element matches elem.
func Array(elem Rule) Rule {
	return Rule{kind: KindArray, elem: &elem}
}

// Optional marks the field as allowed to be absent from the payload.
func (r Rule) Optional() Rule {
	r.optional = true
	return r
}

// Nullable marks the field as accepting an explicit null.
func (r Rule) Nullable() Rule {
	r.nullable = true
	return r
}

// MinLen sets the inclusive lower bound on string length or array size.
func (r Rule) MinLen(n int) Rule {
	r.minLen = &n
	return r
}

// MaxLen sets the inclusive upper bound on string length or array size.
func (r Rule) MaxLen(n int) Rule {
	r.maxLen = &n
	return r
}

// Min sets the inclusive lower bound on a numeric value.
func (r Rule) Min(v float64) Rule {
	r.min = &v
	return r
}

// Max sets the inclusive upper bound on a numeric value.
func (r Rule) Max(v float64) Rule {
	r.max = &v
	return r
}

// Float lets a number keep its fractional part and enables the
// comma-as-decimal-separator coercion for string inputs.
func (r Rule) Float() Rule {
	r.float = true
	return r
}

// MinDate sets the inclusive lower bound on a date value.
func (r Rule) MinDate(t time.Time) Rule {
	r.minDate = &t
	return r
}

// MaxDate sets the inclusive upper bound on a date value.
func (r Rule) MaxDate(t time.Time) Rule {
	r.maxDate = &t
	return r
}
