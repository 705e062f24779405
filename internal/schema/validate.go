package schema

// Validate checks input against the schema and returns a fresh map holding
// only the declared fields, with every value coerced to its canonical Go
// type. Keys the schema does not declare are dropped. Validation is
// fail-fast: the first failing field aborts the walk and its error carries
// the full path from the payload root.
func Validate(s Schema, input map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s))
	for _, field := range s {
		raw, present := input[field.Name]
		value, keep, err := parseValue(raw, present, field.Rule)
		if err != nil {
			return nil, err.prefixField(field.Name)
		}
		if keep {
			out[field.Name] = value
		}
	}
	return out, nil
}

// parseValue resolves presence and nullability, then dispatches on the rule
// kind. keep is false only for absent optional fields, which stay out of the
// result entirely. An accepted null is kept as a nil value so callers can
// tell "clear this column" apart from "leave it alone".
func parseValue(raw any, present bool, r Rule) (value any, keep bool, err *Error) {
	if !present {
		if r.optional {
			return nil, false, nil
		}
		return nil, false, newError(CategoryMissingKey, "key is missing")
	}
	if raw == nil {
		if r.nullable {
			return nil, true, nil
		}
		return nil, false, newError(CategoryMissingKey, "value cannot be null")
	}

	switch r.kind {
	case KindString:
		value, err = parseString(raw, r)
	case KindEmail:
		value, err = parseEmail(raw, r)
	case KindPassword:
		value, err = parsePassword(raw, r)
	case KindNumber:
		value, err = parseNumber(raw, r)
	case KindBoolean:
		value, err = parseBoolean(raw)
	case KindDate:
		value, err = parseDate(raw, r)
	case KindEnum:
		value, err = parseEnum(raw, r)
	case KindObject:
		value, err = parseObject(raw, r)
	case KindArray:
		value, err = parseArray(raw, r)
	default:
		err = newError(CategoryUnknownType, "no validator for kind %q", r.kind)
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func parseObject(raw any, r Rule) (any, *Error) {
	nested, ok := raw.(map[string]any)
	if !ok {
		return nil, newError(CategoryNotObject, "value is not an object")
	}
	out := make(map[string]any, len(r.fields))
	for _, field := range r.fields {
		inner, present := nested[field.Name]
		value, keep, err := parseValue(inner, present, field.Rule)
		if err != nil {
			return nil, err.prefixField(field.Name)
		}
		if keep {
			out[field.Name] = value
		}
	}
	return out, nil
}

func parseArray(raw any, r Rule) (any, *Error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, newError(CategoryNotArray, "value is not an array")
	}
	if r.minLen != nil && len(items) < *r.minLen {
		return nil, newError(CategoryOutOfRange, "array has fewer than %d items", *r.minLen)
	}
	if r.maxLen != nil && len(items) > *r.maxLen {
		return nil, newError(CategoryOutOfRange, "array has more than %d items", *r.maxLen)
	}
	out := make([]any, 0, len(items))
	for i, item := range items {
		value, _, err := parseValue(item, true, *r.elem)
		if err != nil {
			return nil, err.prefixIndex(i)
		}
		out = append(out, value)
	}
	return out, nil
}
