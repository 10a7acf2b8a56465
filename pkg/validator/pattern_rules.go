package validator

// MatchesField validates value against a catalog rule using the rule's
// record-level message.
func MatchesField(rule FieldRule, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := value.(string)
			return ok && rule.Match(s)
		},
		Error: ValidationError{
			Field:   string(rule.Field),
			Message: rule.Message,
			Code:    "validation." + string(rule.Field),
		},
	}
}

// Required validates that record carries a value for rule's field.
// Emptiness is left to the field pattern.
func Required(rule FieldRule, record Record) Rule {
	return Rule{
		Check: func() bool {
			_, ok := record[string(rule.Field)]
			return ok
		},
		Error: ValidationError{
			Field:   string(rule.Field),
			Message: rule.Label + " is required",
			Code:    "validation.required",
		},
	}
}
