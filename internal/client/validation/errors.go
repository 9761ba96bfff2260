package validation

import "strings"

// FieldError is a single failed rule on a single field.
type FieldError struct {
	Field   string // json name of the field
	Tag     string // rule that failed
	Message string // human-readable description
}

// FieldErrors aggregates every failed rule of one validation pass.
// It satisfies the error interface so flows can return it directly.
type FieldErrors struct {
	Errors []FieldError
}

func (e *FieldErrors) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("validation failed: ")
	for i, fe := range e.Errors {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(fe.Message)
	}
	return sb.String()
}

// ByField returns the messages recorded for the given field, in rule order.
func (e *FieldErrors) ByField(name string) []string {
	if e == nil {
		return nil
	}
	var out []string
	for _, fe := range e.Errors {
		if fe.Field == name {
			out = append(out, fe.Message)
		}
	}
	return out
}

// Has reports whether the given field failed the given rule.
func (e *FieldErrors) Has(field, tag string) bool {
	if e == nil {
		return false
	}
	for _, fe := range e.Errors {
		if fe.Field == field && fe.Tag == tag {
			return true
		}
	}
	return false
}
