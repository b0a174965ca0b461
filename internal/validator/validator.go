package validator

import "fmt"

// Validator collects field-scoped error messages keyed by field path.
type Validator struct {
	Errors map[string]string
}

// New returns a Validator with an empty error map.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if no errors were recorded.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records message for key unless key already has one.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check records message for key when ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Path joins a field name with an index and optional sub field,
// e.g. Path("phoneContacts", 1, "phoneNumber") == "phoneContacts.1.phoneNumber".
func Path(field string, index int, sub ...string) string {
	p := fmt.Sprintf("%s.%d", field, index)
	for _, s := range sub {
		p += "." + s
	}
	return p
}

// ValidationError carries the field errors out of a failed validation.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// NewValidationError wraps a copy of fields.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return &ValidationError{Message: message, Fields: cp}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d invalid field(s)", e.Message, len(e.Fields))
}
