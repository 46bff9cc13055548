package validator

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

// Validator validates tagged structs and reports every violation.
type Validator interface {
	// Validate runs the field-level checks declared in struct tags.
	// On failure the returned error is a FieldErrors.
	Validate(data any) error
}

// Messages is implemented by validated structs that word their own errors.
// Keys are "<field>.<tag>" with the reported lowerCamel field name, e.g.
// "fullName.required". {VALUE} in a message is replaced by the rejected value.
// Failed tags without an entry keep the translated default.
type Messages interface {
	ValidationMessages() map[string]string
}

// FieldError is one violated rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the ordered list of violations for a record.
// A field may appear more than once.
type FieldErrors []FieldError

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation error"
	}

	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// Has reports whether at least one error is attached to field.
func (fe FieldErrors) Has(field string) bool {
	return lo.ContainsBy(fe, func(e FieldError) bool { return e.Field == field })
}

// For returns the messages attached to field, in evaluation order.
func (fe FieldErrors) For(field string) []string {
	return lo.FilterMap(fe, func(e FieldError, _ int) (string, bool) {
		return e.Message, e.Field == field
	})
}

// Rule is a record-level check with access to the whole record.
// It returns the violations it found, or nil.
type Rule[T any] func(data T) FieldErrors

// When builds a rule that reports message on field when failed returns true.
func When[T any](field, message string, failed func(data T) bool) Rule[T] {
	return func(data T) FieldErrors {
		if failed(data) {
			return FieldErrors{{Field: field, Message: message}}
		}
		return nil
	}
}

// Check validates data with v and then applies rules in order. Rules run even
// when the field-level pass failed. It returns nil or a FieldErrors holding
// every violation: field-level ones first, then rule ones.
func Check[T any](v Validator, data T, rules ...Rule[T]) error {
	var errs FieldErrors

	if err := v.Validate(data); err != nil {
		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	for _, rule := range rules {
		errs = append(errs, rule(data)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AnyOrText reports whether any flag is set or text is non-blank.
func AnyOrText(text string, flags ...bool) bool {
	return lo.Contains(flags, true) || strings.TrimSpace(text) != ""
}

// Blank reports whether s is empty after trimming.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
