// Package validator provides the validation primitives shared by the form
// modules.
//
// A record is validated in two passes: declarative field-level checks from
// struct tags (go-playground/validator v10), followed by record-level rules
// that see the whole record. Both passes append to a single ordered
// FieldErrors list, so callers always receive every violation at once.
package validator
