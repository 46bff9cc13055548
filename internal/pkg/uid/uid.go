// Package uid provides identifier generators.
//
// Use cases depend on NumberID for storage keys and StringID for public
// codes so tests can plug in deterministic generators.
package uid

// NumberID generates unique numeric identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
