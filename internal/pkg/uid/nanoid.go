package uid

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// referenceAlphabet has no look-alike characters (0/O, 1/I/L).
const referenceAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// NanoID generates short, prefixed reference codes such as ACC-3F9K2QX7PM.
type NanoID struct {
	prefix string
	size   int
}

const defaultReferenceSize = 10

// NewNanoID returns a generator producing "<prefix>-<size random chars>".
// A non-positive size falls back to 10.
func NewNanoID(prefix string, size int) *NanoID {
	if size <= 0 {
		size = defaultReferenceSize
	}
	return &NanoID{prefix: prefix, size: size}
}

// Generate returns a new reference code.
func (n *NanoID) Generate() string {
	id := gonanoid.MustGenerate(referenceAlphabet, n.size)
	if n.prefix == "" {
		return id
	}

	return n.prefix + "-" + id
}
