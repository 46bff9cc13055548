// Package config exposes typed access to runtime configuration.
package config

import (
	"io"
	"time"
)

// Config retrieves configuration values by dotted key (e.g. "app.server.http.address").
// Missing keys yield the zero value of the requested type.
type Config interface {
	io.Closer

	GetBool(key string) bool
	GetString(key string) string
	GetInt(key string) int
	GetInt32(key string) int32
	GetInt64(key string) int64
	GetFloat64(key string) float64

	// GetSecond interprets an integer value as seconds.
	GetSecond(key string) time.Duration
	// GetMillisecond interprets an integer value as milliseconds.
	GetMillisecond(key string) time.Duration

	// GetArray splits a "<element1>,<element2>,..." value, trimming blanks.
	// A YAML list is accepted too.
	GetArray(key string) []string
}
