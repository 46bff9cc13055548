// Package stacktrace shortens goroutine stack dumps for logs.
package stacktrace

import "strings"

// InternalPaths returns the "internal/<pkg>/<file>.go:<line>" frames of a
// runtime/debug.Stack dump, dropping standard library and dependency frames.
func InternalPaths(stack []byte) []string {
	var paths []string
	for line := range strings.SplitSeq(string(stack), "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, ".go:") {
			continue
		}

		// "/src/internal/pkg/x.go:12 +0x1d" -> "/src/internal/pkg/x.go:12"
		line, _, _ = strings.Cut(line, " ")

		_, rel, found := strings.Cut(line, "/internal/")
		if !found {
			continue
		}
		paths = append(paths, "internal/"+rel)
	}
	return paths
}
