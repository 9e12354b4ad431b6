package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces workload lines for benchmark fixtures
type Generator interface {
	// Init initializes the generator with a per-instance random source
	// This eliminates lock contention on the global rand source
	Init(r *rand.Rand)

	// WriteLine writes a single workload line (including the terminator) to the writer
	WriteLine(w io.Writer) error

	// Description returns a human-readable description of the line format
	Description() string

	// DefaultCount returns the suggested default number of lines to generate
	DefaultCount() int64
}
