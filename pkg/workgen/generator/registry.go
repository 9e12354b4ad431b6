package generator

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknown is returned when a generator name has no registered factory.
var ErrUnknown = errors.New("unknown generator")

// Registry maps generator names to generator factory functions
// We use factory functions so each run gets a fresh, parameterized instance
var Registry = map[string]func(lineLength int) Generator{
	"quoted": func(n int) Generator { return &QuotedLetters{LineLength: n} },
	"plain":  func(n int) Generator { return &PlainLetters{LineLength: n} },
}

// Get returns a generator by name, sized for the given line length
func Get(name string, lineLength int) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return factory(lineLength), nil
}

// List returns all available generator names
func List() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
