package generator

import (
	"io"
	"math/rand/v2"
)

// PlainLetters generates fixed-width lines of random lowercase letters with
// no quote framing, for consumers that tokenize on raw words.
type PlainLetters struct {
	LineLength int
	rand       *rand.Rand
	line       []byte
}

func (g *PlainLetters) Init(r *rand.Rand) {
	g.rand = r
	g.line = make([]byte, g.LineLength+1)
	g.line[g.LineLength] = '\n'
}

func (g *PlainLetters) WriteLine(w io.Writer) error {
	for i := 0; i < g.LineLength; i++ {
		g.line[i] = lowercase[g.rand.IntN(len(lowercase))]
	}
	_, err := w.Write(g.line)
	return err
}

func (g *PlainLetters) Description() string {
	return "Unquoted random lowercase letters"
}

func (g *PlainLetters) DefaultCount() int64 {
	return 1e6
}
