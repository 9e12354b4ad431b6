package generator

import (
	"io"
	"math/rand/v2"
)

// QuotedLetters generates fixed-width lines of random lowercase letters
// framed by double quotes: "abc...xyz" followed by a newline. The quotes
// count toward LineLength, the newline does not.
type QuotedLetters struct {
	LineLength int
	rand       *rand.Rand
	line       []byte // reused buffer, LineLength+1 bytes
}

const lowercase = "abcdefghijklmnopqrstuvwxyz"

func (g *QuotedLetters) Init(r *rand.Rand) {
	g.rand = r

	// Quote frame and terminator never change, only the payload is
	// rewritten per line.
	g.line = make([]byte, g.LineLength+1)
	g.line[0] = '"'
	g.line[g.LineLength-1] = '"'
	g.line[g.LineLength] = '\n'
}

func (g *QuotedLetters) WriteLine(w io.Writer) error {
	for i := 1; i < g.LineLength-1; i++ {
		g.line[i] = lowercase[g.rand.IntN(len(lowercase))]
	}
	_, err := w.Write(g.line)
	return err
}

func (g *QuotedLetters) Description() string {
	return "Quoted random lowercase letters: \"abc...\" (string matching workloads)"
}

func (g *QuotedLetters) DefaultCount() int64 {
	return 1e7 // matches the canonical 1GB workload
}
