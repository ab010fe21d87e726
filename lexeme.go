package scicalc

import (
	"strings"

	"github.com/gammazero/deque"
)

// lexemeBuffer is the ordered sequence of atoms the user has entered so far,
// one atom per button press. Atoms are stored verbatim and never validated;
// semantic checks happen at conversion and evaluation time.
type lexemeBuffer struct {
	atoms *deque.Deque[string]
}

func newLexemeBuffer() *lexemeBuffer {
	return &lexemeBuffer{atoms: new(deque.Deque[string])}
}

func (b *lexemeBuffer) append(atom string) {
	b.atoms.PushBack(atom)
}

// deleteLast removes the most recent atom; deleting from an empty buffer is
// a no-op.
func (b *lexemeBuffer) deleteLast() {
	if b.atoms.Len() > 0 {
		b.atoms.PopBack()
	}
}

func (b *lexemeBuffer) clear() {
	b.atoms.Clear()
}

func (b *lexemeBuffer) len() int {
	return b.atoms.Len()
}

func (b *lexemeBuffer) at(i int) string {
	return b.atoms.At(i)
}

// display concatenates the atoms for the user-facing expression string. The
// prefix-sign atoms collapse to their single-character forms; everything
// else is shown verbatim.
func (b *lexemeBuffer) display() string {
	var sb strings.Builder
	for i := 0; i < b.atoms.Len(); i++ {
		switch atom := b.atoms.At(i); atom {
		case "unary +":
			sb.WriteByte('+')
		case "unary -":
			sb.WriteByte('-')
		default:
			sb.WriteString(atom)
		}
	}
	return sb.String()
}
