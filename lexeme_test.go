package scicalc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexemeBufferDisplay(t *testing.T) {
	buf := newLexemeBuffer()
	require.Equal(t, "", buf.display())

	buf.append("unary +")
	require.Equal(t, "+", buf.display())
	buf.append("unary -")
	require.Equal(t, "+-", buf.display())
	buf.append(".")
	require.Equal(t, "+-.", buf.display())
	buf.deleteLast()
	require.Equal(t, "+-", buf.display())
	buf.clear()
	require.Equal(t, "", buf.display())

	buf.append("sin")
	require.Equal(t, "sin", buf.display())
	buf.append("E+")
	buf.append(".")
	require.Equal(t, "sinE+.", buf.display())
}

func TestLexemeBufferDeleteLastOnEmpty(t *testing.T) {
	buf := newLexemeBuffer()
	for i := 0; i < 3; i++ {
		buf.deleteLast()
		require.Equal(t, 0, buf.len())
		require.Equal(t, "", buf.display())
	}
}

func TestLexemeBufferStoresAtomsVerbatim(t *testing.T) {
	buf := newLexemeBuffer()
	atoms := []string{"#", "1", "E-", "whatever", "("}
	for _, a := range atoms {
		buf.append(a)
	}
	require.Equal(t, len(atoms), buf.len())
	for i, a := range atoms {
		require.Equal(t, a, buf.at(i))
	}
	require.Equal(t, "#1E-whatever(", buf.display())
}
