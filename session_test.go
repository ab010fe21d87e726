package scicalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NikoToscani/scicalc/util/testutil"
)

func TestSessionEditing(t *testing.T) {
	s := newTestSession(t)
	steps := []struct {
		button string
		want   string
	}{
		{"unary +", "+"},
		{"unary -", "+-"},
		{".", "+-."},
		{"<-", "+-"},
		{"AC", ""},
		{"sin", "sin"},
		{"E+", "sinE+"},
		{".", "sinE+."},
		{"<-", "sinE+"},
		{"<-", "sin"},
		{"<-", ""},
		{"<-", ""},
	}
	for _, step := range steps {
		s.Button(step.button)
		require.Equal(t, step.want, s.Expression(), "after button %q", step.button)
	}
}

func TestSessionClearEmptiesBoth(t *testing.T) {
	s := newTestSession(t, "1", "+")
	s.Button("=")
	require.NotEmpty(t, s.Result())
	s.Button("AC")
	require.Equal(t, "", s.Expression())
	require.Equal(t, "", s.Result())
}

func TestSessionEvaluate(t *testing.T) {
	cases := []struct {
		atoms    []string
		wantExpr string
		wantRes  string
	}{
		{[]string{"3", "+", "4", "*", "2", "/", "(", "1", "-", "5", ")", "^", "2", "^", "3"},
			"3+4*2/(1-5)^2^3", "3.0001220703125"},
		{[]string{"2", "^", um, "1", "^", "2"}, "2^-1^2", "2"},
		{[]string{"sin", "(", "cos", "(", "2", "+", "5", ")", "/", "3", "*", "7", ")"},
			"sin(cos(2+5)/3*7)", readableDouble(math.Sin(math.Cos(2+5) / 3 * 7))},
		{nil, "", "0"},
		{[]string{"1", ".", "2", "3", "E+", "4"}, "1.23E+4", "12300"},
		{[]string{"1", "0", "/", "4", "mod"}, "10/4mod", "not enough arguments"},
		{[]string{")"}, ")", "missing left parenthesis"},
		{[]string{"("}, "(", "missing right parenthesis"},
		{[]string{um}, "-", "missing right parenthesis"},
		{[]string{"1.79769e+309"}, "1.79769e+309",
			"std::stod error: string <1.79769e+309> is to big for current number type (double)"},
		{[]string{"1", "/", "0"}, "1/0", "INF"},
		{[]string{um, "1", "sqrt"}, "-1sqrt", "missing right parenthesis"},
	}
	for _, c := range cases {
		s := newTestSession(t, c.atoms...)
		require.Equal(t, c.wantExpr, s.Expression(), "case %v", c.atoms)
		s.Button("=")
		require.Equal(t, c.wantExpr, s.Expression(), "case %v", c.atoms)
		require.Equal(t, c.wantRes, s.Result(), "case %v", c.atoms)
	}
}

func TestSessionVariable(t *testing.T) {
	s := newTestSession(t, "2", "^", um, "X", "^", "2")
	s.SetVariable("1")
	require.Equal(t, "2^-X^2", s.Expression())
	s.Button("=")
	require.Equal(t, "2", s.Result())

	// evaluating X alone round-trips whatever the cell parses to
	s.Button("AC")
	s.Button("X")
	s.SetVariable("2.5")
	s.Button("=")
	require.Equal(t, "2.5", s.Result())

	s.SetVariable("nonsense")
	s.Button("=")
	require.Equal(t, "std::stod error: string <nonsense> is unconvertable to number", s.Result())
}

func TestSessionArityError(t *testing.T) {
	s := newTestSession(t, "X", "^", "2", "-")
	s.SetVariable("1")
	s.Button("=")
	require.Equal(t, "X^2-", s.Expression())
	require.Equal(t, "not enough arguments", s.Result())
}

// The merged-variable quirk: typing 2 then X makes the single token "2X",
// which the evaluator rejects; it is not an implicit multiplication.
func TestSessionMergedVariableToken(t *testing.T) {
	s := newTestSession(t, "2", "X")
	s.SetVariable("3")
	s.Button("=")
	require.Equal(t, "2X", s.Expression())
	require.Equal(t, "string <2X> is unconvertable to number", s.Result())
}

// A failed evaluation must leave no trace beyond the result slot.
func TestSessionFailureKeepsState(t *testing.T) {
	s := newTestSession(t, "X", "+")
	s.SetVariable("4")
	s.Button("=")
	require.Equal(t, "not enough arguments", s.Result())
	require.Equal(t, "X+", s.Expression())

	s.Button("2")
	s.Button("=")
	require.Equal(t, "6", s.Result())
}

func TestSessionPlotKeepsResultOnSuccess(t *testing.T) {
	s := newTestSession(t, "X")
	s.Button("=")
	before := s.Result()
	require.NotEmpty(t, s.Plot(0, 1, 2, 0, 2, 2))
	require.Equal(t, before, s.Result())
}

func TestSessionOptions(t *testing.T) {
	_, err := NewSession(WithLogger(nil))
	require.Error(t, err)

	_, err = NewSession(WithPlotDepth(0))
	require.Error(t, err)

	s, err := NewSession(WithLogger(testutil.NewTestLogger(true)), WithPlotDepth(8))
	require.NoError(t, err)
	require.Equal(t, 8, s.plotDepth)
	s.Button("1")
	s.Button("=")
	require.Equal(t, "1", s.Result())
}
