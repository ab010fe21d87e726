// Package scicalc is the core of a scientific expression calculator with
// plotting. It consumes the lexeme atoms a surrounding shell collects one
// button press at a time, and produces a display string, a decimal result
// (or a verbatim error message), and polylines for graphing the expression
// as a function of the free variable X.
//
// The shell itself — button grid, canvas, event loop — is not here; the
// Session type is the whole contract between the two.
package scicalc

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Session is one calculator instance: the lexeme buffer, the conversion and
// evaluation stacks, the free-variable cell and the result slot. Stacks are
// allocated once and reused for the session's lifetime.
//
// A Session is single-threaded by contract: no two methods may run
// concurrently. Independent Sessions are fully isolated.
type Session struct {
	lexemes   *lexemeBuffer
	ops       *opStack
	values    *valueStack
	variable  string
	result    string
	plotDepth int
	log       *zap.SugaredLogger
}

// SessionOption represents a function that modifies a Session under
// construction.
type SessionOption func(*Session) error

// WithLogger directs the session's debug trace to log. The default session
// logs nothing.
func WithLogger(log *zap.SugaredLogger) SessionOption {
	return func(s *Session) error {
		if log == nil {
			return errors.New("cannot use nil logger")
		}
		s.log = log
		return nil
	}
}

// WithPlotDepth overrides the defensive recursion bound of the adaptive
// plotter.
func WithPlotDepth(depth int) SessionOption {
	return func(s *Session) error {
		if depth <= 0 {
			return errors.Errorf("cannot use plot depth %d", depth)
		}
		s.plotDepth = depth
		return nil
	}
}

// NewSession returns a fresh calculator session.
func NewSession(setters ...SessionOption) (*Session, error) {
	s := &Session{
		lexemes:   newLexemeBuffer(),
		ops:       newOpStack(),
		values:    newValueStack(),
		plotDepth: defaultPlotDepth,
		log:       zap.NewNop().Sugar(),
	}
	for _, setter := range setters {
		if err := setter(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Button dispatches one shell input. "AC" clears the expression and the
// result slot, "=" evaluates, "<-" deletes the last atom, and every other
// label is appended to the expression verbatim.
//
// Evaluation failures never reach the caller as errors: the message lands
// in the result slot, and the expression and variable cell stay untouched.
func (s *Session) Button(label string) {
	switch label {
	case "AC":
		s.lexemes.clear()
		s.result = ""
		s.log.Debugw("cleared")
	case "=":
		v, err := s.solve()
		if err != nil {
			s.result = err.Error()
		} else {
			s.result = readableDouble(v)
		}
		s.log.Debugw("evaluated", "expression", s.Expression(), "result", s.result)
	case "<-":
		s.lexemes.deleteLast()
	default:
		s.lexemes.append(label)
	}
}

// solve runs the full pipeline on the current expression: tokenize, convert
// to postfix, evaluate with the current variable.
func (s *Session) solve() (float64, error) {
	rpn, err := toPostfix(tokenize(s.lexemes), s.ops)
	if err != nil {
		return 0, err
	}
	return evaluate(rpn, s.variable, s.values)
}

// SetVariable replaces the free-variable cell; the text is parsed anew each
// time evaluation meets an X.
func (s *Session) SetVariable(text string) {
	s.variable = text
}

// Expression returns the user-facing form of the current expression.
func (s *Session) Expression() string {
	return s.lexemes.display()
}

// Result returns the result slot: the decimal rendering of the last
// successful "=" press, or the last failure's message.
func (s *Session) Result() string {
	return s.result
}

// Plot sweeps X across the viewport and returns the expression's polylines.
// The list is empty when the expression is empty, and empty with the error
// message stored in the result slot when any sample fails to evaluate.
// xpix and ypix are pixels per unit along each axis.
//
// Plot overwrites the variable cell with each sample; the last sample's
// encoding remains there afterwards.
func (s *Session) Plot(xlo, xhi float64, xpix int, ylo, yhi float64, ypix int) []Polyline {
	if s.Expression() == "" {
		return nil
	}
	lines, err := s.graphs(xlo, xhi, xpix, ylo, yhi, ypix)
	if err != nil {
		s.result = err.Error()
		s.log.Debugw("plot failed", "error", s.result)
		return nil
	}
	s.log.Debugw("plotted", "polylines", len(lines))
	return lines
}
