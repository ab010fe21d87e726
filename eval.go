package scicalc

import (
	"strconv"
	"strings"

	"github.com/gammazero/deque"
)

// valueStack holds intermediate doubles during postfix evaluation. Storage
// is reused between evaluations; clear keeps capacity.
type valueStack struct {
	values *deque.Deque[float64]
}

func newValueStack() *valueStack {
	return &valueStack{values: new(deque.Deque[float64])}
}

func (s *valueStack) push(v float64) { s.values.PushBack(v) }

func (s *valueStack) pop() float64 { return s.values.PopBack() }

func (s *valueStack) top() float64 { return s.values.Back() }

func (s *valueStack) len() int { return s.values.Len() }

func (s *valueStack) clear() { s.values.Clear() }

// evaluate runs a postfix token sequence on the value stack and returns the
// value left on top. The token "X" is substituted with the variable text
// before parsing; any other non-operator token is parsed as a literal.
// An empty sequence evaluates to zero.
//
// Division by zero, domain errors and overflow inside operations are not
// intercepted: they produce IEEE-754 infinities or NaN and flow through as
// ordinary values.
func evaluate(postfix []string, variable string, values *valueStack) (float64, error) {
	values.clear()
	var operands [2]float64
	for _, tok := range postfix {
		if tok == "X" {
			v, err := parseDouble(variable)
			if err != nil {
				return 0, err
			}
			values.push(v)
			continue
		}
		if op, ok := catalog[tok]; ok {
			for i := 0; i < op.arity; i++ {
				if values.len() == 0 {
					return 0, ErrArity{Op: tok}
				}
				operands[i] = values.pop()
			}
			values.push(op.apply(operands[:op.arity]))
			continue
		}
		v, err := parseDouble(tok)
		if err != nil {
			return 0, err
		}
		values.push(v)
	}
	if values.len() == 0 {
		return 0, nil
	}
	return values.top(), nil
}

// parseDouble converts a literal token with std::stod's error taxonomy,
// which the host shell's messages depend on. strconv alone cannot tell the
// three cases apart, so on failure the longest parseable prefix decides:
// a numeric prefix followed by other characters is a partial conversion,
// a range failure anywhere is an overflow, and no prefix at all means the
// token never looked like a number.
func parseDouble(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		// strconv flushes underflow to zero silently; a literal with a
		// non-zero mantissa that parsed to zero is out of range as well.
		if v == 0 {
			m := strings.ToLower(s)
			if i := strings.Index(m, "0x"); i >= 0 {
				m, _, _ = strings.Cut(m[i+2:], "p")
			} else {
				m, _, _ = strings.Cut(m, "e")
			}
			if strings.ContainsAny(m, "123456789abcdef") {
				return 0, ErrNumber{Token: s, kind: numberTooBig}
			}
		}
		return v, nil
	}
	if rangeErr(err) {
		return 0, ErrNumber{Token: s, kind: numberTooBig}
	}
	for i := len(s) - 1; i > 0; i-- {
		_, err = strconv.ParseFloat(s[:i], 64)
		if err == nil {
			return 0, ErrNumber{Token: s, kind: numberTrailing}
		}
		if rangeErr(err) {
			return 0, ErrNumber{Token: s, kind: numberTooBig}
		}
	}
	return 0, ErrNumber{Token: s, kind: numberUnconvertable}
}

func rangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
