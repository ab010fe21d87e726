package scicalc

import (
	"math"

	"github.com/pkg/errors"
)

// Operator associativity, used when sorting infix tokens into postfix order.
const (
	assocLeft = iota
	assocRight
)

// operation describes one catalogue entry: how many operands it pops, how it
// binds against neighbours of equal precedence, and the numeric function it
// applies. Operands arrive in pop order, so operands[0] was the top of the
// value stack.
type operation struct {
	arity int
	assoc int
	prec  int
	apply func(operands []float64) float64
}

// catalog is the fixed set of recognized operations. Anything not present
// here (and not a bracket) is treated as part of a numeric literal by the
// tokenizer; the catalogue lookup is the sole classifier.
var catalog = map[string]operation{
	"unary +": {1, assocRight, 3, func(o []float64) float64 { return o[0] }},
	"unary -": {1, assocRight, 3, func(o []float64) float64 { return -o[0] }},
	"sin":     {1, assocRight, 3, func(o []float64) float64 { return math.Sin(o[0]) }},
	"cos":     {1, assocRight, 3, func(o []float64) float64 { return math.Cos(o[0]) }},
	"tan":     {1, assocRight, 3, func(o []float64) float64 { return math.Tan(o[0]) }},
	"asin":    {1, assocRight, 3, func(o []float64) float64 { return math.Asin(o[0]) }},
	"acos":    {1, assocRight, 3, func(o []float64) float64 { return math.Acos(o[0]) }},
	"atan":    {1, assocRight, 3, func(o []float64) float64 { return math.Atan(o[0]) }},
	"ln":      {1, assocRight, 3, func(o []float64) float64 { return math.Log(o[0]) }},
	"log":     {1, assocRight, 3, func(o []float64) float64 { return math.Log10(o[0]) }},
	"sqrt":    {1, assocRight, 3, func(o []float64) float64 { return math.Sqrt(o[0]) }},
	"^":       {2, assocRight, 2, func(o []float64) float64 { return math.Pow(o[1], o[0]) }},
	"*":       {2, assocLeft, 2, func(o []float64) float64 { return o[1] * o[0] }},
	"/":       {2, assocLeft, 2, func(o []float64) float64 { return o[1] / o[0] }},
	"mod":     {2, assocLeft, 2, func(o []float64) float64 { return math.Mod(o[1], o[0]) }},
	"+":       {2, assocLeft, 1, func(o []float64) float64 { return o[1] + o[0] }},
	"-":       {2, assocLeft, 1, func(o []float64) float64 { return o[1] - o[0] }},
}

func catalogContains(name string) bool {
	_, ok := catalog[name]
	return ok
}

// mustOp resolves a catalogue name that the caller already classified as an
// operator. An unknown name here is a bug in the caller, not user input.
func mustOp(name string) operation {
	op, ok := catalog[name]
	if !ok {
		panic(errors.Errorf("scicalc: unknown catalog operation %q", name))
	}
	return op
}
