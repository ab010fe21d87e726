package scicalc

import "strings"

// tokenize turns the lexeme buffer into a token sequence. Catalogue names
// and brackets pass through as standalone tokens; every run of other atoms
// is glued into one number-like token. This is how "1", "2", "E+", "3"
// becomes the literal "12E+3" again after being entered one button at a
// time.
//
// The catalogue lookup is the only classifier, so the variable atom "X" is
// swept into the surrounding number-like run: "2" then "X" yields the token
// "2X", which the evaluator later rejects as an unconvertable number. A bare
// "X" survives as the token "X". Malformed literals are likewise deferred to
// the evaluator; tokenize itself cannot fail.
func tokenize(buf *lexemeBuffer) []string {
	var tokens []string
	for i := 0; i < buf.len(); {
		atom := buf.at(i)
		if catalogContains(atom) || atom == "(" || atom == ")" {
			tokens = append(tokens, atom)
			i++
			continue
		}
		var number strings.Builder
		for i < buf.len() {
			atom = buf.at(i)
			if catalogContains(atom) || atom == "(" || atom == ")" {
				break
			}
			number.WriteString(atom)
			i++
		}
		tokens = append(tokens, number.String())
	}
	return tokens
}
