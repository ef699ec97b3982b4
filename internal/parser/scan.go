/*
File    : jcjl/internal/parser/scan.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/jcjl/internal/token"

// findUntil scans tokens starting at start for the first token of kind
// until. It returns the tokens strictly before that token, the index
// just past it, and whether it was found at all. When not found, before
// is every remaining token and newPos is len(tokens).
//
// This replaces the teacher's/original's recursive find_until helper
// with an explicit loop, per SPEC_FULL.md's note that such helpers
// should not depend on stack depth.
func findUntil(tokens []token.Token, start int, until token.Kind) (before []token.Token, newPos int, found bool) {
	for i := start; i < len(tokens); i++ {
		if tokens[i].Kind == until {
			return tokens[start:i], i + 1, true
		}
	}
	return tokens[start:], len(tokens), false
}

// findEnd scans tokens starting at start for the body of a nested block
// delimited by startKind/endKind (e.g. FOR/ENDFOR). Nested occurrences of
// startKind increase the nesting depth; only an endKind at depth 0 ends
// the body. The delimiting end token is consumed but not included in the
// returned body.
func findEnd(tokens []token.Token, start int, startKind, endKind token.Kind) (body []token.Token, newPos int) {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case startKind:
			depth++
		case endKind:
			if depth == 0 {
				return tokens[start:i], i + 1
			}
			depth--
		}
	}
	return tokens[start:], len(tokens)
}

// findIfElseBodies splits the combined if/else token range (everything
// between an IF's END_LINE and its matching ENDIF, already stripped by
// findEnd) into the if-body and else-body, at the first ELSE that isn't
// inside a nested if. When no such ELSE exists, elseBody is nil — spec.md
// §4.2: "An if without an else yields an empty else-body."
func findIfElseBodies(tokens []token.Token) (ifBody, elseBody []token.Token) {
	depth := 0
	for i, t := range tokens {
		switch t.Kind {
		case token.IF:
			depth++
		case token.ENDIF:
			depth--
		case token.ELSE:
			if depth == 0 {
				rest := tokens[i+1:]
				if len(rest) > 0 && rest[0].Kind == token.END_LINE {
					rest = rest[1:]
				}
				return tokens[:i], rest
			}
		}
	}
	return tokens, nil
}
