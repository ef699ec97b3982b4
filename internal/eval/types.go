/*
File    : jcjl/internal/eval/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"

	"github.com/akashmaji946/jcjl/internal/token"
	"github.com/akashmaji946/jcjl/internal/value"
)

// typeKind converts a TYPE token's lexeme into the value.Kind it names.
// Keyword matching is case-insensitive (token.go), but a Token's Lexeme
// keeps the source's original casing, so every site that compares a
// declared type against a runtime value.Kind must normalize through
// this helper rather than comparing Lexeme directly.
func typeKind(tok token.Token) value.Kind {
	return value.Kind(strings.ToLower(tok.Lexeme))
}
