/*
File    : jcjl/internal/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer implements spec.md §4.1: whitespace-sensitive tokenization
// that keeps quoted string literals atomic, classifies every word as a
// keyword, literal, identifier or error token, and injects an END_LINE
// marker after every non-empty source line.
package lexer

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/jcjl/internal/jerr"
	"github.com/akashmaji946/jcjl/internal/source"
	"github.com/akashmaji946/jcjl/internal/token"
)

// Lex tokenizes the already-cleaned program lines produced by the reader
// stage. It returns every token found — including ERROR tokens, which the
// caller can use for diagnostics — plus a SyntaxError if any ERROR token
// was produced.
func Lex(lines []source.Line) ([]token.Token, jerr.Error) {
	var tokens []token.Token
	var errorTokens []token.Token

	for _, ln := range lines {
		words := splitPreservingStrings(ln.Text)
		for _, w := range words {
			tok := lexWord(w, ln.Number)
			tokens = append(tokens, tok)
			if tok.Kind == token.ERROR {
				errorTokens = append(errorTokens, tok)
			}
		}
		tokens = append(tokens, token.New(token.END_LINE, "\n", ln.Number))
	}

	if len(errorTokens) > 0 {
		var messages []string
		for _, t := range errorTokens {
			messages = append(messages, formatSyntaxError(t.Lexeme, t.Line))
		}
		return tokens, jerr.New(jerr.SyntaxError, "%s", strings.Join(messages, "\n"))
	}

	return tokens, jerr.Nil()
}

// LexFile reads path via the reader stage and lexes the result in one
// call — the composition spec.md's interpreter() entry point performs
// before handing tokens to the parser.
func LexFile(path string) ([]token.Token, jerr.Error) {
	lines, err := source.Read(path)
	if !err.IsNil() {
		return nil, err
	}
	return Lex(lines)
}

// formatSyntaxError renders the diagnostic spec.md §4.1 specifies for an
// ERROR token: "On line N the symbol: X couldn't be defined".
func formatSyntaxError(lexeme string, line int) string {
	return fmt.Sprintf("On line %d the symbol: %s couldn't be defined", line, lexeme)
}
