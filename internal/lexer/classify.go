/*
File    : jcjl/internal/lexer/classify.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/akashmaji946/jcjl/internal/token"
)

var (
	hexLiteralRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{1,16}$`)
	identifierRegex = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]*$`)
)

// lexWord classifies a single word into a Token, trying — in order —
// keyword, string literal, integer literal, identifier, and finally
// ERROR if nothing matched.
func lexWord(word string, line int) token.Token {
	if kind, ok := token.Keywords[strings.ToLower(word)]; ok {
		return token.New(kind, word, line)
	}
	if isStringLiteral(word) {
		return token.New(token.STRING_LITERAL, word, line)
	}
	if isIntLiteral(word) {
		return token.New(token.INT_LITERAL, word, line)
	}
	if isIdentifier(word) {
		return token.New(token.IDENTIFIER, word, line)
	}
	return token.New(token.ERROR, word, line)
}

// isStringLiteral reports whether word is a complete, atomic string
// literal: starts and ends with '"'. A bare `"` (length 1) does not
// qualify — its start and end quote would be the same character.
func isStringLiteral(word string) bool {
	return len(word) >= 2 && strings.HasPrefix(word, `"`) && strings.HasSuffix(word, `"`)
}

// isIntLiteral accepts either a signed base-10 integer or a `0x` prefix
// followed by 1-16 hex digits (case-insensitive). The hex form never
// accepts a sign — matching the asymmetry recorded in SPEC_FULL.md.
func isIntLiteral(word string) bool {
	if hexLiteralRegex.MatchString(word) {
		return true
	}
	_, err := strconv.ParseInt(word, 10, 64)
	return err == nil
}

// isIdentifier reports whether word matches ^[a-z][a-zA-Z0-9_]*$.
func isIdentifier(word string) bool {
	return identifierRegex.MatchString(word)
}

// ParseIntLiteral converts the lexeme of an INT_LITERAL token to its
// int64 value, inferring the base from a `0x` prefix the same way the
// lexer's classifier inferred it when accepting the literal.
func ParseIntLiteral(lexeme string) (int64, error) {
	if hexLiteralRegex.MatchString(lexeme) {
		return strconv.ParseInt(lexeme[2:], 16, 64)
	}
	return strconv.ParseInt(lexeme, 10, 64)
}
