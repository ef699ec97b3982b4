/*
File    : jcjl/internal/parser/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/jcjl/internal/ast"
	"github.com/akashmaji946/jcjl/internal/jerr"
	"github.com/akashmaji946/jcjl/internal/token"
)

// getExpression builds the expression node for exactly the tokens given —
// spec.md §4.2's grammar never needs lookahead beyond the 1/2/3-token
// forms or a leading CALL, so this never consumes a sub-slice.
func getExpression(tokens []token.Token) (ast.Node, jerr.Error) {
	switch len(tokens) {
	case 0:
		return nil, jerr.New(jerr.StatementError, "No expression found")

	case 1:
		if tokens[0].IsLeaf() {
			return &ast.Value{Token: tokens[0]}, jerr.Nil()
		}
		return nil, jerr.New(jerr.SyntaxError, "%q at line %d is not an identifier or literal", tokens[0].Lexeme, tokens[0].Line)

	case 2:
		if tokens[0].Kind == token.IDENTIFIER && tokens[1].Kind == token.INC_DEC {
			return &ast.IncDec{Left: tokens[0], Op: tokens[1]}, jerr.Nil()
		}
		return nil, jerr.New(jerr.SyntaxError, "Expected an identifier followed by plusplus/minmin at line %d", tokens[0].Line)

	default:
		if tokens[0].Kind == token.CALL {
			return getCallExpression(tokens)
		}
		if len(tokens) == 3 {
			return getThreeTokenExpression(tokens)
		}
		return nil, jerr.New(jerr.SyntaxError, "Invalid expression at line %d", tokens[0].Line)
	}
}

// getCallExpression handles `call <name> [param...]`.
func getCallExpression(tokens []token.Token) (*ast.Call, jerr.Error) {
	if len(tokens) < 2 || tokens[1].Kind != token.IDENTIFIER {
		return nil, jerr.New(jerr.SyntaxError, "Expected a function name after call at line %d", tokens[0].Line)
	}
	params := tokens[2:]
	if err := checkParameters(params); !err.IsNil() {
		return nil, err
	}
	return &ast.Call{Function: tokens[1], Parameters: params}, jerr.Nil()
}

// getThreeTokenExpression handles the leaf-operator-leaf form, dispatching
// on the operator's kind to produce the matching node shape.
func getThreeTokenExpression(tokens []token.Token) (ast.Node, jerr.Error) {
	if !tokens[0].IsLeaf() {
		return nil, jerr.New(jerr.SyntaxError, "%q at line %d is not an identifier or literal", tokens[0].Lexeme, tokens[0].Line)
	}
	if !tokens[2].IsLeaf() {
		return nil, jerr.New(jerr.SyntaxError, "%q at line %d is not an identifier or literal", tokens[2].Lexeme, tokens[2].Line)
	}

	switch tokens[1].Kind {
	case token.COMPARE:
		return &ast.Compare{Left: tokens[0], Op: tokens[1], Right: tokens[2]}, jerr.Nil()

	case token.UNARY:
		if tokens[0].Kind != token.IDENTIFIER {
			return nil, jerr.New(jerr.SyntaxError, "Expected an identifier on the left of %s at line %d", tokens[1].Lexeme, tokens[1].Line)
		}
		return &ast.Unary{Left: tokens[0], Op: tokens[1], Right: &ast.Value{Token: tokens[2]}}, jerr.Nil()

	case token.OPERATOR:
		return &ast.Operator{Left: tokens[0], Op: tokens[1], Right: tokens[2]}, jerr.Nil()

	default:
		return nil, jerr.New(jerr.SyntaxError, "%q at line %d is not a valid operator", tokens[1].Lexeme, tokens[1].Line)
	}
}

// checkParameters reports a SyntaxError if any call parameter isn't a
// leaf token — the language has no nested call expressions as arguments.
func checkParameters(tokens []token.Token) jerr.Error {
	for _, t := range tokens {
		if !t.IsLeaf() {
			return jerr.New(jerr.SyntaxError, "%q at line %d is not a valid call parameter", t.Lexeme, t.Line)
		}
	}
	return jerr.Nil()
}

// getCompare builds the exactly-3-token `leaf compare leaf` form that
// while/for/if conditions require.
func getCompare(tokens []token.Token) (*ast.Compare, jerr.Error) {
	if len(tokens) != 3 {
		if len(tokens) == 0 {
			return nil, jerr.New(jerr.StatementError, "No condition found")
		}
		return nil, jerr.New(jerr.StatementError, "Couldn't form a compare at line %d", tokens[0].Line)
	}
	if !tokens[0].IsLeaf() {
		return nil, jerr.New(jerr.SyntaxError, "%q at line %d is not an identifier or literal", tokens[0].Lexeme, tokens[0].Line)
	}
	if tokens[1].Kind != token.COMPARE {
		return nil, jerr.New(jerr.SyntaxError, "%q at line %d is not a compare operator", tokens[1].Lexeme, tokens[1].Line)
	}
	if !tokens[2].IsLeaf() {
		return nil, jerr.New(jerr.SyntaxError, "%q at line %d is not an identifier or literal", tokens[2].Lexeme, tokens[2].Line)
	}
	return &ast.Compare{Left: tokens[0], Op: tokens[1], Right: tokens[2]}, jerr.Nil()
}

// getTypeAssignment builds the `type identifier is expression` form used
// both as a standalone statement and as a for-loop's Start clause.
func getTypeAssignment(tokens []token.Token) (*ast.TypeAssignment, jerr.Error) {
	if len(tokens) < 3 {
		return nil, jerr.New(jerr.StatementError, "Incomplete type assignment")
	}
	if tokens[0].Kind != token.TYPE {
		return nil, jerr.New(jerr.StatementError, "Expected a type at line %d instead of %q", tokens[0].Line, tokens[0].Lexeme)
	}
	if tokens[1].Kind != token.IDENTIFIER {
		return nil, jerr.New(jerr.InvalidNameError, "%q at line %d is not a valid name", tokens[1].Lexeme, tokens[1].Line)
	}
	if tokens[2].Kind != token.ASSIGNMENT {
		return nil, jerr.New(jerr.StatementError, "Expected 'is' at line %d instead of %q", tokens[2].Line, tokens[2].Lexeme)
	}
	expr, err := getExpression(tokens[3:])
	if !err.IsNil() {
		return nil, err
	}
	return &ast.TypeAssignment{Type: tokens[0], Identifier: tokens[1], Expression: expr}, jerr.Nil()
}
