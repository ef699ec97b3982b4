/*
File    : jcjl/internal/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements spec.md §4.2: recursive-descent parsing of the
// lexer's token stream into a name-indexed map of function definitions.
// Every statement and condition grammar is exactly 1, 2 or 3 leaf tokens
// (or a leading CALL), so no operator precedence table is needed — the
// parser only ever has to decide *which* fixed shape a run of tokens is.
package parser

import (
	"github.com/akashmaji946/jcjl/internal/ast"
	"github.com/akashmaji946/jcjl/internal/jerr"
	"github.com/akashmaji946/jcjl/internal/token"
)

// Parse consumes an entire token stream and produces the function table
// spec.md §3 calls a Program. On the first error encountered, Parse
// returns the partial table accumulated so far together with the error,
// matching the original's "stop at first failure" behavior.
func Parse(tokens []token.Token) (ast.Program, jerr.Error) {
	result := ast.Program{}
	pos := 0

	for pos+1 < len(tokens) {
		if tokens[pos+1].Kind != token.FUNCTION {
			return result, jerr.New(jerr.SyntaxError, "No valid function definition at line %d", tokens[pos+1].Line)
		}

		fn, next, err := parseFunctionDefinition(tokens, pos)
		if !err.IsNil() {
			return result, err
		}
		result[fn.Name] = fn
		pos = next
	}

	registerBuiltins(result)
	return result, jerr.Nil()
}

// registerBuiltins adds print/size/input as name-only table entries —
// they have no body or return expression; the evaluator dispatches to
// their native implementations by name before ever looking at Body.
func registerBuiltins(result ast.Program) {
	result["print"] = &ast.FunctionDefinition{Name: "print", ReturnType: token.New(token.TYPE, "int", 0)}
	result["size"] = &ast.FunctionDefinition{Name: "size", ReturnType: token.New(token.TYPE, "int", 0)}
	result["input"] = &ast.FunctionDefinition{Name: "input", ReturnType: token.New(token.TYPE, "string", 0)}
}

// parseFunctionDefinition parses `type function name(params) ... return
// expr`, where pos points at the leading TYPE token.
func parseFunctionDefinition(tokens []token.Token, pos int) (*ast.FunctionDefinition, int, jerr.Error) {
	if tokens[pos].Kind != token.TYPE {
		return nil, pos, jerr.New(jerr.UnknownTypeError, "%q at line %d is not a valid type", tokens[pos].Lexeme, tokens[pos].Line)
	}
	if pos+2 >= len(tokens) || tokens[pos+2].Kind != token.IDENTIFIER {
		return nil, pos + 2, jerr.New(jerr.InvalidNameError, "Function at line %d has no valid name", tokens[pos].Line)
	}

	name := tokens[pos+2].Lexeme

	params, afterParams, err := getParameterList(tokens, pos+3)
	if !err.IsNil() {
		return nil, afterParams, err
	}

	bodyToks, afterBody, found := findUntil(tokens, afterParams, token.RETURN)
	if !found {
		return nil, afterBody, jerr.New(jerr.NoReturnFound, "No return found in function %s", name)
	}

	body, err := getNodes(bodyToks)
	if !err.IsNil() {
		return nil, afterBody, err
	}

	returnToks, afterReturn, found := findUntil(tokens, afterBody, token.END_LINE)
	if !found {
		return nil, afterReturn, jerr.New(jerr.StatementError, "Return statement in function %s is missing an end of line", name)
	}

	returnExpr, err := getExpression(returnToks)
	if !err.IsNil() {
		return nil, afterReturn, err
	}

	fn := &ast.FunctionDefinition{
		Name:             name,
		Parameters:       params,
		ReturnType:       tokens[pos],
		Body:             body,
		ReturnExpression: returnExpr,
		ReturnLine:       returnToks[0].Line,
	}
	return fn, afterReturn, jerr.Nil()
}

// getParameterList parses the `type name type name ...` run that
// follows a function's name, up to and including the terminating
// END_LINE.
func getParameterList(tokens []token.Token, pos int) ([]ast.Parameter, int, jerr.Error) {
	var params []ast.Parameter

	for {
		if pos >= len(tokens) {
			return nil, pos, jerr.New(jerr.StatementError, "Unexpected end of input in parameter list")
		}
		if tokens[pos].Kind == token.END_LINE {
			return params, pos + 1, jerr.Nil()
		}
		if tokens[pos].Kind != token.TYPE {
			return nil, pos + 1, jerr.New(jerr.UnknownTypeError, "%q at line %d is not a valid type", tokens[pos].Lexeme, tokens[pos].Line)
		}
		if pos+1 >= len(tokens) || tokens[pos+1].Kind != token.IDENTIFIER {
			return nil, pos + 1, jerr.New(jerr.InvalidNameError, "Parameter at line %d has no valid name", tokens[pos].Line)
		}
		params = append(params, ast.Parameter{Type: tokens[pos], Name: tokens[pos+1].Lexeme})
		pos += 2
	}
}
