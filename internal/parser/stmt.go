/*
File    : jcjl/internal/parser/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/jcjl/internal/ast"
	"github.com/akashmaji946/jcjl/internal/jerr"
	"github.com/akashmaji946/jcjl/internal/token"
)

// getNodes parses a flat run of statements (a function body, a loop body,
// an if/else branch) into ast.Nodes. It is an explicit loop rather than
// the teacher's/original's recursive "parse one statement, recurse on the
// rest" shape, so a body with many statements never risks the stack.
func getNodes(tokens []token.Token) ([]ast.Node, jerr.Error) {
	var nodes []ast.Node
	pos := 0

	for pos < len(tokens) {
		var node ast.Node
		var next int
		var err jerr.Error

		switch tokens[pos].Kind {
		case token.FOR:
			node, next, err = parseForLoop(tokens, pos)
		case token.WHILE:
			node, next, err = parseWhileLoop(tokens, pos)
		case token.IF:
			node, next, err = parseIfStatement(tokens, pos)
		case token.CALL:
			node, next, err = parseCallStatement(tokens, pos)
		case token.TYPE:
			node, next, err = parseTypeAssignmentStatement(tokens, pos)
		case token.IDENTIFIER:
			node, next, err = parseIdentifierStatement(tokens, pos)
		default:
			return nil, jerr.New(jerr.StatementError, "No valid statement could be formed at line %d", tokens[pos].Line)
		}

		if !err.IsNil() {
			return nil, err
		}

		if next < len(tokens) && tokens[next].Kind == token.END_LINE {
			next++
		}

		nodes = append(nodes, node)
		pos = next
	}

	return nodes, jerr.Nil()
}

// parseForLoop parses `for <start> while <cond> with <inc> ... endfor`,
// where pos points at the leading FOR token.
func parseForLoop(tokens []token.Token, pos int) (*ast.Forloop, int, jerr.Error) {
	line := tokens[pos].Line

	startToks, p, found := findUntil(tokens, pos+1, token.WHILE)
	if !found {
		return nil, p, jerr.New(jerr.StatementError, "For loop is missing 'while' at line %d", line)
	}
	condToks, p, found := findUntil(tokens, p, token.WITH)
	if !found {
		return nil, p, jerr.New(jerr.StatementError, "For loop is missing 'with' at line %d", line)
	}
	incToks, p, found := findUntil(tokens, p, token.END_LINE)
	if !found {
		return nil, p, jerr.New(jerr.StatementError, "For loop header is missing an end of line at line %d", line)
	}
	bodyToks, p := findEnd(tokens, p, token.FOR, token.ENDFOR)

	start, err := getTypeAssignment(startToks)
	if !err.IsNil() {
		return nil, p, jerr.New(jerr.StatementError, "For loop doesn't start with a valid assignment at line %d", line)
	}

	cond, err := getCompare(condToks)
	if !err.IsNil() {
		return nil, p, jerr.New(jerr.StatementError, "For loop doesn't have a valid condition at line %d", line)
	}

	inc, err := getExpression(incToks)
	if !err.IsNil() {
		return nil, p, jerr.New(jerr.StatementError, "For loop doesn't have a valid iteration expression at line %d", line)
	}
	switch inc.(type) {
	case *ast.Unary, *ast.IncDec:
	default:
		return nil, p, jerr.New(jerr.StatementError, "For loop's iteration expression must be a compound assignment or increment/decrement at line %d", line)
	}

	body, err := getNodes(bodyToks)
	if !err.IsNil() {
		return nil, p, err
	}

	return &ast.Forloop{Start: start, DoWhile: cond, Inc: inc, Body: body}, p, jerr.Nil()
}

// parseWhileLoop parses `while <expr> ... endwhile`.
func parseWhileLoop(tokens []token.Token, pos int) (*ast.While, int, jerr.Error) {
	line := tokens[pos].Line

	exprToks, p, found := findUntil(tokens, pos+1, token.END_LINE)
	if !found {
		return nil, p, jerr.New(jerr.StatementError, "While loop header is missing an end of line at line %d", line)
	}
	bodyToks, p := findEnd(tokens, p, token.WHILE, token.ENDWHILE)

	cond, err := getExpression(exprToks)
	if !err.IsNil() {
		return nil, p, err
	}
	body, err := getNodes(bodyToks)
	if !err.IsNil() {
		return nil, p, err
	}
	return &ast.While{DoWhile: cond, Body: body}, p, jerr.Nil()
}

// parseIfStatement parses `if <cond> ... [else ...] endif`.
func parseIfStatement(tokens []token.Token, pos int) (*ast.If, int, jerr.Error) {
	line := tokens[pos].Line

	condToks, p, found := findUntil(tokens, pos+1, token.END_LINE)
	if !found {
		return nil, p, jerr.New(jerr.StatementError, "If statement header is missing an end of line at line %d", line)
	}
	combined, p := findEnd(tokens, p, token.IF, token.ENDIF)
	ifToks, elseToks := findIfElseBodies(combined)

	cond, err := getCompare(condToks)
	if !err.IsNil() {
		return nil, p, err
	}
	ifBody, err := getNodes(ifToks)
	if !err.IsNil() {
		return nil, p, err
	}
	elseBody, err := getNodes(elseToks)
	if !err.IsNil() {
		return nil, p, err
	}

	return &ast.If{Cmp: cond, Body: ifBody, ElseBody: elseBody}, p, jerr.Nil()
}

// parseCallStatement parses `call <name> [param...]` used as a statement
// (its return value, if any, is discarded).
func parseCallStatement(tokens []token.Token, pos int) (*ast.Call, int, jerr.Error) {
	if pos+1 >= len(tokens) || tokens[pos+1].Kind != token.IDENTIFIER {
		return nil, pos + 1, jerr.New(jerr.SyntaxError, "Expected a function name after call at line %d", tokens[pos].Line)
	}
	params, p, _ := findUntil(tokens, pos+2, token.END_LINE)
	if err := checkParameters(params); !err.IsNil() {
		return nil, p, err
	}
	return &ast.Call{Function: tokens[pos+1], Parameters: params}, p, jerr.Nil()
}

// parseTypeAssignmentStatement parses `type identifier is expression` as
// a standalone statement.
func parseTypeAssignmentStatement(tokens []token.Token, pos int) (*ast.TypeAssignment, int, jerr.Error) {
	stmtToks, p, _ := findUntil(tokens, pos, token.END_LINE)
	node, err := getTypeAssignment(stmtToks)
	if !err.IsNil() {
		return nil, p, err
	}
	return node, p, jerr.Nil()
}

// parseIdentifierStatement parses the three statement forms that start
// with a bare identifier: assignment (`is`), compound assignment
// (plusis/minis/...), and increment/decrement (plusplus/minmin).
func parseIdentifierStatement(tokens []token.Token, pos int) (ast.Node, int, jerr.Error) {
	if pos+1 >= len(tokens) {
		return nil, pos + 1, jerr.New(jerr.StatementError, "Incomplete statement at line %d", tokens[pos].Line)
	}

	switch tokens[pos+1].Kind {
	case token.ASSIGNMENT:
		exprToks, p, found := findUntil(tokens, pos+2, token.END_LINE)
		if !found {
			return nil, p, jerr.New(jerr.StatementError, "Statement is missing an end of line at line %d", tokens[pos].Line)
		}
		expr, err := getExpression(exprToks)
		if !err.IsNil() {
			return nil, p, err
		}
		return &ast.Assignment{Identifier: tokens[pos], Expression: expr}, p, jerr.Nil()

	case token.UNARY:
		exprToks, p, found := findUntil(tokens, pos+2, token.END_LINE)
		if !found {
			return nil, p, jerr.New(jerr.StatementError, "Statement is missing an end of line at line %d", tokens[pos].Line)
		}
		expr, err := getExpression(exprToks)
		if !err.IsNil() {
			return nil, p, err
		}
		return &ast.Unary{Left: tokens[pos], Op: tokens[pos+1], Right: expr}, p, jerr.Nil()

	case token.INC_DEC:
		if pos+2 < len(tokens) && tokens[pos+2].Kind == token.END_LINE {
			return &ast.IncDec{Left: tokens[pos], Op: tokens[pos+1]}, pos + 3, jerr.Nil()
		}
		return nil, pos + 2, jerr.New(jerr.StatementError, "Invalid statement at line %d", tokens[pos].Line)

	default:
		return nil, pos + 1, jerr.New(jerr.StatementError, "Invalid statement at line %d", tokens[pos].Line)
	}
}
