/*
File    : jcjl/internal/eval/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"

	"github.com/akashmaji946/jcjl/internal/ast"
	"github.com/akashmaji946/jcjl/internal/jerr"
	"github.com/akashmaji946/jcjl/internal/token"
	"github.com/akashmaji946/jcjl/internal/value"
)

// execNodes runs a flat statement list in order, stopping at the first
// error. Rewritten as an explicit loop rather than the original's
// recurse-on-the-rest-of-the-list shape, so a long function body never
// risks the stack.
func (e *Evaluator) execNodes(scope *value.Scope, nodes []ast.Node) jerr.Error {
	for _, n := range nodes {
		if err := e.execNode(scope, n); !err.IsNil() {
			return err
		}
	}
	return jerr.Nil()
}

// execNode executes a single statement node.
func (e *Evaluator) execNode(scope *value.Scope, node ast.Node) jerr.Error {
	switch n := node.(type) {
	case *ast.TypeAssignment:
		return e.execTypeAssignment(scope, n)
	case *ast.Assignment:
		return e.execAssignment(scope, n)
	case *ast.IncDec:
		return execIncDec(scope, n)
	case *ast.Unary:
		return e.execUnary(scope, n)
	case *ast.Call:
		args, err := resolveParameters(scope, n.Parameters)
		if !err.IsNil() {
			return err
		}
		_, err = e.Call(n.Function.Lexeme, args, n.Function.Line)
		return err
	case *ast.Forloop:
		return e.execForloop(scope, n)
	case *ast.While:
		return e.execWhile(scope, n)
	case *ast.If:
		return e.execIf(scope, n)
	default:
		return jerr.New(jerr.StatementError, "Couldn't execute node with type %T", node)
	}
}

func (e *Evaluator) execTypeAssignment(scope *value.Scope, n *ast.TypeAssignment) jerr.Error {
	val, err := e.evalExpression(scope, n.Expression, n.Type.Line)
	if !err.IsNil() {
		return err
	}
	want := typeKind(n.Type)
	if val.Kind != want {
		return jerr.New(jerr.RuntimeError, "Mismatched type assignment. Variable %s expected type %s but the expression gave %s", n.Identifier.Lexeme, want, val.Kind)
	}
	scope.Declare(n.Identifier.Lexeme, value.Binding{Value: val, Type: want})
	return jerr.Nil()
}

func (e *Evaluator) execAssignment(scope *value.Scope, n *ast.Assignment) jerr.Error {
	b, ok := scope.Get(n.Identifier.Lexeme)
	if !ok {
		return jerr.New(jerr.UnknownVariableError, "Variable %s was not yet declared at line %d", n.Identifier.Lexeme, n.Identifier.Line)
	}
	val, err := e.evalExpression(scope, n.Expression, n.Identifier.Line)
	if !err.IsNil() {
		return err
	}
	if val.Kind != b.Type {
		return jerr.New(jerr.RuntimeError, "Variable has type %s, but expression gave %s at line %d", b.Type, val.Kind, n.Identifier.Line)
	}
	scope.Set(n.Identifier.Lexeme, val)
	return jerr.Nil()
}

func execIncDec(scope *value.Scope, n *ast.IncDec) jerr.Error {
	b, ok := scope.Get(n.Left.Lexeme)
	if !ok {
		return jerr.New(jerr.UnknownVariableError, "Variable %s was not yet declared at line %d", n.Left.Lexeme, n.Left.Line)
	}
	if b.Type != value.Int {
		return jerr.New(jerr.RuntimeError, "Variable of type %s can not be incremented or decremented at line %d", b.Type, n.Left.Line)
	}
	delta := int64(1)
	if strings.EqualFold(n.Op.Lexeme, "minmin") {
		delta = -1
	}
	scope.Set(n.Left.Lexeme, value.NewInt(b.Value.I+delta))
	return jerr.Nil()
}

// intUnaryOps maps a UNARY keyword to the int compound-assignment it
// performs (left op= right). notis ignores the left operand and
// complements the right one, matching the original's `~right` lambda.
var intUnaryOps = map[string]func(l, r int64) int64{
	"plusis":   func(l, r int64) int64 { return l + r },
	"minis":    func(l, r int64) int64 { return l - r },
	"mulis":    func(l, r int64) int64 { return l * r },
	"modis":    func(l, r int64) int64 { return l % r },
	"andis":    func(l, r int64) int64 { return l & r },
	"oris":     func(l, r int64) int64 { return l | r },
	"notis":    func(l, r int64) int64 { return ^r },
	"xoris":    func(l, r int64) int64 { return l ^ r },
	"bicis":    func(l, r int64) int64 { return l &^ r },
	"lshiftis": func(l, r int64) int64 { return l << uint(r) },
	"rshiftis": func(l, r int64) int64 { return l >> uint(r) },
	"divis":    func(l, r int64) int64 { return l / r },
}

// execUnary performs a compound assignment (plusis, minis, ...): read
// Left, combine it with Right's value, write the result back to Left.
func (e *Evaluator) execUnary(scope *value.Scope, n *ast.Unary) jerr.Error {
	if n.Left.Kind != token.IDENTIFIER {
		return jerr.New(jerr.RuntimeError, "Unary expression needs an identifier at the left side, but got %s at line %d", n.Left.Kind, n.Left.Line)
	}

	right, err := e.evalExpression(scope, n.Right, n.Left.Line)
	if !err.IsNil() {
		return err
	}

	b, ok := scope.Get(n.Left.Lexeme)
	if !ok {
		return jerr.New(jerr.UnknownVariableError, "Variable %s was not yet declared at line %d", n.Left.Lexeme, n.Left.Line)
	}
	if b.Type != right.Kind {
		return jerr.New(jerr.RuntimeError, "Unary expression can only be done between the same type, but left is %s and right is %s", b.Type, right.Kind)
	}

	opName := strings.ToLower(n.Op.Lexeme)

	switch b.Type {
	case value.String:
		if opName != "plusis" {
			return jerr.New(jerr.RuntimeError, "Invalid unary operator (%s) between two strings at line %d", n.Op.Lexeme, n.Op.Line)
		}
		scope.Set(n.Left.Lexeme, value.NewString(b.Value.S+right.S))
		return jerr.Nil()

	case value.Int:
		fn, ok := intUnaryOps[opName]
		if !ok {
			return jerr.New(jerr.RuntimeError, "Invalid unary operator (%s) between two ints on line %d", n.Op.Lexeme, n.Op.Line)
		}
		if (opName == "divis" || opName == "modis") && right.I == 0 {
			return jerr.New(jerr.RuntimeError, "Cannot divide by 0 at line %d", n.Op.Line)
		}
		scope.Set(n.Left.Lexeme, value.NewInt(fn(b.Value.I, right.I)))
		return jerr.Nil()

	case value.Bool:
		switch opName {
		case "andis":
			scope.Set(n.Left.Lexeme, value.NewBool(b.Value.B && right.B))
			return jerr.Nil()
		case "oris":
			scope.Set(n.Left.Lexeme, value.NewBool(b.Value.B || right.B))
			return jerr.Nil()
		default:
			return jerr.New(jerr.RuntimeError, "Invalid unary operation (%s) on two bools at line %d", n.Op.Lexeme, n.Op.Line)
		}
	}

	return jerr.New(jerr.RuntimeError, "Invalid type found at line %d: %s", n.Left.Line, b.Type)
}
