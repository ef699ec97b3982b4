/*
File    : jcjl/internal/eval/loop.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/jcjl/internal/ast"
	"github.com/akashmaji946/jcjl/internal/jerr"
	"github.com/akashmaji946/jcjl/internal/value"
)

// execForloop declares Start once (erroring if the name is already bound,
// unlike a bare TypeAssignment statement, which is allowed to rebind),
// then evaluates DoWhile/Body/Inc in the usual init-check-body-inc order.
// Rewritten from the original's recurse-with-assignment-cleared shape
// into a plain loop.
func (e *Evaluator) execForloop(scope *value.Scope, n *ast.Forloop) jerr.Error {
	if _, exists := scope.Get(n.Start.Identifier.Lexeme); exists {
		return jerr.New(jerr.RuntimeError, "Variable %s already exists and cannot be redefined at line %d", n.Start.Identifier.Lexeme, n.Start.Identifier.Line)
	}

	start, err := e.evalExpression(scope, n.Start.Expression, n.Start.Type.Line)
	if !err.IsNil() {
		return err
	}
	want := typeKind(n.Start.Type)
	if start.Kind != want {
		return jerr.New(jerr.RuntimeError, "Mismatched type assignment. Variable %s expected type %s but the expression gave %s", n.Start.Identifier.Lexeme, want, start.Kind)
	}
	scope.Declare(n.Start.Identifier.Lexeme, value.Binding{Value: start, Type: want})

	for {
		cond, err := e.evalExpression(scope, n.DoWhile, n.Start.Identifier.Line)
		if !err.IsNil() {
			return err
		}
		if !cond.B {
			return jerr.Nil()
		}
		if err := e.execNodes(scope, n.Body); !err.IsNil() {
			return err
		}
		if err := e.execIncNode(scope, n.Inc); !err.IsNil() {
			return err
		}
	}
}

// execIncNode runs a for-loop's iteration clause, which the parser
// guarantees is either a *ast.Unary or a *ast.IncDec.
func (e *Evaluator) execIncNode(scope *value.Scope, node ast.Node) jerr.Error {
	switch n := node.(type) {
	case *ast.IncDec:
		return execIncDec(scope, n)
	case *ast.Unary:
		return e.execUnary(scope, n)
	default:
		return jerr.New(jerr.StatementError, "For-loop increment is not a valid unary or increment/decrement expression")
	}
}

// execWhile loops while DoWhile, a general expression, evaluates truthy:
// a bool used directly, or a non-zero int. Any other resulting type is a
// runtime error, matching the decision recorded for while-truthiness in
// SPEC_FULL.md's open questions.
func (e *Evaluator) execWhile(scope *value.Scope, n *ast.While) jerr.Error {
	line := exprLine(n.DoWhile)
	for {
		result, err := e.evalExpression(scope, n.DoWhile, line)
		if !err.IsNil() {
			return err
		}
		truthy, ok := truthyValue(result)
		if !ok {
			return jerr.New(jerr.RuntimeError, "While expression resulted in type %s at line %d. Valid types are only int and bool.", result.Kind, line)
		}
		if !truthy {
			return jerr.Nil()
		}
		if err := e.execNodes(scope, n.Body); !err.IsNil() {
			return err
		}
	}
}

// execIf evaluates Cmp and runs Body or ElseBody accordingly. ElseBody is
// a nil slice when the source had no else clause, and running it then
// executes nothing.
func (e *Evaluator) execIf(scope *value.Scope, n *ast.If) jerr.Error {
	result, err := e.evalExpression(scope, n.Cmp, n.Cmp.Left.Line)
	if !err.IsNil() {
		return err
	}
	if result.B {
		return e.execNodes(scope, n.Body)
	}
	return e.execNodes(scope, n.ElseBody)
}

// truthyValue reports whether v counts as true under JCJL's while-loop
// truthiness rule, and whether v's type is even eligible to be judged.
func truthyValue(v value.Value) (truthy bool, ok bool) {
	switch v.Kind {
	case value.Bool:
		return v.B, true
	case value.Int:
		return v.I != 0, true
	default:
		return false, false
	}
}

// exprLine picks a line number to attribute an invalid-expression error
// to, for expression shapes that don't otherwise carry one through to
// evalExpression's generic fallback.
func exprLine(node ast.Node) int {
	switch n := node.(type) {
	case *ast.Compare:
		return n.Left.Line
	case *ast.Value:
		return n.Token.Line
	case *ast.Operator:
		return n.Left.Line
	case *ast.Call:
		return n.Function.Line
	default:
		return 0
	}
}
