/*
File    : jcjl/internal/eval/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"

	"github.com/akashmaji946/jcjl/internal/ast"
	"github.com/akashmaji946/jcjl/internal/jerr"
	"github.com/akashmaji946/jcjl/internal/lexer"
	"github.com/akashmaji946/jcjl/internal/token"
	"github.com/akashmaji946/jcjl/internal/value"
)

// evalExpression computes the runtime Value of an expression node. line
// is the line to attribute a generic "invalid expression" error to when
// the node itself carries no better one.
func (e *Evaluator) evalExpression(scope *value.Scope, node ast.Node, line int) (value.Value, jerr.Error) {
	switch n := node.(type) {
	case *ast.Value:
		return resolveLeaf(scope, n.Token)

	case *ast.Operator:
		left, err := resolveLeaf(scope, n.Left)
		if !err.IsNil() {
			return value.Value{}, err
		}
		right, err := resolveLeaf(scope, n.Right)
		if !err.IsNil() {
			return value.Value{}, err
		}
		return evalOperator(n.Op, left, right)

	case *ast.Compare:
		left, err := resolveLeaf(scope, n.Left)
		if !err.IsNil() {
			return value.Value{}, err
		}
		right, err := resolveLeaf(scope, n.Right)
		if !err.IsNil() {
			return value.Value{}, err
		}
		return evalCompare(n.Op, left, right)

	case *ast.Call:
		args, err := resolveParameters(scope, n.Parameters)
		if !err.IsNil() {
			return value.Value{}, err
		}
		return e.Call(n.Function.Lexeme, args, n.Function.Line)

	default:
		// IncDec (and any other statement-only shape) is not a valid
		// generic expression — the original's execute_expression has no
		// branch for it either; it is only ever executed directly as a
		// statement or as a for-loop's iteration clause.
		return value.Value{}, jerr.New(jerr.RuntimeError, "Tried to execute invalid expression node at line %d", line)
	}
}

// resolveLeaf turns a leaf token (identifier or literal) into its
// runtime Value.
func resolveLeaf(scope *value.Scope, tok token.Token) (value.Value, jerr.Error) {
	switch tok.Kind {
	case token.IDENTIFIER:
		b, ok := scope.Get(tok.Lexeme)
		if !ok {
			return value.Value{}, jerr.New(jerr.UnknownVariableError, "Variable %s was not yet declared at line %d", tok.Lexeme, tok.Line)
		}
		return b.Value, jerr.Nil()

	case token.BOOL:
		return value.NewBool(strings.EqualFold(tok.Lexeme, "true")), jerr.Nil()

	case token.STRING_LITERAL:
		return value.NewString(tok.Lexeme), jerr.Nil()

	case token.INT_LITERAL:
		iv, err := lexer.ParseIntLiteral(tok.Lexeme)
		if err != nil {
			return value.Value{}, jerr.New(jerr.RuntimeError, "Literal %s at line %d could not be read as an integer", tok.Lexeme, tok.Line)
		}
		return value.NewInt(iv), jerr.Nil()

	default:
		return value.Value{}, jerr.New(jerr.RuntimeError, "Literal couldn't be resolved at line %d", tok.Line)
	}
}

// resolveParameters resolves every call-parameter token to a Value,
// in order.
func resolveParameters(scope *value.Scope, params []token.Token) ([]value.Value, jerr.Error) {
	args := make([]value.Value, 0, len(params))
	for _, p := range params {
		v, err := resolveLeaf(scope, p)
		if !err.IsNil() {
			return nil, err
		}
		args = append(args, v)
	}
	return args, jerr.Nil()
}

// intBinOps maps an OPERATOR keyword to the integer operation it
// performs. div truncates toward zero using Go's native int64 division
// rather than the reference implementation's accidental float division
// (see SPEC_FULL.md's open-question decision on this) — JCJL's type
// system has no float to hold such a result in the first place.
var intBinOps = map[string]func(l, r int64) int64{
	"plus":   func(l, r int64) int64 { return l + r },
	"min":    func(l, r int64) int64 { return l - r },
	"mul":    func(l, r int64) int64 { return l * r },
	"div":    func(l, r int64) int64 { return l / r },
	"mod":    func(l, r int64) int64 { return l % r },
	"and":    func(l, r int64) int64 { return l & r },
	"or":     func(l, r int64) int64 { return l | r },
	"xor":    func(l, r int64) int64 { return l ^ r },
	"bic":    func(l, r int64) int64 { return l &^ r },
	"lshift": func(l, r int64) int64 { return l << uint(r) },
	"rshift": func(l, r int64) int64 { return l >> uint(r) },
}

// intBoolOps maps a comparison keyword (lexed as COMPARE) to the bool it
// yields from two ints.
var intBoolOps = map[string]func(l, r int64) bool{
	"equals":            func(l, r int64) bool { return l == r },
	"notequals":         func(l, r int64) bool { return l != r },
	"lessthan":          func(l, r int64) bool { return l < r },
	"greaterthan":       func(l, r int64) bool { return l > r },
	"lessthanequals":    func(l, r int64) bool { return l <= r },
	"greaterthanequals": func(l, r int64) bool { return l >= r },
}

// evalOperator computes a binary OPERATOR expression, matching
// execute_expression's per-type operator tables exactly.
func evalOperator(op token.Token, left, right value.Value) (value.Value, jerr.Error) {
	opName := strings.ToLower(op.Lexeme)

	switch left.Kind {
	case value.String:
		if right.Kind != value.String {
			return value.Value{}, jerr.New(jerr.RuntimeError, "At line %d an operation between a string and not-string is not allowed", op.Line)
		}
		switch opName {
		case "plus":
			return value.NewString(left.S + right.S), jerr.Nil()
		case "equals":
			return value.NewBool(left.S == right.S), jerr.Nil()
		case "notequals":
			return value.NewBool(left.S != right.S), jerr.Nil()
		default:
			return value.Value{}, jerr.New(jerr.RuntimeError, "Invalid operator found: %s at line %d", opName, op.Line)
		}

	case value.Int:
		if right.Kind != value.Int {
			return value.Value{}, jerr.New(jerr.RuntimeError, "At line %d an operation between an int and not-int is not allowed", op.Line)
		}
		if fn, ok := intBoolOps[opName]; ok {
			return value.NewBool(fn(left.I, right.I)), jerr.Nil()
		}
		if fn, ok := intBinOps[opName]; ok {
			if (opName == "div" || opName == "mod") && right.I == 0 {
				return value.Value{}, jerr.New(jerr.RuntimeError, "Cannot divide by 0 at line %d", op.Line)
			}
			return value.NewInt(fn(left.I, right.I)), jerr.Nil()
		}
		return value.Value{}, jerr.New(jerr.RuntimeError, "Invalid int operator found: %s at line %d", opName, op.Line)

	case value.Bool:
		if right.Kind != value.Bool {
			return value.Value{}, jerr.New(jerr.RuntimeError, "At line %d an operation between a bool and a not-bool is not allowed", op.Line)
		}
		switch opName {
		case "equals":
			return value.NewBool(left.B == right.B), jerr.Nil()
		case "notequals":
			return value.NewBool(left.B != right.B), jerr.Nil()
		case "and":
			return value.NewBool(left.B && right.B), jerr.Nil()
		case "or":
			return value.NewBool(left.B || right.B), jerr.Nil()
		default:
			return value.Value{}, jerr.New(jerr.RuntimeError, "Invalid bool operator found: %s at line %d", opName, op.Line)
		}
	}

	return value.Value{}, jerr.New(jerr.RuntimeError, "Unsupported operand type at line %d", op.Line)
}

// evalCompare computes a COMPARE expression. equals/notequals work
// across all three types; ordering comparisons are int-only, matching
// execute_expression's Compare branch.
func evalCompare(op token.Token, left, right value.Value) (value.Value, jerr.Error) {
	if left.Kind != right.Kind {
		return value.Value{}, jerr.New(jerr.RuntimeError, "Can't compare between different types (left: %s, right: %s) at line %d", left.Kind, right.Kind, op.Line)
	}

	opName := strings.ToLower(op.Lexeme)

	switch opName {
	case "equals":
		return value.NewBool(valuesEqual(left, right)), jerr.Nil()
	case "notequals":
		return value.NewBool(!valuesEqual(left, right)), jerr.Nil()
	case "lessthan", "greaterthan", "lessthanequals", "greaterthanequals":
		if left.Kind != value.Int {
			return value.Value{}, jerr.New(jerr.RuntimeError, "Invalid type (%s) found for %s operation at line %d", left.Kind, opName, op.Line)
		}
		switch opName {
		case "lessthan":
			return value.NewBool(left.I < right.I), jerr.Nil()
		case "greaterthan":
			return value.NewBool(left.I > right.I), jerr.Nil()
		case "lessthanequals":
			return value.NewBool(left.I <= right.I), jerr.Nil()
		default:
			return value.NewBool(left.I >= right.I), jerr.Nil()
		}
	default:
		return value.Value{}, jerr.New(jerr.RuntimeError, "Invalid compare operator (%s) found at line %d", op.Lexeme, op.Line)
	}
}

func valuesEqual(left, right value.Value) bool {
	switch left.Kind {
	case value.Int:
		return left.I == right.I
	case value.Bool:
		return left.B == right.B
	default:
		return left.S == right.S
	}
}
