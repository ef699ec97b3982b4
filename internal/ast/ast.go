/*
File    : jcjl/internal/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the tagged-variant tree spec.md §3 describes: every
// statement and expression shape is its own Go type implementing the Node
// marker interface, and every leaf operand (identifier or literal) is
// carried as the very token.Token the lexer produced, so evaluation-time
// error messages can still cite the originating source line.
package ast

import "github.com/akashmaji946/jcjl/internal/token"

// Node is the marker interface implemented by every AST node — statement
// or expression. JCJL has no nested expressions (composition happens only
// through named intermediate variables), so Operator/Compare/IncDec/Call
// operands are always leaf tokens, never nested Nodes.
type Node interface {
	node()
}

// Value is a leaf identifier or literal used directly as an expression.
type Value struct {
	Token token.Token
}

func (*Value) node() {}

// Operator is a binary arithmetic/bitwise/relational expression whose
// operands are leaf tokens.
type Operator struct {
	Left     token.Token
	Op       token.Token
	Right    token.Token
}

func (*Operator) node() {}

// Compare is a relational expression with leaf operands.
type Compare struct {
	Left  token.Token
	Op    token.Token
	Right token.Token
}

func (*Compare) node() {}

// Unary is a compound assignment (plusis, minis, ...): read the left
// identifier, combine it with Right, and write the result back.
//
// Right is a Node rather than a bare token because the statement-level
// parse path evaluates the right-hand side as a full expression (which
// may itself be a Call), while the 3-token sub-expression path only ever
// produces a Value wrapping a leaf token — both are legal Unary.Right
// shapes, per SPEC_FULL.md's open-question note on this asymmetry.
type Unary struct {
	Left  token.Token
	Op    token.Token
	Right Node
}

func (*Unary) node() {}

// IncDec is plusplus/minmin on an integer variable.
type IncDec struct {
	Left token.Token
	Op   token.Token
}

func (*IncDec) node() {}

// Call is a function invocation. Parameters are always leaf tokens
// (identifiers or literals) — the language has no nested call
// expressions as arguments.
type Call struct {
	Function   token.Token
	Parameters []token.Token
}

func (*Call) node() {}

// TypeAssignment declares a new variable and initializes it.
type TypeAssignment struct {
	Type       token.Token
	Identifier token.Token
	Expression Node
}

func (*TypeAssignment) node() {}

// Assignment reassigns an existing variable.
type Assignment struct {
	Identifier token.Token
	Expression Node
}

func (*Assignment) node() {}

// Forloop is a counted loop: declare Start once, then loop while DoWhile
// holds, running Body and then Inc after each iteration.
type Forloop struct {
	Start  *TypeAssignment
	DoWhile *Compare
	Inc    Node // *Unary or *IncDec
	Body   []Node
}

func (*Forloop) node() {}

// While loops on an arbitrary truthy expression.
type While struct {
	DoWhile Node
	Body    []Node
}

func (*While) node() {}

// If branches on a Compare; ElseBody is empty (a nil slice) when no else
// clause was written.
type If struct {
	Cmp      *Compare
	Body     []Node
	ElseBody []Node
}

func (*If) node() {}

// Parameter is one (type, name) pair in a function's parameter list.
type Parameter struct {
	Type token.Token
	Name string
}

// FunctionDefinition is a complete, parsed function: its parameter list,
// declared return type, body statements, and the single return
// expression spec.md requires every function body to end with.
type FunctionDefinition struct {
	Name             string
	Parameters       []Parameter
	ReturnType       token.Token
	Body             []Node
	ReturnExpression Node
	ReturnLine       int
}

// Program is the parser's output: a name-indexed table of every function
// definition in the source, with the three builtins (print, size, input)
// present as table entries with no body — callers dispatch to the
// evaluator's builtin implementations by name, never by walking these
// entries' (nonexistent) bodies.
type Program map[string]*FunctionDefinition
