/*
File    : jcjl/internal/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/jcjl/internal/ast"
	"github.com/akashmaji946/jcjl/internal/lexer"
	"github.com/akashmaji946/jcjl/internal/source"
	"github.com/akashmaji946/jcjl/internal/token"
)

// mustLex turns raw source lines straight into tokens, bypassing the
// reader stage — these tests exercise the parser, not file I/O.
func mustLex(t *testing.T, lines ...string) []token.Token {
	t.Helper()
	var srcLines []source.Line
	for i, l := range lines {
		srcLines = append(srcLines, source.Line{Text: l, Number: i + 1})
	}
	toks, err := lexer.Lex(srcLines)
	require.True(t, err.IsNil(), "lex error: %v", err)
	return toks
}

func TestParse_IdentityFunction(t *testing.T) {
	toks := mustLex(t,
		`int function identity int x`,
		`return x`,
	)
	program, err := Parse(toks)
	require.True(t, err.IsNil(), "parse error: %v", err)

	fn, ok := program["identity"]
	require.True(t, ok, "expected identity function in program")
	assert.Equal(t, "identity", fn.Name)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "x", fn.Parameters[0].Name)

	value, ok := fn.ReturnExpression.(*ast.Value)
	require.True(t, ok, "expected return expression to be a Value, got %T", fn.ReturnExpression)
	assert.Equal(t, "x", value.Token.Lexeme)
}

func TestParse_AddFunction(t *testing.T) {
	toks := mustLex(t,
		`int function add int a int b`,
		`return a plus b`,
	)
	program, err := Parse(toks)
	require.True(t, err.IsNil())

	fn := program["add"]
	require.NotNil(t, fn)
	op, ok := fn.ReturnExpression.(*ast.Operator)
	require.True(t, ok, "expected Operator, got %T", fn.ReturnExpression)
	assert.Equal(t, "a", op.Left.Lexeme)
	assert.Equal(t, "plus", op.Op.Lexeme)
	assert.Equal(t, "b", op.Right.Lexeme)
}

func TestParse_ForLoop(t *testing.T) {
	toks := mustLex(t,
		`int function countup`,
		`for int i is 0 while i lessthan 3 with i plusplus`,
		`call print i`,
		`endfor`,
		`return 0`,
	)
	program, err := Parse(toks)
	require.True(t, err.IsNil(), "parse error: %v", err)

	fn := program["countup"]
	require.NotNil(t, fn)
	require.Len(t, fn.Body, 1)

	loop, ok := fn.Body[0].(*ast.Forloop)
	require.True(t, ok, "expected Forloop, got %T", fn.Body[0])
	assert.Equal(t, "i", loop.Start.Identifier.Lexeme)
	assert.Equal(t, "0", loop.Start.Expression.(*ast.Value).Token.Lexeme)
	assert.Equal(t, "lessthan", loop.DoWhile.Op.Lexeme)

	incDec, ok := loop.Inc.(*ast.IncDec)
	require.True(t, ok, "expected IncDec increment, got %T", loop.Inc)
	assert.Equal(t, "plusplus", incDec.Op.Lexeme)
	require.Len(t, loop.Body, 1)
}

func TestParse_IfElse(t *testing.T) {
	toks := mustLex(t,
		`bool function isOdd int n`,
		`int r is n mod 2`,
		`if r equals 1`,
		`bool result is true`,
		`else`,
		`bool result is false`,
		`endif`,
		`return result`,
	)
	program, err := Parse(toks)
	require.True(t, err.IsNil(), "parse error: %v", err)

	fn := program["isOdd"]
	require.NotNil(t, fn)
	require.Len(t, fn.Body, 2)

	ifNode, ok := fn.Body[1].(*ast.If)
	require.True(t, ok, "expected If, got %T", fn.Body[1])
	assert.Equal(t, "equals", ifNode.Cmp.Op.Lexeme)
	require.Len(t, ifNode.Body, 1)
	require.Len(t, ifNode.ElseBody, 1)
}

func TestParse_MissingReturnIsError(t *testing.T) {
	toks := mustLex(t,
		`int function noop`,
		`call print "hi"`,
	)
	_, err := Parse(toks)
	assert.False(t, err.IsNil())
	assert.Equal(t, "NO_RETURN_FOUND", string(err.Kind))
}

func TestParse_UnknownTypeIsError(t *testing.T) {
	toks := mustLex(t,
		`float function bad`,
		`return 0`,
	)
	_, err := Parse(toks)
	assert.False(t, err.IsNil())
}

func TestParse_RegistersBuiltins(t *testing.T) {
	toks := mustLex(t,
		`int function f`,
		`return 0`,
	)
	program, err := Parse(toks)
	require.True(t, err.IsNil())

	for _, name := range []string{"print", "size", "input"} {
		_, ok := program[name]
		assert.True(t, ok, "expected builtin %s in program table", name)
	}
}
