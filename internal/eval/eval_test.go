/*
File    : jcjl/internal/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/jcjl/internal/ast"
	"github.com/akashmaji946/jcjl/internal/eval"
	"github.com/akashmaji946/jcjl/internal/lexer"
	"github.com/akashmaji946/jcjl/internal/parser"
	"github.com/akashmaji946/jcjl/internal/source"
	"github.com/akashmaji946/jcjl/internal/value"
	"github.com/stretchr/testify/require"
)

// buildProgram lexes and parses a handful of source lines into a program
// table, failing the test immediately on any pipeline error.
func buildProgram(t *testing.T, lines ...string) ast.Program {
	t.Helper()
	var srcLines []source.Line
	for i, l := range lines {
		srcLines = append(srcLines, source.Line{Text: l, Number: i + 1})
	}
	tokens, err := lexer.Lex(srcLines)
	require.Truef(t, err.IsNil(), "lex error: %s", err.String())

	program, err := parser.Parse(tokens)
	require.Truef(t, err.IsNil(), "parse error: %s", err.String())
	return program
}

func TestEval_IdentityFunction(t *testing.T) {
	program := buildProgram(t,
		"int function id int n",
		"return n",
	)
	e := eval.New(program)
	result, err := e.Call("id", []value.Value{value.NewInt(5)}, 0)
	require.True(t, err.IsNil())
	require.Equal(t, value.NewInt(5), result)
}

func TestEval_AddFunction(t *testing.T) {
	program := buildProgram(t,
		"int function add int a int b",
		"int r is a plus b",
		"return r",
	)
	e := eval.New(program)
	result, err := e.Call("add", []value.Value{value.NewInt(3), value.NewInt(4)}, 0)
	require.True(t, err.IsNil())
	require.Equal(t, value.NewInt(7), result)
}

func TestEval_MutualRecursion_IsOddIsEven(t *testing.T) {
	program := buildProgram(t,
		"bool function is_odd int n",
		"bool result is false",
		"if n notequals 0",
		"n minmin",
		"result is call is_even n",
		"endif",
		"return result",
		"bool function is_even int n",
		"bool result is true",
		"if n notequals 0",
		"n minmin",
		"result is call is_odd n",
		"endif",
		"return result",
	)
	e := eval.New(program)

	result, err := e.Call("is_odd", []value.Value{value.NewInt(5)}, 0)
	require.True(t, err.IsNil())
	require.Equal(t, value.NewBool(true), result)

	result, err = e.Call("is_odd", []value.Value{value.NewInt(4)}, 0)
	require.True(t, err.IsNil())
	require.Equal(t, value.NewBool(false), result)
}

func TestEval_ForLoopPrints(t *testing.T) {
	program := buildProgram(t,
		"int function count int n",
		"for int i is 0 while i lessthan n with i plusplus",
		"call print i",
		"endfor",
		"return 0",
	)
	var buf bytes.Buffer
	e := eval.New(program)
	e.SetWriter(&buf)

	_, err := e.Call("count", []value.Value{value.NewInt(3)}, 0)
	require.True(t, err.IsNil())
	require.Equal(t, "0\n1\n2\n", buf.String())
}

func TestEval_DivisionByZeroIsRuntimeError(t *testing.T) {
	program := buildProgram(t,
		"int function bad int n",
		"int x is 1 div 0",
		"return x",
	)
	e := eval.New(program)
	_, err := e.Call("bad", []value.Value{value.NewInt(0)}, 0)
	require.False(t, err.IsNil())
	require.Equal(t, "RUNTIME_ERROR", string(err.Kind))
}

func TestEval_PrintHandlesEscapedNewline(t *testing.T) {
	program := buildProgram(t,
		`int function greet int n`,
		`call print "hello\nworld"`,
		`return 0`,
	)
	var buf bytes.Buffer
	e := eval.New(program)
	e.SetWriter(&buf)

	_, err := e.Call("greet", []value.Value{value.NewInt(0)}, 0)
	require.True(t, err.IsNil())
	require.Equal(t, "hello\nworld\n", buf.String())
}

func TestEval_CallInput(t *testing.T) {
	program := buildProgram(t,
		`string function ask int n`,
		`string s is call input "name: "`,
		`return s`,
	)
	var out bytes.Buffer
	e := eval.New(program)
	e.SetWriter(&out)
	e.SetReader(strings.NewReader("ava\n"))

	result, err := e.Call("ask", []value.Value{value.NewInt(0)}, 0)
	require.True(t, err.IsNil())
	require.Equal(t, value.NewString(`"ava"`), result)
	require.Equal(t, "name: ", out.String())
}

func TestEval_CallSize(t *testing.T) {
	program := buildProgram(t,
		`int function length int n`,
		`int s is call size "hello"`,
		`return s`,
	)
	e := eval.New(program)
	result, err := e.Call("length", []value.Value{value.NewInt(0)}, 0)
	require.True(t, err.IsNil())
	require.Equal(t, value.NewInt(5), result)
}

func TestEval_ParameterCountMismatchIsParameterError(t *testing.T) {
	program := buildProgram(t,
		"int function id int n",
		"return n",
	)
	e := eval.New(program)
	_, err := e.Call("id", []value.Value{value.NewInt(1), value.NewInt(2)}, 7)
	require.False(t, err.IsNil())
	require.Equal(t, "PARAMETER_ERROR", string(err.Kind))
}

func TestEval_UnknownFunctionCallIsRuntimeError(t *testing.T) {
	program := buildProgram(t,
		"int function id int n",
		"return n",
	)
	e := eval.New(program)
	_, err := e.Call("missing", nil, 3)
	require.False(t, err.IsNil())
	require.Equal(t, "RUNTIME_ERROR", string(err.Kind))
}

func TestEval_CallTracePrefixOnNestedError(t *testing.T) {
	program := buildProgram(t,
		"int function outer int n",
		"int r is call inner n",
		"return r",
		"int function inner int n",
		"int x is 1 div 0",
		"return x",
	)
	e := eval.New(program)
	_, err := e.Call("outer", []value.Value{value.NewInt(1)}, 0)
	require.False(t, err.IsNil())
	require.Contains(t, err.Message, "Error while executing outer. Function called at line: 0")
}

func TestEval_WhileLoopTruthyInt(t *testing.T) {
	program := buildProgram(t,
		"int function countdown int n",
		"while n",
		"call print n",
		"n minis 1",
		"endwhile",
		"return 0",
	)
	var buf bytes.Buffer
	e := eval.New(program)
	e.SetWriter(&buf)

	_, err := e.Call("countdown", []value.Value{value.NewInt(2)}, 0)
	require.True(t, err.IsNil())
	require.Equal(t, "2\n1\n", buf.String())
}

func TestEval_TypeMismatchOnAssignmentIsRuntimeError(t *testing.T) {
	program := buildProgram(t,
		"int function bad int n",
		"int x is 1",
		"x is true",
		"return x",
	)
	e := eval.New(program)
	_, err := e.Call("bad", []value.Value{value.NewInt(0)}, 0)
	require.False(t, err.IsNil())
	require.Equal(t, "RUNTIME_ERROR", string(err.Kind))
}
