/*
File    : jcjl/internal/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements spec.md §4.3: a tree-walking evaluator over the
// parser's function table. Every call gets its own flat value.Scope; there
// is no global scope, no closures, and every runtime type mismatch or
// control-flow misuse surfaces as a RUNTIME_ERROR rather than a panic.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/jcjl/internal/ast"
	"github.com/akashmaji946/jcjl/internal/jerr"
	"github.com/akashmaji946/jcjl/internal/value"
)

// Evaluator holds the state shared across every call made while running
// one program: the parsed function table and the builtins' I/O streams.
// Grounded on the teacher's eval.Evaluator (Writer/Reader fields
// redirectable for tests, a shared buffered Reader so repeated `input`
// calls don't re-wrap os.Stdin).
type Evaluator struct {
	Program ast.Program
	Writer  io.Writer
	Reader  *bufio.Reader
}

// New builds an Evaluator over program, defaulting its builtins' I/O to
// the process's stdout/stdin.
func New(program ast.Program) *Evaluator {
	return &Evaluator{
		Program: program,
		Writer:  os.Stdout,
		Reader:  bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects the output `print` and `input`'s prompt write to.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects the input `input` reads from.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// Call dispatches a function invocation by name: the three builtins
// (print, size, input) are handled natively; anything else must be a
// user-defined function in the program table.
func (e *Evaluator) Call(name string, args []value.Value, callLine int) (value.Value, jerr.Error) {
	switch name {
	case "print":
		return e.callPrint(args)
	case "size":
		return e.callSize(args)
	case "input":
		return e.callInput(args)
	}

	fn, ok := e.Program[name]
	if !ok {
		return value.Value{}, jerr.New(jerr.RuntimeError, "Unknown function call to %s at line %d", name, callLine)
	}
	return e.callUser(fn, args, callLine)
}

// callUser runs a user-defined function's body in a fresh scope,
// checking parameter and return types, and — on a runtime error deep in
// the body — prepends the call-trace prefix the original's
// execute_function_node attaches before propagating upward.
func (e *Evaluator) callUser(fn *ast.FunctionDefinition, args []value.Value, callLine int) (value.Value, jerr.Error) {
	if len(args) != len(fn.Parameters) {
		return value.Value{}, jerr.New(jerr.ParameterError, "Function call with mismatched parameter amount at line %d", callLine)
	}

	scope := value.NewScope()
	for i, param := range fn.Parameters {
		wantKind := typeKind(param.Type)
		if args[i].Kind != wantKind {
			return value.Value{}, jerr.New(jerr.ParameterError, "Parameter type mismatch in function call to %s at line %d. Expected %s but got %s", fn.Name, callLine, wantKind, args[i].Kind)
		}
		scope.Declare(param.Name, value.Binding{Value: args[i], Type: wantKind})
	}

	if err := e.execNodes(scope, fn.Body); !err.IsNil() {
		return value.Value{}, jerr.New(err.Kind, "Error while executing %s. Function called at line: %d\n%s", fn.Name, callLine, err.Message)
	}

	if fn.ReturnExpression == nil {
		return value.Value{}, jerr.New(jerr.RuntimeError, "Expected return statement after function at line %d", fn.ReturnLine)
	}

	result, err := e.evalExpression(scope, fn.ReturnExpression, fn.ReturnLine)
	if !err.IsNil() {
		return value.Value{}, err
	}

	wantReturn := typeKind(fn.ReturnType)
	if result.Kind != wantReturn {
		return value.Value{}, jerr.New(jerr.RuntimeError, "Function %s called at line %d did not return the defined type. Expected %s but got %s", fn.Name, callLine, wantReturn, result.Kind)
	}
	return result, jerr.Nil()
}
