/*
File    : jcjl/internal/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akashmaji946/jcjl/internal/jerr"
	"github.com/akashmaji946/jcjl/internal/value"
)

// unquote strips one leading and one trailing '"' from a string Value's
// surface text. Value.S always carries a STRING_LITERAL's quotes, so
// every builtin that treats the payload as plain text goes through this.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// callPrint writes its single argument to Writer followed by a trailing
// newline. A string argument has the literal two-character escape `\n`
// turned into a real newline; any other type is stringified as-is.
// Always returns int 0.
func (e *Evaluator) callPrint(args []value.Value) (value.Value, jerr.Error) {
	if len(args) != 1 {
		return value.Value{}, jerr.New(jerr.ParameterError, "print expects exactly 1 parameter, got %d", len(args))
	}

	if args[0].Kind == value.String {
		text := strings.ReplaceAll(unquote(args[0].S), `\n`, "\n")
		fmt.Fprintln(e.Writer, text)
		return value.NewInt(0), jerr.Nil()
	}

	fmt.Fprintln(e.Writer, args[0].String())
	return value.NewInt(0), jerr.Nil()
}

// callSize returns the rune count of its single string argument.
func (e *Evaluator) callSize(args []value.Value) (value.Value, jerr.Error) {
	if len(args) != 1 {
		return value.Value{}, jerr.New(jerr.ParameterError, "size expects exactly 1 parameter, got %d", len(args))
	}
	if args[0].Kind != value.String {
		return value.Value{}, jerr.New(jerr.ParameterError, "size expects a string parameter, got %s", args[0].Kind)
	}

	trimmed := strings.Trim(args[0].S, `"`)
	return value.NewInt(int64(utf8.RuneCountInString(trimmed))), jerr.Nil()
}

// callInput writes its single string argument as a prompt with no
// trailing newline, reads one line from Reader, and returns it re-quoted
// as a string Value.
func (e *Evaluator) callInput(args []value.Value) (value.Value, jerr.Error) {
	if len(args) != 1 {
		return value.Value{}, jerr.New(jerr.ParameterError, "input expects exactly 1 parameter, got %d", len(args))
	}
	if args[0].Kind != value.String {
		return value.Value{}, jerr.New(jerr.ParameterError, "input expects a string parameter, got %s", args[0].Kind)
	}

	fmt.Fprint(e.Writer, unquote(args[0].S))

	line, _ := e.Reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")

	return value.NewString(`"` + line + `"`), jerr.Nil()
}
