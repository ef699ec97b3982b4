/*
File    : jcjl/internal/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements an interactive, call-oriented shell over an
// already-parsed program: the file is lexed and parsed once, and the user
// then repeatedly types "<function> [arg...]" lines, each executed as a
// fresh top-level call against the same function table. Adapted from the
// teacher's expression-at-a-time repl/repl.go — JCJL has no bare
// top-level expressions, only function calls, so every line here is a
// call rather than an arbitrary statement.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/jcjl/internal/ast"
	"github.com/akashmaji946/jcjl/internal/cli"
	"github.com/akashmaji946/jcjl/internal/eval"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the visual and behavioral configuration for one interactive
// session.
type Repl struct {
	Banner      string
	Version     string
	Author      string
	Line        string
	Prompt      string
	HistoryFile string
	Color       bool
}

// New builds a Repl with the given display configuration.
func New(banner, version, author, line, prompt, historyFile string, useColor bool) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt, HistoryFile: historyFile, Color: useColor}
}

// PrintBanner writes the startup banner and usage reminder to writer.
func (r *Repl) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintf(writer, "Version: %s | Author: %s\n", r.Version, r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type '<function> [arg...]' and press enter")
	cyanColor.Fprintln(writer, "Type '.exit' to quit")
	cyanColor.Fprintln(writer, "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against program until the user exits or EOF is
// reached on the input.
func (r *Repl) Start(program ast.Program, writer io.Writer) {
	r.PrintBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: r.HistoryFile,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	evaluator := eval.New(program)
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		r.runLine(evaluator, writer, line)
	}
}

// runLine parses one "<function> [arg...]" line and executes it as a
// fresh top-level call, printing the result or error.
func (r *Repl) runLine(evaluator *eval.Evaluator, writer io.Writer, line string) {
	fields := strings.Fields(line)
	name := fields[0]
	args := cli.ParseArgLiterals(fields[1:])

	result, err := evaluator.Call(name, args, 0)
	if !err.IsNil() {
		redColor.Fprintf(writer, "%s\n", err.String())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.String())
}
