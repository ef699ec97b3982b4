/*
File    : jcjl/cmd/jcjl/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the JCJL interpreter. It provides two
modes of operation: batch execution of a source file (`jcjl run ...`) and
an interactive call-oriented shell (`jcjl repl ...`).
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/jcjl/internal/cli"
	"github.com/akashmaji946/jcjl/internal/config"
	"github.com/akashmaji946/jcjl/internal/eval"
	"github.com/akashmaji946/jcjl/internal/jerr"
	"github.com/akashmaji946/jcjl/internal/lexer"
	"github.com/akashmaji946/jcjl/internal/parser"
	"github.com/akashmaji946/jcjl/internal/repl"
	"github.com/fatih/color"
)

const version = "v1.0.0"
const author = "akashmaji(@iisc.ac.in)"

var banner = `
     _  _____ _ _
    | |/ ____| | |
    | | |    | | |
 _  | | |    | | |
| |_| | |____| | |____
 \___/ \_____|_|______|
`

var line = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	cfg, cfgErr := config.Load()
	if !cfgErr.IsNil() {
		redColor.Fprintf(os.Stderr, "%s\n", cfgErr.String())
		os.Exit(1)
	}
	if !cfg.ColorEnabled() {
		color.NoColor = true
	}

	if len(os.Args) < 2 {
		showHelp()
		os.Exit(jerr.StageExitCode(jerr.StageArgs))
	}

	switch os.Args[1] {
	case "--help", "-h":
		showHelp()
		os.Exit(0)
	case "--version", "-v":
		showVersion()
		os.Exit(0)
	case "repl":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "Usage: jcjl repl <source-file>\n")
			os.Exit(jerr.StageExitCode(jerr.StageArgs))
		}
		runRepl(os.Args[2], cfg)
	case "run":
		runFile(os.Args[2:])
	default:
		// Bare `jcjl <file> <function> [args...]` is accepted too, matching
		// the original's positional-only CLI.
		runFile(os.Args[1:])
	}
}

func showHelp() {
	cyanColor.Println("JCJL - a keyword-spelled, statically typed toy interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  jcjl run <source-file> <function-name> [arg...]")
	yellowColor.Println("  jcjl repl <source-file>")
	yellowColor.Println("  jcjl --help")
	yellowColor.Println("  jcjl --version")
}

func showVersion() {
	cyanColor.Printf("JCJL %s\n", version)
	cyanColor.Printf("Author: %s\n", author)
}

// runFile implements spec.md §6's batch CLI and banner sequence exactly:
// read, lex, parse, a running banner, the program's own output, an exit
// value line (only if the called function returned), and an ended banner.
// Wrapped in panic recovery: the evaluator reports its own errors as
// values and should never panic, but an unexpected panic is reported the
// same way a runtime error is rather than crashing with a bare Go stack
// trace. A Go stack overflow from deep recursion is a fatal runtime error,
// not a panic, and is not caught here.
func runFile(args []string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stdout, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(jerr.StageExitCode(jerr.StageRuntime))
		}
	}()

	if len(args) < 2 {
		redColor.Fprintf(os.Stdout, "%s\n", jerr.New(jerr.SyntaxError, "At least file and function name are required, but not given").String())
		os.Exit(jerr.StageExitCode(jerr.StageArgs))
	}

	sourcePath := args[0]
	functionName := args[1]
	callArgs := cli.ParseArgLiterals(args[2:])

	fmt.Println("Start reading in file")
	fmt.Println("Start lexing program")
	tokens, err := lexer.LexFile(sourcePath)
	if !err.IsNil() {
		redColor.Fprintf(os.Stdout, "%s\n", err.String())
		os.Exit(jerr.StageExitCode(jerr.StageLexer))
	}

	fmt.Println("Start parsing program")
	program, err := parser.Parse(tokens)
	if !err.IsNil() {
		redColor.Fprintf(os.Stdout, "%s\n", err.String())
		os.Exit(jerr.StageExitCode(jerr.StageParser))
	}

	fmt.Println("_____________START RUNNING PROGRAM_____________")
	evaluator := eval.New(program)
	result, err := evaluator.Call(functionName, callArgs, 0)
	if !err.IsNil() {
		redColor.Fprintf(os.Stdout, "%s\n", err.String())
		os.Exit(jerr.StageExitCode(jerr.StageRuntime))
	}

	fmt.Printf("Program exit value: %s\n", result.String())
	fmt.Println("_________________PROGRAM ENDED_________________")
	os.Exit(0)
}

func runRepl(sourcePath string, cfg config.Config) {
	tokens, err := lexer.LexFile(sourcePath)
	if !err.IsNil() {
		redColor.Fprintf(os.Stderr, "%s\n", err.String())
		os.Exit(jerr.StageExitCode(jerr.StageLexer))
	}

	program, err := parser.Parse(tokens)
	if !err.IsNil() {
		redColor.Fprintf(os.Stderr, "%s\n", err.String())
		os.Exit(jerr.StageExitCode(jerr.StageParser))
	}

	prompt := cfg.Prompt
	r := repl.New(banner, version, author, line, prompt, cfg.HistoryFile, cfg.ColorEnabled())
	r.Start(program, os.Stdout)
}
