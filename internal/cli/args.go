/*
File    : jcjl/internal/cli/args.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package cli implements the batch entry point's coercion of trailing
// command-line arguments into the boxed literals a called function
// receives. The per-stage exit codes live in jerr.StageExitCode.
package cli

import (
	"strconv"

	"github.com/akashmaji946/jcjl/internal/value"
)

// ParseArgLiterals coerces raw CLI argument strings into runtime Values,
// one-for-one and in order: "true"/"false" (lowercase only) become bool,
// otherwise a base-auto integer parse (0x… or base-10, optionally signed)
// is attempted, and anything that doesn't parse passes through as a
// string. Grounded on the original CLI's parse_parameters, which tries
// each argument independently — there is no per-argument type hint from
// the call site to guide the coercion.
func ParseArgLiterals(raw []string) []value.Value {
	args := make([]value.Value, len(raw))
	for i, r := range raw {
		args[i] = parseArgLiteral(r)
	}
	return args
}

func parseArgLiteral(raw string) value.Value {
	switch raw {
	case "true":
		return value.NewBool(true)
	case "false":
		return value.NewBool(false)
	}

	if iv, err := strconv.ParseInt(raw, 0, 64); err == nil {
		return value.NewInt(iv)
	}

	return value.NewString(`"` + raw + `"`)
}
