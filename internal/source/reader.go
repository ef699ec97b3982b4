/*
File    : jcjl/internal/source/reader.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package source implements the reader stage spec.md §1 calls out as an
// external collaborator: it turns a source file into an ordered list of
// (line text, 1-based line number) pairs, stripping comments and blank
// lines before the lexer ever sees them.
package source

import (
	"bufio"
	"os"
	"strings"

	"github.com/akashmaji946/jcjl/internal/jerr"
)

// Line pairs a trimmed, non-comment, non-blank source line with the
// 1-based line number it occupied in the original file. Line numbers are
// preserved across stripped lines so later error messages still point at
// the real source position.
type Line struct {
	Text   string
	Number int
}

// Read loads path and returns the cleaned-up program lines, or a
// FileNotFoundError if the path doesn't exist.
//
// A line is dropped entirely (contributes no Line) when, after trimming
// surrounding whitespace, it is empty or begins with the keyword
// "comment".
func Read(path string) ([]Line, jerr.Error) {
	if _, err := os.Stat(path); err != nil {
		return nil, jerr.New(jerr.FileNotFoundError, "Couldn't find file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, jerr.New(jerr.FileNotFoundError, "Couldn't find file: %s", path)
	}
	defer file.Close()

	var lines []Line
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 1
	for scanner.Scan() {
		processed := processLine(scanner.Text())
		if processed != "" {
			lines = append(lines, Line{Text: processed, Number: lineNumber})
		}
		lineNumber++
	}

	return lines, jerr.Nil()
}

// processLine trims a raw line and blanks it out if it is a comment.
func processLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "comment") {
		return ""
	}
	return trimmed
}
