// Package aoc provides input reading and line parsing for puzzle solutions
// scaffolded by aocrun.
//
// A generated solution stub uses it like this:
//
//	var input = aoc.MustReadInput("day-07")
//
//	func Part1() any {
//	    lines := aoc.ParseLines(input)
//	    return len(lines)
//	}
//
// When a solution runs under "aocrun day", the package is bound to the
// configured solutions root. Compiled code uses DefaultRoot.
package aoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ImportPath is the import path solution stubs use for this package.
const ImportPath = "github.com/AndreyAkinshin/aocrun/pkg/aoc"

// DefaultRoot is the solutions root used by the package-level helpers.
const DefaultRoot = "src"

// DefaultInputName is the file name (without .txt) read when none is given.
const DefaultInputName = "input"

// Reader reads input artifacts below a solutions root.
type Reader struct {
	Root string
}

// Path returns <Root>/<dayName>/<fileName>.txt.
func (r Reader) Path(dayName, fileName string) string {
	if fileName == "" {
		fileName = DefaultInputName
	}
	return filepath.Join(r.Root, dayName, fileName+".txt")
}

// ReadInput reads <Root>/<dayName>/<fileName>.txt and trims surrounding whitespace.
// fileName defaults to "input"; pass "example" to read example.txt.
func (r Reader) ReadInput(dayName string, fileName ...string) (string, error) {
	name := DefaultInputName
	if len(fileName) > 0 && fileName[0] != "" {
		name = fileName[0]
	}

	data, err := os.ReadFile(r.Path(dayName, name))
	if err != nil {
		return "", fmt.Errorf("read %s input for %s: %w", name, dayName, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// MustReadInput is like ReadInput but panics on error.
func (r Reader) MustReadInput(dayName string, fileName ...string) string {
	s, err := r.ReadInput(dayName, fileName...)
	if err != nil {
		panic(err)
	}
	return s
}

// ReadInput reads an input artifact below DefaultRoot.
func ReadInput(dayName string, fileName ...string) (string, error) {
	return Reader{Root: DefaultRoot}.ReadInput(dayName, fileName...)
}

// MustReadInput reads an input artifact below DefaultRoot and panics on error.
func MustReadInput(dayName string, fileName ...string) string {
	return Reader{Root: DefaultRoot}.MustReadInput(dayName, fileName...)
}
