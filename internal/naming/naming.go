// Package naming maps day numbers to workspace names and generates solution stubs.
package naming

import (
	"fmt"

	"github.com/AndreyAkinshin/aocrun/pkg/aoc"
)

// FormatDay zero-pads day to two digits: 7 -> "07", 25 -> "25".
// Values outside 1..25 are formatted the same way and never rejected.
func FormatDay(day int) string {
	return fmt.Sprintf("%02d", day)
}

// FormatDayName returns the workspace name for a day, e.g. "day-07".
func FormatDayName(day int) string {
	return "day-" + FormatDay(day)
}

// GenerateTemplate returns the Go source of a new solution stub for day.
// The stub reads its input, counts lines in Part1 and leaves Part2 undefined.
func GenerateTemplate(day int) string {
	return fmt.Sprintf(`package main

import (
	"%s"
)

var input = aoc.MustReadInput(%q)

func Part1() any {
	lines := aoc.ParseLines(input)
	// your code goes here
	return len(lines)
}
`, aoc.ImportPath, FormatDayName(day))
}
