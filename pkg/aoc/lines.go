package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// LineOption configures ParseLines.
type LineOption func(*lineOptions)

type lineOptions struct {
	includeEmpty bool
	transform    func(string) string
}

// IncludeEmpty keeps empty lines instead of dropping them.
func IncludeEmpty() LineOption {
	return func(o *lineOptions) { o.includeEmpty = true }
}

// Map applies fn to every kept line.
func Map(fn func(string) string) LineOption {
	return func(o *lineOptions) { o.transform = fn }
}

// ParseLines splits input on "\n". Empty lines are dropped unless
// IncludeEmpty is given. The input is not trimmed first, so a trailing
// newline yields a trailing empty line when empty lines are kept.
func ParseLines(input string, opts ...LineOption) []string {
	var o lineOptions
	for _, opt := range opts {
		opt(&o)
	}

	lines := strings.Split(input, "\n")
	if !o.includeEmpty {
		kept := lines[:0]
		for _, line := range lines {
			if line != "" {
				kept = append(kept, line)
			}
		}
		lines = kept
	}

	if o.transform != nil {
		for i, line := range lines {
			lines[i] = o.transform(line)
		}
	}
	return lines
}

// ParseLinesAs splits input like ParseLines and converts each line with as.
func ParseLinesAs[T any](input string, as func(string) T, opts ...LineOption) []T {
	lines := ParseLines(input, opts...)
	out := make([]T, len(lines))
	for i, line := range lines {
		out[i] = as(line)
	}
	return out
}

// ParseInts converts every non-empty line to an int.
func ParseInts(input string) ([]int, error) {
	lines := ParseLines(input)
	out := make([]int, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out[i] = n
	}
	return out, nil
}
