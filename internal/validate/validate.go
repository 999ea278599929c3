// Package validate checks the day and year numbers accepted by aocrun.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndreyAkinshin/aocrun/internal/errors"
	"github.com/AndreyAkinshin/aocrun/internal/schema"
)

// Bounds for puzzle days and years.
const (
	MinDay  = 1
	MaxDay  = 25
	MinYear = 2015
)

// RangeViolation reports a number outside its inclusive range.
type RangeViolation struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeViolation) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

// ExitCode marks range violations as usage errors.
func (e *RangeViolation) ExitCode() int {
	return errors.ExitConfigError
}

// checkRange validates v against [min, max] through the range schema.
func checkRange(field string, v, min, max int) error {
	if err := schema.ValidateIntRange(v, min, max); err != nil {
		return &RangeViolation{Field: field, Value: v, Min: min, Max: max}
	}
	return nil
}

// Day returns a *RangeViolation unless 1 <= day <= 25.
func Day(day int) error {
	return checkRange("day", day, MinDay, MaxDay)
}

// Year returns a *RangeViolation unless 2015 <= year <= max.
func Year(year, max int) error {
	return checkRange("year", year, MinYear, max)
}

// ParseDay parses a command-line day argument and validates it.
// A non-numeric argument is reported as a range violation with value 0.
func ParseDay(arg string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, &RangeViolation{Field: "day", Value: 0, Min: MinDay, Max: MaxDay}
	}
	if err := Day(day); err != nil {
		return 0, err
	}
	return day, nil
}
