package validate

import (
	"errors"
	"testing"

	aocerrors "github.com/AndreyAkinshin/aocrun/internal/errors"
)

func TestDay(t *testing.T) {
	for d := MinDay; d <= MaxDay; d++ {
		if err := Day(d); err != nil {
			t.Errorf("Day(%d) = %v, want nil", d, err)
		}
	}

	for _, d := range []int{-100, -1, 0, 26, 31, 1000} {
		err := Day(d)
		var rv *RangeViolation
		if !errors.As(err, &rv) {
			t.Fatalf("Day(%d) = %v, want *RangeViolation", d, err)
		}
		if rv.Field != "day" || rv.Value != d || rv.Min != 1 || rv.Max != 25 {
			t.Errorf("Day(%d) violation = %+v", d, rv)
		}
	}
}

func TestYear(t *testing.T) {
	const max = 2024

	for _, y := range []int{2015, 2016, 2020, 2024} {
		if err := Year(y, max); err != nil {
			t.Errorf("Year(%d) = %v, want nil", y, err)
		}
	}

	for _, y := range []int{0, 2014, 2025, 3000} {
		err := Year(y, max)
		var rv *RangeViolation
		if !errors.As(err, &rv) {
			t.Fatalf("Year(%d) = %v, want *RangeViolation", y, err)
		}
		if rv.Field != "year" || rv.Min != 2015 || rv.Max != max {
			t.Errorf("Year(%d) violation = %+v", y, rv)
		}
	}
}

func TestRangeViolation_Error(t *testing.T) {
	err := &RangeViolation{Field: "day", Value: 30, Min: 1, Max: 25}
	want := "day must be between 1 and 25, got 30"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if code := aocerrors.GetExitCode(err); code != aocerrors.ExitConfigError {
		t.Errorf("GetExitCode() = %d, want %d", code, aocerrors.ExitConfigError)
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"07", 7, false},
		{" 25 ", 25, false},
		{"0", 0, true},
		{"26", 0, true},
		{"", 0, true},
		{"seven", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseDay(tt.arg)
			if tt.wantErr {
				var rv *RangeViolation
				if !errors.As(err, &rv) {
					t.Errorf("ParseDay(%q) error = %v, want *RangeViolation", tt.arg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) unexpected error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("ParseDay(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}
