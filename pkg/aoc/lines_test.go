package aoc

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []LineOption
		want  []string
	}{
		{
			name:  "drops empty lines",
			input: "a\n\nb\n",
			want:  []string{"a", "b"},
		},
		{
			name:  "keeps empty lines",
			input: "a\n\nb\n",
			opts:  []LineOption{IncludeEmpty()},
			want:  []string{"a", "", "b", ""},
		},
		{
			name:  "single line",
			input: "only",
			want:  []string{"only"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "empty input with empty lines",
			input: "",
			opts:  []LineOption{IncludeEmpty()},
			want:  []string{""},
		},
		{
			name:  "transform",
			input: "ab\ncd",
			opts:  []LineOption{Map(strings.ToUpper)},
			want:  []string{"AB", "CD"},
		},
		{
			name:  "transform applies after filtering",
			input: "x\n\ny",
			opts:  []LineOption{Map(func(s string) string { return s + "!" })},
			want:  []string{"x!", "y!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLines(tt.input, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLinesAs(t *testing.T) {
	got := ParseLinesAs("1\n2\n\n30\n", func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	})
	if diff := cmp.Diff([]int{1, 2, 30}, got); diff != "" {
		t.Errorf("ParseLinesAs() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInts(t *testing.T) {
	got, err := ParseInts("199\n200\n -3 \n")
	if err != nil {
		t.Fatalf("ParseInts() error = %v", err)
	}
	if diff := cmp.Diff([]int{199, 200, -3}, got); diff != "" {
		t.Errorf("ParseInts() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseInts("1\nx\n"); err == nil {
		t.Error("ParseInts() expected error for non-numeric line")
	} else if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("ParseInts() error = %v, want line number", err)
	}
}
