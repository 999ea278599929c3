package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// newTestWriter creates a Writer with captured output for testing.
func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := &Writer{
		out:   stdout,
		err:   stderr,
		color: false, // Disable color for predictable test output
		quiet: false,
	}
	return w, stdout, stderr
}

func TestNew(t *testing.T) {
	w := New()
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.out == nil {
		t.Error("out writer is nil")
	}
	if w.err == nil {
		t.Error("err writer is nil")
	}
}

func TestWriter_Println(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Println("hello %s", "world")

	if got := stdout.String(); got != "hello world\n" {
		t.Errorf("Println() = %q, want %q", got, "hello world\n")
	}
}

func TestWriter_Info(t *testing.T) {
	tests := []struct {
		name   string
		quiet  bool
		expect string
	}{
		{"normal mode", false, "info message\n"},
		{"quiet mode", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, _ := newTestWriter()
			w.SetQuiet(tt.quiet)

			w.Info("info %s", "message")

			if got := stdout.String(); got != tt.expect {
				t.Errorf("Info() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_Success(t *testing.T) {
	tests := []struct {
		name   string
		color  bool
		expect string
	}{
		{"without color", false, "done\n"},
		{"with color", true, "\033[1m\033[32mdone\033[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, _ := newTestWriter()
			w.color = tt.color

			w.Success("done")

			if got := stdout.String(); got != tt.expect {
				t.Errorf("Success() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_ErrorPrefix(t *testing.T) {
	w, stdout, stderr := newTestWriter()

	w.ErrorPrefix("bad %s", "thing")

	if got := stderr.String(); got != "aocrun: bad thing\n" {
		t.Errorf("ErrorPrefix() = %q, want %q", got, "aocrun: bad thing\n")
	}
	if stdout.Len() != 0 {
		t.Errorf("ErrorPrefix() wrote to stdout: %q", stdout.String())
	}
}

func TestWriter_WarningSimple(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.WarningSimple("careful")

	if got := stderr.String(); got != "warning: careful\n" {
		t.Errorf("WarningSimple() = %q, want %q", got, "warning: careful\n")
	}
}

func TestWriter_Messages(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w *Writer)
		expect string
	}{
		{"already exists", func(w *Writer) { w.AlreadyExists(7) }, "❌ Day 7 already exists!\n"},
		{"fetching", func(w *Writer) { w.FetchingInput() }, "📄 Fetching input...\n"},
		{"fetch failed", func(w *Writer) { w.FetchFailed() }, "❌ Fetching input failed, empty file will be created.\n"},
		{"setting up", func(w *Writer) { w.SettingUp("07") }, "📂 Setting up day \"07\"...\n"},
		{"set up", func(w *Writer) { w.SetupSucceeded("07") }, "✅ Day \"07\" set up!\n"},
		{"setup failed", func(w *Writer) { w.SetupFailed(errors.New("mkdir src/day-07: permission denied")) }, "mkdir src/day-07: permission denied\n"},
		{"setup failed without error", func(w *Writer) { w.SetupFailed(nil) }, "Failed to set up day\n"},
		{"missing day", func(w *Writer) { w.MissingDay("07") }, "Day 07 does not exist!\n"},
		{"wrong year", func(w *Writer) { w.WrongYear(2015, 2026) }, "📅 Year must be between 2015 and 2026.\n"},
		{
			"wrong day",
			func(w *Writer) { w.WrongDay(1, 25, "aocrun day 1") },
			"🎅 Pick a day between 1 and 25.\n🎅 To get started, try: aocrun day 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, _ := newTestWriter()

			tt.write(w)

			if got := stdout.String(); got != tt.expect {
				t.Errorf("got %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_DayResult(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.DayResult(7,
		PartResult{Icon: "🌲", Label: "Part One", Value: 42, Elapsed: "1.2 ms"},
		PartResult{Icon: "🎄", Label: "Part Two"},
	)

	want := "🕯️ Your result for day 7:\n" +
		"🌲 Part One: 42 (1.2 ms)\n" +
		"🎄 Part Two: —\n"
	if got := stdout.String(); got != want {
		t.Errorf("DayResult() = %q, want %q", got, want)
	}
}

func TestWriter_DayResultZeroValueIsPrinted(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.DayResult(1, PartResult{Icon: "🌲", Label: "Part One", Value: 0, Elapsed: "3 µs"})

	if !strings.Contains(stdout.String(), "Part One: 0 (3 µs)") {
		t.Errorf("DayResult() = %q, want zero value with duration", stdout.String())
	}
}

func TestWriter_HelpCommand(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.HelpCommand("setup <day>", "Scaffold a day", 12)

	if got := stdout.String(); got != "  setup <day>   Scaffold a day\n" {
		t.Errorf("HelpCommand() = %q", got)
	}
}

func TestWriter_ColorPlaceholders(t *testing.T) {
	w, _, _ := newTestWriter()

	got := w.colorPlaceholders("aocrun day <day>")
	if !strings.Contains(got, colorPlaceholder+"<day>"+reset) {
		t.Errorf("colorPlaceholders() = %q, placeholder not highlighted", got)
	}
	if !strings.HasPrefix(got, "aocrun day ") {
		t.Errorf("colorPlaceholders() = %q, prefix changed", got)
	}
}
