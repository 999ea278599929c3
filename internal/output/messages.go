package output

import "fmt"

// Dash is printed in place of a missing part result.
const Dash = "—"

// PartResult is one line of a day report.
type PartResult struct {
	Icon  string
	Label string
	// Value is nil when the part is not defined or returned nothing.
	Value any
	// Elapsed is the formatted duration, printed only when Value is non-nil.
	Elapsed string
}

// AlreadyExists reports that a day's workspace is already set up.
func (w *Writer) AlreadyExists(day int) {
	w.Failure("❌ Day %d already exists!", day)
}

// FetchingInput reports that the puzzle input is being downloaded.
func (w *Writer) FetchingInput() {
	w.Info("📄 Fetching input...")
}

// FetchFailed reports that the input could not be fetched.
func (w *Writer) FetchFailed() {
	if w.color {
		w.Println("%s❌ Fetching input failed, empty file will be created.%s", bold+red, reset)
	} else {
		w.Println("❌ Fetching input failed, empty file will be created.")
	}
}

// SettingUp reports that a day's workspace is being created.
func (w *Writer) SettingUp(day string) {
	w.Info("📂 Setting up day %q...", day)
}

// SetupSucceeded reports that a day's workspace was created.
func (w *Writer) SetupSucceeded(day string) {
	w.Success("✅ Day %q set up!", day)
}

// SetupFailed reports why a day's workspace could not be created.
func (w *Writer) SetupFailed(err error) {
	if err == nil {
		w.Failure("Failed to set up day")
		return
	}
	w.Failure("%s", err.Error())
}

// MissingDay reports that a day has no solution to run.
func (w *Writer) MissingDay(day string) {
	w.Failure("Day %s does not exist!", day)
}

// WrongDay explains which days are accepted.
func (w *Writer) WrongDay(minDay, maxDay int, example string) {
	w.Println("🎅 Pick a day between %s and %s.", w.emphasize(fmt.Sprint(minDay)), w.emphasize(fmt.Sprint(maxDay)))
	if w.color {
		w.Println("🎅 To get started, try: %s%s%s", cyan, example, reset)
	} else {
		w.Println("🎅 To get started, try: %s", example)
	}
}

// WrongYear explains which years are accepted.
func (w *Writer) WrongYear(minYear, maxYear int) {
	w.Failure("📅 Year must be between %s and %s.", w.emphasize(fmt.Sprint(minYear)), w.emphasize(fmt.Sprint(maxYear)))
}

// LoadFailed reports that a day's solution could not be loaded.
func (w *Writer) LoadFailed(day string, err error) {
	w.Failure("❌ Could not load day %s: %v", day, err)
}

// PartFailed reports that a part returned an error or panicked.
func (w *Writer) PartFailed(label string, err error) {
	w.Failure("❌ %s failed: %v", label, err)
}

// DayResult prints the results of a day's parts.
func (w *Writer) DayResult(day int, parts ...PartResult) {
	header := fmt.Sprintf("Your result for %s:", w.emphasize(fmt.Sprintf("day %d", day)))
	if w.color {
		w.Println("🕯️ %s%s%s", magenta, header, reset)
	} else {
		w.Println("🕯️ %s", header)
	}

	for _, p := range parts {
		value := Dash
		suffix := ""
		if p.Value != nil {
			value = fmt.Sprint(p.Value)
			if p.Elapsed != "" {
				suffix = fmt.Sprintf(" (%s)", p.Elapsed)
			}
		}
		if w.color {
			w.Println("%s %s: %s%s%s%s", p.Icon, p.Label, green, value, reset, suffix)
		} else {
			w.Println("%s %s: %s%s", p.Icon, p.Label, value, suffix)
		}
	}
}
