package runner

import (
	"errors"
	"testing"
	"time"
)

func TestFormatPerformance(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0 µs"},
		{"half millisecond", 500 * time.Microsecond, "500 µs"},
		{"fractional microseconds", 1234 * time.Nanosecond, "1.23 µs"},
		{"just under a millisecond", 999 * time.Microsecond, "999 µs"},
		{"one millisecond", time.Millisecond, "1 ms"},
		{"1.2 milliseconds", 1200 * time.Microsecond, "1.2 ms"},
		{"rounded milliseconds", 12345678 * time.Nanosecond, "12.35 ms"},
		{"seconds", 2 * time.Second, "2000 ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPerformance(tt.d); got != tt.want {
				t.Errorf("FormatPerformance(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	m, err := Measure(func() (any, error) {
		time.Sleep(2 * time.Millisecond)
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if m.Result != 42 {
		t.Errorf("Result = %v, want 42", m.Result)
	}
	if m.Elapsed < 2*time.Millisecond {
		t.Errorf("Elapsed = %v, want at least 2ms", m.Elapsed)
	}
}

func TestMeasure_AwaitsChannelResult(t *testing.T) {
	ch := make(chan int)
	go func() {
		time.Sleep(2 * time.Millisecond)
		ch <- 7
	}()

	m, err := Measure(func() (any, error) { return <-ch, nil })
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if m.Result != 7 || m.Elapsed < 2*time.Millisecond {
		t.Errorf("Measure() = %+v, want 7 after at least 2ms", m)
	}
}

func TestMeasure_Error(t *testing.T) {
	boom := errors.New("boom")
	m, err := Measure(func() (any, error) { return "ignored", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Measure() error = %v, want %v", err, boom)
	}
	if m.Result != nil {
		t.Errorf("Result = %v, want nil", m.Result)
	}
}
