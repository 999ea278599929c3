package runner

import (
	"math"
	"strconv"
	"time"

	"github.com/AndreyAkinshin/aocrun/internal/solution"
)

// Measurement is the result of one timed part invocation.
type Measurement struct {
	Result  any
	Elapsed time.Duration
}

// Measure invokes part and records the wall-clock time until its result is
// available. Asynchronous results are awaited inside the window.
func Measure(part solution.Part) (Measurement, error) {
	start := time.Now()
	result, err := part()
	elapsed := time.Since(start)
	if err != nil {
		return Measurement{Elapsed: elapsed}, err
	}
	return Measurement{Result: result, Elapsed: elapsed}, nil
}

// FormatPerformance renders d in microseconds below one millisecond and in
// milliseconds otherwise, rounded to two decimals.
func FormatPerformance(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	if ms < 1 {
		return formatFloat(round(ms*1000)) + " µs"
	}
	return formatFloat(round(ms)) + " ms"
}

func round(x float64) float64 {
	return math.Round((x+epsilon)*100) / 100
}

// epsilon nudges halves such as 1.005 upward before rounding.
const epsilon = 2.220446049250313e-16

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
