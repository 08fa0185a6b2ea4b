/*
PURPOSE:
  Converts a measured duration into a comparable, higher-is-better score.

REQUIREMENTS:
  User-specified:
  - Inverse-time score for fixed-size work: 1e9 / milliseconds.
  - Throughput score for storage work: units / seconds.

  Implementation-discovered:
  - A zero duration must not divide by zero.

ARCHITECTURE INTEGRATION:
  - Used by: internal/workload

ERROR HANDLING:
  - None. Both functions are total.

IMPLEMENTATION RULES:
  - Durations at or below 1ns are treated as 1ns.
  - Results are never clamped; scores are comparative.
*/

package score

import "time"

// MinElapsed is the smallest duration a formula will divide by.
const MinElapsed = time.Nanosecond

func clamp(elapsed time.Duration) float64 {
	if elapsed <= MinElapsed {
		return float64(MinElapsed)
	}
	return float64(elapsed)
}

// InverseTime scores fixed-size work: 1e9 divided by elapsed milliseconds.
func InverseTime(elapsed time.Duration) float64 {
	return 1e9 / (clamp(elapsed) / 1e6)
}

// Throughput scores work by units processed per second.
func Throughput(units float64, elapsed time.Duration) float64 {
	return units / (clamp(elapsed) / 1e9)
}
