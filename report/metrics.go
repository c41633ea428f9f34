package report

import "math/bits"

const picosecondsPerSecond = 1_000_000_000_000

// Latency returns average time of single dereference in picoseconds.
func Latency(m Measurement, ticksPerSecond uint64) uint64 {
	if m.Visits == 0 || ticksPerSecond == 0 {
		return 0
	}
	return mulDiv(m.Elapsed(), picosecondsPerSecond, m.Visits*ticksPerSecond)
}

// Bandwidth returns number of bytes per second covered by the dereferences, one line per dereference.
func Bandwidth(m Measurement, ticksPerSecond uint64) uint64 {
	elapsed := m.Elapsed()
	if elapsed == 0 {
		return 0
	}
	return mulDiv(m.Visits*m.LineSize, ticksPerSecond, elapsed)
}

// mulDiv computes a*b/c without intermediate overflow, saturating if the result does not fit.
func mulDiv(a, b, c uint64) uint64 {
	hi, low := bits.Mul64(a, b)
	if hi >= c {
		return ^uint64(0)
	}
	q, _ := bits.Div64(hi, low, c)
	return q
}
