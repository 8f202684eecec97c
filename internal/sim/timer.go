package sim

// Timer is a repeating countdown driven by frame deltas.
type Timer struct {
	period  float64
	elapsed float64
}

// NewTimer creates a repeating timer with the given period in seconds.
func NewTimer(period float64) Timer {
	return Timer{period: period}
}

// Tick advances the timer and returns how many periods completed.
// Leftover time carries into the next period.
func (t *Timer) Tick(dt float64) int {
	if t.period <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	if t.elapsed < t.period {
		return 0
	}
	n := int(t.elapsed / t.period)
	t.elapsed -= float64(n) * t.period
	return n
}

// Reset restarts the current period.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Elapsed returns the time spent in the current period.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Period returns the timer period.
func (t *Timer) Period() float64 {
	return t.period
}
