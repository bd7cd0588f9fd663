package core

// Timestep converts variable frame durations into fixed physics ticks.
// Elapsed time is accumulated until it exceeds the threshold, at which point
// the accumulator resets and exactly one tick fires.
type Timestep struct {
	threshold float64 // milliseconds
	acc       float64
}

// NewTimestep creates an accumulator that fires once the accumulated time
// exceeds thresholdMs.
func NewTimestep(thresholdMs float64) *Timestep {
	return &Timestep{threshold: thresholdMs}
}

// Advance adds elapsedMs to the accumulator and reports whether a physics
// tick is due this frame. Negative durations count as zero.
func (t *Timestep) Advance(elapsedMs float64) bool {
	if elapsedMs > 0 {
		t.acc += elapsedMs
	}
	if t.acc > t.threshold {
		t.acc = 0
		return true
	}
	return false
}

// Elapsed returns the time accumulated since the last tick.
func (t *Timestep) Elapsed() float64 {
	return t.acc
}

// Reset clears the accumulator.
func (t *Timestep) Reset() {
	t.acc = 0
}
