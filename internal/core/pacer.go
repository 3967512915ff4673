package core

// StepPacer gates simulation steps behind a per-frame speed accumulator:
// each frame adds the current speed, and a step fires once the accumulated
// value crosses a tenth of the frame rate. Higher speeds therefore cross
// the threshold in fewer frames.
type StepPacer struct {
	threshold int
	speed     int
	accum     int
}

// NewStepPacer constructs a pacer for the given frame rate and speed.
func NewStepPacer(fps, speed int) *StepPacer {
	threshold := fps / 10
	if threshold < 1 {
		threshold = 1
	}
	if speed < 1 {
		speed = 1
	}
	return &StepPacer{threshold: threshold, speed: speed}
}

// Speed returns the current speed setting.
func (p *StepPacer) Speed() int { return p.speed }

// SetSpeed changes the speed. Values below 1 are clamped; range limits are
// the caller's concern.
func (p *StepPacer) SetSpeed(speed int) {
	if speed < 1 {
		speed = 1
	}
	p.speed = speed
}

// Advance accounts for one elapsed frame and reports whether the simulation
// should step now.
func (p *StepPacer) Advance() bool {
	p.accum += p.speed
	if p.accum >= p.threshold {
		p.accum = 0
		return true
	}
	return false
}

// Reset drops any accumulated progress towards the next step.
func (p *StepPacer) Reset() {
	p.accum = 0
}
