package core

import "testing"

func countSteps(p *StepPacer, frames int) int {
	steps := 0
	for i := 0; i < frames; i++ {
		if p.Advance() {
			steps++
		}
	}
	return steps
}

func TestPacerCadenceAtDefaultSpeed(t *testing.T) {
	// 60 FPS and speed 5: threshold 6, so a step every 2 frames.
	p := NewStepPacer(60, 5)
	if got := countSteps(p, 60); got != 30 {
		t.Fatalf("steps over 60 frames = %d, expected 30", got)
	}
}

func TestPacerFasterSpeedStepsMoreOften(t *testing.T) {
	slow := NewStepPacer(60, 1)
	fast := NewStepPacer(60, 10)
	if s, f := countSteps(slow, 60), countSteps(fast, 60); s >= f {
		t.Fatalf("speed 1 stepped %d times, speed 10 stepped %d times", s, f)
	}
}

func TestPacerMaxSpeedStepsEveryFrame(t *testing.T) {
	p := NewStepPacer(60, 10)
	for i := 0; i < 10; i++ {
		if !p.Advance() {
			t.Fatalf("frame %d: speed >= threshold did not step", i)
		}
	}
}

func TestPacerClampsLowValues(t *testing.T) {
	p := NewStepPacer(5, 0)
	if p.Speed() != 1 {
		t.Fatalf("speed = %d, expected clamp to 1", p.Speed())
	}
	// fps below 10 still yields a usable threshold
	if !p.Advance() {
		t.Fatal("threshold of 1 should step on the first frame")
	}
}

func TestPacerResetDropsProgress(t *testing.T) {
	p := NewStepPacer(60, 5)
	p.Advance()
	p.Reset()
	if p.Advance() {
		t.Fatal("stepped immediately after Reset")
	}
}
