package core

import "time"

// FixedStep paces a loop at a steady ticks-per-second rate.
type FixedStep struct {
	step time.Duration
	last time.Time

	sleep func(time.Duration)
	now   func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{sleep: time.Sleep, now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 5 ticks per
// second.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 5
	}
	f.step = time.Second / time.Duration(tps)
}

// Step reports the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Wait blocks until one full step has elapsed since the previous Wait. The
// first call only records the start time.
func (f *FixedStep) Wait() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return
	}
	if remaining := f.step - now.Sub(f.last); remaining > 0 {
		f.sleep(remaining)
		now = now.Add(remaining)
	}
	f.last = now
}
