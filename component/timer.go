package component

import "time"

// Countdown is a one-shot timer ticked by simulation delta
// JustFinished is true only for the tick that crossed the duration
type Countdown struct {
	Duration time.Duration
	Elapsed  time.Duration

	finished     bool
	justFinished bool
}

// NewCountdown returns a running countdown
func NewCountdown(d time.Duration) Countdown {
	return Countdown{Duration: d}
}

// NewFinishedCountdown returns a countdown that must be reset before it runs
func NewFinishedCountdown(d time.Duration) Countdown {
	return Countdown{Duration: d, Elapsed: d, finished: true}
}

// Tick advances by dt
func (c *Countdown) Tick(dt time.Duration) {
	if c.finished {
		c.justFinished = false
		return
	}
	c.Elapsed += dt
	if c.Elapsed >= c.Duration {
		c.Elapsed = c.Duration
		c.finished = true
		c.justFinished = true
		return
	}
	c.justFinished = false
}

// Reset restarts from zero elapsed
func (c *Countdown) Reset() {
	c.Elapsed = 0
	c.finished = false
	c.justFinished = false
}

// SetDuration changes the duration without touching elapsed time
func (c *Countdown) SetDuration(d time.Duration) {
	c.Duration = d
}

// Finished reports whether the duration has been reached
func (c *Countdown) Finished() bool {
	return c.finished
}

// JustFinished reports whether the last Tick reached the duration
func (c *Countdown) JustFinished() bool {
	return c.justFinished
}

// Remaining returns time left, zero once finished
func (c *Countdown) Remaining() time.Duration {
	if c.finished {
		return 0
	}
	return c.Duration - c.Elapsed
}

// FractionLeft returns remaining/duration in [0, 1]
func (c *Countdown) FractionLeft() float32 {
	if c.finished || c.Duration <= 0 {
		return 0
	}
	return float32(c.Duration-c.Elapsed) / float32(c.Duration)
}
