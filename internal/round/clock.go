package round

import "slices"

// TickSource delivers a periodic one-second callback. Subscribe returns a
// cancel func; calling it more than once is harmless.
type TickSource interface {
	Subscribe(fn func()) (cancel func())
}

// FrameClock turns update frames into one-second ticks. Each subscription
// counts its own frames from the moment it was created, so the first tick
// arrives a full second after Subscribe, like an interval timer.
//
// FrameClock is driven from the update loop and is not safe for concurrent use.
type FrameClock struct {
	framesPerTick int
	subs          []*subscription
}

type subscription struct {
	fn     func()
	frames int
	active bool
}

// NewFrameClock creates a clock firing every framesPerTick calls to Advance.
// Pass the update rate (ebiten TPS) for real-time seconds.
func NewFrameClock(framesPerTick int) *FrameClock {
	if framesPerTick < 1 {
		framesPerTick = 1
	}
	return &FrameClock{framesPerTick: framesPerTick}
}

// Subscribe registers fn.
func (c *FrameClock) Subscribe(fn func()) func() {
	sub := &subscription{fn: fn, active: true}
	c.subs = append(c.subs, sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		c.subs = slices.DeleteFunc(c.subs, func(s *subscription) bool { return s == sub })
	}
}

// Advance moves the clock forward one frame. Callbacks may cancel any
// subscription, including their own; subscriptions added during Advance
// start counting on the next frame.
func (c *FrameClock) Advance() {
	for _, s := range slices.Clone(c.subs) {
		if !s.active {
			continue
		}
		s.frames++
		if s.frames >= c.framesPerTick {
			s.frames = 0
			s.fn()
		}
	}
}

// Active returns the number of live subscriptions.
func (c *FrameClock) Active() int {
	return len(c.subs)
}

// FramesPerTick returns the configured frame count per tick.
func (c *FrameClock) FramesPerTick() int {
	return c.framesPerTick
}
