package game

import "time"

// MaxStep caps the elapsed time taken from a single tick, so a stall (for
// example a minimised window) does not trigger a long burst of catch-up frames.
const MaxStep = time.Second

type Phase int

const (
	Idle Phase = iota
	Ready
)

func (p Phase) String() string {
	if p == Ready {
		return "ready"
	}
	return "idle"
}

// Scheduler throttles an uncapped tick source to a target frame rate. Elapsed
// time is accumulated and one frame interval is subtracted per rendered
// frame; the remainder carries over so the average rate does not drift.
type Scheduler struct {
	last   time.Time
	acc    time.Duration
	phase  Phase
	frames uint64
}

func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{last: start}
}

// Tick reports whether a frame should be rendered at now. An fps of 0 or less
// renders on every tick.
func (s *Scheduler) Tick(now time.Time, fps float64) bool {
	dt := now.Sub(s.last)
	s.last = now
	if dt > MaxStep {
		dt = MaxStep
	}
	if dt < 0 {
		dt = 0
	}

	if fps > 0 {
		interval := time.Duration(float64(time.Second) / fps)
		s.acc += dt
		if s.acc < interval {
			s.phase = Idle
			return false
		}
		s.acc -= interval
	}

	s.phase = Ready
	s.frames++
	return true
}

func (s *Scheduler) Phase() Phase { return s.phase }

// Frames is the number of ticks that were ready to render.
func (s *Scheduler) Frames() uint64 { return s.frames }
