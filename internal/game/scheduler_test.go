package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerThrottles(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewScheduler(start)

	var rendered []time.Duration
	for tick := 1; tick <= 10000; tick++ {
		now := start.Add(time.Duration(tick) * time.Millisecond)
		if s.Tick(now, 30) {
			rendered = append(rendered, now.Sub(start))
		}
	}

	assert.Len(t, rendered, 300)
	assert.Equal(t, uint64(300), s.Frames())

	// average spacing stays within one tick of 1/30s
	avg := (rendered[len(rendered)-1] - rendered[0]) / time.Duration(len(rendered)-1)
	assert.InDelta(t, float64(time.Second/30), float64(avg), float64(time.Millisecond))

	// no frame drifts more than one tick from its ideal time
	for i, at := range rendered {
		ideal := time.Duration(i+1) * (time.Second / 30)
		assert.InDelta(t, float64(ideal), float64(at), float64(time.Millisecond), "frame %d", i)
	}
}

func TestSchedulerUncapped(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewScheduler(start)
	for tick := 1; tick <= 50; tick++ {
		assert.True(t, s.Tick(start.Add(time.Duration(tick)*time.Microsecond), 0))
		assert.Equal(t, Ready, s.Phase())
	}
	assert.Equal(t, uint64(50), s.Frames())
}

func TestSchedulerClampsStall(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewScheduler(start)

	now := start.Add(time.Hour)
	assert.True(t, s.Tick(now, 10))

	// the hour-long stall counts as one second: ten frames, one per tick
	catchUp := 0
	for i := 0; i < 20; i++ {
		if s.Tick(now, 10) {
			catchUp++
		}
	}
	assert.Equal(t, 9, catchUp)
	assert.Equal(t, Idle, s.Phase())
}

func TestSchedulerIgnoresClockGoingBack(t *testing.T) {
	start := time.Unix(100, 0)
	s := NewScheduler(start)
	assert.False(t, s.Tick(start.Add(-time.Minute), 60))
	assert.Equal(t, Idle, s.Phase())
	assert.Equal(t, "idle", s.Phase().String())
}
