package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/particle-links/internal/config"
	"github.com/iburimskiy/particle-links/internal/props"
)

// fakeSurface counts draw calls instead of touching the GPU.
type fakeSurface struct {
	w, h    int
	clears  []config.Color
	circles int
	lines   int
}

func (s *fakeSurface) Initialize(w, h int) bool {
	if s.w > 0 || w <= 0 || h <= 0 {
		return false
	}
	s.w, s.h = w, h
	return true
}

func (s *fakeSurface) Ready() bool { return s.w > 0 }

func (s *fakeSurface) Image() *ebiten.Image { return nil }

func (s *fakeSurface) Size() (float64, float64) { return float64(s.w), float64(s.h) }

func (s *fakeSurface) Clear(bg config.Color) { s.clears = append(s.clears, bg) }

func (s *fakeSurface) FillCircle(x, y, r float64, c config.Color, o float64) { s.circles++ }

func (s *fakeSurface) StrokeLine(x1, y1, x2, y2 float64, c config.Color, o float64) { s.lines++ }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGame(opts config.Options) (*Game, *fakeSurface, *fakeClock, *props.Listener) {
	store := config.NewStore(opts)
	l := props.NewListener(store)
	s := &fakeSurface{}
	clock := &fakeClock{t: time.Unix(1000, 0)}
	g := newGame(store, l, s, rand.New(rand.NewSource(1)), clock.now)
	return g, s, clock, l
}

func TestStepWaitsForLayout(t *testing.T) {
	g, s, clock, _ := newTestGame(config.Default())
	clock.advance(time.Second)
	assert.False(t, g.step())
	assert.Empty(t, s.clears)
	assert.Equal(t, 0, g.manager.Len())
}

func TestLayoutSizesOnce(t *testing.T) {
	g, _, _, _ := newTestGame(config.Default())
	w, h := g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	w, h = g.Layout(1920, 1080)
	assert.Equal(t, 800, w, "no resize after the first layout")
	assert.Equal(t, 600, h)
}

func TestStepRendersFrame(t *testing.T) {
	opts := config.Default()
	opts.ParticleCount = 12
	opts.FPS = 0
	opts.Background = config.Color{R: 1, G: 2, B: 3}

	g, s, clock, _ := newTestGame(opts)
	g.Layout(640, 480)

	clock.advance(time.Millisecond)
	require.True(t, g.step())
	assert.Equal(t, 12, g.manager.Len())
	assert.Equal(t, []config.Color{{R: 1, G: 2, B: 3}}, s.clears)
	assert.Equal(t, 12, s.circles)
}

func TestStepHonoursFPS(t *testing.T) {
	opts := config.Default()
	opts.ParticleCount = 2
	opts.FPS = 10

	g, s, clock, l := newTestGame(opts)
	g.Layout(640, 480)

	frames := 0
	for i := 0; i < 1000; i++ {
		clock.advance(time.Millisecond)
		if g.step() {
			frames++
		}
	}
	assert.Equal(t, 10, frames)
	assert.Len(t, s.clears, 10)

	l.ApplyGeneralProperties(map[string]string{props.FPS: "0"})
	clock.advance(time.Millisecond)
	assert.True(t, g.step())
}

func TestStepRegeneratesOnCount(t *testing.T) {
	opts := config.Default()
	opts.FPS = 0
	g, _, clock, l := newTestGame(opts)
	g.Layout(640, 480)

	clock.advance(time.Millisecond)
	g.step()
	require.Equal(t, 100, g.manager.Len())
	first := g.manager.Particles()[0]

	l.ApplyUserProperties(map[string]string{props.ParticleCount: "10"})
	clock.advance(time.Millisecond)
	g.step()
	require.Equal(t, 10, g.manager.Len())
	assert.NotSame(t, first, g.manager.Particles()[0])

	// same count again still regenerates
	kept := g.manager.Particles()[0]
	l.ApplyUserProperties(map[string]string{props.ParticleCount: "10"})
	clock.advance(time.Millisecond)
	g.step()
	assert.NotSame(t, kept, g.manager.Particles()[0])

	// other updates keep the collection
	kept = g.manager.Particles()[0]
	l.ApplyUserProperties(map[string]string{props.ParticleSpeed: "3"})
	clock.advance(time.Millisecond)
	g.step()
	assert.Same(t, kept, g.manager.Particles()[0])
}

func TestPausedSkipsRendering(t *testing.T) {
	opts := config.Default()
	opts.FPS = 0
	g, s, clock, _ := newTestGame(opts)
	g.Layout(640, 480)
	g.paused = true

	clock.advance(time.Millisecond)
	assert.False(t, g.step())
	assert.Empty(t, s.clears)
	assert.Contains(t, g.status(), "paused")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", formatDuration(-time.Second))
	assert.Equal(t, "01:05", formatDuration(65*time.Second))
	assert.Equal(t, "02:00:01", formatDuration(2*time.Hour+time.Second))
}
