package particle

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/particle-links/internal/config"
)

// Manager owns the particle collection and drives it one frame at a time.
type Manager struct {
	canvas    Canvas
	rng       *rand.Rand
	particles []*Particle
}

func NewManager(c Canvas, rng *rand.Rand) *Manager {
	return &Manager{canvas: c, rng: rng}
}

func (m *Manager) Particles() []*Particle { return m.particles }

func (m *Manager) Len() int { return len(m.particles) }

// Generate appends count particles placed uniformly inside the surface, inset
// by the radius. Each velocity has |vx|+|vy| = 1 with a random split and sign.
func (m *Manager) Generate(count int, opts config.Options) {
	w, h := m.canvas.Size()
	r := opts.Radius

	for i := 0; i < count; i++ {
		split := m.rng.Float64()
		vx, vy := split, 1-split
		if m.rng.Intn(2) == 0 {
			vx = -vx
		}
		if m.rng.Intn(2) == 0 {
			vy = -vy
		}

		x := math.Floor(m.rng.Float64()*((w-r)-r+1)) + r
		y := math.Floor(m.rng.Float64()*((h-r)-r+1)) + r

		m.particles = append(m.particles, New(len(m.particles), x, y, vx, vy))
	}
}

// Regenerate discards every particle and generates count new ones.
func (m *Manager) Regenerate(count int, opts config.Options) {
	m.particles = nil
	m.Generate(count, opts)
}

// Place replaces the collection with particles at fixed positions, with IDs
// in slice order.
func (m *Manager) Place(ps []*Particle) {
	for i, p := range ps {
		p.ID = i
	}
	m.particles = ps
}

// RenderFrame renders every particle in collection order. Each particle
// measures distances before moving, then draws itself after moving, then
// draws its links, so peers later in the collection are linked at their
// previous-frame position.
func (m *Manager) RenderFrame(opts config.Options) {
	for _, p := range m.particles {
		p.Linked = false
	}
	for _, p := range m.particles {
		p.ComputeDistances(m.particles)
		p.Render(m.canvas, opts)
		p.DrawLinks(m.canvas, m.particles, opts)
	}
}
