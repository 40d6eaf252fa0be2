package particle

import (
	"math"

	"github.com/iburimskiy/particle-links/internal/config"
)

// Particle is a point moving at constant speed that bounces off the surface edges.
type Particle struct {
	ID     int
	X, Y   float64
	VX, VY float64

	// distances[id] is the distance to the peer with that ID, as of the last
	// ComputeDistances call.
	distances []float64
	// Nearest is the smallest distance to any other particle; +Inf when alone.
	Nearest float64
	// Linked is set while sweeping links and cleared at the start of a frame.
	Linked bool
}

func New(id int, x, y, vx, vy float64) *Particle {
	return &Particle{ID: id, X: x, Y: y, VX: vx, VY: vy, Nearest: math.Inf(1)}
}

func (p *Particle) Move(speed float64) {
	p.X += p.VX * speed
	p.Y += p.VY * speed
}

// Reflect reverses the velocity on each axis where the particle touches or
// crosses an edge. Position is left as is; the next Move brings it back.
func (p *Particle) Reflect(width, height, radius float64) {
	if p.X+radius >= width || p.X-radius <= 0 {
		p.VX = -p.VX
	}
	if p.Y+radius >= height || p.Y-radius <= 0 {
		p.VY = -p.VY
	}
}

// ComputeDistances records the distance to every peer, self included, and
// updates Nearest. Self is excluded from Nearest by ID, so a peer sitting on
// exactly the same spot counts as distance 0.
func (p *Particle) ComputeDistances(peers []*Particle) {
	if cap(p.distances) < len(peers) {
		p.distances = make([]float64, len(peers))
	}
	p.distances = p.distances[:len(peers)]

	p.Nearest = math.Inf(1)
	for _, q := range peers {
		d := math.Hypot(q.X-p.X, q.Y-p.Y)
		p.distances[q.ID] = d
		if q.ID != p.ID && d < p.Nearest {
			p.Nearest = d
		}
	}
}

// Distance returns the recorded distance to the peer with the given ID, or
// +Inf if none was recorded.
func (p *Particle) Distance(id int) float64 {
	if id < 0 || id >= len(p.distances) {
		return math.Inf(1)
	}
	return p.distances[id]
}

// Render bounces, moves and then draws the particle. It fades out as its
// nearest neighbour approaches the link distance.
func (p *Particle) Render(c Canvas, opts config.Options) {
	w, h := c.Size()
	p.Reflect(w, h, opts.Radius)
	p.Move(opts.Speed)

	c.FillCircle(p.X, p.Y, opts.Radius, opts.Particle, Opacity(p.Nearest, opts.LinkDistance))
}

// DrawLinks draws lines from p to peers closer than the link distance.
//
// With LinkSweep a line is drawn only when neither p nor the peer is marked
// Linked; the peer is then marked, and every peer that is not linked gets its
// mark cleared. Which pairs end up connected depends on collection order.
// With LinkAll each pair under the threshold is drawn once, by the particle
// with the lower ID.
func (p *Particle) DrawLinks(c Canvas, peers []*Particle, opts config.Options) {
	for _, q := range peers {
		if q.ID == p.ID {
			continue
		}
		d := p.Distance(q.ID)

		if opts.LinkPolicy == config.LinkAll {
			if q.ID > p.ID && d < opts.LinkDistance {
				c.StrokeLine(p.X, p.Y, q.X, q.Y, opts.Line, Opacity(d, opts.LinkDistance))
			}
			continue
		}

		if d < opts.LinkDistance && !q.Linked && !p.Linked {
			c.StrokeLine(p.X, p.Y, q.X, q.Y, opts.Line, Opacity(d, opts.LinkDistance))
			q.Linked = true
		} else {
			q.Linked = false
		}
	}
}

// Opacity is 1 at distance 0, falling linearly to 0 at maxDistance and
// clamped to [0,1]. A non-positive maxDistance yields 0.
func Opacity(distance, maxDistance float64) float64 {
	if maxDistance <= 0 {
		return 0
	}
	return config.Clamp01(1 - distance/maxDistance)
}
