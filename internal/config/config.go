package config

const (
	// Window size used when the monitor size is unknown or fullscreen is off.
	WindowWidth  = 1024
	WindowHeight = 512

	// Particle defaults
	DefaultParticleCount = 100
	DefaultLinkDistance  = 200
	DefaultSpeed         = 1
	DefaultRadius        = 5
	DefaultFPS           = 240

	// Line width of a link, in pixels
	LineWidth = 1
)

// LinkPolicy selects how links between particles are chosen each frame.
type LinkPolicy string

const (
	// LinkSweep marks peers as linked while sweeping in collection order, so a
	// peer already linked by an earlier particle is skipped. This produces the
	// sparse, iteration-order dependent web of the original wallpaper.
	LinkSweep LinkPolicy = "sweep"
	// LinkAll draws one line for every pair closer than the link distance.
	LinkAll LinkPolicy = "all"
)

func (p LinkPolicy) Valid() bool {
	return p == LinkSweep || p == LinkAll
}

// Options is the set of visual parameters read by the render loop.
type Options struct {
	ParticleCount int
	LinkDistance  float64
	Speed         float64
	Radius        float64
	Background    Color
	Particle      Color
	Line          Color
	// FPS caps the render rate; 0 renders on every tick.
	FPS        float64
	LinkPolicy LinkPolicy
}

func Default() Options {
	return Options{
		ParticleCount: DefaultParticleCount,
		LinkDistance:  DefaultLinkDistance,
		Speed:         DefaultSpeed,
		Radius:        DefaultRadius,
		Background:    Black,
		Particle:      White,
		Line:          White,
		FPS:           DefaultFPS,
		LinkPolicy:    LinkSweep,
	}
}
