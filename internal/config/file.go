package config

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gcfg.v1"
)

const ExampleFile = `# Startup settings. Every variable is optional; missing ones keep their
# built-in defaults.

[Particles]
Count = 100
# Particles closer than this many pixels are linked.
LinkDistance = 200
Speed = 1
Radius = 5
# One of [ sweep | all ]
LinkPolicy = sweep

[Colors]
# Either r g b with 0-255 channels or a quoted "#rrggbb".
Background = 0 0 0
Particle = "#ffffff"
Line = 255 255 255

[Display]
# 0 renders on every display frame.
FPS = 240
Fullscreen = true
# Window size when Fullscreen is false.
Width = 1024
Height = 512
Overlay = false
# Seed for particle placement; 0 picks one from the clock.
Seed = 0`

// FileConfig mirrors the sections of a startup config file. It starts out
// holding the defaults, so variables absent from the file keep them.
type FileConfig struct {
	Particles struct {
		Count        int
		LinkDistance float64
		Speed        float64
		Radius       float64
		LinkPolicy   string
	}
	Colors struct {
		Background Color
		Particle   Color
		Line       Color
	}
	Display DisplayConfig
}

// DisplayConfig holds host window settings. Only FPS is part of Options.
type DisplayConfig struct {
	FPS        float64
	Fullscreen bool
	Width      int
	Height     int
	Overlay    bool
	Seed       int64
}

func DefaultFileConfig() *FileConfig {
	d := Default()
	fc := &FileConfig{}
	fc.Particles.Count = d.ParticleCount
	fc.Particles.LinkDistance = d.LinkDistance
	fc.Particles.Speed = d.Speed
	fc.Particles.Radius = d.Radius
	fc.Particles.LinkPolicy = string(d.LinkPolicy)
	fc.Colors.Background = d.Background
	fc.Colors.Particle = d.Particle
	fc.Colors.Line = d.Line
	fc.Display.FPS = d.FPS
	fc.Display.Fullscreen = true
	fc.Display.Width = WindowWidth
	fc.Display.Height = WindowHeight
	return fc
}

// LoadFile reads a gcfg file over DefaultFileConfig. Unknown variables and
// sections are not errors.
func LoadFile(path string) (*FileConfig, error) {
	fc := DefaultFileConfig()
	err := gcfg.FatalOnly(gcfg.ReadFileInto(fc, path))
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return fc, nil
}

// LoadString is LoadFile for in-memory text.
func LoadString(text string) (*FileConfig, error) {
	fc := DefaultFileConfig()
	err := gcfg.FatalOnly(gcfg.ReadStringInto(fc, text))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return fc, nil
}

// Apply copies fc onto opts. Values that are out of range are logged and
// skipped, leaving the existing option in place.
func (fc *FileConfig) Apply(opts *Options) {
	p := fc.Particles
	if p.Count >= 0 {
		opts.ParticleCount = p.Count
	} else {
		log.Printf("config: ignoring particle count %d", p.Count)
	}
	if p.LinkDistance >= 0 {
		opts.LinkDistance = p.LinkDistance
	} else {
		log.Printf("config: ignoring link distance %g", p.LinkDistance)
	}
	opts.Speed = p.Speed
	if p.Radius > 0 {
		opts.Radius = p.Radius
	} else {
		log.Printf("config: ignoring radius %g", p.Radius)
	}
	if lp := LinkPolicy(strings.ToLower(p.LinkPolicy)); lp.Valid() {
		opts.LinkPolicy = lp
	} else {
		log.Printf("config: unknown link policy %q, keeping %s", p.LinkPolicy, opts.LinkPolicy)
	}

	opts.Background = fc.Colors.Background
	opts.Particle = fc.Colors.Particle
	opts.Line = fc.Colors.Line

	if fc.Display.FPS >= 0 {
		opts.FPS = fc.Display.FPS
	} else {
		log.Printf("config: ignoring fps %g", fc.Display.FPS)
	}
}
