package props

import (
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/iburimskiy/particle-links/internal/config"
)

// User property keys, as sent by the wallpaper host.
const (
	BackgroundColor = "backgroundcolor"
	ParticleColor   = "particlecolor"
	LineColor       = "linecolor"
	ParticleRadius  = "particleradius"
	LinkDistance    = "particleconnectingdistance"
	ParticleSpeed   = "particlespeed"
	ParticleCount   = "numberofparticles"
	LinkPolicy      = "linkpolicy"
)

// General property keys.
const (
	FPS = "fps"
)

// Listener turns property updates into Store writes. Unknown keys and values
// that do not parse are ignored.
type Listener struct {
	store   *config.Store
	Verbose bool
}

func NewListener(store *config.Store) *Listener {
	return &Listener{store: store}
}

// ApplyUserProperties applies per-key visual properties and returns the keys
// that took effect, sorted. Colors are three floats in [0,1]. A particle count
// always requests regeneration of the collection.
func (l *Listener) ApplyUserProperties(props map[string]string) []string {
	var applied []string
	for key, value := range props {
		if l.applyUser(strings.ToLower(key), value) {
			applied = append(applied, key)
		} else {
			l.ignored("user", key, value)
		}
	}
	sort.Strings(applied)
	return applied
}

func (l *Listener) applyUser(key, value string) bool {
	switch key {
	case BackgroundColor, ParticleColor, LineColor:
		c, ok := parseUnitColor(value)
		if !ok {
			return false
		}
		l.store.Update(func(o *config.Options) {
			switch key {
			case BackgroundColor:
				o.Background = c
			case ParticleColor:
				o.Particle = c
			default:
				o.Line = c
			}
		})
	case ParticleRadius:
		v, ok := parseFloat(value)
		if !ok || v <= 0 {
			return false
		}
		l.store.Update(func(o *config.Options) { o.Radius = v })
	case LinkDistance:
		v, ok := parseFloat(value)
		if !ok || v < 0 {
			return false
		}
		l.store.Update(func(o *config.Options) { o.LinkDistance = v })
	case ParticleSpeed:
		v, ok := parseFloat(value)
		if !ok {
			return false
		}
		l.store.Update(func(o *config.Options) { o.Speed = v })
	case ParticleCount:
		v, ok := parseFloat(value)
		if !ok || v < 0 || v > math.MaxInt32 {
			return false
		}
		l.store.SetParticleCount(int(v))
	case LinkPolicy:
		lp := config.LinkPolicy(strings.ToLower(strings.TrimSpace(value)))
		if !lp.Valid() {
			return false
		}
		l.store.Update(func(o *config.Options) { o.LinkPolicy = lp })
	default:
		return false
	}
	return true
}

// ApplyGeneralProperties applies host-wide settings. Only the frame rate cap
// is recognised; 0 means uncapped.
func (l *Listener) ApplyGeneralProperties(props map[string]string) []string {
	var applied []string
	for key, value := range props {
		if strings.ToLower(key) != FPS {
			l.ignored("general", key, value)
			continue
		}
		v, ok := parseFloat(value)
		if !ok || v < 0 {
			l.ignored("general", key, value)
			continue
		}
		l.store.Update(func(o *config.Options) { o.FPS = v })
		applied = append(applied, key)
	}
	sort.Strings(applied)
	return applied
}

func (l *Listener) ignored(kind, key, value string) {
	if l.Verbose {
		log.Printf("props: ignoring %s property %s=%q", kind, key, value)
	}
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseUnitColor(s string) (config.Color, bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return config.Color{}, false
	}
	var ch [3]float64
	for i, f := range fields {
		v, ok := parseFloat(f)
		if !ok {
			return config.Color{}, false
		}
		ch[i] = v
	}
	return config.ColorFromUnit(ch[0], ch[1], ch[2]), true
}
