package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB triple with 0-255 channels.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// String returns the channels as three space-separated integers, e.g. "255 255 255".
func (c Color) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// WithOpacity converts c to a non-premultiplied color with alpha taken from
// opacity. Opacity outside [0,1] is clamped.
func (c Color) WithOpacity(opacity float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(Clamp01(opacity) * 255))}
}

// ParseColor accepts either "r g b" with 0-255 integer channels or a
// "#rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hc, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := hc.RGB255()
		return Color{r, g, b}, nil
	}

	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Color{}, fmt.Errorf("parse color %q: want 3 channels, got %d", s, len(fields))
	}
	var ch [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return Color{ch[0], ch[1], ch[2]}, nil
}

// ColorFromUnit converts channels in [0,1] to 0-255, rounding up as the
// wallpaper host's color picker expects. Out-of-range input is clamped.
func ColorFromUnit(r, g, b float64) Color {
	c := colorful.Color{R: r, G: g, B: b}.Clamped()
	up := func(v float64) uint8 { return uint8(math.Ceil(v * 255)) }
	return Color{up(c.R), up(c.G), up(c.B)}
}

// UnmarshalText lets gcfg decode colors straight into Options.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func Clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
