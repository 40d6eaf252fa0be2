package surface

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-links/internal/config"
)

// Surface is the offscreen image the animation renders into. It keeps its
// pixels between frames, so ticks that skip rendering show the last frame.
type Surface struct {
	img           *ebiten.Image
	width, height int
	lineWidth     float32
	antialias     bool
}

func New(antialias bool) *Surface {
	return &Surface{lineWidth: config.LineWidth, antialias: antialias}
}

// Initialize sizes the surface to the viewport. Only the first call has an
// effect; the surface is never resized afterwards.
func (s *Surface) Initialize(width, height int) bool {
	if s.img != nil || width <= 0 || height <= 0 {
		return false
	}
	s.width, s.height = width, height
	s.img = ebiten.NewImage(width, height)
	return true
}

func (s *Surface) Ready() bool { return s.img != nil }

func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

// Clear overwrites the whole surface with bg.
func (s *Surface) Clear(bg config.Color) {
	s.img.Fill(bg.WithOpacity(1))
}

func (s *Surface) FillCircle(x, y, radius float64, c config.Color, opacity float64) {
	if opacity <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), c.WithOpacity(opacity), s.antialias)
}

func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, c config.Color, opacity float64) {
	if opacity <= 0 {
		return
	}
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), s.lineWidth, c.WithOpacity(opacity), s.antialias)
}
