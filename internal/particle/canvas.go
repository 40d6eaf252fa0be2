package particle

import "github.com/iburimskiy/particle-links/internal/config"

// Canvas is the drawing target particles render onto. Opacity passed in is
// already clamped to [0,1].
type Canvas interface {
	Size() (width, height float64)
	FillCircle(x, y, radius float64, c config.Color, opacity float64)
	StrokeLine(x1, y1, x2, y2 float64, c config.Color, opacity float64)
}
