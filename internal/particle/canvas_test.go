package particle

import "github.com/iburimskiy/particle-links/internal/config"

type circle struct {
	X, Y, Radius float64
	Color        config.Color
	Opacity      float64
}

type line struct {
	X1, Y1, X2, Y2 float64
	Color          config.Color
	Opacity        float64
}

// recorder is a Canvas that keeps every draw call.
type recorder struct {
	w, h    float64
	circles []circle
	lines   []line
}

func newRecorder(w, h float64) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) Size() (float64, float64) { return r.w, r.h }

func (r *recorder) FillCircle(x, y, radius float64, c config.Color, opacity float64) {
	r.circles = append(r.circles, circle{x, y, radius, c, opacity})
}

func (r *recorder) StrokeLine(x1, y1, x2, y2 float64, c config.Color, opacity float64) {
	r.lines = append(r.lines, line{x1, y1, x2, y2, c, opacity})
}

func (r *recorder) reset() {
	r.circles = r.circles[:0]
	r.lines = r.lines[:0]
}
