package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Rect is a filled, optionally outlined rectangle in screen space
// (top-left origin, y down).
type Rect struct {
	X, Y          float32
	Width, Height float32
	Fill          color.RGBA
	Stroke        color.RGBA
	StrokeWidth   float32
}

// Scene is the set of primitives drawn each frame.
type Scene struct {
	rects []Rect
}

// Clear drops every primitive.
func (s *Scene) Clear() {
	s.rects = s.rects[:0]
}

func (s *Scene) Add(r Rect) {
	s.rects = append(s.rects, r)
}

// Rects returns the primitives in draw order. The slice is reused by the next
// Clear.
func (s *Scene) Rects() []Rect {
	return s.rects
}

func (s *Scene) Draw(screen *ebiten.Image) {
	if s == nil || screen == nil {
		return
	}
	for _, r := range s.rects {
		vector.FillRect(screen, r.X, r.Y, r.Width, r.Height, r.Fill, false)
		if r.StrokeWidth > 0 {
			vector.StrokeRect(screen, r.X, r.Y, r.Width, r.Height, r.StrokeWidth, r.Stroke, false)
		}
	}
}
