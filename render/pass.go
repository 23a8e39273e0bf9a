package render

import "github.com/milk9111/arena/physics"

// Pass rebuilds scene from scratch with one rect per entity, centered on the
// entity's body. Physics is y-up; the screen is y-down with its origin at the
// top-left, so y is flipped against viewportHeight.
func Pass(scene *Scene, entities []*physics.Entity, viewportHeight float64, palette Palette) {
	scene.Clear()
	for _, e := range entities {
		if e == nil {
			continue
		}
		pos := e.Position()
		w, h := e.Width(), e.Height()
		style := palette.style(e.Kind())
		scene.Add(Rect{
			X:           float32(pos.X - w/2),
			Y:           float32(viewportHeight - (pos.Y + h/2)),
			Width:       float32(w),
			Height:      float32(h),
			Fill:        style.Fill,
			Stroke:      style.Stroke,
			StrokeWidth: style.StrokeWidth,
		})
	}
}
