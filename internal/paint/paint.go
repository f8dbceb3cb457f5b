// Package paint turns pointer motion into brush strokes on the canvas.
package paint

import (
	"github.com/AntonJohansson/beak/internal/canvas"
	"github.com/AntonJohansson/beak/internal/view"
)

// PaletteSize is the number of selectable brush colors.
const PaletteSize = 5

// radiusStep is the brush radius change per scroll notch.
const radiusStep = 5.0

// PaletteColor maps a palette index to an evenly hue-spaced color.
func PaletteColor(i int) canvas.Color {
	hue := 360.0 * float32(i) / float32(PaletteSize)
	return canvas.ColorFromHSV(hue, 0.75, 0.75)
}

// Raster is the drawing surface a stroke is issued against. The live
// render texture and the CPU-side canvas.Buffer both satisfy it.
type Raster interface {
	FillCircle(cx, cy, r float32, c canvas.Color)
	DrawLine(x0, y0, x1, y1, width float32, c canvas.Color)
}

// Session holds the brush state and applies strokes through the viewport
// transform. Drawing and erasing share the same geometry; erasing just
// strokes in the background color.
type Session struct {
	View       *view.Viewport
	Background canvas.Color

	color  canvas.Color
	radius float32
}

// NewSession creates a session with the first palette color and the
// default brush radius.
func NewSession(vp *view.Viewport, background canvas.Color) *Session {
	return &Session{
		View:       vp,
		Background: background,
		color:      PaletteColor(0),
		radius:     10,
	}
}

// Color returns the current brush color.
func (s *Session) Color() canvas.Color { return s.color }

// Radius returns the current brush radius.
func (s *Session) Radius() float32 { return s.radius }

// SelectColor switches the brush to palette entry i. Out-of-range indices
// are ignored.
func (s *Session) SelectColor(i int) {
	if i < 0 || i >= PaletteSize {
		return
	}
	s.color = PaletteColor(i)
}

// AdjustRadius grows or shrinks the brush by scroll notches, with a floor
// of 1.
func (s *Session) AdjustRadius(scroll float32) {
	if scroll == 0 {
		return
	}
	s.radius += radiusStep * scroll
	if s.radius <= 0 {
		s.radius = 1
	}
}

// Stroke draws one input sample's worth of paint: a capsule from the
// previous pointer position to the current one, both given in window
// coordinates. With erase set the stroke uses the background color.
func (s *Session) Stroke(dst Raster, prevX, prevY, curX, curY float32, erase bool) {
	color := s.color
	if erase {
		color = s.Background
	}

	x0, y0 := s.View.ScreenToCanvas(prevX, prevY)
	x1, y1 := s.View.ScreenToCanvas(curX, curY)

	dst.FillCircle(x0, y0, s.radius, color)
	dst.DrawLine(x0, y0, x1, y1, 2*s.radius, color)
	dst.FillCircle(x1, y1, s.radius, color)
}
