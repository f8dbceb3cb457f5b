// Package canvas provides a CPU-side RGBA pixel buffer with the small set
// of raster operations the painter needs: clear to a color, filled circles
// and thick line segments. All edges are hard; a stroke drawn and then
// redrawn in the background color restores the covered pixels exactly.
package canvas

import (
	"image"
	"math"
)

// Color is an RGBA pixel value with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// ColorFromHex unpacks a 0xRRGGBBAA value.
func ColorFromHex(v uint32) Color {
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// ColorFromHSV converts hue (degrees), saturation and value in [0,1] to an
// opaque Color.
func ColorFromHSV(hue, saturation, value float32) Color {
	h := float64(hue)
	s := float64(saturation)
	v := float64(value)

	h = math.Mod(math.Mod(h, 360)+360, 360) / 60

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - c

	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}

// Buffer is a fixed-size raster of RGBA pixels. Row 0 is the bottom row of
// the canvas; x grows to the right and y grows upward, matching the
// coordinate space produced by the viewport transform.
type Buffer struct {
	W, H int
	Pix  []byte // 4 bytes per pixel, RGBA order
}

// NewBuffer allocates a zeroed buffer of the given dimensions.
func NewBuffer(w, h int) *Buffer {
	if w <= 0 || h <= 0 {
		panic("canvas: buffer dimensions must be positive")
	}
	return &Buffer{W: w, H: h, Pix: make([]byte, w*h*4)}
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{W: b.W, H: b.H, Pix: make([]byte, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// Clear fills the whole buffer with c.
func (b *Buffer) Clear(c Color) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = c.A
	}
}

// Set writes one pixel, ignoring coordinates outside the buffer.
func (b *Buffer) Set(x, y int, c Color) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return
	}
	i := (y*b.W + x) * 4
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}

// Get reads one pixel; out-of-bounds coordinates read as the zero Color.
func (b *Buffer) Get(x, y int) Color {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return Color{}
	}
	i := (y*b.W + x) * 4
	return Color{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// FillCircle draws a filled circle of radius r centered at (cx, cy). A
// pixel is covered when its center lies within the radius.
func (b *Buffer) FillCircle(cx, cy, r float32, c Color) {
	if r <= 0 {
		return
	}
	x0 := int(math.Floor(float64(cx - r)))
	x1 := int(math.Ceil(float64(cx + r)))
	y0 := int(math.Floor(float64(cy - r)))
	y1 := int(math.Ceil(float64(cy + r)))
	rr := float64(r) * float64(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - float64(cx)
			dy := float64(y) + 0.5 - float64(cy)
			if dx*dx+dy*dy <= rr {
				b.Set(x, y, c)
			}
		}
	}
}

// DrawLine draws the segment from (x0, y0) to (x1, y1) with the given
// stroke width and round caps. Coverage is a pixel-center distance test
// against the segment, so the result is the capsule of half-width width/2.
func (b *Buffer) DrawLine(x0, y0, x1, y1, width float32, c Color) {
	half := float64(width) / 2
	if half <= 0 {
		return
	}
	minX := int(math.Floor(math.Min(float64(x0), float64(x1)) - half))
	maxX := int(math.Ceil(math.Max(float64(x0), float64(x1)) + half))
	minY := int(math.Floor(math.Min(float64(y0), float64(y1)) - half))
	maxY := int(math.Ceil(math.Max(float64(y0), float64(y1)) + half))
	hh := half * half
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			if segmentDistSq(px, py, float64(x0), float64(y0), float64(x1), float64(y1)) <= hh {
				b.Set(x, y, c)
			}
		}
	}
}

// segmentDistSq returns the squared distance from point p to the segment ab.
func segmentDistSq(px, py, ax, ay, bx, by float64) float64 {
	abx := bx - ax
	aby := by - ay
	apx := px - ax
	apy := py - ay
	lenSq := abx*abx + aby*aby
	t := 0.0
	if lenSq > 0 {
		t = (apx*abx + apy*aby) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	dx := apx - t*abx
	dy := apy - t*aby
	return dx*dx + dy*dy
}

// RGBA converts the buffer to an image.RGBA with the conventional top-down
// row order, flipping the vertical axis.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		src := y * b.W * 4
		dst := img.PixOffset(0, b.H-1-y)
		copy(img.Pix[dst:dst+b.W*4], b.Pix[src:src+b.W*4])
	}
	return img
}
