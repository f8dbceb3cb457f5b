// Package view maps the window onto the larger canvas. The window shows a
// window-sized rectangle of the canvas centered on a target point; panning
// moves the target and the target is clamped after every pan and resize so
// the visible rectangle never leaves the canvas.
package view

// Viewport holds the fixed canvas dimensions, the polled window dimensions
// and the canvas point currently centered in the window.
type Viewport struct {
	CanvasW, CanvasH int
	winW, winH       int
	targetX, targetY int
}

// New creates a viewport with the given canvas size and initial target.
// The window size must be set before the first frame via SetWindow.
func New(canvasW, canvasH, targetX, targetY int) *Viewport {
	return &Viewport{
		CanvasW: canvasW,
		CanvasH: canvasH,
		targetX: targetX,
		targetY: targetY,
	}
}

// Target returns the canvas point centered in the window.
func (v *Viewport) Target() (x, y int) { return v.targetX, v.targetY }

// SetWindow records the current window dimensions and re-clamps the target.
// Called every frame with the polled size, which makes resize handling
// idempotent; a missed resize event cannot leave a stale clamp.
func (v *Viewport) SetWindow(w, h int) {
	v.winW = w
	v.winH = h
	v.clamp()
}

// Pan moves the target by (dx, dy) canvas units and re-clamps.
func (v *Viewport) Pan(dx, dy int) {
	v.targetX += dx
	v.targetY += dy
	v.clamp()
}

// clamp keeps the visible rectangle inside the canvas. On an axis where the
// window is at least as large as the canvas, the canvas is centered instead.
func (v *Viewport) clamp() {
	v.targetX = clampAxis(v.targetX, v.winW, v.CanvasW)
	v.targetY = clampAxis(v.targetY, v.winH, v.CanvasH)
}

func clampAxis(target, window, canvas int) int {
	if window >= canvas {
		return canvas / 2
	}
	lo := window / 2
	hi := canvas - window/2
	if target < lo {
		return lo
	}
	if target > hi {
		return hi
	}
	return target
}

// Rect returns the rectangle of canvas coordinates visible in the window:
// x and y are the top-left corner in the canvas's stored (top-down) texture
// space, w and h are the window dimensions.
func (v *Viewport) Rect() (x, y, w, h int) {
	return v.targetX - v.winW/2, v.targetY - v.winH/2, v.winW, v.winH
}

// ScreenToCanvas converts a window position to canvas coordinates. The
// canvas vertical axis points up (row 0 is the bottom row), so the y
// component is inverted here, in one place, rather than at draw time.
func (v *Viewport) ScreenToCanvas(sx, sy float32) (cx, cy float32) {
	cx = sx + float32(v.targetX-v.winW/2)
	cy = sy + float32(v.targetY-v.winH/2)
	cy = float32(v.CanvasH) - cy
	return cx, cy
}
