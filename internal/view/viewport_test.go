package view

import "testing"

func TestPanClampsToCanvasBounds(t *testing.T) {
	v := New(2560, 1440, 400, 300)
	v.SetWindow(800, 600)

	v.Pan(1000000, 1000000)
	if x, y := v.Target(); x != 2160 || y != 1140 {
		t.Errorf("target after pan to far corner = (%d, %d), want (2160, 1140)", x, y)
	}

	v.Pan(-1000000, -1000000)
	if x, y := v.Target(); x != 400 || y != 300 {
		t.Errorf("target after pan to origin = (%d, %d), want (400, 300)", x, y)
	}
}

func TestSmallPanInsideBoundsIsUnclamped(t *testing.T) {
	v := New(2560, 1440, 1000, 700)
	v.SetWindow(800, 600)

	v.Pan(10, -20)
	if x, y := v.Target(); x != 1010 || y != 680 {
		t.Errorf("target = (%d, %d), want (1010, 680)", x, y)
	}
}

func TestWindowLargerThanCanvasCentersIt(t *testing.T) {
	v := New(2560, 1440, 2160, 1140)
	v.SetWindow(3000, 2000)

	if x, y := v.Target(); x != 1280 || y != 720 {
		t.Errorf("target = (%d, %d), want (1280, 720)", x, y)
	}
}

func TestResizeReclampsTarget(t *testing.T) {
	v := New(2560, 1440, 400, 300)
	v.SetWindow(800, 600)
	v.Pan(1000000, 1000000) // (2160, 1140)

	v.SetWindow(1000, 800)
	if x, y := v.Target(); x != 2060 || y != 1040 {
		t.Errorf("target after resize = (%d, %d), want (2060, 1040)", x, y)
	}
}

func TestRect(t *testing.T) {
	v := New(2560, 1440, 1000, 700)
	v.SetWindow(800, 600)

	x, y, w, h := v.Rect()
	if x != 600 || y != 400 || w != 800 || h != 600 {
		t.Errorf("rect = (%d, %d, %d, %d), want (600, 400, 800, 600)", x, y, w, h)
	}
}

func TestScreenToCanvasFlipsVerticalAxis(t *testing.T) {
	v := New(2560, 1440, 400, 300)
	v.SetWindow(800, 600)

	// Target (400, 300) with an 800x600 window puts the window's top-left
	// at canvas texture position (0, 0); only the y flip remains.
	if x, y := v.ScreenToCanvas(10, 20); x != 10 || y != 1420 {
		t.Errorf("ScreenToCanvas(10, 20) = (%v, %v), want (10, 1420)", x, y)
	}

	v.Pan(100, 100)
	if x, y := v.ScreenToCanvas(10, 20); x != 110 || y != 1320 {
		t.Errorf("after pan: ScreenToCanvas(10, 20) = (%v, %v), want (110, 1320)", x, y)
	}
}
