package canvas

import "testing"

func TestColorFromHex(t *testing.T) {
	got := ColorFromHex(0x112233FF)
	want := Color{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}
	if got != want {
		t.Errorf("ColorFromHex(0x112233FF) = %+v, want %+v", got, want)
	}
}

func TestColorFromHSVPrimaries(t *testing.T) {
	cases := []struct {
		hue  float32
		want Color
	}{
		{0, Color{R: 191, G: 47, B: 47, A: 255}},
		{120, Color{R: 47, G: 191, B: 47, A: 255}},
		{240, Color{R: 47, G: 47, B: 191, A: 255}},
	}
	for _, c := range cases {
		if got := ColorFromHSV(c.hue, 0.75, 0.75); got != c.want {
			t.Errorf("ColorFromHSV(%v, 0.75, 0.75) = %+v, want %+v", c.hue, got, c.want)
		}
	}
}

func TestClearAndPixelAccess(t *testing.T) {
	b := NewBuffer(4, 4)
	bg := Color{R: 10, G: 20, B: 30, A: 255}
	b.Clear(bg)

	if got := b.Get(3, 3); got != bg {
		t.Errorf("Get(3, 3) = %+v, want %+v", got, bg)
	}

	red := Color{R: 255, A: 255}
	b.Set(1, 2, red)
	if got := b.Get(1, 2); got != red {
		t.Errorf("Get(1, 2) = %+v, want %+v", got, red)
	}

	// Out-of-bounds access neither panics nor writes.
	b.Set(-1, 0, red)
	b.Set(0, 4, red)
	if got := b.Get(-1, 0); got != (Color{}) {
		t.Errorf("out-of-bounds Get = %+v, want zero", got)
	}
}

func TestFillCircleCoverage(t *testing.T) {
	b := NewBuffer(32, 32)
	white := Color{R: 255, G: 255, B: 255, A: 255}
	b.FillCircle(16, 16, 5, white)

	if got := b.Get(16, 16); got != white {
		t.Error("circle center not covered")
	}
	if got := b.Get(16, 19); got != white {
		t.Error("point inside radius not covered")
	}
	if got := b.Get(16, 25); got == white {
		t.Error("point outside radius covered")
	}
	if got := b.Get(22, 22); got == white {
		t.Error("bounding-box corner outside the circle covered")
	}
}

func TestFillCircleClipsAtEdges(t *testing.T) {
	b := NewBuffer(8, 8)
	white := Color{R: 255, G: 255, B: 255, A: 255}
	b.FillCircle(0, 0, 20, white)
	b.FillCircle(7, 7, 20, white)

	if got := b.Get(0, 0); got != white {
		t.Error("clipped circle missed the corner pixel")
	}
}

func TestDrawLineCoverage(t *testing.T) {
	b := NewBuffer(32, 32)
	white := Color{R: 255, G: 255, B: 255, A: 255}
	b.DrawLine(4, 16, 28, 16, 4, white)

	if got := b.Get(16, 16); got != white {
		t.Error("segment midpoint not covered")
	}
	if got := b.Get(16, 17); got != white {
		t.Error("point within half-width not covered")
	}
	if got := b.Get(16, 22); got == white {
		t.Error("point beyond half-width covered")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Clear(Color{R: 1, G: 2, B: 3, A: 255})

	c := b.Clone()
	c.Set(0, 0, Color{R: 99, A: 255})

	if b.Get(0, 0).R != 1 {
		t.Error("mutating a clone changed the original")
	}
	if b.W != c.W || b.H != c.H {
		t.Error("clone dimensions differ")
	}
}

func TestRGBAFlipsRows(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(0, 0, Color{R: 1, A: 255}) // bottom-left
	b.Set(0, 1, Color{R: 2, A: 255}) // top-left

	img := b.RGBA()
	if img.Pix[img.PixOffset(0, 0)] != 2 {
		t.Error("image top-left should hold the buffer's top row")
	}
	if img.Pix[img.PixOffset(0, 1)] != 1 {
		t.Error("image bottom-left should hold the buffer's bottom row")
	}
}
