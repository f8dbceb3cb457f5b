// Package app owns the window and the frame loop. It polls input, routes
// it to the paint session, viewport and undo log, and renders the visible
// part of the canvas. All decisions live in the internal packages; this is
// the raylib glue.
package app

import (
	"bytes"
	"image/png"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.design/x/clipboard"

	"github.com/AntonJohansson/beak/internal/canvas"
	"github.com/AntonJohansson/beak/internal/config"
	"github.com/AntonJohansson/beak/internal/history"
	"github.com/AntonJohansson/beak/internal/paint"
	"github.com/AntonJohansson/beak/internal/view"
)

// App is the application state threaded through the frame loop.
type App struct {
	opts       config.Options
	background rl.Color

	framebuffer rl.RenderTexture2D
	undo        *history.Log
	viewport    *view.Viewport
	session     *paint.Session

	prevMouse rl.Vector2
	mouse     rl.Vector2

	clipboardOK bool
}

// Run opens the window, drives the frame loop until the window closes and
// tears everything down.
func Run(opts config.Options) {
	rl.SetTraceLogLevel(rl.LogError)
	rl.SetConfigFlags(rl.FlagVsyncHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.WindowWidth), int32(opts.WindowHeight), "floating")
	defer rl.CloseWindow()

	rl.HideCursor()
	defer rl.ShowCursor()

	app := newApp(opts)
	defer rl.UnloadRenderTexture(app.framebuffer)

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
}

func newApp(opts config.Options) *App {
	background := canvas.ColorFromHex(opts.Background)

	app := &App{
		opts:        opts,
		background:  rlColor(background),
		framebuffer: rl.LoadRenderTexture(int32(opts.CanvasWidth), int32(opts.CanvasHeight)),
		undo:        history.NewLog(opts.HistorySize),
		viewport:    view.New(opts.CanvasWidth, opts.CanvasHeight, 400, 300),
	}
	app.session = paint.NewSession(app.viewport, background)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		app.clipboardOK = true
	}

	// The blank canvas is the first undo entry.
	app.clear()
	return app
}

// Update processes one frame of input.
func (a *App) Update() {
	a.viewport.SetWindow(rl.GetScreenWidth(), rl.GetScreenHeight())

	if key := rl.GetKeyPressed(); key >= rl.KeyOne && key <= rl.KeyFive {
		a.session.SelectColor(int(key - rl.KeyOne))
	}

	a.session.AdjustRadius(rl.GetMouseWheelMove())

	if rl.IsKeyPressed(rl.KeyC) {
		a.clear()
	}

	if rl.IsKeyPressed(rl.KeyS) {
		a.save()
	}

	if rl.IsKeyPressed(rl.KeyY) {
		a.copyCanvas()
	}

	if rl.IsKeyPressed(rl.KeyW) || rl.IsMouseButtonPressed(rl.MouseExtraButton) {
		if buf, ok := a.undo.Redo(); ok {
			a.restore(buf)
		}
	}

	if rl.IsKeyPressed(rl.KeyQ) || rl.IsMouseButtonPressed(rl.MouseSideButton) {
		if buf, ok := a.undo.Undo(); ok {
			a.restore(buf)
		}
	}

	a.prevMouse = a.mouse
	a.mouse = rl.GetMousePosition()

	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		a.viewport.Pan(
			-int(a.mouse.X-a.prevMouse.X),
			-int(a.mouse.Y-a.prevMouse.Y),
		)
	}

	drawing := rl.IsMouseButtonDown(rl.MouseLeftButton)
	erasing := !drawing && rl.IsMouseButtonDown(rl.MouseRightButton)
	if drawing || erasing {
		rl.BeginTextureMode(a.framebuffer)
		a.session.Stroke(textureRaster{}, a.prevMouse.X, a.prevMouse.Y, a.mouse.X, a.mouse.Y, erasing)
		rl.EndTextureMode()
	}

	// A finished stroke becomes a new undo entry.
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) || rl.IsMouseButtonReleased(rl.MouseRightButton) {
		a.undo.Push(a.snapshot())
	}
}

// Draw renders the visible canvas rectangle and the brush cursor.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.background)

	x, y, w, h := a.viewport.Rect()
	rl.DrawTextureRec(
		a.framebuffer.Texture,
		rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)),
		rl.NewVector2(0, 0),
		rl.White,
	)

	radius := a.session.Radius()
	rl.DrawCircleLines(int32(a.mouse.X), int32(a.mouse.Y), radius, rl.White)
	rl.DrawCircleLines(int32(a.mouse.X), int32(a.mouse.Y), 1.2*radius, rlColor(a.session.Color()))

	rl.EndDrawing()
}

// clear wipes the canvas to the background color and commits the blank
// state to the undo log.
func (a *App) clear() {
	rl.BeginTextureMode(a.framebuffer)
	rl.ClearBackground(a.background)
	rl.EndTextureMode()
	a.undo.Push(a.snapshot())
}

// save exports the canvas to the configured path.
func (a *App) save() {
	img := rl.LoadImageFromTexture(a.framebuffer.Texture)
	rl.ExportImage(*img, a.opts.SavePath)
	rl.UnloadImage(img)
}

// copyCanvas puts the canvas on the system clipboard as a PNG.
func (a *App) copyCanvas() {
	if !a.clipboardOK {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, a.snapshot().RGBA()); err != nil {
		log.Printf("clipboard copy failed: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
}

// snapshot reads the render texture back into a CPU buffer. The readback
// image is top-down, the buffer bottom-up, so rows are swapped here.
func (a *App) snapshot() *canvas.Buffer {
	img := rl.LoadImageFromTexture(a.framebuffer.Texture)
	defer rl.UnloadImage(img)

	w := a.opts.CanvasWidth
	h := a.opts.CanvasHeight
	colors := rl.LoadImageColors(img)

	buf := canvas.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := colors[(h-1-y)*w+x]
			buf.Set(x, y, canvas.Color{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return buf
}

// restore copies a snapshot back into the render texture. The source rect
// height is negated to undo the vertical flip of texture uploads, the same
// trick the compositing path uses.
func (a *App) restore(buf *canvas.Buffer) {
	img := rl.NewImageFromImage(buf.RGBA())
	texture := rl.LoadTextureFromImage(img)

	rl.BeginTextureMode(a.framebuffer)
	rl.DrawTextureRec(
		texture,
		rl.NewRectangle(0, 0, float32(texture.Width), -float32(texture.Height)),
		rl.NewVector2(0, 0),
		rl.White,
	)
	rl.EndTextureMode()

	rl.UnloadTexture(texture)
	rl.UnloadImage(img)
}

// textureRaster issues paint primitives against the active render texture.
// Calls are only valid between BeginTextureMode and EndTextureMode.
type textureRaster struct{}

func (textureRaster) FillCircle(cx, cy, r float32, c canvas.Color) {
	rl.DrawCircleV(rl.NewVector2(cx, cy), r, rlColor(c))
}

func (textureRaster) DrawLine(x0, y0, x1, y1, width float32, c canvas.Color) {
	rl.DrawLineEx(rl.NewVector2(x0, y0), rl.NewVector2(x1, y1), width, rlColor(c))
}

func rlColor(c canvas.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
