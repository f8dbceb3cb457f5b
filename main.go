package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AntonJohansson/beak/internal/app"
	"github.com/AntonJohansson/beak/internal/config"
)

func main() {
	opts := config.Default()
	background := fmt.Sprintf("0x%08X", opts.Background)

	flag.IntVar(&opts.CanvasWidth, "canvas-width", opts.CanvasWidth, "canvas width in pixels")
	flag.IntVar(&opts.CanvasHeight, "canvas-height", opts.CanvasHeight, "canvas height in pixels")
	flag.IntVar(&opts.WindowWidth, "window-width", opts.WindowWidth, "initial window width in pixels")
	flag.IntVar(&opts.WindowHeight, "window-height", opts.WindowHeight, "initial window height in pixels")
	flag.IntVar(&opts.HistorySize, "undo-log-size", opts.HistorySize, "number of undo states kept")
	flag.StringVar(&background, "background", background, "background color as 0xRRGGBBAA")
	flag.StringVar(&opts.SavePath, "save-path", opts.SavePath, "image save path")
	flag.Usage = usage
	flag.Parse()

	color, err := config.ParseHexColor(background)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[error]: %v\n", err)
		os.Exit(1)
	}
	opts.Background = color

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "[error]: %v\n", err)
		os.Exit(1)
	}

	app.Run(opts)
}

func usage() {
	fmt.Fprintln(flag.CommandLine.Output(), "beak [options]")
	fmt.Fprintln(flag.CommandLine.Output())
	flag.PrintDefaults()
	fmt.Fprint(flag.CommandLine.Output(), `
keybinds:
  1-5           use n:th color
  q, mouse 4    undo
  w, mouse 5    redo
  c             clear
  s             save image to -save-path
  y             copy image to clipboard
  mouse wheel   change brush size
  mouse 1       paint
  mouse 2       erase
  mouse 3       pan
`)
}
