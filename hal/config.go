package hal

import "io"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int // framebuffer pixels
	Height int
	Scale  int // window pixels per framebuffer pixel
	TPS    int
	Log    io.Writer
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled  bool
	Hz       int
	Ticks    uint64
	Width    int
	Height   int
	Snapshot string // PNG path for the last frame; empty disables
	Log      io.Writer
}

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Enabled bool
	Hz      int
	Width   int
	Height  int
	Log     io.Writer
}
