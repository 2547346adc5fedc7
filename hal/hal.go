// Package hal is the contact point between the demo and the host: window,
// terminal or headless ticker, framebuffer, keyboard, clock and log sink.
package hal

import "errors"

var (
	// ErrQuit is returned by a Handler to end the run cleanly.
	ErrQuit = errors.New("quit")
	// ErrNoCGO is returned by RunWindow in builds without cgo.
	ErrNoCGO = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is everything an application gets from the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
