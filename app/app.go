// Package app is the spinning square: it owns the animation state, advances
// it on update events and draws it on render events.
package app

import (
	"errors"
	"fmt"

	"spinsquare/anim"
	"spinsquare/gfx"
	"spinsquare/hal"
	"spinsquare/hsl"
	"spinsquare/internal/buildinfo"
)

// squareSize is the side of the square in framebuffer pixels.
const squareSize = 50.0

// ErrNoFramebuffer is returned by New when the host has no RGB565 display.
var ErrNoFramebuffer = errors.New("app: no RGB565 framebuffer")

// Config selects the optional overlays.
type Config struct {
	HUD bool // draw hue and rotation in the corner
	FPS bool // log frames per second
}

// App is one running instance. It is not safe for concurrent use; runners
// call Handle from a single goroutine.
type App struct {
	cfg Config
	log hal.Logger
	fb  hal.Framebuffer
	kbd hal.Keyboard

	state anim.State
	fps   fpsCounter
	hud   *hud

	frames uint64
}

// New builds the app on h. A missing or non-RGB565 framebuffer is a startup
// fault.
func New(h hal.HAL, cfg Config) (*App, error) {
	if h == nil || h.Display() == nil {
		return nil, ErrNoFramebuffer
	}
	fb := h.Display().Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrNoFramebuffer
	}

	a := &App{cfg: cfg, log: h.Logger(), fb: fb}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	if cfg.HUD {
		a.hud = newHUD(fb)
	}
	a.logf("spinning-square: start build=%s fb=%dx%d", buildinfo.Short(), fb.Width(), fb.Height())
	return a, nil
}

// NewHandler adapts New to the host runners.
func NewHandler(cfg Config) hal.NewApp {
	return func(h hal.HAL) (hal.Handler, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a.Handle, nil
	}
}

// State returns a copy of the animation state.
func (a *App) State() anim.State { return a.state }

// Handle dispatches one host event to Update or Render.
func (a *App) Handle(ev hal.Event) error {
	switch ev := ev.(type) {
	case hal.UpdateEvent:
		return a.Update(ev.DT)
	case hal.RenderEvent:
		return a.Render(ev.Width, ev.Height)
	default:
		return nil
	}
}

// Update handles pending keys and advances the animation by dt seconds.
// Escape or q returns hal.ErrQuit; Enter restarts from the zero state.
func (a *App) Update(dt float64) error {
	if a.handleKeys() {
		a.logf("spinning-square: stop frames=%d", a.frames)
		return hal.ErrQuit
	}
	a.state.Advance(dt)
	if n, ok := a.fps.add(dt); ok && a.cfg.FPS {
		a.logf("fps: %d", n)
	}
	return nil
}

// Render draws the current frame into a width×height viewport of the
// framebuffer and presents it.
func (a *App) Render(width, height int) error {
	if width <= 0 || width > a.fb.Width() {
		width = a.fb.Width()
	}
	if height <= 0 || height > a.fb.Height() {
		height = a.fb.Height()
	}

	fg := hsl.HueToRGBA(a.state.Hue)
	bg := hsl.HueToRGBA(hsl.Complement(a.state.Hue))

	target := &gfx.RGB565Target{
		Buf:    a.fb.Buffer(),
		Stride: a.fb.StrideBytes(),
		W:      width,
		H:      height,
	}
	target.Clear(bg.Color())

	x, y := float64(width)/2, float64(height)/2
	m := gfx.Identity().
		Trans(x, y).
		Rot(a.state.Rotation).
		Trans(-squareSize/2, -squareSize/2)
	gfx.FillRect(target, gfx.Square(0, 0, squareSize), m, fg.Color())

	if a.hud != nil {
		a.hud.draw(a.state, fg.Color())
	}

	a.frames++
	a.fps.frame()
	if err := a.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// handleKeys drains the keyboard and reports whether quit was requested.
func (a *App) handleKeys() bool {
	if a.kbd == nil {
		return false
	}
	ch := a.kbd.Events()
	if ch == nil {
		return false
	}
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyEscape || ev.Rune == 'q' || ev.Rune == 0x1b:
				return true
			case ev.Code == hal.KeyEnter || ev.Rune == '\r':
				a.state = anim.State{}
				a.logf("spinning-square: reset")
			}
		default:
			return false
		}
	}
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

// fpsCounter counts rendered frames per second of accumulated update time.
type fpsCounter struct {
	acc    float64
	frames int
}

func (c *fpsCounter) frame() { c.frames++ }

// add accumulates dt and reports the frame count each time a full second
// has passed.
func (c *fpsCounter) add(dt float64) (int, bool) {
	c.acc += dt
	if c.acc < 1 {
		return 0, false
	}
	n := c.frames
	c.frames = 0
	c.acc -= 1
	if c.acc >= 1 {
		c.acc = 0
	}
	return n, true
}
