package hal

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"spinsquare/gfx"

	"github.com/gdamore/tcell/v2"
)

// upperHalfBlock draws the upper pixel in the foreground color and the lower
// pixel in the background color, giving two pixels per terminal cell.
const upperHalfBlock = '▀'

// RunTerminal renders the framebuffer into the controlling terminal.
// Escape, q and Ctrl-C quit.
func RunTerminal(ctx context.Context, cfg TerminalConfig, newApp NewApp) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer s.Fini()
	return finish(runTerminal(ctx, s, cfg, newApp))
}

func runTerminal(ctx context.Context, s tcell.Screen, cfg TerminalConfig, newApp NewApp) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Width, cfg.Height, cfg.Log)
	handler, err := h.start(newApp)
	if err != nil {
		return err
	}

	s.HideCursor()
	s.Clear()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isInterrupt(ev) {
					return ErrQuit
				}
				h.kbd.push(keyEventFromTcell(ev))
			case *tcell.EventResize:
				s.Sync()
			}
		case <-t.C:
			if err := dispatchFrame(handler, h.clock.Step(), h.fb); err != nil {
				return err
			}
			cols, rows := s.Size()
			blitCells(h.fb, cols, rows, func(x, y int, top, bottom color.RGBA) {
				style := tcell.StyleDefault.
					Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
					Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
				s.SetContent(x, y, upperHalfBlock, nil, style)
			})
			s.Show()
		}
	}
}

func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C')
}

func keyEventFromTcell(ev *tcell.EventKey) KeyEvent {
	switch ev.Key() {
	case tcell.KeyEscape:
		return KeyEvent{Code: KeyEscape, Press: true}
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}
	default:
		return KeyEvent{Code: KeyUnknown, Press: true}
	}
}

// blitCells nearest-samples fb onto a cols×rows grid of half-block cells.
// Both axes share one scale so shapes keep their proportions; cells outside
// the scaled image are filled with the framebuffer's corner pixel.
func blitCells(fb Framebuffer, cols, rows int, set func(x, y int, top, bottom color.RGBA)) {
	if fb == nil || cols <= 0 || rows <= 0 {
		return
	}
	w, h := fb.Width(), fb.Height()
	if w <= 0 || h <= 0 {
		return
	}
	src := &gfx.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: w, H: h}
	letterbox := src.At(0, 0)

	py := rows * 2
	scale := math.Min(float64(cols)/float64(w), float64(py)/float64(h))
	ox := (float64(cols) - float64(w)*scale) / 2
	oy := (float64(py) - float64(h)*scale) / 2

	sample := func(cx, cy int) color.RGBA {
		fx := (float64(cx) + 0.5 - ox) / scale
		fy := (float64(cy) + 0.5 - oy) / scale
		if fx < 0 || fy < 0 || fx >= float64(w) || fy >= float64(h) {
			return letterbox
		}
		return src.At(int(fx), int(fy))
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			set(x, y, sample(x, 2*y), sample(x, 2*y+1))
		}
	}
}
