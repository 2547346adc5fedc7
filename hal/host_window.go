//go:build cgo

package hal

import (
	"errors"
	"image"

	"spinsquare/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the application quits.
func RunWindow(cfg WindowConfig, newApp NewApp) error {
	if cfg.Title == "" {
		cfg.Title = "spinning-square (" + buildinfo.Short() + ")"
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	h := newHost(cfg.Width, cfg.Height, cfg.Log)
	handler, err := h.start(newApp)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, handler: handler}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return finish(err)
}

type hostGame struct {
	h       *hostHAL
	handler Handler

	img   *image.RGBA
	fbImg *ebiten.Image

	// drawErr carries a render failure to the next Update; Draw cannot fail.
	drawErr error
}

func (g *hostGame) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	g.h.kbd.poll()
	dt := g.h.clock.Step()
	if g.handler == nil {
		return nil
	}
	if err := g.handler(UpdateEvent{DT: dt}); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.handler != nil && g.drawErr == nil {
		if err := g.handler(RenderEvent{Width: fb.width, Height: fb.height}); err != nil {
			if errors.Is(err, ErrQuit) {
				err = ebiten.Termination
			}
			g.drawErr = err
		}
	}

	g.img = fb.toRGBA(g.img)
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
