package app

import (
	"image/color"
	"strings"
	"testing"

	"spinsquare/anim"
	"spinsquare/gfx"
	"spinsquare/hal"
	"spinsquare/hsl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) at(x, y int) color.RGBA {
	t := gfx.RGB565Target{Buf: f.buf, Stride: f.w * 2, W: f.w, H: f.h}
	return t.At(x, y)
}

type testKeyboard struct{ ch chan hal.KeyEvent }

func (k testKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type testLogger struct{ lines []string }

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type testHAL struct {
	fb  *testFB
	kbd testKeyboard
	log *testLogger
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		fb:  newTestFB(w, h),
		kbd: testKeyboard{ch: make(chan hal.KeyEvent, 8)},
		log: &testLogger{},
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }

func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return h.kbd }

// quantize mirrors the RGB565 round trip of the framebuffer.
func quantize(c hsl.RGBA) color.RGBA {
	r, g, b := c.RGB8()
	r, g, b = gfx.UnpackRGB565(gfx.PackRGB565(r, g, b))
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func TestStartsAtZero(t *testing.T) {
	h := newTestHAL(200, 200)
	a, err := New(h, Config{})
	require.NoError(t, err)
	assert.Equal(t, anim.State{}, a.State())
	require.NotEmpty(t, h.log.lines)
	assert.True(t, strings.HasPrefix(h.log.lines[0], "spinning-square: start"))
}

func TestNewWithoutFramebuffer(t *testing.T) {
	_, err := New(nil, Config{})
	assert.ErrorIs(t, err, ErrNoFramebuffer)
}

func TestUpdateThenRender(t *testing.T) {
	h := newTestHAL(200, 200)
	a, err := New(h, Config{})
	require.NoError(t, err)

	require.NoError(t, a.Handle(hal.UpdateEvent{DT: 1.0}))
	assert.InDelta(t, 2.0, a.State().Rotation, 1e-12)
	assert.InDelta(t, 30.0, a.State().Hue, 1e-12)

	require.NoError(t, a.Handle(hal.RenderEvent{Width: 200, Height: 200}))
	assert.Equal(t, 1, h.fb.presents)

	fg := quantize(hsl.HueToRGBA(30))
	bg := quantize(hsl.HueToRGBA(210))
	assert.Equal(t, fg, h.fb.at(100, 100), "square at the center")
	assert.Equal(t, bg, h.fb.at(0, 0), "background in the corner")
	assert.Equal(t, bg, h.fb.at(199, 199))
}

func TestRenderFollowsRotation(t *testing.T) {
	h := newTestHAL(200, 200)
	a, err := New(h, Config{})
	require.NoError(t, err)

	// Unrotated: corner region of the axis-aligned square is covered.
	require.NoError(t, a.Render(200, 200))
	fg := quantize(hsl.HueToRGBA(0))
	assert.Equal(t, fg, h.fb.at(122, 122))

	// An eighth of a turn: the diamond leaves the corner.
	a.state.Rotation = 0.7853981633974483
	require.NoError(t, a.Render(200, 200))
	assert.NotEqual(t, fg, h.fb.at(122, 122))
	assert.Equal(t, fg, h.fb.at(131, 100))
}

func TestRenderViewportClamped(t *testing.T) {
	h := newTestHAL(40, 20)
	a, err := New(h, Config{})
	require.NoError(t, err)

	require.NoError(t, a.Handle(hal.RenderEvent{Width: 4000, Height: 0}))
	fg := quantize(hsl.HueToRGBA(0))
	assert.Equal(t, fg, h.fb.at(20, 10))
}

func TestEscapeQuits(t *testing.T) {
	h := newTestHAL(50, 50)
	a, err := New(h, Config{})
	require.NoError(t, err)

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: false}
	require.NoError(t, a.Update(0.1))

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	assert.ErrorIs(t, a.Update(0.1), hal.ErrQuit)
	assert.Contains(t, h.log.lines[len(h.log.lines)-1], "stop")
}

func TestQKeyQuits(t *testing.T) {
	h := newTestHAL(50, 50)
	a, err := New(h, Config{})
	require.NoError(t, err)

	h.kbd.ch <- hal.KeyEvent{Rune: 'x', Press: true}
	require.NoError(t, a.Update(0))

	h.kbd.ch <- hal.KeyEvent{Rune: 'q', Press: true}
	assert.ErrorIs(t, a.Update(0), hal.ErrQuit)
}

func TestEnterResets(t *testing.T) {
	h := newTestHAL(50, 50)
	a, err := New(h, Config{})
	require.NoError(t, err)

	require.NoError(t, a.Update(3))
	require.NotEqual(t, anim.State{}, a.State())

	// Reset happens before this update's advance.
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEnter, Press: true}
	require.NoError(t, a.Update(0.5))
	assert.InDelta(t, 1.0, a.State().Rotation, 1e-12)
	assert.InDelta(t, 15.0, a.State().Hue, 1e-12)
	assert.Equal(t, "spinning-square: reset", h.log.lines[len(h.log.lines)-1])
}

func TestFPSLog(t *testing.T) {
	h := newTestHAL(20, 20)
	a, err := New(h, Config{FPS: true})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, a.Update(0.25))
		require.NoError(t, a.Render(20, 20))
	}

	var fps []string
	for _, l := range h.log.lines {
		if strings.HasPrefix(l, "fps: ") {
			fps = append(fps, l)
		}
	}
	// Seconds complete on updates 4 and 8; renders 1-3 then 4-7 precede them.
	assert.Equal(t, []string{"fps: 3", "fps: 4"}, fps)
}

func TestHUDDrawsText(t *testing.T) {
	plain := newTestHAL(200, 200)
	withHUD := newTestHAL(200, 200)

	a, err := New(plain, Config{})
	require.NoError(t, err)
	b, err := New(withHUD, Config{HUD: true})
	require.NoError(t, err)

	require.NoError(t, a.Render(200, 200))
	require.NoError(t, b.Render(200, 200))
	assert.NotEqual(t, plain.fb.buf, withHUD.fb.buf)

	// Text stays in the corner; the square is untouched.
	assert.Equal(t, plain.fb.at(100, 100), withHUD.fb.at(100, 100))
}

func TestNewHandler(t *testing.T) {
	h := newTestHAL(20, 20)
	handler, err := NewHandler(Config{})(h)
	require.NoError(t, err)
	require.NoError(t, handler(hal.UpdateEvent{DT: 0.5}))
	require.NoError(t, handler(hal.RenderEvent{Width: 20, Height: 20}))
	assert.Equal(t, 1, h.fb.presents)
}
