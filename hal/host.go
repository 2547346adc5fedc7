package hal

import (
	"fmt"
	"io"
	"sync"
)

const (
	// DefaultWidth and DefaultHeight are the framebuffer size when a runner
	// config leaves them unset.
	DefaultWidth  = 200
	DefaultHeight = 200
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	clock  *Clock
}

// newHost returns a host HAL. A nil log writer discards log lines.
func newHost(width, height int, log io.Writer) *hostHAL {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if log == nil {
		log = io.Discard
	}
	return &hostHAL{
		logger: &hostLogger{w: log},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		clock:  NewClock(nil),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

// start builds the application. Build errors are startup faults.
func (h *hostHAL) start(newApp NewApp) (Handler, error) {
	if newApp == nil {
		return nil, nil
	}
	handler, err := newApp(h)
	if err != nil {
		return nil, fmt.Errorf("start app: %w", err)
	}
	return handler, nil
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
