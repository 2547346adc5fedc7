package hal

import "errors"

// Event is one tick of the host loop. It is either an UpdateEvent or a
// RenderEvent; runners never deliver anything else.
type Event interface {
	isEvent()
}

// UpdateEvent asks the application to advance by DT seconds.
type UpdateEvent struct {
	DT float64
}

// RenderEvent asks the application to draw a frame of the given size.
type RenderEvent struct {
	Width  int
	Height int
}

func (UpdateEvent) isEvent() {}
func (RenderEvent) isEvent() {}

// Handler consumes host events. Returning ErrQuit stops the runner without
// error; any other error aborts the run and is returned from the runner.
type Handler func(Event) error

// NewApp builds an application against a HAL and returns its Handler.
type NewApp func(HAL) (Handler, error)

// dispatchFrame delivers one update then one render, in that order.
func dispatchFrame(h Handler, dt float64, fb Framebuffer) error {
	if h == nil {
		return nil
	}
	if err := h(UpdateEvent{DT: dt}); err != nil {
		return err
	}
	return h(RenderEvent{Width: fb.Width(), Height: fb.Height()})
}

// finish maps ErrQuit to a clean exit.
func finish(err error) error {
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
