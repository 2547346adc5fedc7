package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// push queues ev, dropping it when the queue is full.
func (k *hostKeyboard) push(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}
