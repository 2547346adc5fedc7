package hal

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"
)

// RunHeadless runs the application without opening a window: every tick
// delivers an update with the measured dt, then a render.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp NewApp) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.Width, cfg.Height, cfg.Log)
	handler, err := h.start(newApp)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	err = runTicks(ctx, t.C, h, handler, cfg.Ticks)
	if cfg.Snapshot != "" {
		if serr := writeSnapshot(cfg.Snapshot, h.fb); serr != nil && err == nil {
			err = serr
		}
	}
	return finish(err)
}

func runTicks(ctx context.Context, ticks <-chan time.Time, h *hostHAL, handler Handler, limit uint64) error {
	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
			if err := dispatchFrame(handler, h.clock.Step(), h.fb); err != nil {
				return err
			}
			n++
			if limit > 0 && n >= limit {
				return nil
			}
		}
	}
}

func writeSnapshot(path string, fb *hostFramebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, fb.toRGBA(nil)); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	return nil
}
