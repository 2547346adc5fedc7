package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"spinsquare/app"
	"spinsquare/hal"
	"spinsquare/internal/buildinfo"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses flags and drives one runner. Deferred cleanup completes before
// main exits with the returned status.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		headless hal.HeadlessConfig
		term     hal.TerminalConfig
		appCfg   app.Config
		size     int
		scale    int
		logPath  string
		version  bool
	)
	fs := flag.NewFlagSet("spinsquare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	fs.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	fs.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	fs.StringVar(&headless.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	fs.BoolVar(&term.Enabled, "tty", false, "Render into the terminal instead of a window.")
	fs.IntVar(&size, "size", hal.DefaultWidth, "Framebuffer width and height in pixels.")
	fs.IntVar(&scale, "scale", 2, "Window pixels per framebuffer pixel.")
	fs.StringVar(&logPath, "log", "", "Append log lines to this file (default stdout; discarded in -tty mode).")
	fs.BoolVar(&appCfg.HUD, "hud", false, "Draw hue and rotation.")
	fs.BoolVar(&appCfg.FPS, "fps", false, "Log frames per second.")
	fs.BoolVar(&version, "version", false, "Print version and exit.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if version {
		fmt.Fprintln(stdout, buildinfo.String())
		return 0
	}

	logw := stdout
	if term.Enabled {
		logw = nil
	}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer f.Close()
		logw = f
	}

	newApp := app.NewHandler(appCfg)

	var err error
	switch {
	case headless.Enabled:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		headless.Width, headless.Height, headless.Log = size, size, logw
		err = hal.RunHeadless(ctx, headless, newApp)
	case term.Enabled:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		term.Hz, term.Width, term.Height, term.Log = headless.Hz, size, size, logw
		err = hal.RunTerminal(ctx, term, newApp)
	default:
		err = hal.RunWindow(hal.WindowConfig{
			Width:  size,
			Height: size,
			Scale:  scale,
			Log:    logw,
		}, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
