// Command huetable prints the foreground and background colors the demo
// uses over a range of hues.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"spinsquare/hsl"
)

type options struct {
	from, to, step float64
	float          bool
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(w io.Writer, args []string) error {
	var opt options
	fs := flag.NewFlagSet("huetable", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Float64Var(&opt.from, "from", 0, "First hue in degrees.")
	fs.Float64Var(&opt.to, "to", 360, "End hue in degrees (exclusive).")
	fs.Float64Var(&opt.step, "step", 30, "Hue step in degrees.")
	fs.BoolVar(&opt.float, "float", false, "Print normalized channels instead of hex.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opt.step <= 0 {
		return fmt.Errorf("huetable: step must be positive, got %v", opt.step)
	}
	if opt.to < opt.from {
		return fmt.Errorf("huetable: -to %v before -from %v", opt.to, opt.from)
	}

	for i := 0; ; i++ {
		h := opt.from + float64(i)*opt.step
		if h >= opt.to {
			break
		}
		fg := hsl.HueToRGBA(h)
		bg := hsl.HueToRGBA(hsl.Complement(h))
		if _, err := fmt.Fprintf(w, "%7.2f  fg=%s  bg=%s\n", h, format(fg, opt.float), format(bg, opt.float)); err != nil {
			return err
		}
	}
	return nil
}

func format(c hsl.RGBA, float bool) string {
	if float {
		return fmt.Sprintf("(%.3f,%.3f,%.3f,%.1f)", c.R, c.G, c.B, c.A)
	}
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
