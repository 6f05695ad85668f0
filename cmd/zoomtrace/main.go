// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"math"
	"os"
	"time"

	"gioui.org/x/zoom/gesture"
	"gioui.org/x/zoom/unit"
)

var (
	aspect     = flag.Float64("aspect", 0, "content width to height ratio; 0 fills the viewport")
	maxScale   = flag.Float64("maxscale", 3, "maximum scale")
	overscroll = flag.Float64("overscroll", 20, "fling overscroll distance in dp")
	resistance = flag.Bool("resistance", false, "damp drags past the viewport edges")
	duration   = flag.Duration("duration", gesture.DefaultAnimationDuration, "bounce and zoom animation duration")
	density    = flag.Float64("density", 1, "pixels per dp")
	frameTime  = flag.Duration("frame", 16*time.Millisecond, "simulated frame interval")
	outDir     = flag.String("o", "", "directory for rendered frames")
	quiet      = flag.Bool("q", false, "only print the final transform")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("zoomtrace: ")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "zoomtrace: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr(w io.Writer) error {
	in := io.Reader(os.Stdin)
	if name := flag.Arg(0); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	if *frameTime <= 0 {
		return fmt.Errorf("invalid -frame %v", *frameTime)
	}
	cmds, err := parseScript(in)
	if err != nil {
		return err
	}
	cfg := gesture.Config{
		AspectRatio:       float32(*aspect),
		MaxScale:          float32(*maxScale),
		MaxOverScroll:     unit.Dp(float32(*overscroll)),
		Resistance:        *resistance,
		AnimationDuration: *duration,
		Metric:            unit.Metric{PxPerDp: float32(*density), PxPerSp: float32(*density)},
	}
	p := newPlayer(cfg, *frameTime)
	if err := p.run(cmds); err != nil {
		return err
	}
	if !*quiet {
		for _, fr := range p.frames {
			fmt.Fprintf(w, "%8v  %v\n", fr.at, fr.t)
		}
		for _, t := range p.taps {
			fmt.Fprintf(w, "tap at %v\n", t)
		}
	}
	content := p.c.ContentRect()
	t := p.c.Transform()
	m := t.Matrix(content)
	fmt.Fprintf(w, "final: %v\n", t)
	fmt.Fprintf(w, "%g %g %g %g %g %g cm\n", m[0], m[1], m[2], m[3], m[4], m[5])
	if *outDir == "" {
		return nil
	}
	vp := p.c.Viewport()
	size := image.Point{X: int(math.Ceil(float64(vp.Dx()))), Y: int(math.Ceil(float64(vp.Dy())))}
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("cannot render an empty viewport %v", vp)
	}
	if err := writeFrames(*outDir, checkerboard(8, 32), size, content, p.frames); err != nil {
		return err
	}
	log.Printf("wrote %d frames to %s", len(p.frames), *outDir)
	return nil
}
