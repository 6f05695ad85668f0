// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
	"time"

	"gioui.org/x/zoom/f32"
	"gioui.org/x/zoom/gesture"
	"gioui.org/x/zoom/transform"
)

func TestParseScript(t *testing.T) {
	cmds, err := parseScript(strings.NewReader(`
# pan and release
size 300 300
grant
move 10 0
release
release 0.5 -1
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 5 {
		t.Fatalf("got %d commands, want 5", len(cmds))
	}
	if c := cmds[2]; c.name != "move" || c.line != 5 || len(c.args) != 2 || c.args[0] != 10 {
		t.Errorf("move parsed as %+v", c)
	}
	if c := cmds[4]; len(c.args) != 2 || c.args[1] != -1 {
		t.Errorf("release parsed as %+v", c)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, script := range []string{
		"jump 1 2",
		"move 1",
		"release 1",
		"size 300 x",
	} {
		if _, err := parseScript(strings.NewReader(script)); err == nil {
			t.Errorf("%q: no error", script)
		}
	}
}

func play(t *testing.T, cfg gesture.Config, script string) *player {
	t.Helper()
	cmds, err := parseScript(strings.NewReader(script))
	if err != nil {
		t.Fatal(err)
	}
	p := newPlayer(cfg, 16*time.Millisecond)
	if err := p.run(cmds); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPlayDoubleTap(t *testing.T) {
	p := play(t, gesture.Config{MaxScale: 3}, `
size 300 300
doubletap 150 150
settle
`)
	got := p.c.Transform()
	if math.Abs(float64(got.Scale-3)) > 1e-3 {
		t.Errorf("scale %v, want 3", got.Scale)
	}
	if len(p.frames) < 2 {
		t.Fatalf("got %d frames, want an animation", len(p.frames))
	}
	if last := p.frames[len(p.frames)-1].at; last < gesture.DefaultAnimationDuration {
		t.Errorf("animation ended at %v, before %v", last, gesture.DefaultAnimationDuration)
	}
}

func TestPlayTap(t *testing.T) {
	p := play(t, gesture.Config{}, `
size 300 300
origin 10 10
tap 20 30
`)
	if len(p.taps) != 1 || p.taps[0] != f32.Pt(10, 20) {
		t.Errorf("taps %v", p.taps)
	}
}

func TestRender(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	red := color.NRGBA{R: 0xff, A: 0xff}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, red)
		}
	}
	content := f32.Rect(0, 0, 100, 100)
	// Scaled by 0.5 about the center, the content covers [25, 75).
	img := render(src, image.Pt(100, 100), content, transform.Transform{Scale: 0.5})
	if got := img.NRGBAAt(50, 50); got != red {
		t.Errorf("center pixel %v, want %v", got, red)
	}
	if got := img.NRGBAAt(5, 5); got != background {
		t.Errorf("corner pixel %v, want background %v", got, background)
	}
}
