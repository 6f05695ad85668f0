// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gioui.org/x/zoom/f32"
	"gioui.org/x/zoom/gesture"
	"gioui.org/x/zoom/transform"
)

// command is a parsed script line.
type command struct {
	line int
	name string
	args []float32
}

// frame is a committed transform and the time it was committed at.
type frame struct {
	at time.Duration
	t  transform.Transform
}

// player runs a script against a Transformer on a simulated clock.
type player struct {
	c         *gesture.Transformer
	start     time.Time
	now       time.Time
	frameTime time.Duration

	frames []frame
	taps   []f32.Point
}

// arity is the accepted argument counts per command.
var arity = map[string][]int{
	"size":      {2},
	"origin":    {2},
	"grant":     {0},
	"move":      {2},
	"pinch":     {4},
	"release":   {0, 2},
	"doubletap": {2},
	"tap":       {2},
	"cancel":    {0},
	"wait":      {1},
	"settle":    {0},
	"scale":     {1},
	"offset":    {2},
}

// maxSettle bounds the simulated time of a settle command.
const maxSettle = 30 * time.Second

func parseScript(r io.Reader) ([]command, error) {
	var cmds []command
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		cmd := command{line: n, name: fields[0]}
		counts, ok := arity[cmd.name]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown command %q", n, cmd.name)
		}
		if !contains(counts, len(fields)-1) {
			return nil, fmt.Errorf("line %d: %s takes %v arguments, got %d", n, cmd.name, counts, len(fields)-1)
		}
		for _, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			cmd.args = append(cmd.args, float32(v))
		}
		cmds = append(cmds, cmd)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

func newPlayer(cfg gesture.Config, frameTime time.Duration) *player {
	p := &player{
		start:     time.Unix(0, 0),
		frameTime: frameTime,
	}
	p.now = p.start
	p.c = gesture.NewTransformer(cfg, p)
	return p
}

func (p *player) Transformed(t transform.Transform) {
	p.frames = append(p.frames, frame{at: p.now.Sub(p.start), t: t})
}

func (p *player) Tapped(pt f32.Point) {
	p.taps = append(p.taps, pt)
}

func (p *player) run(cmds []command) error {
	for _, cmd := range cmds {
		if err := p.exec(cmd); err != nil {
			return fmt.Errorf("line %d: %w", cmd.line, err)
		}
	}
	return nil
}

func (p *player) exec(cmd command) error {
	a := cmd.args
	c := p.c
	switch cmd.name {
	case "size":
		c.SetSize(a[0], a[1])
	case "origin":
		c.SetOrigin(a[0], a[1])
	case "grant":
		if !c.Grant(p.now) {
			return errors.New("gestures are disabled")
		}
	case "move":
		c.Move(p.now, gesture.Sample{Delta: f32.Pt(a[0], a[1])})
	case "pinch":
		c.Move(p.now, gesture.Sample{Pinch: a[0], PrevPinch: a[1], Position: f32.Pt(a[2], a[3])})
	case "release":
		var r gesture.Release
		if len(a) == 2 {
			r.Velocity = f32.Pt(a[0], a[1])
		}
		c.Release(p.now, r)
	case "doubletap":
		c.Grant(p.now)
		c.Release(p.now, gesture.Release{DoubleTap: true, Position: f32.Pt(a[0], a[1])})
	case "tap":
		c.Tap(f32.Pt(a[0], a[1]))
	case "cancel":
		c.Cancel(p.now)
	case "wait":
		end := p.now.Add(time.Duration(a[0] * float32(time.Millisecond)))
		for p.now.Before(end) {
			p.tick()
		}
	case "settle":
		end := p.now.Add(maxSettle)
		for p.tick() {
			if p.now.After(end) {
				return fmt.Errorf("still %v after %v", c.State(), maxSettle)
			}
		}
	case "scale":
		c.SetScale(a[0])
	case "offset":
		c.SetOffset(f32.Pt(a[0], a[1]))
	default:
		panic("unreachable")
	}
	return nil
}

func (p *player) tick() bool {
	p.now = p.now.Add(p.frameTime)
	return p.c.Tick(p.now)
}

func contains(s []int, v int) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
