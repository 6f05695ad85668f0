// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"gioui.org/x/zoom/f32"
	"gioui.org/x/zoom/transform"
)

var (
	background = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	checkLight = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	checkDark  = color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}
)

// checkerboard returns a square image of n by n cells of size px.
func checkerboard(n, px int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n*px, n*px))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := checkLight
			if (x+y)%2 == 1 {
				c = checkDark
			}
			cell := image.Rect(x*px, y*px, (x+1)*px, (y+1)*px)
			draw.Draw(img, cell, &image.Uniform{c}, image.Point{}, draw.Src)
		}
	}
	return img
}

// render draws src stretched over the content rectangle and transformed
// by t into a viewport of the given size.
func render(src image.Image, size image.Point, content f32.Rectangle, t transform.Transform) *image.NRGBA {
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	draw.Draw(dst, dst.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)
	sb := src.Bounds()
	if sb.Empty() || content.Empty() {
		return dst
	}
	stretch := f32.Pt(content.Dx()/float32(sb.Dx()), content.Dy()/float32(sb.Dy()))
	place := f32.Affine2D{}.Offset(f32.Pt(float32(-sb.Min.X), float32(-sb.Min.Y))).
		Scale(f32.Point{}, stretch).
		Offset(content.Min)
	s2d := t.Affine(content).Mul(place)
	draw.BiLinear.Transform(dst, s2d.Aff3(), src, sb, draw.Over, nil)
	return dst
}

// writeFrames renders every frame to a numbered PNG file in dir.
func writeFrames(dir string, src image.Image, size image.Point, content f32.Rectangle, frames []frame) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	var renders errgroup.Group
	renders.SetLimit(runtime.NumCPU())
	for i, fr := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame%04d.png", i))
		t := fr.t
		renders.Go(func() (err error) {
			img := render(src, size, content, t)
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := f.Close(); err == nil {
					err = cerr
				}
			}()
			return png.Encode(f, img)
		})
	}
	return renders.Wait()
}
