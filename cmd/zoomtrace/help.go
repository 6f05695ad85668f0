// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The zoomtrace command replays a gesture script against a pan and zoom
transformer and prints every transform it commits.

Usage:

	zoomtrace [flags] [script]

The script is read from the named file, or standard input if none is given.
Each line holds one command; blank lines and lines starting with # are
ignored. Positions are screen coordinates in pixels.

	size <width> <height>        set the viewport size
	origin <x> <y>               set the screen position of the viewport
	grant                        start a drag
	move <dx> <dy>               drag by (dx, dy)
	pinch <ratio> <prev> <x> <y> pinch from span prev to ratio around (x, y)
	release [<vx> <vy>]          end the drag with a velocity in px/ms
	doubletap <x> <y>            double tap at (x, y)
	tap <x> <y>                  confirmed single tap at (x, y)
	cancel                       cancel the drag
	wait <ms>                    advance time, ticking every frame
	settle                       tick until flings and animations end
	scale <s>                    set the scale
	offset <x> <y>               set the offset

The -aspect, -maxscale, -overscroll, -resistance and -duration flags configure
the transformer. The -o flag names a directory that receives a PNG rendering
of every committed frame.
`
