package view

import (
	"fmt"

	"github.com/jcorbin/endlessgrid/point"
)

// Context is what a Client renders into: text lines around a window onto the
// world. Grid holds the window's cells and Origin is the world point shown
// in its top-left cell.
type Context struct {
	Header []string
	Footer []string
	Logs   []string

	// Avail is the room left for Grid once the header, log tail and footer
	// are laid out.
	Avail point.Point

	Grid   Grid
	Origin point.Point
}

// SetHeader replaces the header lines.
func (ctx *Context) SetHeader(lines ...string) {
	ctx.Header = append(ctx.Header[:0], lines...)
}

// SetFooter replaces the footer lines.
func (ctx *Context) SetFooter(lines ...string) {
	ctx.Footer = append(ctx.Footer[:0], lines...)
}

// Log adds a line to the log; its last few lines show beneath the header.
func (ctx *Context) Log(mess string, args ...interface{}) {
	ctx.Logs = append(ctx.Logs, fmt.Sprintf(mess, args...))
	if n := len(ctx.Logs); n > maxLogLines {
		ctx.Logs = append(ctx.Logs[:0], ctx.Logs[n-maxLogLines:]...)
	}
}

// Frame sizes the window to the smaller of size and Avail (at least one
// cell), clears it, and places focus at its centre.
func (ctx *Context) Frame(focus, size point.Point) {
	size = size.Clamp(point.Pt(1, 1), ctx.Avail.Clamp(point.Pt(1, 1), size))
	if ctx.Grid.Size != size {
		ctx.Grid = MakeGrid(size)
	} else {
		ctx.Grid.Clear()
	}
	ctx.Origin = focus.Sub(point.Pt(size.X/2, size.Y/2))
}

// World returns the world point shown at window cell x, y.
func (ctx *Context) World(x, y int) point.Point {
	return ctx.Origin.Add(point.Pt(int32(x), int32(y)))
}

// Cell returns the window cell showing world point pt; ok is false if pt is
// out of view.
func (ctx *Context) Cell(pt point.Point) (x, y int, ok bool) {
	d := pt.Sub(ctx.Origin)
	x, y = int(d.X), int(d.Y)
	return x, y, ctx.Grid.Contains(x, y)
}

func (ctx *Context) logLines() int {
	if n := len(ctx.Logs); n < minLogLines {
		return n
	}
	return minLogLines
}

// layout sets Avail for a terminal of the given size.
func (ctx *Context) layout(size point.Point) {
	used := len(ctx.Header) + ctx.logLines() + len(ctx.Footer)
	ctx.Avail = size.Sub(point.Pt(0, int32(used))).Clamp(point.Zero, size)
}

// render draws the context into termGrid: header lines then the log tail at
// the top, footer lines right aligned at the bottom, and the window centered
// in the rows between them.
func (ctx *Context) render(termGrid Grid) {
	top := len(ctx.Header) + ctx.logLines()
	bottom := int(termGrid.Size.Y) - len(ctx.Footer)
	if bottom > top {
		termGrid.Rows(top, bottom-top).Copy(ctx.Grid)
	}

	y := 0
	for _, line := range ctx.Header {
		termGrid.WriteString(y, AlignLeft, line)
		y++
	}
	for _, line := range ctx.Logs[len(ctx.Logs)-ctx.logLines():] {
		termGrid.WriteString(y, AlignLeft, line)
		y++
	}
	for i, j := len(ctx.Footer)-1, 1; i >= 0; i, j = i-1, j+1 {
		termGrid.WriteString(int(termGrid.Size.Y)-j, AlignRight, ctx.Footer[i])
	}
}
