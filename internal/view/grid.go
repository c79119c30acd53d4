package view

import (
	"unicode/utf8"

	termbox "github.com/nsf/termbox-go"

	"github.com/jcorbin/endlessgrid/point"
)

// Grid represents a sized buffer of terminal cells.
type Grid struct {
	Size point.Point
	Data []termbox.Cell
}

// MakeGrid makes a new Grid with the given size.
func MakeGrid(sz point.Point) Grid {
	g := Grid{Size: sz}
	g.Data = make([]termbox.Cell, int(sz.X)*int(sz.Y))
	return g
}

// Rows returns the n rows starting at row y; it shares cells with g.
func (g Grid) Rows(y, n int) Grid {
	w := int(g.Size.X)
	return Grid{Size: point.Pt(g.Size.X, int32(n)), Data: g.Data[y*w : (y+n)*w]}
}

// Clear blanks every cell.
func (g Grid) Clear() {
	for i := range g.Data {
		g.Data[i] = termbox.Cell{}
	}
}

// Align serves to align text when laying it out in a grid row.
type Align uint8

const (
	// AlignLeft aligns text to the left in a row.
	AlignLeft Align = iota

	// AlignCenter aligns text to the center in a row.
	AlignCenter

	// AlignRight aligns text to the right in a row.
	AlignRight
)

func (g Grid) offset(x, y int) int { return y*int(g.Size.X) + x }

// Contains reports whether x, y falls within the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < int(g.Size.X) && y < int(g.Size.Y)
}

// Get gets a cell in the grid.
func (g Grid) Get(x, y int) termbox.Cell {
	return g.Data[g.offset(x, y)]
}

// Set sets a cell in the grid.
func (g Grid) Set(x, y int, ch rune, fg, bg termbox.Attribute) {
	g.Data[g.offset(x, y)] = termbox.Cell{Ch: ch, Fg: fg, Bg: bg}
}

// Merge merges data into a cell in the grid.
func (g Grid) Merge(x, y int, ch rune, fg, bg termbox.Attribute) {
	i := g.offset(x, y)
	if ch != 0 {
		g.Data[i].Ch = ch
	}
	if fg != 0 {
		g.Data[i].Fg = fg
	}
	if bg != 0 {
		g.Data[i].Bg = bg
	}
}

// Copy copies another grid into this one, centered and clipped as necessary.
func (g Grid) Copy(og Grid) {
	dx := int(g.Size.X-og.Size.X) / 2
	dy := int(g.Size.Y-og.Size.Y) / 2
	for y := 0; y < int(og.Size.Y); y++ {
		ty := y + dy
		if ty < 0 {
			continue
		}
		if ty >= int(g.Size.Y) {
			break
		}
		for x := 0; x < int(og.Size.X); x++ {
			tx := x + dx
			if tx < 0 {
				continue
			}
			if tx >= int(g.Size.X) {
				break
			}
			g.Data[g.offset(tx, ty)] = og.Data[og.offset(x, y)]
		}
	}
}

// WriteString writes and aligns a string into a grid row, truncating at the
// row's end.
func (g Grid) WriteString(y int, align Align, s string) {
	if y < 0 || y >= int(g.Size.Y) {
		return
	}
	n := utf8.RuneCountInString(s)
	var x int
	switch align {
	case AlignCenter:
		x = (int(g.Size.X) - n) / 2
	case AlignRight:
		x = int(g.Size.X) - n
	}
	if x < 0 {
		x = 0
	}
	for _, r := range s {
		if x >= int(g.Size.X) {
			break
		}
		g.Data[g.offset(x, y)].Ch = r
		x++
	}
}
