package view

import (
	"strings"
	"testing"

	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/endlessgrid/point"
)

func gridLines(g Grid) []string {
	lines := make([]string, g.Size.Y)
	for y := range lines {
		var sb strings.Builder
		for x := 0; x < int(g.Size.X); x++ {
			ch := g.Get(x, y).Ch
			if ch == 0 {
				ch = ' '
			}
			sb.WriteRune(ch)
		}
		lines[y] = sb.String()
	}
	return lines
}

func TestGrid_writeString(t *testing.T) {
	g := MakeGrid(point.Pt(8, 3))
	g.WriteString(0, AlignLeft, "ab")
	g.WriteString(1, AlignCenter, "cd")
	g.WriteString(2, AlignRight, "toolongline")
	g.WriteString(5, AlignLeft, "offgrid")
	assert.Equal(t, []string{
		"ab      ",
		"   cd   ",
		"toolongl",
	}, gridLines(g))

	wide := MakeGrid(point.Pt(4, 1))
	wide.WriteString(0, AlignRight, "·#")
	assert.Equal(t, []string{"  ·#"}, gridLines(wide), "aligned by runes, not bytes")
}

func TestGrid_copy(t *testing.T) {
	small := MakeGrid(point.Pt(2, 2))
	small.Set(0, 0, 'a', termbox.ColorRed, 0)
	small.Set(1, 1, 'b', 0, 0)

	g := MakeGrid(point.Pt(6, 4))
	g.Copy(small)
	assert.Equal(t, []string{
		"      ",
		"  a   ",
		"   b  ",
		"      ",
	}, gridLines(g))
	assert.Equal(t, termbox.ColorRed, g.Get(2, 1).Fg)

	big := MakeGrid(point.Pt(5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			big.Set(x, y, rune('a'+y*5+x), 0, 0)
		}
	}
	clip := MakeGrid(point.Pt(3, 3))
	clip.Copy(big)
	assert.Equal(t, []string{
		"ghi",
		"lmn",
		"qrs",
	}, gridLines(clip))
}

func TestGrid_merge(t *testing.T) {
	g := MakeGrid(point.Pt(1, 1))
	g.Set(0, 0, 'x', termbox.ColorBlue, termbox.ColorBlack)
	g.Merge(0, 0, 0, termbox.ColorYellow, 0)
	assert.Equal(t, termbox.Cell{Ch: 'x', Fg: termbox.ColorYellow, Bg: termbox.ColorBlack}, g.Get(0, 0))
	assert.True(t, g.Contains(0, 0))
	assert.False(t, g.Contains(1, 0))
	assert.False(t, g.Contains(0, -1))
}

func TestContext_render(t *testing.T) {
	var ctx Context
	ctx.SetHeader("hp 3")
	ctx.SetFooter("q quits")
	for i := 0; i < 7; i++ {
		ctx.Log("log %d", i)
	}
	ctx.Grid = MakeGrid(point.Pt(1, 1))
	ctx.Grid.Set(0, 0, '@', 0, 0)

	term := MakeGrid(point.Pt(13, 9))
	ctx.render(term)
	assert.Equal(t, []string{
		"hp 3         ",
		"log 2        ",
		"log 3        ",
		"log 4        ",
		"log 5        ",
		"log 6        ",
		"      @      ",
		"             ",
		"      q quits",
	}, gridLines(term))
}

func TestContext_layout(t *testing.T) {
	var ctx Context
	ctx.layout(point.Pt(40, 20))
	assert.Equal(t, point.Pt(40, 20), ctx.Avail)

	ctx.SetHeader("a", "b")
	ctx.SetFooter("c")
	ctx.Log("one")
	ctx.layout(point.Pt(40, 20))
	assert.Equal(t, point.Pt(40, 16), ctx.Avail)

	for i := 0; i < 10; i++ {
		ctx.Log("more")
	}
	ctx.layout(point.Pt(40, 20))
	assert.Equal(t, point.Pt(40, 12), ctx.Avail, "only the log tail takes room")

	ctx.layout(point.Pt(40, 4))
	assert.Equal(t, point.Pt(40, 0), ctx.Avail)
}

func TestContext_window(t *testing.T) {
	ctx := Context{Avail: point.Pt(80, 5)}
	ctx.Frame(point.Pt(-10, 100), point.Pt(9, 9))
	assert.Equal(t, point.Pt(9, 5), ctx.Grid.Size, "clipped to the available rows")
	assert.Equal(t, point.Pt(-14, 98), ctx.Origin)
	assert.Equal(t, point.Pt(-10, 100), ctx.World(4, 2))

	x, y, ok := ctx.Cell(point.Pt(-10, 100))
	assert.True(t, ok)
	assert.Equal(t, 4, x)
	assert.Equal(t, 2, y)
	_, _, ok = ctx.Cell(point.Pt(-5, 100))
	assert.False(t, ok)

	ctx.Grid.Set(0, 0, 'x', 0, 0)
	ctx.Frame(point.Pt(-10, 100), point.Pt(9, 9))
	assert.Equal(t, rune(0), ctx.Grid.Get(0, 0).Ch, "reframing clears")

	ctx.Avail = point.Zero
	ctx.Frame(point.Zero, point.Pt(9, 9))
	assert.Equal(t, point.Pt(1, 1), ctx.Grid.Size)
}

func TestGrid_rows(t *testing.T) {
	g := MakeGrid(point.Pt(3, 4))
	rows := g.Rows(1, 2)
	assert.Equal(t, point.Pt(3, 2), rows.Size)
	rows.Set(2, 1, 'z', 0, 0)
	assert.Equal(t, 'z', g.Get(2, 2).Ch)
}

func TestView_log(t *testing.T) {
	var v View
	v.Log("moved %d", 3)
	logs := v.Logs()
	assert.Equal(t, []string{"moved 3"}, logs)
	logs[0] = "changed"
	assert.Equal(t, []string{"moved 3"}, v.Logs())
}
