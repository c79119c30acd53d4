package main

import (
	"fmt"
	"os"

	termbox "github.com/nsf/termbox-go"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/jcorbin/endlessgrid/grid"
	"github.com/jcorbin/endlessgrid/internal/level"
	"github.com/jcorbin/endlessgrid/internal/view"
	"github.com/jcorbin/endlessgrid/point"
)

type game struct {
	log      *zap.Logger
	lvl      *level.Level
	player   point.Point
	viewDist int32
	savePath string

	seen mapset.Set[point.Point]
	msgs []string
}

func newGame(log *zap.Logger, lvl *level.Level, viewDist int32, savePath string) *game {
	g := &game{
		log:      log,
		lvl:      lvl,
		player:   lvl.Player,
		viewDist: viewDist,
		savePath: savePath,
	}
	g.look()
	return g
}

func (g *game) say(mess string, args ...interface{}) {
	g.msgs = append(g.msgs, fmt.Sprintf(mess, args...))
}

func (g *game) look() {
	g.seen = level.FieldOfView(g.lvl.Grid, g.player, g.viewDist)
}

func (g *game) move(d point.Point) bool {
	next := g.player.Add(d)
	tile := g.lvl.Grid.GetMut(next)
	if tile == nil {
		g.say("nothing there")
		return false
	}
	if tile.Blocks {
		g.say("blocked by %q", tile.Glyph)
		return false
	}
	g.player = next
	g.look()
	return true
}

func (g *game) travel() bool {
	path, ok := g.lvl.Grid.AStar(g.player, g.lvl.Target, level.Passable)
	if !ok {
		g.log.Info("no path", zap.Stringer("from", g.player), zap.Stringer("to", g.lvl.Target))
		g.say("no way to %v", g.lvl.Target)
		return false
	}
	g.log.Debug("travel", zap.Stringer("from", g.player), zap.Int("steps", len(path)-1))
	g.player = path[len(path)-1]
	g.look()
	g.say("travelled %d steps", len(path)-1)
	return true
}

func (g *game) save() error {
	f, err := os.Create(g.savePath)
	if err != nil {
		return err
	}
	if err := g.lvl.Grid.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	g.log.Info("saved",
		zap.String("path", g.savePath),
		zap.Int("cells", g.lvl.Grid.Len()),
		zap.Int("chunks", g.lvl.Grid.NumChunks()))
	g.say("saved to %s", g.savePath)
	return nil
}

func (g *game) restore() error {
	f, err := os.Open(g.savePath)
	if err != nil {
		return err
	}
	defer f.Close()
	restored, err := grid.Decode[level.Tile](f)
	if err != nil {
		return err
	}
	g.lvl.Grid = restored
	if _, ok := restored.Get(g.player); !ok {
		g.player = g.lvl.Player
	}
	g.look()
	g.log.Info("restored", zap.String("path", g.savePath), zap.Int("cells", restored.Len()))
	g.say("restored from %s", g.savePath)
	return nil
}

func (g *game) HandleKey(v *view.View, k view.KeyEvent) error {
	defer g.flush(v)
	if k.Key == termbox.KeyEsc || k.Ch == 'q' {
		return view.Stop
	}
	if d, ok := parseMove(k); ok {
		g.move(d)
		return nil
	}
	switch k.Ch {
	case 't':
		g.travel()
	case 's':
		if err := g.save(); err != nil {
			g.log.Error("save failed", zap.Error(err))
			g.say("save failed: %v", err)
		}
	case 'r':
		if err := g.restore(); err != nil {
			g.log.Error("restore failed", zap.Error(err))
			g.say("restore failed: %v", err)
		}
	}
	return nil
}

// flush hands pending messages to the view's log.
func (g *game) flush(v *view.View) {
	for _, mess := range g.msgs {
		v.Log("%s", mess)
	}
	g.msgs = g.msgs[:0]
}

func (g *game) Render(ctx *view.Context) error {
	ctx.SetHeader(fmt.Sprintf("%s @%v target %v  %d cells in %d chunks",
		g.lvl.Name, g.player, g.lvl.Target, g.lvl.Grid.Len(), g.lvl.Grid.NumChunks()))
	ctx.SetFooter("hjkl/arrows move  t travel  s save  r restore  q quit")

	side := 2*g.viewDist + 1
	ctx.Frame(g.player, point.Pt(side, side))
	for y := 0; y < int(ctx.Grid.Size.Y); y++ {
		for x := 0; x < int(ctx.Grid.Size.X); x++ {
			g.renderCell(ctx.Grid, x, y, ctx.World(x, y))
		}
	}
	return nil
}

func (g *game) renderCell(buf view.Grid, x, y int, pt point.Point) {
	switch {
	case pt == g.player:
		buf.Set(x, y, '@', termbox.ColorYellow|termbox.AttrBold, 0)
	case !g.seen.Has(pt):
	case pt == g.lvl.Target:
		buf.Set(x, y, '>', termbox.ColorGreen, 0)
	default:
		if tile, ok := g.lvl.Grid.Get(pt); ok {
			fg := termbox.ColorWhite
			if !tile.Blocks {
				fg = termbox.ColorBlue
			}
			buf.Set(x, y, tile.Glyph, fg, 0)
		}
	}
}

func (g *game) Close() error { return nil }

func parseMove(k view.KeyEvent) (point.Point, bool) {
	switch k.Key {
	case termbox.KeyArrowDown:
		return point.Pt(0, 1), true
	case termbox.KeyArrowUp:
		return point.Pt(0, -1), true
	case termbox.KeyArrowLeft:
		return point.Pt(-1, 0), true
	case termbox.KeyArrowRight:
		return point.Pt(1, 0), true
	}
	switch k.Ch {
	case 'h':
		return point.Pt(-1, 0), true
	case 'j':
		return point.Pt(0, 1), true
	case 'k':
		return point.Pt(0, -1), true
	case 'l':
		return point.Pt(1, 0), true
	}
	return point.Zero, false
}
