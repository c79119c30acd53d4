package level

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jcorbin/endlessgrid/grid"
	"github.com/jcorbin/endlessgrid/point"
)

// Tile is the cell value of a level grid.
type Tile struct {
	Glyph  rune `msgpack:"g"`
	Blocks bool `msgpack:"b"`
}

// Level is a loaded map: the tile grid plus the player's starting point and a
// travel target.
type Level struct {
	Name   string
	Player point.Point
	Target point.Point
	Grid   *grid.Grid[Tile]
}

type levelPoint struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

func (lp levelPoint) point() point.Point { return point.Pt(lp.X, lp.Y) }

type legendEntry struct {
	Blocks bool   `yaml:"blocks"`
	Glyph  string `yaml:"glyph"`
}

type levelFile struct {
	Name   string                 `yaml:"name"`
	Origin levelPoint             `yaml:"origin"`
	Player levelPoint             `yaml:"player"`
	Target levelPoint             `yaml:"target"`
	Legend map[string]legendEntry `yaml:"legend"`
	Rows   []string               `yaml:"rows"`
}

// Load reads a YAML level file.
func Load(path string, log *zap.Logger) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	lvl, err := Parse(data, log)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// Parse decodes YAML level data. Each row character is looked up in the
// legend and inserted at origin plus its column and row; spaces leave the
// cell ungenerated, and characters missing from the legend are logged and
// skipped.
func Parse(data []byte, log *zap.Logger) (*Level, error) {
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if len(lf.Rows) == 0 {
		return nil, fmt.Errorf("level %q has no rows", lf.Name)
	}

	legend := make(map[rune]Tile, len(lf.Legend))
	for key, ent := range lf.Legend {
		r, n := utf8.DecodeRuneInString(key)
		if n == 0 || n != len(key) {
			return nil, fmt.Errorf("legend key %q must be a single character", key)
		}
		tile := Tile{Glyph: r, Blocks: ent.Blocks}
		if ent.Glyph != "" {
			tile.Glyph, _ = utf8.DecodeRuneInString(ent.Glyph)
		}
		legend[r] = tile
	}

	g := grid.New[Tile]()
	origin := lf.Origin.point()
	unknown := 0
	for y, row := range lf.Rows {
		x := 0
		for _, r := range row {
			pt := origin.Add(point.Pt(int32(x), int32(y)))
			x++
			if r == ' ' {
				continue
			}
			tile, ok := legend[r]
			if !ok {
				unknown++
				log.Warn("unknown level glyph",
					zap.String("level", lf.Name),
					zap.String("glyph", string(r)),
					zap.Int32("x", pt.X),
					zap.Int32("y", pt.Y))
				continue
			}
			g.Insert(pt, tile)
		}
	}

	lvl := &Level{
		Name:   lf.Name,
		Player: lf.Player.point(),
		Target: lf.Target.point(),
		Grid:   g,
	}
	log.Debug("level parsed",
		zap.String("level", lvl.Name),
		zap.Int("cells", g.Len()),
		zap.Int("chunks", g.NumChunks()),
		zap.Int("unknown", unknown))
	return lvl, nil
}

// Default builds a size by size room with a wall across row 8, the player in
// the middle and the target in the far corner.
func Default(size int32) *Level {
	g := grid.New[Tile]()
	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			if y == 8 {
				g.Insert(point.Pt(x, y), Tile{Glyph: '#', Blocks: true})
			} else {
				g.Insert(point.Pt(x, y), Tile{Glyph: '.'})
			}
		}
	}
	return &Level{
		Name:   "room",
		Player: point.Pt(size/2, size/2),
		Target: point.Pt(size-2, size-2),
		Grid:   g,
	}
}

// Passable reports whether a path may enter a tile.
func Passable(_ point.Point, t *Tile) bool { return !t.Blocks }
