package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/jcorbin/endlessgrid/grid"
	"github.com/jcorbin/endlessgrid/internal/config"
	"github.com/jcorbin/endlessgrid/internal/logging"
	"github.com/jcorbin/endlessgrid/point"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		fillSize   = flag.Int("fill", 0, "fill [0, fill) on both axes, overrides ray.fill_size")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "raycast: %v\n", err)
		os.Exit(1)
	}
	if *fillSize > 0 {
		cfg.Ray.FillSize = *fillSize
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "raycast: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	g := coordGrid(int32(cfg.Ray.FillSize))
	start := point.V(cfg.Ray.StartX, cfg.Ray.StartY)
	end := point.V(cfg.Ray.EndX, cfg.Ray.EndY)
	n := trace(os.Stdout, g, start, end)
	log.Info("cast",
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Int("cells", n))
}

// coordGrid fills [0, size) on both axes with each cell's own coordinate.
func coordGrid(size int32) *grid.Grid[point.Point] {
	g := grid.New[point.Point]()
	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			g.Insert(point.Pt(x, y), point.Pt(x, y))
		}
	}
	return g
}

func trace(w io.Writer, g *grid.Grid[point.Point], start, end point.Vec) (n int) {
	g.CastRay(start, end, func(hit grid.RayHit[point.Point]) bool {
		fmt.Fprintf(w, "%v value=%v dist=%.3f pos=%v\n", hit.Cell, *hit.Value, hit.Distance, hit.Pos)
		n++
		return true
	})
	return n
}
