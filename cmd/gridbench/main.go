package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/jcorbin/endlessgrid/grid"
	"github.com/jcorbin/endlessgrid/internal/config"
	"github.com/jcorbin/endlessgrid/internal/logging"
	"github.com/jcorbin/endlessgrid/point"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		size       = flag.Int("size", 0, "fill [-size, size) on both axes, overrides bench.size")
		update     = flag.Int("update", 0, "update [-update, update) on both axes, overrides bench.update_size")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridbench: %v\n", err)
		os.Exit(1)
	}
	if *size > 0 {
		cfg.Bench.Size = *size
	}
	if *update > 0 {
		cfg.Bench.UpdateSize = *update
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridbench: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	g := fill(log, int32(cfg.Bench.Size))
	set(log, g, int32(cfg.Bench.UpdateSize))
}

func fill(log *zap.Logger, size int32) *grid.Grid[int32] {
	g := grid.New[int32]()
	start := time.Now()
	for y := -size; y < size; y++ {
		for x := -size; x < size; x++ {
			g.Insert(point.Pt(x, y), 0)
		}
	}
	log.Info("initialized",
		zap.Int32("size", size),
		zap.Duration("took", time.Since(start)),
		zap.Int("cells", g.Len()),
		zap.Int("chunks", g.NumChunks()))
	return g
}

func set(log *zap.Logger, g *grid.Grid[int32], size int32) {
	start := time.Now()
	missing := 0
	for y := -size; y < size; y++ {
		for x := -size; x < size; x++ {
			if v := g.GetMut(point.Pt(x, y)); v != nil {
				*v = 1
			} else {
				missing++
			}
		}
	}
	log.Info("updated",
		zap.Int32("size", size),
		zap.Duration("took", time.Since(start)),
		zap.Int("missing", missing))
}
