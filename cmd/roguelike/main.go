package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jcorbin/endlessgrid/internal/config"
	"github.com/jcorbin/endlessgrid/internal/level"
	"github.com/jcorbin/endlessgrid/internal/logging"
	"github.com/jcorbin/endlessgrid/internal/view"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		levelPath  = flag.String("level", "", "YAML level file, overrides world.level_path")
		savePath   = flag.String("save", "", "save file, overrides world.save_path")
		logPath    = flag.String("log", "", "write logs to this file")
	)
	flag.Parse()

	if err := run(*configPath, *levelPath, *savePath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "roguelike: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, levelPath, savePath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if levelPath != "" {
		cfg.World.LevelPath = levelPath
	}
	if savePath != "" {
		cfg.World.SavePath = savePath
	}

	log, closeLog, err := logging.ToFile(cfg.Logging, logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	lvl := level.Default(32)
	if cfg.World.LevelPath != "" {
		if lvl, err = level.Load(cfg.World.LevelPath, log); err != nil {
			return err
		}
	}
	log.Info("level ready",
		zap.String("level", lvl.Name),
		zap.Int("cells", lvl.Grid.Len()),
		zap.Int("chunks", lvl.Grid.NumChunks()))

	var v view.View
	return v.Run(newGame(log, lvl, int32(cfg.World.ViewDistance), cfg.World.SavePath))
}
