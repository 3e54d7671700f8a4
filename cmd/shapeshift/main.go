package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"shapeshift/internal/config"
	"shapeshift/internal/graphics"
	"shapeshift/internal/logger"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML settings file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error); overrides the config file")
	effectsDir := flag.String("effects", "", "directory of <effect>.vert/<effect>.frag overrides; overrides the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("load config", "path", *configPath, "err", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *effectsDir != "" {
		cfg.Effects.Dir = *effectsDir
	}

	lg, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File, Prefix: "shapeshift"})
	if err != nil {
		log.Fatal("create logger", "err", err)
	}
	defer lg.Close()

	opts := graphics.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
		TargetFPS: cfg.Window.TargetFPS,
	}
	start := func(width, height int) (graphics.App, error) {
		return newApp(cfg, *configPath, lg, width, height)
	}
	if err := graphics.Run(opts, lg.Logger, start); err != nil {
		lg.Error("shapeshift stopped", "err", err)
		lg.Close()
		os.Exit(1)
	}
}
