// Command particlelife runs a particle life simulation in a window.
//
// Usage
//
//	particlelife [flags]
//
// Flags override the values of the optional TOML config file given with
// -config. With -seed the run, and every new pattern drawn from it, can be
// replayed exactly; without it a fresh seed is drawn and logged.
//
// Keys
//
//	R      replay the current seed
//	N      new pattern (fresh seed)
//	Space  pause / resume
//	Right  single step while paused
//	H      cycle visualization (points, trails)
//	Esc    quit
//
// The mouse wheel zooms and dragging pans. The world is a torus and is drawn
// tiled, so no edge is ever visible.
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particlelife"
	"github.com/olivierh59500/particlelife/internal/config"
)

var (
	configPath = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.String("seed", "", "Initial seed for the random number generator")
	sizeFlag   = flag.String("size", "", "Window width and height in pixels, as WIDTHxHEIGHT")
	fullscreen = flag.Bool("fullscreen", false, "Run in full screen mode (Esc quits)")
	groups     = flag.Int("groups", 0, "Number of particle groups (0 = config value)")
	headless   = flag.Bool("headless", false, "Run without a window")
	steps      = flag.Int("steps", 600, "Number of steps to run with -headless")
	logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "particlelife",
	})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("bad log level", "level", *logLevel, "err", err)
	}
	logger.SetLevel(level)

	conf, err := loadConfig()
	if err != nil {
		flag.Usage()
		logger.Fatal("bad configuration", "err", err)
	}
	seed, err := config.ParseSeed(*seedFlag)
	if err != nil {
		flag.Usage()
		logger.Fatal("bad seed", "err", err)
	}

	width, height := conf.Window.Width, conf.Window.Height
	if conf.Window.Fullscreen && !*headless {
		width, height = ebiten.Monitor().Size()
	}

	engine := particlelife.NewEngine(conf.Settings(width, height), particlelife.WithLogger(logger))
	engine.Start(seed)

	if *headless {
		runHeadless(engine, conf, *steps, logger)
		return
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(conf.Window.Title)
	ebiten.SetTPS(conf.Window.TPS)
	ebiten.SetFullscreen(conf.Window.Fullscreen)

	if err := ebiten.RunGame(NewGame(engine, conf, logger)); err != nil {
		logger.Fatal("game loop", "err", err)
	}
}

// loadConfig reads the config file, if any, and applies the flags over it
func loadConfig() (*config.Config, error) {
	conf := config.Default()
	if *configPath != "" {
		var err error
		if conf, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}
	if *sizeFlag != "" {
		w, h, err := config.ParseSize(*sizeFlag)
		if err != nil {
			return nil, err
		}
		conf.Window.Width, conf.Window.Height = w, h
	}
	if *fullscreen {
		conf.Window.Fullscreen = true
	}
	if *groups != 0 {
		conf.Simulation.Groups = *groups
	}
	return conf, conf.Validate()
}
