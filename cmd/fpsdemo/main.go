package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fpsplayer/internal/config"
	"fpsplayer/internal/game"
	"fpsplayer/internal/world"
)

func main() {
	configPath := flag.String("config", "assets/config/player.yaml", "player tuning and key bindings (YAML)")
	levelPath := flag.String("level", "assets/levels/default.json", "level file (JSON); empty for the built-in course")
	watch := flag.Bool("watch", true, "reload the config file when it changes")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("Config: %s not found, using defaults", *configPath)
		defaults := config.Default()
		cfg = &defaults
		*watch = false
	case err != nil:
		log.Fatal(err)
	}

	level := world.DefaultLevel()
	if *levelPath != "" {
		level, err = world.LoadLevel(*levelPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	g, err := game.New(cfg, level)
	if err != nil {
		log.Fatal(err)
	}
	if *watch {
		if err := g.WatchConfig(*configPath); err != nil {
			log.Printf("Config: hot reload disabled: %v", err)
		}
	}
	g.Run()
}
