package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sensorbot-sim/internal/config"
	"sensorbot-sim/internal/scene"
	"sensorbot-sim/internal/simulation"
	"sensorbot-sim/internal/visualization"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults are built in)")
	scenePath := flag.String("scene", "", "path to a YAML scene file (overrides the config's scene)")
	flag.Parse()

	// --- Configuration ---
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}

	// --- Scene ---
	doc, err := loadScene(cfg.Scene)
	if err != nil {
		log.Fatalf("Error loading scene: %v", err)
	}

	// --- Controller ---
	// A scene missing required elements is still shown, with no input wired.
	renderer := visualization.NewRenderer(doc, visualization.NewRotationProjector(), cfg)
	if _, err := simulation.NewSimulation(doc, cfg); err != nil {
		var missing *scene.MissingElementsError
		if !errors.As(err, &missing) {
			log.Fatalf("Error creating simulation: %v", err)
		}
		log.Printf("sensorbot: %v; scene left inert", err)
		renderer.SetStatus(fmt.Sprintf("inert: %d missing element(s)", len(missing.IDs)))
	}

	// --- UI ---
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(renderer); err != nil {
		log.Fatal(err)
	}
}

func loadScene(path string) (*scene.Document, error) {
	if path == "" {
		return scene.Default()
	}
	return scene.Load(path)
}
