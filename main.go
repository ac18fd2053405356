// Occupy Chess - a territory-control chess variant built with Ebitengine
package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/occupychess/internal/config"
	"github.com/hailam/occupychess/internal/game"
	"github.com/hailam/occupychess/internal/session"
	"github.com/hailam/occupychess/internal/storage"
	"github.com/hailam/occupychess/internal/ui"
)

func main() {
	cfg, err := config.Load("occupychess", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	opts := []session.Option{}
	if !cfg.Autosave {
		opts = append(opts, session.WithoutAutosave())
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Printf("[STORAGE] Warning: %v (saved games disabled)", err)
	}
	if store != nil {
		defer store.Close()
		opts = append(opts, session.WithStore(store))
	}

	s := session.New(game.New(), opts...)
	if cfg.Resume && store != nil {
		if err := s.Resume(); err != nil {
			log.Printf("[STORAGE] No autosave to resume: %v", err)
		} else {
			log.Printf("[STORAGE] Resumed autosave, %v to act", s.Game().Turn())
		}
	}

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Occupy Chess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(ui.NewGame(s, !cfg.Sound)); err != nil {
		log.Fatal(err)
	}
}

// openStore returns nil without error when storage is turned off.
func openStore(cfg config.Config) (*storage.Storage, error) {
	switch {
	case cfg.NoStore:
		return nil, nil
	case cfg.Memory:
		return storage.OpenInMemory()
	default:
		return storage.Open(cfg.DataDir)
	}
}
