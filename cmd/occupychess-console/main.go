package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hailam/occupychess/internal/config"
	"github.com/hailam/occupychess/internal/console"
	"github.com/hailam/occupychess/internal/game"
	"github.com/hailam/occupychess/internal/session"
	"github.com/hailam/occupychess/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(os.Stderr)

	cfg, err := config.Load("occupychess-console", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Printf("[STORAGE] Warning: %v (saved games disabled)", err)
	}

	opts := []session.Option{}
	if !cfg.Autosave {
		opts = append(opts, session.WithoutAutosave())
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

	c := console.New(s, os.Stdout)
	fmt.Fprint(os.Stdout, console.Render(s.Game()))
	if err := c.Run(os.Stdin); err != nil {
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
