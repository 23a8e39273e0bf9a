package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arena/config"
)

func main() {
	configPath := flag.String("config", "", "arena config file (YAML); embedded defaults when empty")
	watch := flag.Bool("watch", false, "reload the palette when the config file changes")
	debug := flag.Bool("debug", false, "draw collision shapes and frame timing")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(cfg, *configPath, *debug)
	if err != nil {
		log.Fatalf("arena: startup: %v", err)
	}
	defer game.Close()

	if *watch {
		if err := game.Watch(); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	// one Update per displayed frame
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
