package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arena/config"
	"github.com/milk9111/arena/input"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		name    string
		want    input.Key
		wantErr bool
	}{
		{"ArrowLeft", input.Key(ebiten.KeyArrowLeft), false},
		{"ArrowRight", input.Key(ebiten.KeyArrowRight), false},
		{"Space", input.Key(ebiten.KeySpace), false},
		{"NotAKey", 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parseKey(c.name)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestNewGame(t *testing.T) {
	g, err := NewGame(config.Default(), "", false)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	world := g.sim.World()
	if n := len(world.Entities()); n != 4 {
		t.Fatalf("expected 4 entities, got %d", n)
	}
	if x := world.Walls()[1].Position().X; x != 1280-30 {
		t.Fatalf("expected right wall at 1250, got %v", x)
	}
	if w, h := g.LayoutF(1, 1); w != 1280 || h != 720 {
		t.Fatalf("expected 1280x720 layout, got %vx%v", w, h)
	}
	if err := g.Watch(); err == nil {
		t.Fatalf("expected watch to fail without a config file")
	}
}

func TestNewGameBadControls(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.Up = "Nope"
	if _, err := NewGame(cfg, "", false); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}
