package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/arena/physics"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Fatalf("unexpected window %+v", cfg.Window)
	}
	if math.Abs(cfg.FixedStep()-1.0/60) > 1e-12 {
		t.Fatalf("expected 1/60 step, got %v", cfg.FixedStep())
	}
	if cfg.Physics.MaxSubSteps != 10 {
		t.Fatalf("expected 10 sub-steps, got %d", cfg.Physics.MaxSubSteps)
	}

	opts := cfg.PhysicsOptions()
	want := physics.DefaultOptions()
	if opts != want {
		t.Fatalf("expected physics options %+v, got %+v", want, opts)
	}

	layout := cfg.Layout()
	if layout != physics.DefaultLayout(1280) {
		t.Fatalf("unexpected layout %+v", layout)
	}

	if cfg.Controls.Left != "ArrowLeft" || cfg.Controls.StepX != 1 || cfg.Controls.StepY != 10 {
		t.Fatalf("unexpected controls %+v", cfg.Controls)
	}

	palette, err := cfg.RenderPalette()
	if err != nil {
		t.Fatalf("RenderPalette: %v", err)
	}
	if palette[physics.KindPlayer].StrokeWidth != 4 || palette[physics.KindWall].StrokeWidth != 0 {
		t.Fatalf("unexpected palette %+v", palette)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "arena" {
		t.Fatalf("expected embedded defaults, got %+v", cfg.Window)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "arena.yaml", `
window:
  width: 800
physics:
  gravity:
    y: -500
  max_sub_steps: 4
palette:
  wall:
    fill: "#123456"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 720 {
		t.Fatalf("expected width override only, got %+v", cfg.Window)
	}
	if cfg.Physics.Gravity.Y != -500 || cfg.Physics.Friction != 0.9 {
		t.Fatalf("unexpected physics %+v", cfg.Physics)
	}
	if cfg.Physics.MaxSubSteps != 4 {
		t.Fatalf("expected 4 sub-steps, got %d", cfg.Physics.MaxSubSteps)
	}
	if cfg.Palette.Wall.Fill != "#123456" || cfg.Palette.Player.Fill != "#66CCFF" {
		t.Fatalf("unexpected palette %+v", cfg.Palette)
	}
	if x := cfg.Layout().ViewportWidth; x != 800 {
		t.Fatalf("expected layout width 800, got %v", x)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"zero_tick_rate", "physics:\n  tick_rate: 0\n", true},
		{"negative_sub_steps", "physics:\n  max_sub_steps: -1\n", true},
		{"friction_above_one", "physics:\n  friction: 1.5\n", true},
		{"negative_restitution", "physics:\n  restitution: -0.1\n", true},
		{"zero_window", "window:\n  height: 0\n", true},
		{"infinite_tick_rate", "physics:\n  tick_rate: .inf\n", true},
		{"nan_gravity", "physics:\n  gravity:\n    y: .nan\n", true},
		{"infinite_gravity", "physics:\n  gravity:\n    x: -.inf\n", true},
		{"negative_step_x", "controls:\n  step_x: -1\n", true},
		{"nan_step_y", "controls:\n  step_y: .nan\n", true},
		{"bad_color", "palette:\n  player:\n    fill: blue\n", true},
		{"bad_yaml", "physics: [\n", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeFile(t, dir, c.name+".yaml", c.body)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if errors.Is(err, ErrInvalid) != c.invalid {
				t.Fatalf("errors.Is(err, ErrInvalid) = %v, want %v (err=%v)", !c.invalid, c.invalid, err)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
