package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestBootstrap(t *testing.T) {
	const viewport = 1024.0
	w, err := Bootstrap(DefaultOptions(), DefaultLayout(viewport))
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if w.Space().Iterations != 20 {
		t.Fatalf("expected 20 iterations, got %d", w.Space().Iterations)
	}

	if p := w.Player().Position(); p.X != 150 || p.Y != 250 {
		t.Fatalf("unexpected player spawn %v", p)
	}
	if p := w.Ground().Position(); p.X != 0 || p.Y != 0 {
		t.Fatalf("unexpected ground origin %v", p)
	}

	walls := w.Walls()
	if len(walls) != 2 {
		t.Fatalf("expected 2 walls, got %d", len(walls))
	}
	if x := walls[0].Position().X; x != 30 {
		t.Fatalf("expected left wall at 30, got %v", x)
	}
	if x := walls[1].Position().X; x != viewport-30 {
		t.Fatalf("expected right wall at %v, got %v", viewport-30, x)
	}

	ents := w.Entities()
	wantKinds := []Kind{KindPlayer, KindWall, KindWall, KindGround}
	if len(ents) != len(wantKinds) {
		t.Fatalf("expected %d entities, got %d", len(wantKinds), len(ents))
	}
	for i, k := range wantKinds {
		if ents[i].Kind() != k {
			t.Fatalf("entity %d: expected %s, got %s", i, k, ents[i].Kind())
		}
	}
}

func TestBootstrapRegistersBodies(t *testing.T) {
	w, err := Bootstrap(DefaultOptions(), DefaultLayout(800))
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	shapes := 0
	w.Space().EachShape(func(s *cp.Shape) {
		if _, ok := s.UserData.(*Entity); ok {
			shapes++
		}
	})
	if shapes != 4 {
		t.Fatalf("expected 4 entity shapes in space, got %d", shapes)
	}

	bodies := 0
	w.Space().EachBody(func(b *cp.Body) {
		if _, ok := EntityOf(b); ok {
			bodies++
		}
	})
	if bodies != 4 {
		t.Fatalf("expected 4 entity bodies in space, got %d", bodies)
	}
}

func TestNilWorldAccessors(t *testing.T) {
	var w *World
	if w.Space() != nil {
		t.Fatalf("expected nil space")
	}
	if w.Advance(1.0/60, 1, 10) != 0 {
		t.Fatalf("expected no steps on nil world")
	}
	if w.Pending() != 0 {
		t.Fatalf("expected no pending time on nil world")
	}
}
