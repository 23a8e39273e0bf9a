package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/arena/config"
	"github.com/milk9111/arena/input"
	"github.com/milk9111/arena/sim"
)

func parseKey(name string) (input.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("controls: unknown key %q: %w", name, err)
	}
	return input.Key(k), nil
}

func bindings(c config.ControlsSpec) (sim.Bindings, error) {
	var b sim.Bindings
	var err error
	if b.Left, err = parseKey(c.Left); err != nil {
		return b, err
	}
	if b.Right, err = parseKey(c.Right); err != nil {
		return b, err
	}
	if b.Up, err = parseKey(c.Up); err != nil {
		return b, err
	}
	return b, nil
}

// pollKeys turns this tick's key edges into events on state. buf is reused
// between calls.
func pollKeys(state *input.State, buf []ebiten.Key) []ebiten.Key {
	buf = inpututil.AppendJustReleasedKeys(buf[:0])
	for _, k := range buf {
		state.KeyUp(input.Key(k))
	}
	buf = inpututil.AppendJustPressedKeys(buf[:0])
	for _, k := range buf {
		state.KeyDown(input.Key(k))
	}
	return buf
}
