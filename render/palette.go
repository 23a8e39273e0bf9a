package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/arena/physics"
)

// Style is how one kind of entity is drawn.
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float32
}

// Palette maps entity kinds to styles. Kinds without an entry draw white.
type Palette map[physics.Kind]Style

func DefaultPalette() Palette {
	return Palette{
		physics.KindPlayer: {
			Fill:        color.RGBA{R: 0x66, G: 0xCC, B: 0xFF, A: 0xFF},
			Stroke:      color.RGBA{R: 0xFF, G: 0x33, B: 0x00, A: 0xFF},
			StrokeWidth: 4,
		},
		physics.KindWall: {
			Fill: color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
		},
		physics.KindGround: {
			Fill: color.RGBA{R: 0x88, G: 0x66, B: 0x44, A: 0xFF},
		},
	}
}

func (p Palette) style(kind physics.Kind) Style {
	if s, ok := p[kind]; ok {
		return s
	}
	return Style{Fill: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("render: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
