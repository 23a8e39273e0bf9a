package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var (
	ErrNilWorld    = errors.New("physics: world is nil")
	ErrUnknownKind = errors.New("physics: unknown entity kind")
)

type variant struct {
	width  float64
	height float64
	mass   float64
}

// Zero mass means static.
var variants = map[Kind]variant{
	KindGround: {width: 1500, height: 50, mass: 0},
	KindWall:   {width: 40, height: 1200, mass: 0},
	KindPlayer: {width: 30, height: 50, mass: 1},
}

// Entity is one rigid body plus the box shape attached to it.
//
// There is no destroy: entities live as long as the world that created them.
type Entity struct {
	kind   Kind
	body   *cp.Body
	shape  *cp.Shape
	width  float64
	height float64
}

// NewEntity creates a body of the given kind centered on (x, y) and adds it
// to the world's space.
func NewEntity(kind Kind, w *World, x, y float64) (*Entity, error) {
	if w == nil || w.space == nil {
		return nil, ErrNilWorld
	}
	v, ok := variants[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	var body *cp.Body
	if v.mass <= 0 {
		body = cp.NewStaticBody()
	} else {
		// infinite moment keeps the box upright
		body = cp.NewBody(v.mass, math.Inf(1))
		body.SetPositionUpdateFunc(deferPosition)
	}
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, v.width, v.height, 0)
	shape.SetFilter(Filter(kind))
	w.material.apply(shape)

	e := &Entity{
		kind:   kind,
		body:   body,
		shape:  shape,
		width:  v.width,
		height: v.height,
	}
	// Lookup only, for collision callbacks. The world owns the entity.
	body.UserData = e
	shape.UserData = e

	w.space.AddBody(body)
	w.space.AddShape(shape)
	return e, nil
}

func (e *Entity) Kind() Kind {
	return e.kind
}

func (e *Entity) Width() float64 {
	return e.width
}

func (e *Entity) Height() float64 {
	return e.height
}

func (e *Entity) Body() *cp.Body {
	return e.body
}

func (e *Entity) Shape() *cp.Shape {
	return e.shape
}

// Position returns the body's center.
func (e *Entity) Position() cp.Vector {
	return e.body.Position()
}

// SetPosition moves the body directly, bypassing integration.
func (e *Entity) SetPosition(p cp.Vector) {
	e.body.SetPosition(p)
}

// EntityOf recovers the entity that owns body, if any.
func EntityOf(body *cp.Body) (*Entity, bool) {
	if body == nil {
		return nil, false
	}
	e, ok := body.UserData.(*Entity)
	return e, ok
}
