package physics

import "github.com/jakecoffman/cp"

// Group is a collision category bit. Masks are formed by OR-ing groups.
type Group uint

const (
	GroupGround Group = 1 << iota
	GroupPlayer
	GroupWall
)

// Kind identifies what an entity is.
type Kind int

const (
	KindGround Kind = iota
	KindWall
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindWall:
		return "wall"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

type collisionRule struct {
	group Group
	mask  Group
}

// Walls and ground only ever touch the player, never each other.
var collisionRules = map[Kind]collisionRule{
	KindGround: {group: GroupGround, mask: GroupPlayer},
	KindWall:   {group: GroupWall, mask: GroupPlayer},
	KindPlayer: {group: GroupPlayer, mask: GroupGround | GroupWall},
}

// CollisionGroup returns the single category bit for kind.
func CollisionGroup(kind Kind) Group {
	return collisionRules[kind].group
}

// CollisionMask returns the categories kind is allowed to collide with.
func CollisionMask(kind Kind) Group {
	return collisionRules[kind].mask
}

// Filter converts the group/mask pair into a Chipmunk shape filter. Group
// stays zero so only categories and masks decide.
func Filter(kind Kind) cp.ShapeFilter {
	return cp.ShapeFilter{
		Categories: uint(CollisionGroup(kind)),
		Mask:       uint(CollisionMask(kind)),
	}
}
