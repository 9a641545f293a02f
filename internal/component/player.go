package component

import "dissonance/internal/ecs"

const CPlayer ecs.ComponentType = 3

// Direction is the player's facing, updated from the last pressed movement
// key and independent of collision outcome.
type Direction uint8

const (
	FacingUp Direction = iota
	FacingDown
	FacingLeft
	FacingRight
)

// Player marks the player-controlled entity. Exactly one entity carries this
// per world. InteractRange is kept for content authors but targeting uses
// each object's own radius.
type Player struct {
	Speed         float64
	InteractRange float64
	Facing        Direction
}

func (Player) Type() ecs.ComponentType { return CPlayer }
