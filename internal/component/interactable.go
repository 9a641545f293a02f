package component

import (
	"dissonance/internal/action"
	"dissonance/internal/ecs"
)

const CInteractable ecs.ComponentType = 4

// Interactable marks an entity the player can target. Actions is the static
// base list; toggle entries are substituted per current state when the
// catalog is built. Radius of 0 means "use the default interaction radius".
type Interactable struct {
	Name    string
	Actions []action.Action
	Radius  float64
}

func (Interactable) Type() ecs.ComponentType { return CInteractable }
