package component

import "dissonance/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is a 2D world position in continuous units. Layer orders sprites
// at draw time and is never consulted by game logic.
type Position struct {
	X, Y  float64
	Layer float64
}

func (Position) Type() ecs.ComponentType { return CPosition }
