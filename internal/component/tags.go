package component

import "dissonance/internal/ecs"

const (
	CTagSolid     ecs.ComponentType = 10
	CTagNearby    ecs.ComponentType = 11
	CTagIndicator ecs.ComponentType = 12
)

// TagSolid marks an entity as a blocking AABB obstacle.
type TagSolid struct{}

func (TagSolid) Type() ecs.ComponentType { return CTagSolid }

// TagNearby is the transient per-frame marker for the single nearest
// in-range interactable. Cleared and reassigned every frame.
type TagNearby struct{}

func (TagNearby) Type() ecs.ComponentType { return CTagNearby }

// TagIndicator marks the floating indicator shown above the player whenever
// an interaction target is available.
type TagIndicator struct{}

func (TagIndicator) Type() ecs.ComponentType { return CTagIndicator }
