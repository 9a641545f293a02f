package component

import (
	"dissonance/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CSprite ecs.ComponentType = 2

// Sprite is the visual state the presentation layer consumes: a flat color
// block of W×H world units. W/H double as the AABB extents for solids.
type Sprite struct {
	Color   tcell.Color
	W, H    float64
	Visible bool
}

// HalfExtents returns the AABB half sizes, defaulting to 8×8 (a 16×16 body)
// when the sprite carries no explicit size.
func (s Sprite) HalfExtents() (float64, float64) {
	if s.W <= 0 || s.H <= 0 {
		return 8, 8
	}
	return s.W / 2, s.H / 2
}

func (Sprite) Type() ecs.ComponentType { return CSprite }
