package system

import (
	"math"

	"dissonance/internal/component"
	"dissonance/internal/ecs"
)

// DefaultInteractRadius applies to interactables without an override radius.
const DefaultInteractRadius = 40.0

// UpdateNearby recomputes the per-frame nearest-interactable marker: the
// previous marker is cleared unconditionally, distances are recomputed from
// scratch, and exactly the nearest in-range interactable (if any) is tagged.
// The indicator sprite above the player is shown iff a target exists.
func UpdateNearby(w *ecs.World) ecs.EntityID {
	for _, id := range w.Query(component.CTagNearby) {
		w.Remove(id, component.CTagNearby)
	}

	best := ecs.NilEntity
	player := PlayerEntity(w)
	if player != ecs.NilEntity {
		pos := w.Get(player, component.CPosition).(component.Position)
		best = NearestInteractable(w, pos.X, pos.Y)
	}
	if best != ecs.NilEntity {
		w.Add(best, component.TagNearby{})
	}

	for _, id := range w.Query(component.CTagIndicator, component.CSprite) {
		sprite := w.Get(id, component.CSprite).(component.Sprite)
		sprite.Visible = best != ecs.NilEntity
		w.Add(id, sprite)
		if player != ecs.NilEntity {
			// Keep the indicator floating just above the player.
			pPos := w.Get(player, component.CPosition).(component.Position)
			w.Add(id, component.Position{X: pPos.X, Y: pPos.Y - 20, Layer: 11})
		}
	}
	return best
}

// NearestInteractable returns the interactable nearest to (x, y) within its
// effective radius, or NilEntity. Equidistant candidates tie-break to the
// lowest slot index so the result is stable across frames.
func NearestInteractable(w *ecs.World, x, y float64) ecs.EntityID {
	best := ecs.NilEntity
	bestDist := math.MaxFloat64
	for _, id := range w.Query(component.CInteractable, component.CPosition) {
		it := w.Get(id, component.CInteractable).(component.Interactable)
		pos := w.Get(id, component.CPosition).(component.Position)
		d := math.Hypot(pos.X-x, pos.Y-y)

		radius := it.Radius
		if radius <= 0 {
			radius = DefaultInteractRadius
		}
		if d > radius {
			continue
		}
		if d < bestDist || (d == bestDist && id.Index < best.Index) {
			bestDist = d
			best = id
		}
	}
	return best
}
