package system

import (
	"math"

	"dissonance/internal/component"
	"dissonance/internal/ecs"
)

// MoveInput is the set of direction keys held this frame.
type MoveInput struct {
	Up, Down, Left, Right bool
}

// Vector combines the held directions into a movement vector, normalized so
// diagonals are no faster than cardinal movement.
func (in MoveInput) Vector() (float64, float64) {
	var dx, dy float64
	if in.Up {
		dy -= 1
	}
	if in.Down {
		dy += 1
	}
	if in.Left {
		dx -= 1
	}
	if in.Right {
		dx += 1
	}
	if l := math.Hypot(dx, dy); l > 0 {
		dx /= l
		dy /= l
	}
	return dx, dy
}

// MovePlayer integrates held-direction input over dt and resolves collisions
// against every solid. The X component is applied and fully resolved before
// Y, which keeps diagonal movement into a convex corner from catching or
// tunneling. Push-out follows the movement sign, not penetration depth; when
// several solids disagree the last one checked wins.
//
// The caller must not invoke this while a modal is active.
func MovePlayer(w *ecs.World, in MoveInput, dt float64) {
	player := PlayerEntity(w)
	if player == ecs.NilEntity {
		return
	}
	dx, dy := in.Vector()
	if dx == 0 && dy == 0 {
		return
	}

	p := w.Get(player, component.CPlayer).(component.Player)
	pos := w.Get(player, component.CPosition).(component.Position)
	halfW, halfH := 8.0, 8.0
	if sc := w.Get(player, component.CSprite); sc != nil {
		halfW, halfH = sc.(component.Sprite).HalfExtents()
	}

	stepX := dx * p.Speed * dt
	stepY := dy * p.Speed * dt

	pos.X += stepX
	for _, solid := range w.Query(component.CTagSolid, component.CPosition) {
		if solid == player {
			continue
		}
		sPos, sHalfW, sHalfH := solidBox(w, solid)
		if !overlaps(pos, halfW, halfH, sPos, sHalfW, sHalfH) {
			continue
		}
		if stepX > 0 {
			pos.X = sPos.X - sHalfW - halfW
		} else if stepX < 0 {
			pos.X = sPos.X + sHalfW + halfW
		}
	}

	pos.Y += stepY
	for _, solid := range w.Query(component.CTagSolid, component.CPosition) {
		if solid == player {
			continue
		}
		sPos, sHalfW, sHalfH := solidBox(w, solid)
		if !overlaps(pos, halfW, halfH, sPos, sHalfW, sHalfH) {
			continue
		}
		if stepY > 0 {
			pos.Y = sPos.Y - sHalfH - halfH
		} else if stepY < 0 {
			pos.Y = sPos.Y + sHalfH + halfH
		}
	}

	w.Add(player, pos)
}

// UpdateFacing sets the player's facing from the held directions, by a fixed
// priority, regardless of whether movement was blocked.
//
// The caller must not invoke this while a modal is active.
func UpdateFacing(w *ecs.World, in MoveInput) {
	player := PlayerEntity(w)
	if player == ecs.NilEntity {
		return
	}
	p := w.Get(player, component.CPlayer).(component.Player)
	switch {
	case in.Up:
		p.Facing = component.FacingUp
	case in.Down:
		p.Facing = component.FacingDown
	case in.Left:
		p.Facing = component.FacingLeft
	case in.Right:
		p.Facing = component.FacingRight
	default:
		return
	}
	w.Add(player, p)
}

// PlayerEntity returns the singleton player entity, or NilEntity when none
// exists this frame.
func PlayerEntity(w *ecs.World) ecs.EntityID {
	ids := w.Query(component.CPlayer, component.CPosition)
	if len(ids) == 0 {
		return ecs.NilEntity
	}
	return ids[0]
}

func solidBox(w *ecs.World, id ecs.EntityID) (component.Position, float64, float64) {
	pos := w.Get(id, component.CPosition).(component.Position)
	halfW, halfH := 8.0, 8.0
	if sc := w.Get(id, component.CSprite); sc != nil {
		halfW, halfH = sc.(component.Sprite).HalfExtents()
	}
	return pos, halfW, halfH
}

// overlaps is the AABB test: both axes must overlap for a collision.
func overlaps(a component.Position, aw, ah float64, b component.Position, bw, bh float64) bool {
	overlapX := a.X+aw > b.X-bw && a.X-aw < b.X+bw
	overlapY := a.Y+ah > b.Y-bh && a.Y-ah < b.Y+bh
	return overlapX && overlapY
}
