package system

import (
	"dissonance/internal/action"
	"dissonance/internal/component"
	"dissonance/internal/ecs"
)

// BuildCatalog computes the currently valid action list for an interactable:
// the static base list with any stale toggle entries removed and the single
// state-correct toggle appended at the end. Non-toggle entries keep their
// relative order. The result is built fresh from world state on every call —
// never cached, never mutated in place.
func BuildCatalog(w *ecs.World, id ecs.EntityID) []action.Action {
	itComp := w.Get(id, component.CInteractable)
	if itComp == nil {
		return nil
	}
	it := itComp.(component.Interactable)

	lightComp := w.Get(id, component.CLight)
	doorComp := w.Get(id, component.CDoor)

	out := make([]action.Action, 0, len(it.Actions)+1)
	for _, a := range it.Actions {
		if lightComp != nil && (a.Kind == action.KindTurnOn || a.Kind == action.KindTurnOff) {
			continue
		}
		if doorComp != nil && (a.Kind == action.KindOpen || a.Kind == action.KindClose) {
			continue
		}
		out = append(out, a)
	}

	if lightComp != nil {
		if lightComp.(component.Light).IsOn {
			out = append(out, action.TurnOff)
		} else {
			out = append(out, action.TurnOn)
		}
	}
	if doorComp != nil {
		if doorComp.(component.Door).IsOpen {
			out = append(out, action.Close)
		} else {
			out = append(out, action.Open)
		}
	}
	return out
}
