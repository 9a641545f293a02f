package system

import (
	"dissonance/internal/action"
	"dissonance/internal/component"
	"dissonance/internal/ecs"
	"dissonance/internal/ui"
)

// InteractionEvent is a resolved action against a target entity, consumed in
// FIFO order by ApplyInteraction. WithItemID optionally carries an item used
// in the interaction.
type InteractionEvent struct {
	Entity     ecs.EntityID
	Action     action.Action
	WithItemID string
}

// InteractOutcome says how an interact press was dispatched.
type InteractOutcome uint8

const (
	InteractNone   InteractOutcome = iota // no target, or empty catalog
	InteractDirect                        // single action — fire immediately
	InteractMenu                          // multiple actions — open a menu
)

// HandleInteract dispatches one interact press: it re-derives the nearest
// in-range interactable with the same rule the proximity scan uses, builds
// its catalog, and either resolves a single action directly or requests a
// context menu. An empty catalog is a silent no-op.
//
// The caller must not invoke this while a modal is active.
func HandleInteract(w *ecs.World) (InteractOutcome, InteractionEvent, ui.MenuRequest) {
	player := PlayerEntity(w)
	if player == ecs.NilEntity {
		return InteractNone, InteractionEvent{}, ui.MenuRequest{}
	}
	pos := w.Get(player, component.CPosition).(component.Position)

	target := NearestInteractable(w, pos.X, pos.Y)
	if target == ecs.NilEntity {
		return InteractNone, InteractionEvent{}, ui.MenuRequest{}
	}

	catalog := BuildCatalog(w, target)
	switch len(catalog) {
	case 0:
		return InteractNone, InteractionEvent{}, ui.MenuRequest{}
	case 1:
		ev := InteractionEvent{Entity: target, Action: catalog[0]}
		return InteractDirect, ev, ui.MenuRequest{}
	default:
		it := w.Get(target, component.CInteractable).(component.Interactable)
		req := ui.MenuRequest{Entity: target, Title: it.Name, Actions: catalog}
		return InteractMenu, InteractionEvent{}, req
	}
}
