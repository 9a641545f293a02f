package system

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"dissonance/internal/action"
	"dissonance/internal/component"
	"dissonance/internal/ecs"
	"dissonance/internal/inventory"
)

// Tints applied by interaction effects. Sprite tints update whenever a
// sprite is present, independent of the component checks.
var (
	doorOpenColor   = tcell.NewRGBColor(153, 115, 51)
	doorClosedColor = tcell.NewRGBColor(128, 90, 38)
	lightOnColor    = tcell.NewRGBColor(255, 230, 77)
	lightOffColor   = tcell.NewRGBColor(77, 77, 77)
)

// ApplyInteraction executes one resolved interaction against the world and
// the inventory, returning the narrative lines it produced in emission
// order. Failures surface only as lines; a despawned target drops the event
// silently. Every branch is safe to repeat — acting on an object already in
// the requested state reports it instead of re-applying.
func ApplyInteraction(w *ecs.World, inv *inventory.Inventory, ev InteractionEvent) []string {
	itComp := w.Get(ev.Entity, component.CInteractable)
	if itComp == nil {
		return nil
	}
	name := itComp.(component.Interactable).Name

	switch ev.Action.Kind {
	case action.KindExamine:
		return []string{
			fmt.Sprintf("* You examine the %s.", name),
			fmt.Sprintf("* It appears to be a regular %s.", name),
		}

	case action.KindTake:
		added := inv.Add(inventory.Item{
			ID:          name,
			Name:        name,
			Description: fmt.Sprintf("A %s that you picked up.", name),
			IconColor:   tcell.ColorWhite,
		})
		if !added {
			return []string{"* Your inventory is full!"}
		}
		w.DestroyEntity(ev.Entity)
		return []string{fmt.Sprintf("* You obtained the %s!", name)}

	case action.KindUse:
		return []string{
			fmt.Sprintf("* You use the %s.", name),
			"* Nothing happens.",
		}

	case action.KindTalk:
		return []string{
			fmt.Sprintf("* You speak to the %s.", name),
			"* ...",
			"* It doesn't respond.",
		}

	case action.KindOpen:
		return openEffect(w, inv, ev, name)

	case action.KindClose:
		return closeEffect(w, ev, name)

	case action.KindTurnOn:
		alreadyOn := false
		if lc := w.Get(ev.Entity, component.CLight); lc != nil {
			light := lc.(component.Light)
			alreadyOn = light.IsOn
			light.IsOn = true
			w.Add(ev.Entity, light)
		}
		tintSprite(w, ev.Entity, lightOnColor)
		second := "* It hums to life."
		if alreadyOn {
			second = "* It's already on."
		}
		return []string{fmt.Sprintf("* You flip the switch on the %s.", name), second}

	case action.KindTurnOff:
		alreadyOff := false
		if lc := w.Get(ev.Entity, component.CLight); lc != nil {
			light := lc.(component.Light)
			alreadyOff = !light.IsOn
			light.IsOn = false
			w.Add(ev.Entity, light)
		}
		tintSprite(w, ev.Entity, lightOffColor)
		second := "* It goes dark."
		if alreadyOff {
			second = "* It's already off."
		}
		return []string{fmt.Sprintf("* You flip the switch on the %s.", name), second}

	case action.KindRefuel:
		return []string{
			fmt.Sprintf("* You search for fuel to add to the %s.", name),
			"* You don't have any fuel.",
		}

	default:
		verb := strings.ToLower(strings.TrimPrefix(ev.Action.String(), "* "))
		return []string{fmt.Sprintf("* You %s the %s.", verb, name)}
	}
}

// openEffect handles Open on doors (lock check, key consumption, Solid
// removal) and the generic "empty inside" reply for anything else.
func openEffect(w *ecs.World, inv *inventory.Inventory, ev InteractionEvent, name string) []string {
	dc := w.Get(ev.Entity, component.CDoor)
	if dc == nil {
		return []string{
			fmt.Sprintf("* You open the %s.", name),
			"* It's empty inside.",
		}
	}
	door := dc.(component.Door)
	if door.IsOpen {
		return []string{fmt.Sprintf("* The %s is already open.", name)}
	}

	if door.RequiredKeyID != "" && !inv.HasID(door.RequiredKeyID) {
		return []string{
			fmt.Sprintf("* The %s is locked.", name),
			"* You need a matching key.",
		}
	}

	second := "* It swings open."
	if door.RequiredKeyID != "" {
		inv.TakeByID(door.RequiredKeyID)
		// The lock stays sprung: later opens never re-prompt for the key.
		door.RequiredKeyID = ""
		second = "* The lock clicks open."
	}
	door.IsOpen = true
	w.Add(ev.Entity, door)
	w.Remove(ev.Entity, component.CTagSolid)
	if sc := w.Get(ev.Entity, component.CSprite); sc != nil {
		sprite := sc.(component.Sprite)
		sprite.Color = doorOpenColor
		sprite.Visible = false
		w.Add(ev.Entity, sprite)
	}
	return []string{fmt.Sprintf("* You open the %s.", name), second}
}

// closeEffect is the mirror of openEffect for door-bearing entities; closing
// anything else is a single flavor line.
func closeEffect(w *ecs.World, ev InteractionEvent, name string) []string {
	dc := w.Get(ev.Entity, component.CDoor)
	if dc == nil {
		return []string{fmt.Sprintf("* You close the %s.", name)}
	}
	door := dc.(component.Door)
	if !door.IsOpen {
		return []string{fmt.Sprintf("* The %s is already closed.", name)}
	}

	door.IsOpen = false
	w.Add(ev.Entity, door)
	w.Add(ev.Entity, component.TagSolid{})
	if sc := w.Get(ev.Entity, component.CSprite); sc != nil {
		sprite := sc.(component.Sprite)
		sprite.Color = doorClosedColor
		sprite.Visible = true
		w.Add(ev.Entity, sprite)
	}
	return []string{
		fmt.Sprintf("* You close the %s.", name),
		"* It latches shut.",
	}
}

func tintSprite(w *ecs.World, id ecs.EntityID, color tcell.Color) {
	if sc := w.Get(id, component.CSprite); sc != nil {
		sprite := sc.(component.Sprite)
		sprite.Color = color
		w.Add(id, sprite)
	}
}
