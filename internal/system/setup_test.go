package system

import (
	"dissonance/internal/action"
	"dissonance/internal/component"
	"dissonance/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// shared world-building helpers for the system tests

func newWorldWithPlayer(x, y float64) (*ecs.World, ecs.EntityID) {
	w := ecs.NewWorld()
	player := w.CreateEntity()
	w.Add(player, component.Position{X: x, Y: y, Layer: 10})
	w.Add(player, component.Player{Speed: 120, InteractRange: 30, Facing: component.FacingDown})
	w.Add(player, component.Sprite{Color: tcell.ColorYellow, W: 16, H: 20, Visible: true})
	return w, player
}

func spawnSolid(w *ecs.World, x, y, sw, sh float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Sprite{Color: tcell.ColorGray, W: sw, H: sh, Visible: true})
	w.Add(id, component.TagSolid{})
	return id
}

func spawnInteractable(w *ecs.World, name string, x, y, radius float64, actions ...action.Action) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Sprite{Color: tcell.ColorWhite, W: 12, H: 12, Visible: true})
	w.Add(id, component.Interactable{Name: name, Actions: actions, Radius: radius})
	return id
}
