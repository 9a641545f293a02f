package factory

import (
	"dissonance/assets"
	"dissonance/internal/component"
	"dissonance/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y, Layer: 10})
	w.Add(id, component.Player{
		Speed:         120,
		InteractRange: 30,
		Facing:        component.FacingDown,
	})
	w.Add(id, component.Sprite{
		Color:   tcell.ColorYellow,
		W:       16,
		H:       20,
		Visible: true,
	})
	return id
}

// NewIndicator creates the interaction indicator that floats above the
// player. It starts hidden; the proximity scan toggles its visibility and
// keeps it positioned.
func NewIndicator(w *ecs.World, x, y float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y, Layer: 11})
	w.Add(id, component.Sprite{
		Color: tcell.ColorRed,
		W:     16,
		H:     16,
	})
	w.Add(id, component.TagIndicator{})
	return id
}

// NewObject creates an interactable entity from an authored definition.
func NewObject(w *ecs.World, def assets.ObjectDef) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: def.X, Y: def.Y, Layer: 1})
	w.Add(id, component.Sprite{Color: def.Color, W: def.W, H: def.H, Visible: true})
	w.Add(id, component.Interactable{
		Name:    def.Name,
		Actions: def.Actions,
		Radius:  def.Radius,
	})
	if def.Solid {
		w.Add(id, component.TagSolid{})
	}
	if def.Pickup {
		w.Add(id, component.Item{Name: def.Name, CanPickup: true})
	}
	if def.Light != nil {
		w.Add(id, component.Light{IsOn: def.Light.IsOn})
	}
	if def.Door != nil {
		w.Add(id, component.Door{
			IsOpen:        def.Door.IsOpen,
			RequiredKeyID: def.Door.RequiredKeyID,
		})
	}
	if def.Generator != nil {
		w.Add(id, component.Generator{
			IsRunning: def.Generator.IsRunning,
			FuelLevel: def.Generator.FuelLevel,
			MaxFuel:   def.Generator.MaxFuel,
		})
	}
	if def.NPC != nil {
		w.Add(id, component.NPC{Name: def.Name, Dialogue: def.NPC.Dialogue})
	}
	return id
}

// NewWall creates a plain blocking slab.
func NewWall(w *ecs.World, def assets.WallDef) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: def.X, Y: def.Y})
	w.Add(id, component.Sprite{
		Color:   tcell.NewRGBColor(51, 51, 64),
		W:       def.W,
		H:       def.H,
		Visible: true,
	})
	w.Add(id, component.TagSolid{})
	return id
}
