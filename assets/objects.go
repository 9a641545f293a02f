package assets

import (
	"dissonance/internal/action"

	"github.com/gdamore/tcell/v2"
)

// LightDef, DoorDef, GeneratorDef and NPCDef attach optional stateful
// components to an authored object.
type LightDef struct {
	IsOn bool
}

type DoorDef struct {
	IsOpen        bool
	RequiredKeyID string
}

type GeneratorDef struct {
	IsRunning bool
	FuelLevel float64
	MaxFuel   float64
}

type NPCDef struct {
	Dialogue []string
}

// ObjectDef describes one authored interactable. Radius 0 means the default
// interaction radius; Solid objects block movement.
type ObjectDef struct {
	Name      string
	X, Y      float64
	W, H      float64
	Color     tcell.Color
	Radius    float64
	Actions   []action.Action
	Solid     bool
	Pickup    bool
	Light     *LightDef
	Door      *DoorDef
	Generator *GeneratorDef
	NPC       *NPCDef
}

// WallDef is a plain solid slab with no interactions.
type WallDef struct {
	X, Y, W, H float64
}

// PlayerStart is where the player spawns.
var PlayerStart = struct{ X, Y float64 }{0, 0}

// Objects is the demo room's interactable population.
var Objects = []ObjectDef{
	{
		Name: "Rusty Key", X: -100, Y: 0, W: 12, H: 12,
		Color:   tcell.NewRGBColor(204, 179, 77),
		Radius:  35,
		Actions: []action.Action{action.Examine, action.Take},
		Solid:   true,
		Pickup:  true,
	},
	{
		Name: "Old Lamp", X: 100, Y: -50, W: 20, H: 28,
		Color:   tcell.NewRGBColor(77, 77, 77),
		Radius:  40,
		Actions: []action.Action{action.Examine, action.TurnOn},
		Solid:   true,
		Light:   &LightDef{},
	},
	{
		Name: "Generator", X: 0, Y: 120, W: 48, H: 48,
		Color:     tcell.NewRGBColor(102, 102, 128),
		Radius:    60,
		Actions:   []action.Action{action.Examine, action.Use, action.Refuel},
		Solid:     true,
		Generator: &GeneratorDef{FuelLevel: 2.5, MaxFuel: 10},
	},
	{
		Name: "Strange Figure", X: 60, Y: 0, W: 16, H: 20,
		Color:   tcell.NewRGBColor(153, 77, 204),
		Radius:  40,
		Actions: []action.Action{action.Talk, action.Examine},
		Solid:   true,
		NPC: &NPCDef{Dialogue: []string{
			"* ...",
			"* The figure stares at you silently.",
		}},
	},
	{
		Name: "Wooden Chest", X: -50, Y: 50, W: 24, H: 20,
		Color:   tcell.NewRGBColor(128, 77, 26),
		Radius:  40,
		Actions: []action.Action{action.Open, action.Examine},
		Solid:   true,
	},
	{
		Name: "Iron Door", X: 0, Y: -116, W: 32, H: 8,
		Color:   tcell.NewRGBColor(128, 90, 38),
		Radius:  40,
		Actions: []action.Action{action.Examine, action.Open},
		Solid:   true,
		Door:    &DoorDef{RequiredKeyID: "Rusty Key"},
	},
}

// Walls encloses the room, with a gap at the top filled by the Iron Door.
var Walls = []WallDef{
	{X: -96, Y: -116, W: 160, H: 8},  // top left of the door
	{X: 96, Y: -116, W: 160, H: 8},   // top right of the door
	{X: 0, Y: 116, W: 352, H: 8},     // bottom
	{X: -172, Y: 0, W: 8, H: 240},    // left
	{X: 172, Y: 0, W: 8, H: 240},     // right
}
