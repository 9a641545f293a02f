package component

import "dissonance/internal/ecs"

const (
	CDoor      ecs.ComponentType = 5
	CLight     ecs.ComponentType = 6
	CGenerator ecs.ComponentType = 7
	CNPC       ecs.ComponentType = 8
	CItem      ecs.ComponentType = 9
)

// Door is an openable barrier. RequiredKeyID of "" means unlocked. The
// TagSolid marker tracks IsOpen: present while closed, removed while open.
type Door struct {
	IsOpen        bool
	RequiredKeyID string
}

func (Door) Type() ecs.ComponentType { return CDoor }

// Light is a switchable light source.
type Light struct {
	IsOn bool
}

func (Light) Type() ecs.ComponentType { return CLight }

// Generator holds fuel state. No implemented action transacts fuel yet;
// the fields are kept for forward compatibility with Refuel/Use content.
type Generator struct {
	IsRunning bool
	FuelLevel float64
	MaxFuel   float64
}

func (Generator) Type() ecs.ComponentType { return CGenerator }

// NPC is a talkable character. Dialogue is authored content not yet wired
// into the Talk effect, which currently emits fixed lines.
type NPC struct {
	Name     string
	Dialogue []string
}

func (NPC) Type() ecs.ComponentType { return CNPC }

// Item marks a pickupable object.
type Item struct {
	Name      string
	CanPickup bool
}

func (Item) Type() ecs.ComponentType { return CItem }
