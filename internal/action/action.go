// Package action defines the closed set of interactions a player can perform
// on a world object, and the deterministic rendering of each to a menu label.
package action

// Kind enumerates the built-in action variants.
type Kind uint8

const (
	KindExamine Kind = iota
	KindTake
	KindUse
	KindTurnOn
	KindTurnOff
	KindRefuel
	KindTalk
	KindOpen
	KindClose
	KindCustom
)

// Action is one entry in an object's action list. Label is only meaningful
// for KindCustom.
type Action struct {
	Kind  Kind
	Label string
}

// The built-in actions. Custom actions are made with Custom().
var (
	Examine = Action{Kind: KindExamine}
	Take    = Action{Kind: KindTake}
	Use     = Action{Kind: KindUse}
	TurnOn  = Action{Kind: KindTurnOn}
	TurnOff = Action{Kind: KindTurnOff}
	Refuel  = Action{Kind: KindRefuel}
	Talk    = Action{Kind: KindTalk}
	Open    = Action{Kind: KindOpen}
	Close   = Action{Kind: KindClose}
)

// Custom returns an action with a caller-supplied label.
func Custom(label string) Action {
	return Action{Kind: KindCustom, Label: label}
}

// String renders the action as a menu label, e.g. "* Take".
// Examine deliberately reads "Check" on screen.
func (a Action) String() string {
	switch a.Kind {
	case KindExamine:
		return "* Check"
	case KindTake:
		return "* Take"
	case KindUse:
		return "* Use"
	case KindTurnOn:
		return "* Turn On"
	case KindTurnOff:
		return "* Turn Off"
	case KindRefuel:
		return "* Refuel"
	case KindTalk:
		return "* Talk"
	case KindOpen:
		return "* Open"
	case KindClose:
		return "* Close"
	default:
		return "* " + a.Label
	}
}
