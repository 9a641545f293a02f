// Package input turns tcell key events into the per-tick "pressed" and
// "held" queries the game systems consume. Terminals report key presses but
// never releases, so a key counts as held for a short window after its last
// event — long enough to bridge the terminal's own repeat delay.
package input

import "github.com/gdamore/tcell/v2"

// Key is one entry in the fixed game key set.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyInteract  // also menu select / dialog advance
	KeyCancel    // menu cancel; distinct from KeyInteract on purpose
	KeyInventory // toggles the inventory panel
	KeyQuit
)

// HoldSeconds is how long a key stays "held" after its last event.
const HoldSeconds = 0.15

// State is the per-frame input snapshot. Feed events with HandleEvent, call
// BeginFrame once per tick before polling, and query with Pressed/Held.
type State struct {
	pressed  map[Key]bool
	lastSeen map[Key]float64
}

// NewState returns an empty input state.
func NewState() *State {
	return &State{
		pressed:  make(map[Key]bool),
		lastSeen: make(map[Key]float64),
	}
}

// BeginFrame clears the pressed-this-tick edges.
func (s *State) BeginFrame() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
}

// HandleEvent records a key event at game-clock time now (seconds).
func (s *State) HandleEvent(ev *tcell.EventKey, now float64) {
	k := MapKey(ev)
	if k == KeyNone {
		return
	}
	s.pressed[k] = true
	s.lastSeen[k] = now
}

// Press records a key edge directly, bypassing tcell. Used by tests and the
// SSH transport.
func (s *State) Press(k Key, now float64) {
	if k == KeyNone {
		return
	}
	s.pressed[k] = true
	s.lastSeen[k] = now
}

// Pressed reports whether the key was pressed this tick (discrete edge).
func (s *State) Pressed(k Key) bool { return s.pressed[k] }

// Held reports whether the key is considered held at time now.
func (s *State) Held(k Key, now float64) bool {
	last, ok := s.lastSeen[k]
	return ok && now-last <= HoldSeconds
}

// MapKey translates a tcell key event into the game key set.
func MapKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyInteract
	case tcell.KeyEscape:
		return KeyCancel
	case tcell.KeyCtrlC:
		return KeyQuit
	}

	switch ev.Rune() {
	case 'w', 'W':
		return KeyUp
	case 's', 'S':
		return KeyDown
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	case 'z', 'Z', ' ':
		return KeyInteract
	case 'x', 'X':
		return KeyCancel
	case 'i', 'I':
		return KeyInventory
	case 'q', 'Q':
		return KeyQuit
	}
	return KeyNone
}
