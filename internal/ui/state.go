// Package ui owns the modal state machines: the context menu and the
// paginated dialog log. While either modal is active, movement and new
// interactions are suppressed by the systems that consult ModalActive.
package ui

import (
	"dissonance/internal/action"
	"dissonance/internal/ecs"
)

// Modal says which modal, if any, currently captures input. Menu and dialog
// are mutually exclusive by construction: a queued dialog waits for the
// modal slot to free before opening.
type Modal uint8

const (
	ModalNone Modal = iota
	ModalMenu
	ModalDialog
)

// DebounceSeconds is the window after a modal opens during which the key
// press that opened it is not reinterpreted as select/advance.
const DebounceSeconds = 0.08

// MenuRequest asks the UI to open a context menu for a resolved target.
type MenuRequest struct {
	Entity  ecs.EntityID
	Title   string
	Actions []action.Action
}

// Selection is a menu choice resolved into an interaction.
type Selection struct {
	Entity ecs.EntityID
	Action action.Action
}

// State is the single UI state instance, created at startup and passed
// explicitly through each update step.
type State struct {
	modal Modal

	// Context menu, valid while modal == ModalMenu.
	MenuTitle     string
	MenuActions   []action.Action
	MenuEntity    ecs.EntityID
	SelectedIndex int
	menuOpenedAt  float64

	// Dialog log. The queue is append-only until the dialog closes.
	queue          []string
	index          int
	dialogOpenedAt float64

	continueBlink blink
	endBlink      blink
}

// NewState returns a State with both modals closed.
func NewState() *State {
	return &State{
		continueBlink: blink{period: 0.5},
		endBlink:      blink{period: 0.8},
	}
}

// Modal returns the active modal.
func (s *State) Modal() Modal { return s.modal }

// ModalActive reports whether any modal currently captures input.
func (s *State) ModalActive() bool { return s.modal != ModalNone }

// MenuOpen reports whether the context menu is showing.
func (s *State) MenuOpen() bool { return s.modal == ModalMenu }

// DialogOpen reports whether the dialog log is showing.
func (s *State) DialogOpen() bool { return s.modal == ModalDialog }
