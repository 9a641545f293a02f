package ui

import "dissonance/internal/ecs"

// OpenMenu shows the context menu for a request, resetting the selection to
// the first entry. The open timestamp starts the debounce window. Requests
// arriving while another modal is active are dropped.
func (s *State) OpenMenu(req MenuRequest, now float64) bool {
	if s.modal != ModalNone {
		return false
	}
	if len(req.Actions) == 0 {
		return false
	}
	s.modal = ModalMenu
	s.MenuTitle = req.Title
	s.MenuActions = req.Actions
	s.MenuEntity = req.Entity
	s.SelectedIndex = 0
	s.menuOpenedAt = now
	return true
}

// Navigate moves the selection by delta entries, wrapping at both ends.
func (s *State) Navigate(delta int) {
	if s.modal != ModalMenu || len(s.MenuActions) == 0 {
		return
	}
	n := len(s.MenuActions)
	s.SelectedIndex = ((s.SelectedIndex+delta)%n + n) % n
}

// Select resolves the highlighted action and closes the menu. Within the
// debounce window after opening it does nothing, so the press that opened
// the menu cannot also confirm it.
func (s *State) Select(now float64) (Selection, bool) {
	if s.modal != ModalMenu {
		return Selection{}, false
	}
	if now-s.menuOpenedAt < DebounceSeconds {
		return Selection{}, false
	}
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.MenuActions) {
		return Selection{}, false
	}
	sel := Selection{Entity: s.MenuEntity, Action: s.MenuActions[s.SelectedIndex]}
	s.closeMenu()
	return sel, true
}

// CancelMenu closes the menu without firing anything.
func (s *State) CancelMenu() {
	if s.modal != ModalMenu {
		return
	}
	s.closeMenu()
}

func (s *State) closeMenu() {
	s.modal = ModalNone
	s.MenuTitle = ""
	s.MenuActions = nil
	s.MenuEntity = ecs.NilEntity
	s.SelectedIndex = 0
}
