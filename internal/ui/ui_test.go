package ui

import (
	"fmt"
	"strings"
	"testing"

	"dissonance/internal/action"
	"dissonance/internal/ecs"
)

func openTestMenu(t *testing.T, s *State, now float64, actions ...action.Action) {
	t.Helper()
	req := MenuRequest{
		Entity:  ecs.EntityID{Index: 1, Generation: 1},
		Title:   "Wooden Chest",
		Actions: actions,
	}
	if !s.OpenMenu(req, now) {
		t.Fatal("expected menu to open")
	}
}

func TestOpenMenuResetsSelection(t *testing.T) {
	s := NewState()
	openTestMenu(t, s, 0, action.Open, action.Examine)
	if !s.MenuOpen() {
		t.Fatal("menu should be open")
	}
	if s.SelectedIndex != 0 {
		t.Fatalf("selection should reset to 0, got %d", s.SelectedIndex)
	}
	if s.MenuTitle != "Wooden Chest" {
		t.Fatalf("unexpected title %q", s.MenuTitle)
	}
}

func TestOpenMenuWithNoActionsIsNoop(t *testing.T) {
	s := NewState()
	if s.OpenMenu(MenuRequest{Title: "Ghost"}, 0) {
		t.Fatal("empty action list must not open a menu")
	}
	if s.ModalActive() {
		t.Fatal("no modal should be active")
	}
}

func TestNavigateWrapsBothEnds(t *testing.T) {
	s := NewState()
	openTestMenu(t, s, 0, action.Examine, action.Take, action.Use)

	s.Navigate(-1)
	if s.SelectedIndex != 2 {
		t.Fatalf("up from 0 should wrap to 2, got %d", s.SelectedIndex)
	}
	s.Navigate(1)
	if s.SelectedIndex != 0 {
		t.Fatalf("down from 2 should wrap to 0, got %d", s.SelectedIndex)
	}
}

func TestSelectDebounce(t *testing.T) {
	s := NewState()
	openTestMenu(t, s, 10.0, action.Examine, action.Take)

	if _, ok := s.Select(10.0 + DebounceSeconds/2); ok {
		t.Fatal("select inside the debounce window must be ignored")
	}
	if !s.MenuOpen() {
		t.Fatal("menu should stay open after a debounced press")
	}

	s.Navigate(1)
	sel, ok := s.Select(10.0 + DebounceSeconds*2)
	if !ok {
		t.Fatal("select after the debounce window should fire")
	}
	if sel.Action != action.Take {
		t.Fatalf("expected Take, got %v", sel.Action)
	}
	if s.MenuOpen() {
		t.Fatal("select should close the menu")
	}
}

func TestCancelClosesWithoutFiring(t *testing.T) {
	s := NewState()
	openTestMenu(t, s, 0, action.Examine, action.Take)
	s.CancelMenu()
	if s.ModalActive() {
		t.Fatal("cancel should close the menu")
	}
}

func TestDialogWaitsForMenuToClose(t *testing.T) {
	s := NewState()
	openTestMenu(t, s, 0, action.Examine, action.Take)
	s.QueueLines("* line one")

	s.UpdateDialog(0.1)
	if s.DialogOpen() {
		t.Fatal("dialog must not open while the menu holds the modal slot")
	}

	s.CancelMenu()
	s.UpdateDialog(0.2)
	if !s.DialogOpen() {
		t.Fatal("dialog should open once the modal slot frees")
	}
}

func TestDialogPagination(t *testing.T) {
	const n = 4
	s := NewState()
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("* line %d", i)
	}
	s.QueueLines(lines...)

	s.UpdateDialog(0)
	if !s.DialogOpen() {
		t.Fatal("queued lines should open the dialog")
	}
	if got := s.DialogText(); got != lines[0] {
		t.Fatalf("initial page = %q, want %q", got, lines[0])
	}

	now := 1.0
	for k := 1; k < n; k++ {
		s.AdvanceDialog(now)
		now += 1.0
		want := strings.Join(lines[:k+1], "\n")
		if got := s.DialogText(); got != want {
			t.Fatalf("page after advance %d = %q, want %q", k, got, want)
		}
		if !s.DialogOpen() {
			t.Fatalf("dialog closed early after advance %d", k)
		}
	}

	s.AdvanceDialog(now)
	if s.DialogOpen() {
		t.Fatal("advancing past the last line should close the dialog")
	}
	if s.QueuedLines() != 0 {
		t.Fatal("closing should clear the queue")
	}
}

func TestDialogAdvanceDebounce(t *testing.T) {
	s := NewState()
	s.QueueLines("* only line")
	s.UpdateDialog(5.0)

	s.AdvanceDialog(5.0 + DebounceSeconds/2)
	if !s.DialogOpen() {
		t.Fatal("advance inside the debounce window must be ignored")
	}
	s.AdvanceDialog(5.0 + DebounceSeconds*2)
	if s.DialogOpen() {
		t.Fatal("advance past the single line should close the dialog")
	}
}

func TestLinesArrivingWhileOpenExtendTheQueue(t *testing.T) {
	s := NewState()
	s.QueueLines("* first")
	s.UpdateDialog(0)
	s.QueueLines("* second")

	if !s.HasMoreLines() {
		t.Fatal("a line queued while open should be pending")
	}
	s.AdvanceDialog(1.0)
	if got := s.DialogText(); got != "* first\n* second" {
		t.Fatalf("cumulative page = %q", got)
	}
	if !s.OnLastLine() {
		t.Fatal("second line should be the last")
	}
}

func TestChevronBlink(t *testing.T) {
	s := NewState()
	s.QueueLines("* first", "* second")
	s.UpdateDialog(0)

	// Continue chevron toggles at its period while more lines remain.
	s.TickBlink(0.5)
	if !s.ContinueChevronVisible() {
		t.Fatal("continue chevron should toggle visible after one period")
	}
	if s.EndChevronVisible() {
		t.Fatal("end chevron must stay hidden before the last line")
	}

	s.AdvanceDialog(1.0)
	s.TickBlink(0.8)
	if !s.EndChevronVisible() {
		t.Fatal("end chevron should toggle visible on the last line")
	}
	if s.ContinueChevronVisible() {
		t.Fatal("continue chevron resets once no lines remain")
	}
}
