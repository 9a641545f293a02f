package game

import (
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"dissonance/internal/component"
	"dissonance/internal/ecs"
	"dissonance/internal/input"
	"dissonance/internal/ui"
	"dissonance/pkg/logger"
)

const tickDt = 0.1 // long enough to clear the modal debounce window

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return New(nil, logger.New(io.Discard))
}

// tick presses the given keys and advances the game one frame.
func tick(g *Game, keys ...input.Key) {
	for _, k := range keys {
		g.in.Press(k, g.elapsed)
	}
	g.Update(tickDt)
}

func findByName(t *testing.T, g *Game, name string) ecs.EntityID {
	t.Helper()
	for _, id := range g.world.Query(component.CInteractable) {
		inter := g.world.Get(id, component.CInteractable).(component.Interactable)
		if inter.Name == name {
			return id
		}
	}
	t.Fatalf("no interactable named %q", name)
	return ecs.NilEntity
}

func movePlayerTo(g *Game, x, y float64) {
	g.world.Add(g.playerID, component.Position{X: x, Y: y, Layer: 10})
}

func TestTakeKeyThroughMenu(t *testing.T) {
	g := newTestGame(t)
	key := findByName(t, g, "Rusty Key")
	movePlayerTo(g, -90, 0)

	tick(g, input.KeyInteract)
	if !g.uiState.MenuOpen() {
		t.Fatalf("expected menu after interacting with the key")
	}
	if g.uiState.MenuTitle != "Rusty Key" {
		t.Fatalf("menu title = %q, want Rusty Key", g.uiState.MenuTitle)
	}
	if got := g.uiState.MenuActions[0].String(); got != "* Check" {
		t.Fatalf("first option = %q, want * Check", got)
	}

	tick(g, input.KeyDown) // move cursor to Take
	if g.uiState.SelectedIndex != 1 {
		t.Fatalf("selected index = %d, want 1", g.uiState.SelectedIndex)
	}

	tick(g, input.KeyInteract) // select Take
	if g.uiState.MenuOpen() {
		t.Fatalf("menu should close on select")
	}
	if len(g.inv.Items) != 1 || g.inv.Items[0].Name != "Rusty Key" {
		t.Fatalf("inventory = %+v, want the Rusty Key", g.inv.Items)
	}
	if g.world.Alive(key) {
		t.Fatalf("picked-up key should be despawned")
	}
	if !g.uiState.DialogOpen() {
		t.Fatalf("pickup line should open the dialog")
	}
	if got := g.uiState.DialogText(); got != "* You obtained the Rusty Key!" {
		t.Fatalf("dialog = %q", got)
	}
}

func TestLockedDoorWithoutKey(t *testing.T) {
	g := newTestGame(t)
	door := findByName(t, g, "Iron Door")
	movePlayerTo(g, 0, -90)

	tick(g, input.KeyInteract)
	if !g.uiState.MenuOpen() {
		t.Fatalf("expected menu for the door")
	}
	tick(g, input.KeyDown)     // Open
	tick(g, input.KeyInteract) // select

	if d := g.world.Get(door, component.CDoor).(component.Door); d.IsOpen {
		t.Fatalf("locked door must stay closed without the key")
	}
	if !g.uiState.DialogOpen() {
		t.Fatalf("locked door should report through the dialog")
	}
	if got := g.uiState.DialogText(); got != "* The Iron Door is locked." {
		t.Fatalf("first line = %q", got)
	}
	if !g.uiState.HasMoreLines() {
		t.Fatalf("key hint line should still be queued")
	}

	tick(g, input.KeyInteract) // advance
	if !strings.Contains(g.uiState.DialogText(), "* You need a matching key.") {
		t.Fatalf("dialog after advance = %q", g.uiState.DialogText())
	}
}

func TestUnlockDoorWithKey(t *testing.T) {
	g := newTestGame(t)
	door := findByName(t, g, "Iron Door")
	movePlayerTo(g, -90, 0)

	// Take the key first.
	tick(g, input.KeyInteract)
	tick(g, input.KeyDown)
	tick(g, input.KeyInteract)
	for g.uiState.DialogOpen() {
		tick(g, input.KeyInteract)
	}

	movePlayerTo(g, 0, -90)
	tick(g, input.KeyInteract)
	tick(g, input.KeyDown)
	tick(g, input.KeyInteract)

	if d := g.world.Get(door, component.CDoor).(component.Door); !d.IsOpen {
		t.Fatalf("door should open once the key is held")
	}
	if len(g.inv.Items) != 0 {
		t.Fatalf("the key should be consumed, inventory = %+v", g.inv.Items)
	}
	if g.world.Get(door, component.CTagSolid) != nil {
		t.Fatalf("open door must not be solid")
	}
}

func TestModalGatesMovement(t *testing.T) {
	g := newTestGame(t)
	movePlayerTo(g, -90, 0)
	tick(g, input.KeyInteract)
	if !g.uiState.MenuOpen() {
		t.Fatalf("expected open menu")
	}

	before := g.world.Get(g.playerID, component.CPosition).(component.Position)
	tick(g, input.KeyRight)
	after := g.world.Get(g.playerID, component.CPosition).(component.Position)
	if before != after {
		t.Fatalf("player moved while a menu was open: %+v -> %+v", before, after)
	}

	tick(g, input.KeyCancel)
	if g.uiState.ModalActive() {
		t.Fatalf("cancel should close the menu")
	}
	tick(g, input.KeyRight)
	moved := g.world.Get(g.playerID, component.CPosition).(component.Position)
	if moved.X <= after.X {
		t.Fatalf("player should move once the menu closes")
	}
}

func TestInventoryTogglesDuringModal(t *testing.T) {
	g := newTestGame(t)
	movePlayerTo(g, -90, 0)
	tick(g, input.KeyInteract)
	if !g.uiState.MenuOpen() {
		t.Fatalf("expected open menu")
	}

	tick(g, input.KeyInventory)
	if !g.inv.Open {
		t.Fatalf("inventory panel should toggle even while a menu is open")
	}
	tick(g, input.KeyInventory)
	if g.inv.Open {
		t.Fatalf("inventory panel should toggle closed")
	}
}

func TestOpeningPressDoesNotAdvanceDialog(t *testing.T) {
	g := newTestGame(t)
	movePlayerTo(g, 60, -35) // near the NPC

	tick(g, input.KeyInteract) // menu: Talk / Check
	if !g.uiState.MenuOpen() {
		t.Fatalf("expected NPC menu")
	}
	tick(g, input.KeyInteract) // select Talk; its press must not also page

	if !g.uiState.DialogOpen() {
		t.Fatalf("talking should open the dialog")
	}
	if got := g.uiState.QueuedLines(); got < 2 {
		t.Fatalf("NPC dialogue should queue several lines, got %d", got)
	}
	if strings.Contains(g.uiState.DialogText(), "\n") {
		t.Fatalf("only the first line should be visible, got %q", g.uiState.DialogText())
	}
}

func TestFrameRendersMenuOnScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	g := New(screen, logger.New(io.Discard))
	movePlayerTo(g, -90, 0)
	tick(g, input.KeyInteract)
	g.renderer.DrawFrame(g.world, g.uiState, g.inv)

	cells, w, h := screen.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := cells[y*w+x]; len(c.Runes) > 0 {
				b.WriteRune(c.Runes[0])
			}
		}
	}
	if !strings.Contains(b.String(), "[ Rusty Key ]") {
		t.Fatalf("rendered frame should show the open menu")
	}
}

func TestMenuWaitsThenDialogOpens(t *testing.T) {
	g := newTestGame(t)
	g.uiState.QueueLines("one")
	movePlayerTo(g, -90, 0)

	tick(g, input.KeyInteract)
	if g.uiState.Modal() != ui.ModalMenu {
		t.Fatalf("menu should win the modal slot, got %v", g.uiState.Modal())
	}

	tick(g, input.KeyCancel)
	tick(g)
	if g.uiState.Modal() != ui.ModalDialog {
		t.Fatalf("queued dialog should open once the menu closes, got %v", g.uiState.Modal())
	}
}
