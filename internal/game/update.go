package game

import (
	"dissonance/internal/input"
	"dissonance/internal/system"
)

// Update advances the simulation by dt seconds. Phases run in a fixed order:
// proximity detection, then player input, then menu handling, then effect and
// dialog processing. Interaction effects emitted this tick are applied this
// tick, and new dialog lines reach the dialog box before the advance key is
// sampled, so a press that triggers an interaction cannot also page past its
// output.
func (g *Game) Update(dt float64) {
	g.elapsed += dt

	system.UpdateNearby(g.world)
	g.stepInput(dt)
	g.stepMenu()
	g.stepProcess(dt)

	g.in.BeginFrame()
}

func (g *Game) stepInput(dt float64) {
	// Movement and world interaction are gated by the modal slot; the
	// inventory panel is not a modal and toggles regardless.
	if !g.uiState.ModalActive() {
		move := system.MoveInput{
			Up:    g.in.Held(input.KeyUp, g.elapsed),
			Down:  g.in.Held(input.KeyDown, g.elapsed),
			Left:  g.in.Held(input.KeyLeft, g.elapsed),
			Right: g.in.Held(input.KeyRight, g.elapsed),
		}
		system.MovePlayer(g.world, move, dt)
		system.UpdateFacing(g.world, move)

		if g.in.Pressed(input.KeyInteract) {
			outcome, ev, req := system.HandleInteract(g.world)
			switch outcome {
			case system.InteractDirect:
				g.interactions = append(g.interactions, ev)
			case system.InteractMenu:
				g.menuRequests = append(g.menuRequests, req)
			}
		}
	}

	if g.in.Pressed(input.KeyInventory) {
		g.inv.Open = !g.inv.Open
		if g.inv.Open {
			g.log.Infof("inventory opened: %d/%d items", len(g.inv.Items), g.inv.MaxSize)
			for _, it := range g.inv.Items {
				g.log.Infof("  - %s", it.Name)
			}
		}
	}
}

func (g *Game) stepMenu() {
	for _, req := range g.menuRequests {
		if g.uiState.OpenMenu(req, g.elapsed) {
			g.log.Infof("menu opened for %s (%d actions)", req.Title, len(req.Actions))
		}
	}
	g.menuRequests = g.menuRequests[:0]

	if !g.uiState.MenuOpen() {
		return
	}
	if g.in.Pressed(input.KeyUp) {
		g.uiState.Navigate(-1)
	}
	if g.in.Pressed(input.KeyDown) {
		g.uiState.Navigate(1)
	}
	if g.in.Pressed(input.KeyInteract) {
		if sel, ok := g.uiState.Select(g.elapsed); ok {
			g.interactions = append(g.interactions, system.InteractionEvent{
				Entity: sel.Entity,
				Action: sel.Action,
			})
		}
	}
	if g.in.Pressed(input.KeyCancel) {
		g.uiState.CancelMenu()
	}
}

func (g *Game) stepProcess(dt float64) {
	pending := g.interactions
	g.interactions = nil
	for _, ev := range pending {
		lines := system.ApplyInteraction(g.world, g.inv, ev)
		for _, l := range lines {
			g.log.Info(l)
		}
		g.uiState.QueueLines(lines...)
	}

	// Open before advancing: lines queued this tick become visible first.
	g.uiState.UpdateDialog(g.elapsed)
	if g.uiState.DialogOpen() && g.in.Pressed(input.KeyInteract) {
		g.uiState.AdvanceDialog(g.elapsed)
	}
	g.uiState.TickBlink(dt)
}
