package game

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"dissonance/assets"
	"dissonance/internal/ecs"
	"dissonance/internal/factory"
	"dissonance/internal/input"
	"dissonance/internal/inventory"
	"dissonance/internal/render"
	"dissonance/internal/system"
	"dissonance/internal/ui"
)

// FrameRate is the fixed tick rate of the update loop.
const FrameRate = 30

// Game is the top-level orchestrator. It owns the world, the UI state and
// the inventory, and threads them explicitly through each update phase —
// nothing here is a package-level singleton.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	world    *ecs.World
	uiState  *ui.State
	inv      *inventory.Inventory
	in       *input.State
	log      *logrus.Logger
	playerID ecs.EntityID
	elapsed  float64
	quitting bool

	// Per-frame event queues, drained once per tick in emission order.
	menuRequests []ui.MenuRequest
	interactions []system.InteractionEvent
}

// New builds a Game on the given screen and populates the demo room.
func New(screen tcell.Screen, log *logrus.Logger) *Game {
	g := &Game{
		screen:  screen,
		world:   ecs.NewWorld(),
		uiState: ui.NewState(),
		inv:     inventory.New(inventory.DefaultCapacity),
		in:      input.NewState(),
		log:     log,
	}

	g.playerID = factory.NewPlayer(g.world, assets.PlayerStart.X, assets.PlayerStart.Y)
	factory.NewIndicator(g.world, assets.PlayerStart.X, assets.PlayerStart.Y-20)
	for _, def := range assets.Objects {
		factory.NewObject(g.world, def)
	}
	for _, def := range assets.Walls {
		factory.NewWall(g.world, def)
	}

	if screen != nil {
		g.renderer = render.NewRenderer(screen)
	}
	return g
}

// Run drives the fixed-rate frame loop until the player quits or the screen
// closes. Input events are pumped on a separate goroutine so the loop never
// blocks on the terminal.
func (g *Game) Run() {
	defer g.screen.Fini()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()
	last := time.Now()

	for !g.quitting {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			g.handleEvent(ev)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			g.Update(dt)
			g.renderer.DrawFrame(g.world, g.uiState, g.inv)
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		if input.MapKey(ev) == input.KeyQuit {
			g.quitting = true
			return
		}
		g.in.HandleEvent(ev, g.elapsed)
	}
}
