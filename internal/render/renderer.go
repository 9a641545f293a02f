package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"dissonance/internal/component"
	"dissonance/internal/ecs"
	"dissonance/internal/inventory"
	"dissonance/internal/system"
	"dissonance/internal/ui"
)

// Renderer draws the game world and UI overlays onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer sized to the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, h),
	}
}

// Resize resyncs the camera viewport with the screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h
}

// DrawFrame renders sprites and whichever overlays are active, then flips.
func (r *Renderer) DrawFrame(w *ecs.World, st *ui.State, inv *inventory.Inventory) {
	r.screen.Clear()

	if player := system.PlayerEntity(w); player != ecs.NilEntity {
		if c := w.Get(player, component.CPosition); c != nil {
			pos := c.(component.Position)
			r.camera.Center(pos.X, pos.Y)
		}
	}

	r.drawSprites(w)

	if st.MenuOpen() {
		r.drawMenu(st)
	}
	if st.DialogOpen() {
		r.drawDialog(st)
	}
	if inv.Open {
		r.drawInventory(inv)
	}

	r.screen.Show()
}

type spriteEntity struct {
	id     ecs.EntityID
	pos    component.Position
	sprite component.Sprite
}

// drawSprites renders every visible sprite as a filled rectangle, back to
// front by layer. Ties break on slot index so draw order is stable.
func (r *Renderer) drawSprites(w *ecs.World) {
	ids := w.Query(component.CSprite, component.CPosition)
	entities := make([]spriteEntity, 0, len(ids))
	for _, id := range ids {
		sprite := w.Get(id, component.CSprite).(component.Sprite)
		if !sprite.Visible {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		entities = append(entities, spriteEntity{id: id, pos: pos, sprite: sprite})
	}

	sort.Slice(entities, func(i, j int) bool {
		if entities[i].pos.Layer != entities[j].pos.Layer {
			return entities[i].pos.Layer < entities[j].pos.Layer
		}
		return entities[i].id.Index < entities[j].id.Index
	})

	for _, e := range entities {
		r.fillBox(e.pos, e.sprite)
	}
}

// fillBox paints the sprite's world-space AABB as background-colored cells.
func (r *Renderer) fillBox(pos component.Position, sprite component.Sprite) {
	hw, hh := sprite.HalfExtents()
	style := tcell.StyleDefault.Background(sprite.Color)

	x0, y0, _ := r.camera.WorldToScreen(pos.X-hw, pos.Y-hh)
	x1, y1, _ := r.camera.WorldToScreen(pos.X+hw, pos.Y+hh)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= r.camera.ViewWidth || y < 0 || y >= r.camera.ViewHeight {
				continue
			}
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
