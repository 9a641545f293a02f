package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"dissonance/internal/inventory"
	"dissonance/internal/ui"
)

var (
	borderStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	chevronStyle  = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

const dialogHeight = 8

// drawMenu renders the context menu box near the center of the screen.
func (r *Renderer) drawMenu(st *ui.State) {
	title := fmt.Sprintf("[ %s ]", st.MenuTitle)
	width := runewidth.StringWidth(title)
	for _, a := range st.MenuActions {
		if w := runewidth.StringWidth(a.String()); w > width {
			width = w
		}
	}
	width += 6 // border, padding and cursor column
	height := len(st.MenuActions) + 3

	sw, sh := r.screen.Size()
	x0 := sw/2 + 4
	y0 := sh/2 - height
	r.drawBox(x0, y0, width, height)

	r.drawText(x0+2, y0+1, title, textStyle)
	for i, a := range st.MenuActions {
		style := textStyle
		cursor := "  "
		if i == st.SelectedIndex {
			style = selectedStyle
			cursor = "> "
		}
		r.drawText(x0+2, y0+2+i, cursor+a.String(), style)
	}
}

// drawDialog renders the dialog log pinned to the bottom of the screen, with
// the blink chevron in the bottom-right corner.
func (r *Renderer) drawDialog(st *ui.State) {
	sw, sh := r.screen.Size()
	x0, y0 := 1, sh-dialogHeight-1
	width := sw - 2
	r.drawBox(x0, y0, width, dialogHeight)

	inner := width - 4
	if inner < 1 {
		return
	}
	wrapped := strings.Split(wordwrap.String(st.DialogText(), inner), "\n")
	// Show the tail when the log outgrows the box.
	if max := dialogHeight - 2; len(wrapped) > max {
		wrapped = wrapped[len(wrapped)-max:]
	}
	for i, line := range wrapped {
		r.drawText(x0+2, y0+1+i, line, textStyle)
	}

	switch {
	case st.HasMoreLines() && st.ContinueChevronVisible():
		r.drawText(x0+width-3, y0+dialogHeight-1, "v", chevronStyle)
	case st.OnLastLine() && st.EndChevronVisible():
		r.drawText(x0+width-3, y0+dialogHeight-1, "x", chevronStyle)
	}
}

// drawInventory renders the item panel along the right edge.
func (r *Renderer) drawInventory(inv *inventory.Inventory) {
	const width = 24
	sw, _ := r.screen.Size()
	x0 := sw - width - 1
	height := inv.MaxSize + 3
	r.drawBox(x0, 1, width, height)

	header := fmt.Sprintf("Inventory %d/%d", len(inv.Items), inv.MaxSize)
	r.drawText(x0+2, 2, header, textStyle)
	for i, it := range inv.Items {
		name := runewidth.Truncate(it.Name, width-4, "…")
		r.drawText(x0+2, 3+i, name, tcell.StyleDefault.Foreground(it.IconColor))
	}
}

func (r *Renderer) drawBox(x0, y0, width, height int) {
	for y := y0; y <= y0+height; y++ {
		for x := x0; x <= x0+width; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+height) && (x == x0 || x == x0+width):
				ch = '+'
			case y == y0 || y == y0+height:
				ch = '─'
			case x == x0 || x == x0+width:
				ch = '│'
			}
			style := textStyle
			if ch != ' ' {
				style = borderStyle
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
