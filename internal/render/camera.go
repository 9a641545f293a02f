package render

// World units per terminal cell. Cells are roughly twice as tall as they are
// wide, so the vertical scale is double the horizontal one to keep the room
// square on screen.
const (
	UnitsPerCellX = 4.0
	UnitsPerCellY = 8.0
)

// Camera translates continuous world coordinates into terminal cells. It is
// recentered on the player every frame.
type Camera struct {
	centerX    float64
	centerY    float64
	ViewWidth  int // terminal columns
	ViewHeight int // terminal rows
}

// NewCamera creates a camera for a viewport of viewW x viewH cells.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Center repositions the camera so world position (x, y) maps to the middle
// of the viewport.
func (c *Camera) Center(x, y float64) {
	c.centerX = x
	c.centerY = y
}

// WorldToScreen converts world (wx, wy) to a terminal cell. visible is false
// when the cell falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy int, visible bool) {
	sx = c.ViewWidth/2 + int((wx-c.centerX)/UnitsPerCellX)
	sy = c.ViewHeight/2 + int((wy-c.centerY)/UnitsPerCellY)
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
