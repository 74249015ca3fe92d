package render

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/component"
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/maze"
	"github.com/lixenwraith/dreadmaze/parameter"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Frame uint64
	Phase engine.Phase

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// ViewHeight is the rows above the status bar
	ViewHeight int

	// Screen cell of the player's tile, jitter applied
	CenterX int
	CenterY int

	PlayerTile maze.Point
	Layout     *maze.Layout
	Atmosphere component.AtmosphereParams
}

// NewRenderContext derives the frame's projection from the world
func NewRenderContext(w *engine.World, layout *maze.Layout, width, height int) RenderContext {
	view := max(height-parameter.StatusBarRows, 0)
	atmo := w.Atmosphere

	shakeX := int(math32.Round(atmo.JitterYaw * parameter.JitterCellsPerRadian))
	shakeY := int(math32.Round(atmo.JitterPitch * parameter.JitterCellsPerRadian / 2))

	return RenderContext{
		Frame:      w.Frame,
		Phase:      w.Phase.Current(),
		Width:      width,
		Height:     height,
		ViewHeight: view,
		CenterX:    width/2 + shakeX,
		CenterY:    view/2 + shakeY,
		PlayerTile: layout.TileAt(w.Player.Position),
		Layout:     layout,
		Atmosphere: atmo,
	}
}

// TileToScreen returns the left cell of a tile
func (rc *RenderContext) TileToScreen(p maze.Point) (int, int) {
	return rc.CenterX + (p.X-rc.PlayerTile.X)*parameter.TileColumns,
		rc.CenterY + (p.Y - rc.PlayerTile.Y)
}

// WorldToScreen projects a world position onto its tile's left cell
// visible is false outside the view rows
func (rc *RenderContext) WorldToScreen(pos mgl32.Vec3) (int, int, bool) {
	x, y := rc.TileToScreen(rc.Layout.TileAt(pos))
	return x, y, x >= 0 && x < rc.Width && y >= 0 && y < rc.ViewHeight
}

// VisibleTiles returns the tile range covering the view rows
func (rc *RenderContext) VisibleTiles() (minX, minY, maxX, maxY int) {
	halfCols := rc.Width/(2*parameter.TileColumns) + 2
	halfRows := rc.ViewHeight/2 + 2
	return rc.PlayerTile.X - halfCols, rc.PlayerTile.Y - halfRows,
		rc.PlayerTile.X + halfCols, rc.PlayerTile.Y + halfRows
}

// Illumination is the light reaching a world point from the player's lantern
// Zero beyond the view radius, fading with distance and fog inside it
func (rc *RenderContext) Illumination(d float32) float64 {
	radius := rc.Atmosphere.ViewRadius
	if radius <= 0 || d >= radius {
		return 0
	}
	l := float64(rc.Atmosphere.Light*(1-d/radius)) * math.Exp(-float64(rc.Atmosphere.Fog*d))
	if l < parameter.MinVisibleLight {
		return 0
	}
	return l
}
