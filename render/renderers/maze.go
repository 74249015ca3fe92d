package renderers

import (
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/maze"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/render"
	"github.com/lixenwraith/dreadmaze/vmath"
)

// MazeRenderer draws lit walls and floor around the player
type MazeRenderer struct{}

// NewMazeRenderer creates a maze renderer
func NewMazeRenderer() *MazeRenderer {
	return &MazeRenderer{}
}

// Render implements SystemRenderer
func (r *MazeRenderer) Render(ctx render.RenderContext, w *engine.World, buf *render.RenderBuffer) {
	grid := ctx.Layout.Grid
	minX, minY, maxX, maxY := ctx.VisibleTiles()

	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			p := maze.Point{X: tx, Y: ty}
			if !grid.InBounds(p) {
				continue
			}
			sx, sy := ctx.TileToScreen(p)
			if sy < 0 || sy >= ctx.ViewHeight {
				continue
			}

			light := ctx.Illumination(vmath.HorizontalDistance(w.Player.Position, ctx.Layout.Center(p)))
			if light == 0 {
				continue
			}

			cell := render.Cell{Rune: '·', Fg: render.Scale(render.RGBFloor, light*2), Bg: render.Scale(render.RGBFloor, light)}
			if grid.IsWall(p) {
				cell = render.Cell{Rune: '█', Fg: render.Scale(render.RGBStone, light), Bg: render.RGBBlack}
			}
			for c := 0; c < parameter.TileColumns; c++ {
				if c > 0 && cell.Rune == '·' {
					cell.Rune = ' '
				}
				buf.Set(sx+c, sy, cell)
			}
		}
	}
}
