package renderers

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/render"
)

// PostProcessRenderer darkens the view edges and splits color channels
type PostProcessRenderer struct {
	row []render.Cell
}

// NewPostProcessRenderer creates the vignette and aberration pass
func NewPostProcessRenderer() *PostProcessRenderer {
	return &PostProcessRenderer{}
}

// Render implements SystemRenderer
func (r *PostProcessRenderer) Render(ctx render.RenderContext, _ *engine.World, buf *render.RenderBuffer) {
	atmo := ctx.Atmosphere
	shift := int(math32.Round(atmo.Aberration * parameter.AberrationCells))

	halfW := float64(max(ctx.Width, 2)) / 2
	halfH := float64(max(ctx.ViewHeight, 2)) / 2

	for y := 0; y < ctx.ViewHeight; y++ {
		if shift > 0 {
			r.aberrate(buf, y, shift, ctx.Width)
		}

		dy := (float64(y) - halfH) / halfH
		for x := 0; x < ctx.Width; x++ {
			dx := (float64(x) - halfW) / halfW
			f := 1 - float64(atmo.Vignette)*(dx*dx+dy*dy)/2
			c := buf.Get(x, y)
			c.Fg = render.Scale(c.Fg, f)
			c.Bg = render.Scale(c.Bg, f)
			buf.Set(x, y, c)
		}
	}
}

// aberrate pulls the red channel from the left and blue from the right
func (r *PostProcessRenderer) aberrate(buf *render.RenderBuffer, y, shift, width int) {
	r.row = r.row[:0]
	for x := 0; x < width; x++ {
		r.row = append(r.row, buf.Get(x, y))
	}
	at := func(x int) render.Cell {
		if x < 0 || x >= width {
			return render.Cell{}
		}
		return r.row[x]
	}

	for x := 0; x < width; x++ {
		c := r.row[x]
		left, right := at(x-shift), at(x+shift)
		c.Fg.R = left.Fg.R
		c.Fg.B = right.Fg.B
		if c.Rune == ' ' && render.Luma(c.Fg) > 24 {
			c.Rune = '░'
		}
		buf.Set(x, y, c)
	}
}
