package renderers

import (
	"fmt"

	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/render"
	"github.com/lixenwraith/dreadmaze/system"
)

var title = []string{
	"█▀▄ █▀█ █▀▀ ▄▀█ █▀▄ █▀▄▀█ ▄▀█ ▀█ █▀▀",
	"█▄▀ █▀▄ ██▄ █▀█ █▄▀ █ ▀ █ █▀█ █▄ ██▄",
}

// SplashRenderer draws the boot screen and the end screens
type SplashRenderer struct {
	name string
}

// NewSplashRenderer creates a splash renderer captioned with the scenario name
func NewSplashRenderer(scenario string) *SplashRenderer {
	return &SplashRenderer{name: scenario}
}

// Render implements SystemRenderer
func (s *SplashRenderer) Render(ctx render.RenderContext, w *engine.World, buf *render.RenderBuffer) {
	switch ctx.Phase {
	case engine.PhaseBoot:
		s.boot(ctx, buf)
	case engine.PhaseWon, engine.PhaseLost:
		s.ending(ctx, w, buf)
	}
}

func (s *SplashRenderer) boot(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.Clear()
	y := max(ctx.ViewHeight/3-2, 0)
	for i, line := range title {
		buf.Centered(y+i, line, render.RGBEnemy, render.RGBBlack)
	}
	y += len(title) + 2
	buf.Centered(y, s.name, render.RGBStatus, render.RGBBlack)
	buf.Centered(y+2, "press enter", render.RGBMessage, render.RGBBlack)
	buf.Centered(y+4, "arrows / wasd / hjkl to walk    ctrl+s mute    q quit", render.Scale(render.RGBStatus, 0.6), render.RGBBlack)
}

func (s *SplashRenderer) ending(ctx render.RenderContext, w *engine.World, buf *render.RenderBuffer) {
	// Dim the frozen last frame under the report
	bw, bh := buf.Size()
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			c := buf.Get(x, y)
			c.Fg = render.Scale(c.Fg, 0.3)
			c.Bg = render.Scale(c.Bg, 0.3)
			buf.Set(x, y, c)
		}
	}

	heading, color := "THE DARK TAKES YOU", render.RGBEnemy
	if ctx.Phase == engine.PhaseWon {
		heading, color = "YOU ESCAPED", render.RGBExit
	}

	summary := system.Summary(w)
	y := max(ctx.ViewHeight/2-summary.Len()/2-3, 0)
	buf.Centered(y, heading, color, render.RGBBlack)
	y += 2
	for el := summary.Front(); el != nil; el = el.Next() {
		buf.Centered(y, fmt.Sprintf("%-10s %v", el.Key, el.Value), render.RGBStatus, render.RGBBlack)
		y++
	}
	buf.Centered(y+1, "press q to leave", render.RGBMessage, render.RGBBlack)
}
