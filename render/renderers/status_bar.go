package renderers

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/render"
)

const audioStr = " ♪ "

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct {
	hud *render.HUD
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(hud *render.HUD) *StatusBarRenderer {
	return &StatusBarRenderer{hud: hud}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, w *engine.World, buf *render.RenderBuffer) {
	y := ctx.Height - parameter.StatusBarRows
	if y < 0 {
		return
	}
	bg := render.RGBStatusBar
	for x := 0; x < ctx.Width; x++ {
		buf.Set(x, y, render.Cell{Rune: ' ', Bg: bg})
	}

	audioBg := render.RGBUnmuted
	if s.hud.Muted() {
		audioBg = render.RGBMuted
	}
	x := buf.Text(0, y, audioStr, render.RGBBlack, audioBg)
	x = buf.Text(x+1, y, "SANITY ", render.RGBStatus, bg)

	pct := s.hud.Sanity()
	filled := int(pct / 100 * parameter.SanityBarWidth)
	gauge := render.Blend(render.RGBSanityLo, render.RGBSanityHi, float64(pct)/100)
	for i := 0; i < parameter.SanityBarWidth; i++ {
		ch, fg := '░', render.Scale(gauge, 0.4)
		if i < filled {
			ch, fg = '█', gauge
		}
		buf.Set(x+i, y, render.Cell{Rune: ch, Fg: fg, Bg: bg})
	}
	x += parameter.SanityBarWidth
	x = buf.Text(x+1, y, fmt.Sprintf("%3.0f%%", pct), gauge, bg)

	info := []string{
		strings.ToUpper(ctx.Phase.String()),
		w.Elapsed.Truncate(time.Second).String(),
	}
	if len(w.Orbs) > 0 {
		info = append(info, fmt.Sprintf("orbs %d/%d", w.Stats.OrbsCollected, len(w.Orbs)))
	}
	buf.Text(x+2, y, strings.Join(info, "  "), render.RGBStatus, bg)
}
