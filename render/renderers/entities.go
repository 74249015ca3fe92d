package renderers

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/render"
	"github.com/lixenwraith/dreadmaze/vmath"
)

// orbGlow keeps orbs faintly visible past the lantern's reach
const orbGlow = 0.3

// EntityRenderer draws the exit, orbs, enemies and the player
type EntityRenderer struct {
	hud *render.HUD
}

// NewEntityRenderer creates an entity renderer reading the walk state from hud
func NewEntityRenderer(hud *render.HUD) *EntityRenderer {
	return &EntityRenderer{hud: hud}
}

// Render implements SystemRenderer
func (r *EntityRenderer) Render(ctx render.RenderContext, w *engine.World, buf *render.RenderBuffer) {
	from := w.Player.Position

	if w.HasExit {
		if light := ctx.Illumination(vmath.HorizontalDistance(from, w.Exit)); light > 0 {
			r.put(ctx, buf, w.Exit, "><", render.Scale(render.RGBExit, light+0.3))
		}
	}

	for _, orb := range w.Orbs {
		if orb.Collected {
			continue
		}
		light := max(ctx.Illumination(vmath.HorizontalDistance(from, orb.Position)), orbGlow)
		r.put(ctx, buf, orb.Position, "()", render.Scale(render.RGBOrb, light))
	}

	for _, e := range w.Enemies {
		light := ctx.Illumination(e.Distance)
		if light == 0 {
			continue
		}
		r.put(ctx, buf, e.Position, "&&", render.Scale(render.RGBEnemy, light+0.2))
	}

	glyph := "@" + string(facingArrow(w.Player.Facing))
	if moving, steps := r.hud.Moving(); moving && (ctx.Frame/6+uint64(steps))%2 == 1 {
		glyph = "@ "
	}
	x, y := ctx.TileToScreen(ctx.PlayerTile)
	for i, ch := range glyph {
		buf.Set(x+i, y, render.Cell{Rune: ch, Fg: render.RGBPlayer, Bold: true})
	}
}

func (r *EntityRenderer) put(ctx render.RenderContext, buf *render.RenderBuffer, pos mgl32.Vec3, glyph string, fg render.RGB) {
	x, y, ok := ctx.WorldToScreen(pos)
	if !ok {
		return
	}
	for i, ch := range glyph {
		bg := buf.Get(x+i, y).Bg
		buf.Set(x+i, y, render.Cell{Rune: ch, Fg: fg, Bg: bg, Bold: true})
	}
}

// facingArrow picks the arrow closest to a horizontal direction, screen-up is -Z
func facingArrow(f mgl32.Vec3) rune {
	if f.X()*f.X() >= f.Z()*f.Z() {
		if f.X() >= 0 {
			return '>'
		}
		return '<'
	}
	if f.Z() < 0 {
		return '^'
	}
	return 'v'
}
