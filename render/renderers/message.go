package renderers

import (
	"strings"

	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/render"
)

// MessageRenderer draws the active narrative line in the upper third of the view
type MessageRenderer struct {
	hud *render.HUD
}

// NewMessageRenderer creates a message overlay renderer
func NewMessageRenderer(hud *render.HUD) *MessageRenderer {
	return &MessageRenderer{hud: hud}
}

// IsVisible hides the renderer while no message is shown
func (m *MessageRenderer) IsVisible() bool {
	_, visible := m.hud.Message()
	return visible
}

// Render implements SystemRenderer
func (m *MessageRenderer) Render(ctx render.RenderContext, _ *engine.World, buf *render.RenderBuffer) {
	text, visible := m.hud.Message()
	if !visible {
		return
	}
	lines := Wrap(text, min(parameter.MessageMaxWidth, max(ctx.Width-4, 8)))
	top := max(ctx.ViewHeight/4-len(lines)/2, 0)
	for i, line := range lines {
		buf.Centered(top+i, " "+line+" ", render.RGBMessage, render.RGBBlack)
	}
}

// Wrap breaks text on spaces into lines no longer than width runes
// Words longer than width are kept whole
func Wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	n := 0
	for _, word := range strings.Fields(text) {
		wl := len([]rune(word))
		if n > 0 && n+1+wl > width {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wl
	}
	if n > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
