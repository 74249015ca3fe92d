package render

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/component"
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/maze"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/physics"
)

var (
	_ engine.Overlay    = (*HUD)(nil)
	_ engine.MotionSink = (*HUD)(nil)
)

func testLayout() *maze.Layout {
	g := maze.Generate(maze.Config{Width: 15, Height: 11}, rand.New(rand.NewSource(7)))
	return maze.NewLayout(g, parameter.TileSize, parameter.WallHeight, parameter.FloorDepth)
}

func testWorld(l *maze.Layout) *engine.World {
	p := component.NewPlayerState(l.Start, physics.Envelope{Radius: 0.3, Height: 1.8})
	return engine.NewWorld(p, nil, engine.Options{})
}

func TestBufferBounds(t *testing.T) {
	b := NewRenderBuffer(4, 2)
	b.Set(3, 1, Cell{Rune: 'x'})
	b.Set(4, 0, Cell{Rune: 'y'})
	b.Set(-1, 0, Cell{Rune: 'y'})

	if got := b.Get(3, 1).Rune; got != 'x' {
		t.Errorf("Get(3,1) = %q", got)
	}
	if got := b.Get(9, 9); got != emptyCell {
		t.Errorf("out of bounds Get = %+v", got)
	}

	b.Clear()
	if got := b.Get(3, 1); got != emptyCell {
		t.Errorf("Clear left %+v", got)
	}

	b.Resize(10, 3)
	if w, h := b.Size(); w != 10 || h != 3 {
		t.Errorf("Size = %d,%d", w, h)
	}
	b.Resize(-1, 5)
	if w, h := b.Size(); w != 0 || h != 5 {
		t.Errorf("negative resize = %d,%d", w, h)
	}
}

func TestBufferText(t *testing.T) {
	b := NewRenderBuffer(11, 1)
	b.Centered(0, "abc", RGBStatus, RGBBlack)
	if b.Get(4, 0).Rune != 'a' || b.Get(6, 0).Rune != 'c' {
		t.Errorf("centered text misplaced")
	}
	if next := b.Text(9, 0, "xyz", RGBStatus, RGBBlack); next != 12 {
		t.Errorf("Text next = %d", next)
	}
}

func TestColorOps(t *testing.T) {
	c := RGB{200, 100, 50}
	if Scale(c, 0.5) != (RGB{100, 50, 25}) {
		t.Errorf("Scale = %+v", Scale(c, 0.5))
	}
	if Scale(c, 2) != c || Scale(c, -1) != RGBBlack {
		t.Error("Scale does not clamp")
	}
	if Blend(RGBBlack, c, 1) != c || Blend(RGBBlack, c, 0) != RGBBlack {
		t.Error("Blend endpoints")
	}
	if FromTcell(ToTcell(c)) != c {
		t.Error("tcell color round trip")
	}
	if FromTcell(tcell.ColorDefault) != RGBBlack {
		t.Error("default color")
	}
}

func TestHUD(t *testing.T) {
	h := NewHUD()
	if h.Sanity() != 100 {
		t.Errorf("initial sanity = %v", h.Sanity())
	}

	h.ShowMessage("it knows")
	if text, ok := h.Message(); !ok || text != "it knows" {
		t.Errorf("Message = %q, %v", text, ok)
	}
	h.HideMessage()
	if _, ok := h.Message(); ok {
		t.Error("message still visible")
	}

	h.SetMoving(true)
	h.SetMoving(true)
	h.SetMoving(false)
	h.SetMoving(true)
	if moving, steps := h.Moving(); !moving || steps != 2 {
		t.Errorf("Moving = %v, %d", moving, steps)
	}
}

func TestContextProjection(t *testing.T) {
	l := testLayout()
	w := testWorld(l)
	ctx := NewRenderContext(w, l, 80, 25)

	if ctx.ViewHeight != 24 {
		t.Errorf("ViewHeight = %d", ctx.ViewHeight)
	}
	if x, y := ctx.TileToScreen(ctx.PlayerTile); x != 40 || y != 12 {
		t.Errorf("player tile at %d,%d", x, y)
	}
	east := maze.Point{X: ctx.PlayerTile.X + 1, Y: ctx.PlayerTile.Y}
	if x, _ := ctx.TileToScreen(east); x != 40+parameter.TileColumns {
		t.Errorf("east tile at column %d", x)
	}
	if _, _, ok := ctx.WorldToScreen(w.Player.Position.Add(mgl32.Vec3{0, 0, 100})); ok {
		t.Error("far position reported visible")
	}
}

func TestContextJitterShiftsCenter(t *testing.T) {
	l := testLayout()
	w := testWorld(l)
	w.Atmosphere.JitterYaw = 0.05

	ctx := NewRenderContext(w, l, 80, 25)
	if ctx.CenterX != 42 {
		t.Errorf("CenterX = %d, want 42", ctx.CenterX)
	}
}

func TestIllumination(t *testing.T) {
	ctx := RenderContext{Atmosphere: component.AtmosphereParams{Light: 1, ViewRadius: 8}}
	if ctx.Illumination(0) != 1 {
		t.Errorf("at source = %v", ctx.Illumination(0))
	}
	if ctx.Illumination(8) != 0 || ctx.Illumination(20) != 0 {
		t.Error("light past the view radius")
	}
	if ctx.Illumination(2) <= ctx.Illumination(6) {
		t.Error("light does not fade with distance")
	}

	foggy := ctx
	foggy.Atmosphere.Fog = 0.2
	if foggy.Illumination(4) >= ctx.Illumination(4) {
		t.Error("fog does not dim")
	}
}

type orderRenderer struct {
	id  int
	log *[]int
}

func (r orderRenderer) Render(RenderContext, *engine.World, *RenderBuffer) {
	*r.log = append(*r.log, r.id)
}

type hiddenRenderer struct{ orderRenderer }

func (hiddenRenderer) IsVisible() bool { return false }

func TestOrchestratorOrder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(40, 10)

	l := testLayout()
	o := NewRenderOrchestrator(screen, l)
	var log []int
	o.Register(orderRenderer{1, &log}, PriorityUI)
	o.Register(orderRenderer{2, &log}, PriorityBackground)
	o.Register(orderRenderer{3, &log}, PriorityUI)
	o.Register(hiddenRenderer{orderRenderer{4, &log}}, PriorityBackground)

	o.RenderFrame(testWorld(l))

	want := []int{2, 1, 3}
	if len(log) != len(want) {
		t.Fatalf("render order = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("render order = %v, want %v", log, want)
		}
	}
}
