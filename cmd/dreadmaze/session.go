package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/lixenwraith/dreadmaze/atmosphere"
	"github.com/lixenwraith/dreadmaze/component"
	"github.com/lixenwraith/dreadmaze/config"
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/input"
	"github.com/lixenwraith/dreadmaze/maze"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/physics"
	"github.com/lixenwraith/dreadmaze/system"
)

// sessionDeps are the outer collaborators; nil fields get the world's inert defaults
type sessionDeps struct {
	Overlay engine.Overlay
	Motion  engine.MotionSink
	Cues    engine.Cues
	Clock   engine.TimeProvider
	Logger  *slog.Logger
}

// session is one assembled run of a scenario
type session struct {
	scenario *config.Scenario
	layout   *maze.Layout
	world    *engine.World
	keys     *input.Snapshot
}

// newSession generates the dungeon, places everything and registers the systems
func newSession(sc *config.Scenario, seed int64, deps sessionDeps) (*session, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := maze.Generate(maze.Config{
		Width:    sc.Maze.Width,
		Height:   sc.Maze.Height,
		Braiding: sc.Maze.Braiding,
	}, rng)
	layout := maze.NewLayout(grid, parameter.TileSize, parameter.WallHeight, parameter.FloorDepth)
	collider := physics.NewWorld(layout.Boxes(), parameter.BroadphaseCellSize)

	script, err := sc.Dread.Script()
	if err != nil {
		return nil, err
	}

	keys := input.NewSnapshot()
	player := component.NewPlayerState(layout.Start, physics.Envelope{
		Radius: parameter.PlayerRadius,
		Height: parameter.PlayerHeight,
	})

	w := engine.NewWorld(player, script, engine.Options{
		Keys:     keys,
		Collider: collider,
		Overlay:  deps.Overlay,
		Cues:     deps.Cues,
		Motion:   deps.Motion,
		Clock:    deps.Clock,
		Rng:      rng,
		Logger:   deps.Logger,
	})

	enemies, err := placeEnemies(sc.Enemies, layout, rng)
	if err != nil {
		return nil, err
	}
	w.Enemies = enemies

	for _, pos := range layout.Scatter(sc.Orbs.Count, parameter.OrbMinSpawnTiles, rng) {
		w.Orbs = append(w.Orbs, &component.Orb{Position: pos, Restore: sc.Orbs.Restore})
	}

	if sc.Exit.Enabled {
		w.Exit = layout.Exit
		w.HasExit = true
	}

	w.AddSystem(system.NewLocomotionSystem(sc.Player.Speed))
	if len(w.Enemies) > 0 {
		w.AddSystem(system.NewEnemySystem(system.EnemyTuning{
			FarThreshold:    sc.Enemies.FarThreshold,
			NearThreshold:   sc.Enemies.NearThreshold,
			RespawnMin:      sc.Enemies.RespawnMin,
			RespawnMax:      sc.Enemies.RespawnMax,
			SanitySpeedGain: sc.Enemies.SanitySpeedGain,
			CaughtDelay:     sc.Enemies.CaughtDelay,
		}))
	}
	if len(w.Orbs) > 0 {
		w.AddSystem(system.NewPickupSystem(sc.Orbs.Radius))
	}
	w.AddSystem(system.NewNarrativeSystem(sc.Dread.Drain))
	w.AddSystem(system.NewAtmosphereSystem(atmosphere.DefaultLaws()))
	w.AddSystem(system.NewOutcomeSystem(sc.Exit.Radius))

	system.IntroSequence{
		Lines:   sc.Intro.Lines,
		Spacing: sc.Intro.Spacing,
		Delay:   sc.Intro.Delay,
	}.Attach(w)

	for _, note := range sc.Degradations() {
		deps.Logger.Warn("scenario degraded", "scenario", sc.Name, "note", note)
	}
	deps.Logger.Info("session assembled",
		"scenario", sc.Name,
		"seed", seed,
		"maze", fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
		"enemies", len(w.Enemies),
		"orbs", len(w.Orbs),
		"exit", w.HasExit,
	)

	return &session{scenario: sc, layout: layout, world: w, keys: keys}, nil
}

// placeEnemies uses explicit spawn tiles when given, else scatters Count enemies away from the start
func placeEnemies(cfg config.EnemyConfig, layout *maze.Layout, rng *rand.Rand) ([]*component.EnemyState, error) {
	env := physics.Envelope{Radius: parameter.EnemyRadius, Height: parameter.EnemyHeight}
	var out []*component.EnemyState

	if len(cfg.Spawns) > 0 {
		for i, sp := range cfg.Spawns {
			p := maze.Point{X: sp.Tile[0], Y: sp.Tile[1]}
			if !layout.Grid.InBounds(p) || layout.Grid.IsWall(p) {
				return nil, fmt.Errorf("%w: enemy spawn %d at tile %v is not open floor", config.ErrInvalidScenario, i, sp.Tile)
			}
			speed := sp.Speed
			if speed == 0 {
				speed = cfg.Speed
			}
			out = append(out, component.NewEnemyState(i, layout.Center(p), speed, cfg.Solid, env))
		}
		return out, nil
	}

	for i, pos := range layout.Scatter(cfg.Count, parameter.EnemyMinSpawnTiles, rng) {
		out = append(out, component.NewEnemyState(i, pos, cfg.Speed, cfg.Solid, env))
	}
	return out, nil
}
