package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/lixenwraith/dreadmaze/parameter"
)

var introLines = []string{
	"The door seals behind you. The air tastes of wet stone.",
	"Something in here knows your name.",
	"Find the way out. Do not listen to the walls.",
}

var dreadLines = []string{
	"You hear breathing that is not yours.",
	"The torch gutters. Did the corridor just get longer?",
	"A child laughs somewhere below the floor.",
	"Your footsteps echo a half-beat too late.",
	"There were four walls a moment ago.",
	"Cold fingers brush the back of your neck.",
	"The scratches on the wall spell your name.",
	"You have walked past this stain before.",
	"It is closer now. You can smell it.",
	"Don't turn around.",
	"The walls are humming the song your mother sang.",
	"Your shadow is moving on its own.",
	"It was never a maze. It is a throat.",
	"Something is wearing your face.",
	"You cannot remember the way you came in.",
	"Let go.",
}

// Default is the whispers scenario: timed dread lines, no enemies, no exit
func Default() *Scenario {
	lines := make([]DreadLine, len(dreadLines))
	for i, t := range dreadLines {
		lines[i] = DreadLine{Text: t}
	}

	return &Scenario{
		Name: "whispers",
		Maze: MazeConfig{
			Width:    parameter.MazeWidth,
			Height:   parameter.MazeHeight,
			Braiding: parameter.MazeBraiding,
		},
		Player: PlayerConfig{Speed: parameter.PlayerSpeed},
		Intro: IntroConfig{
			Lines:   slices.Clone(introLines),
			Spacing: parameter.IntroLineSpacing,
			Delay:   parameter.IntroDelay,
		},
		Dread: DreadConfig{
			Mode:         "time",
			Interval:     parameter.DreadInterval,
			Distance:     parameter.DreadDistanceInterval,
			InitialDelay: parameter.DreadInitialDelay,
			Drain:        parameter.DreadDrainDefault,
			Lines:        lines,
		},
		Enemies: EnemyConfig{
			Speed:           parameter.EnemyBaseSpeed,
			FarThreshold:    parameter.EnemyFarThreshold,
			NearThreshold:   parameter.EnemyNearThreshold,
			RespawnMin:      parameter.EnemyRespawnMin,
			RespawnMax:      parameter.EnemyRespawnMax,
			SanitySpeedGain: parameter.EnemySanitySpeedGain,
			CaughtDelay:     parameter.EnemyCaughtDelay,
		},
		Orbs: OrbConfig{
			Restore: parameter.OrbRestoreAmount,
			Radius:  parameter.OrbPickupRadius,
		},
		Exit: ExitConfig{Radius: parameter.ExitRadius},
	}
}

var presets = map[string]func(*Scenario){
	"whispers": func(*Scenario) {},

	// Dread follows the player's feet instead of the clock
	"footsteps": func(s *Scenario) {
		s.Dread.Mode = "distance"
		s.Dread.InitialDelay = 0
		s.Exit.Enabled = true
	},

	"hunted": func(s *Scenario) {
		s.Enemies.Count = 2
		s.Dread.Interval = 25 * time.Second
		s.Exit.Enabled = true
	},

	// Orbs push back against the drain while one pursuer roams
	"lantern": func(s *Scenario) {
		s.Enemies.Count = 1
		s.Orbs.Count = parameter.OrbDefaultCount
		s.Dread.Interval = 15 * time.Second
		s.Exit.Enabled = true
	},
}

// Preset returns a fresh copy of a named built-in scenario
func Preset(name string) (*Scenario, error) {
	apply, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q (have %v)", ErrInvalidScenario, name, PresetNames())
	}
	s := Default()
	s.Name = name
	apply(s)
	return s, nil
}

// PresetNames lists built-in presets in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
