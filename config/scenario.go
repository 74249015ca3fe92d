package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/dreadmaze/component"
)

// ErrInvalidScenario wraps every structural scenario error
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a full session setup: dungeon, script, threats and endings
type Scenario struct {
	Name string `yaml:"name"`

	// Base names a preset the file is layered on, empty for the default
	Base string `yaml:"base"`

	// Seed feeds all randomness; empty picks a time-based seed
	Seed string `yaml:"seed"`

	Maze    MazeConfig   `yaml:"maze"`
	Player  PlayerConfig `yaml:"player"`
	Intro   IntroConfig  `yaml:"intro"`
	Dread   DreadConfig  `yaml:"dread"`
	Enemies EnemyConfig  `yaml:"enemies"`
	Orbs    OrbConfig    `yaml:"orbs"`
	Exit    ExitConfig   `yaml:"exit"`
	Audio   AudioConfig  `yaml:"audio"`
}

// MazeConfig sizes the generated dungeon
type MazeConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Braiding float64 `yaml:"braiding"`
}

// PlayerConfig tunes locomotion
type PlayerConfig struct {
	Speed float32 `yaml:"speed"`
}

// IntroConfig is the scripted opening
type IntroConfig struct {
	Lines   []string      `yaml:"lines"`
	Spacing time.Duration `yaml:"spacing"`
	Delay   time.Duration `yaml:"delay"`
}

// DreadConfig is the narrative script and its trigger rhythm
type DreadConfig struct {
	// Mode is "time" or "distance"
	Mode         string        `yaml:"mode"`
	Interval     time.Duration `yaml:"interval"`
	Distance     float32       `yaml:"distance"`
	InitialDelay time.Duration `yaml:"initial_delay"`

	// Drain applies to lines without their own
	Drain float32     `yaml:"drain"`
	Lines []DreadLine `yaml:"lines"`
}

// DreadLine accepts either a bare string or a {text, drain} mapping
type DreadLine struct {
	Text  string  `yaml:"text"`
	Drain float32 `yaml:"drain"`
}

// UnmarshalYAML decodes the short string form
func (l *DreadLine) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		l.Text = node.Value
		l.Drain = 0
		return nil
	}
	type plain DreadLine
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*l = DreadLine(p)
	return nil
}

// EnemyConfig places and tunes pursuers
type EnemyConfig struct {
	// Spawns are explicit tile positions; when empty, Count spawns are scattered
	Spawns []EnemySpawn `yaml:"spawns"`
	Count  int          `yaml:"count"`

	Speed           float32       `yaml:"speed"`
	Solid           bool          `yaml:"solid"`
	FarThreshold    float32       `yaml:"far_threshold"`
	NearThreshold   float32       `yaml:"near_threshold"`
	RespawnMin      float32       `yaml:"respawn_min"`
	RespawnMax      float32       `yaml:"respawn_max"`
	SanitySpeedGain float32       `yaml:"sanity_speed_gain"`
	CaughtDelay     time.Duration `yaml:"caught_delay"`
}

// EnemySpawn is one enemy start tile; zero speed uses the group speed
type EnemySpawn struct {
	Tile  [2]int  `yaml:"tile"`
	Speed float32 `yaml:"speed"`
}

// OrbConfig scatters sanity pickups
type OrbConfig struct {
	Count   int     `yaml:"count"`
	Restore float32 `yaml:"restore"`
	Radius  float32 `yaml:"radius"`
}

// ExitConfig enables the escape ending
type ExitConfig struct {
	Enabled bool    `yaml:"enabled"`
	Radius  float32 `yaml:"radius"`
}

// AudioConfig sets the master mix
type AudioConfig struct {
	Volume float64 `yaml:"volume"` // beep exponent, 0 is unity
}

// TriggerMode returns the parsed dread mode
func (d DreadConfig) TriggerMode() (component.TriggerMode, error) {
	switch d.Mode {
	case "time", "":
		return component.TriggerTime, nil
	case "distance":
		return component.TriggerDistance, nil
	}
	return 0, fmt.Errorf("%w: unknown dread mode %q", ErrInvalidScenario, d.Mode)
}

// Script builds the immutable dread script
func (d DreadConfig) Script() (*component.DreadScript, error) {
	mode, err := d.TriggerMode()
	if err != nil {
		return nil, err
	}
	lines := make([]component.DreadLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = component.DreadLine{Text: l.Text, Drain: l.Drain}
	}
	return component.NewDreadScript(lines, mode, d.Interval, d.Distance, d.InitialDelay), nil
}

// Seed64 hashes the seed string; an empty seed falls back to the clock
func (s *Scenario) Seed64() int64 {
	if s.Seed == "" {
		return time.Now().UnixNano()
	}
	return int64(xxh3.HashString(s.Seed))
}

// Validate reports every structural error, joined
func (s *Scenario) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScenario}, args...)...))
	}

	if s.Maze.Width < 5 || s.Maze.Height < 5 {
		bad("maze %dx%d smaller than 5x5", s.Maze.Width, s.Maze.Height)
	}
	if s.Maze.Braiding < 0 || s.Maze.Braiding > 1 {
		bad("maze braiding %v outside [0, 1]", s.Maze.Braiding)
	}
	if s.Player.Speed <= 0 {
		bad("player speed %v must be positive", s.Player.Speed)
	}
	if s.Intro.Delay < 0 || s.Intro.Spacing < 0 {
		bad("intro timings must not be negative")
	}
	if n := len(s.Intro.Lines); n > 1 && time.Duration(n-1)*s.Intro.Spacing >= s.Intro.Delay {
		bad("intro line %d starts at %v, not before play begins at %v", n-1, time.Duration(n-1)*s.Intro.Spacing, s.Intro.Delay)
	}

	mode, err := s.Dread.TriggerMode()
	if err != nil {
		errs = append(errs, err)
	}
	switch {
	case err != nil:
	case mode == component.TriggerTime && s.Dread.Interval <= 0:
		bad("dread interval %v must be positive in time mode", s.Dread.Interval)
	case mode == component.TriggerDistance && s.Dread.Distance <= 0:
		bad("dread distance %v must be positive in distance mode", s.Dread.Distance)
	}
	if s.Dread.InitialDelay < 0 {
		bad("dread initial delay %v is negative", s.Dread.InitialDelay)
	}
	if s.Dread.Drain < 0 {
		bad("dread drain %v is negative", s.Dread.Drain)
	}
	for i, l := range s.Dread.Lines {
		if l.Drain < 0 {
			bad("dread line %d drain %v is negative", i, l.Drain)
		}
	}

	e := s.Enemies
	if e.Count < 0 {
		bad("enemy count %d is negative", e.Count)
	}
	if s.HasEnemies() {
		if e.Speed < 0 {
			bad("enemy speed %v is negative", e.Speed)
		}
		if e.NearThreshold <= 0 {
			bad("enemy near threshold %v must be positive", e.NearThreshold)
		}
		if e.RespawnMin <= e.NearThreshold {
			bad("enemy respawn_min %v must exceed near_threshold %v", e.RespawnMin, e.NearThreshold)
		}
		if e.RespawnMax < e.RespawnMin {
			bad("enemy respawn_max %v below respawn_min %v", e.RespawnMax, e.RespawnMin)
		}
		if e.FarThreshold < e.RespawnMax {
			bad("enemy far_threshold %v below respawn_max %v", e.FarThreshold, e.RespawnMax)
		}
		if e.CaughtDelay < 0 {
			bad("enemy caught delay %v is negative", e.CaughtDelay)
		}
		for i, sp := range e.Spawns {
			if sp.Speed < 0 {
				bad("enemy spawn %d speed %v is negative", i, sp.Speed)
			}
		}
	}

	if s.Orbs.Count < 0 {
		bad("orb count %d is negative", s.Orbs.Count)
	}
	if s.Orbs.Count > 0 && (s.Orbs.Restore <= 0 || s.Orbs.Radius <= 0) {
		bad("orbs need positive restore and radius")
	}
	if s.Exit.Enabled && s.Exit.Radius <= 0 {
		bad("exit radius %v must be positive", s.Exit.Radius)
	}

	return errors.Join(errs...)
}

// HasEnemies reports whether the scenario places any enemy
func (s *Scenario) HasEnemies() bool {
	return len(s.Enemies.Spawns) > 0 || s.Enemies.Count > 0
}

// Degradations lists non-fatal content gaps the session runs around
func (s *Scenario) Degradations() []string {
	var notes []string
	if len(s.Dread.Lines) == 0 {
		notes = append(notes, "dread script is empty; narrative stays exhausted")
	}
	if !s.Exit.Enabled && !s.HasEnemies() && len(s.Dread.Lines) == 0 {
		notes = append(notes, "no ending is reachable; session runs until quit")
	}
	return notes
}
