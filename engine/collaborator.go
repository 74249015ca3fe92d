package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/input"
	"github.com/lixenwraith/dreadmaze/physics"
)

// KeyState is the held-key query; input.Snapshot satisfies it
type KeyState interface {
	Held(now time.Time) input.Keys
}

// Collider resolves swept moves against static geometry; physics.World satisfies it
type Collider interface {
	Move(env physics.Envelope, pos, delta mgl32.Vec3) mgl32.Vec3
	Overlaps(env physics.Envelope, pos mgl32.Vec3) bool
}

// Overlay is the HUD sink
type Overlay interface {
	ShowMessage(text string)
	HideMessage()
	SetSanityDisplay(percent float32)
}

// Cues plays named audio cues; errors are reported, never fatal
type Cues interface {
	Play(name string) error
	Loop(name string) error
	Stop(name string) error
	SetLevel(name string, level float32) error
}

// MotionSink receives the moving/not-moving signal that drives the walk animation
type MotionSink interface {
	SetMoving(moving bool)
}

// Camera supplies the horizontal view basis for camera-relative movement
type Camera interface {
	Basis() (forward, right mgl32.Vec3)
}

// FixedCamera is a camera with a constant basis
type FixedCamera struct {
	Forward mgl32.Vec3
	Right   mgl32.Vec3
}

// Basis returns the fixed vectors
func (c FixedCamera) Basis() (mgl32.Vec3, mgl32.Vec3) {
	return c.Forward, c.Right
}

// TopDownCamera looks down the Y axis with screen-up along -Z
var TopDownCamera = FixedCamera{
	Forward: mgl32.Vec3{0, 0, -1},
	Right:   mgl32.Vec3{1, 0, 0},
}

// Cue names shared by systems and the audio bank
const (
	CueFootsteps = "footsteps"
	CueWhisper   = "whisper"
	CueHeartbeat = "heartbeat"
	CueDrone     = "drone"
	CueCaught    = "caught"
	CueOrb       = "orb"
	CueEscape    = "escape"
	CueDeath     = "death"
)

type nopOverlay struct{}

func (nopOverlay) ShowMessage(string)       {}
func (nopOverlay) HideMessage()             {}
func (nopOverlay) SetSanityDisplay(float32) {}

type nopCues struct{}

func (nopCues) Play(string) error              { return nil }
func (nopCues) Loop(string) error              { return nil }
func (nopCues) Stop(string) error              { return nil }
func (nopCues) SetLevel(string, float32) error { return nil }

type noKeys struct{}

func (noKeys) Held(time.Time) input.Keys { return 0 }

type openSpace struct{}

func (openSpace) Move(_ physics.Envelope, _, delta mgl32.Vec3) mgl32.Vec3 { return delta }
func (openSpace) Overlaps(physics.Envelope, mgl32.Vec3) bool              { return false }
