package render

import "sync"

// HUD is the overlay and motion sink the world writes into and the renderers read
type HUD struct {
	mu      sync.Mutex
	message string
	visible bool
	sanity  float32
	moving  bool
	steps   int
	muted   bool
}

// NewHUD creates a HUD showing full sanity
func NewHUD() *HUD {
	return &HUD{sanity: 100}
}

// ShowMessage replaces the visible message
func (h *HUD) ShowMessage(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.message = text
	h.visible = true
}

// HideMessage clears the message
func (h *HUD) HideMessage() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.message = ""
	h.visible = false
}

// SetSanityDisplay records the sanity percentage
func (h *HUD) SetSanityDisplay(percent float32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sanity = percent
}

// SetMoving toggles the walk animation; each start counts a step
func (h *HUD) SetMoving(moving bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if moving && !h.moving {
		h.steps++
	}
	h.moving = moving
}

// SetMuted mirrors the audio mute state
func (h *HUD) SetMuted(muted bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.muted = muted
}

// Message returns the visible message
func (h *HUD) Message() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.message, h.visible
}

// Sanity returns the displayed percentage
func (h *HUD) Sanity() float32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sanity
}

// Moving reports the walk animation state and how many walks have started
func (h *HUD) Moving() (bool, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.moving, h.steps
}

// Muted reports the mirrored mute state
func (h *HUD) Muted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.muted
}
