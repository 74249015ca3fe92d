package parameter

import "time"

// Key Hold Debounce
// Terminals report presses only; a key counts as held until its window lapses without a repeat
const (
	// KeyHoldInitial covers the terminal's auto-repeat delay after the first press
	KeyHoldInitial = 500 * time.Millisecond

	// KeyHoldRepeat extends the hold on each auto-repeat event
	KeyHoldRepeat = 100 * time.Millisecond
)
