package input

import "github.com/gdamore/tcell/v2"

// Key is a movement key tracked by the snapshot
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	keyCount
)

var keyNames = [keyCount]string{"forward", "back", "left", "right"}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Opposite returns the key on the same axis in the other direction
func (k Key) Opposite() Key {
	switch k {
	case KeyForward:
		return KeyBack
	case KeyBack:
		return KeyForward
	case KeyLeft:
		return KeyRight
	case KeyRight:
		return KeyLeft
	}
	return k
}

// KeyEntry describes a binding
type KeyEntry struct {
	IntentType IntentType
	Key        Key
}

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively by the machine
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings: arrows and WASD move
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {IntentQuit, 0},
			tcell.KeyCtrlC:  {IntentQuit, 0},
			tcell.KeyCtrlS:  {IntentToggleMute, 0},
			tcell.KeyEnter:  {IntentAcknowledge, 0},
			tcell.KeyEscape: {IntentStop, 0},
			tcell.KeyUp:     {IntentMove, KeyForward},
			tcell.KeyDown:   {IntentMove, KeyBack},
			tcell.KeyLeft:   {IntentMove, KeyLeft},
			tcell.KeyRight:  {IntentMove, KeyRight},
		},
		Runes: map[rune]KeyEntry{
			'w': {IntentMove, KeyForward},
			's': {IntentMove, KeyBack},
			'a': {IntentMove, KeyLeft},
			'd': {IntentMove, KeyRight},
			'k': {IntentMove, KeyForward},
			'j': {IntentMove, KeyBack},
			'h': {IntentMove, KeyLeft},
			'l': {IntentMove, KeyRight},
			' ': {IntentAcknowledge, 0},
			'm': {IntentToggleMute, 0},
			'q': {IntentQuit, 0},
		},
	}
}
