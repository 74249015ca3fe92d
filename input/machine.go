package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic intents
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Process parses a terminal event and returns an Intent
// Returns nil for unbound keys and events the game ignores
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
			return &Intent{Type: entry.IntentType, Key: entry.Key}
		}
		return nil
	}

	if entry, ok := m.keyTable.Runes[unicode.ToLower(ev.Rune())]; ok {
		return &Intent{Type: entry.IntentType, Key: entry.Key}
	}
	return nil
}
