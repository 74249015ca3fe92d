package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+Q, Ctrl+C
	IntentToggleMute // Ctrl+S, m
	IntentResize     // Terminal resize event

	IntentAcknowledge // Enter, Space on the boot screen
	IntentMove        // Movement key press, Key carries the direction
	IntentStop        // Esc releases every held key
)

// Intent is a parsed input action
type Intent struct {
	Type IntentType
	Key  Key
}
