package component

// SessionStats are counters reported when a session ends
type SessionStats struct {
	MessagesShown int
	OrbsCollected int
	Teleports     int
	Caught        bool
}
