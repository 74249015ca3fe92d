package parameter

// System Execution Priorities (lower runs first)
// Order is a contract: all state read by atmosphere reflects this frame's updates
const (
	PriorityLocomotion = 10
	PriorityEnemy      = 20
	PriorityPickup     = 25 // After enemy, before narrative
	PriorityNarrative  = 30
	PriorityAtmosphere = 40
	PriorityOutcome    = 50 // Win/lose evaluation is always last
)
