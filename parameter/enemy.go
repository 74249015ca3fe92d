package parameter

import "time"

// Pursuit AI
const (
	// EnemyBaseSpeed is the default pursuit speed in world units per second
	EnemyBaseSpeed = 0.8

	// EnemySanitySpeedGain scales pursuit speed by (1 + gain*sanityFraction)
	EnemySanitySpeedGain = 1.5

	// EnemyFarThreshold is the distance beyond which the enemy teleports near the player
	EnemyFarThreshold = 17.0

	// EnemyNearThreshold is the contact distance that catches the player
	EnemyNearThreshold = 0.5

	// EnemyRespawnMin and EnemyRespawnMax bound the teleport-recovery annulus radius
	EnemyRespawnMin = 8.0
	EnemyRespawnMax = 12.0

	// EnemyCaughtDelay is the delay between the caught cue and the Lost transition
	EnemyCaughtDelay = 1500 * time.Millisecond

	// EnemyPlacementAttempts bounds retries when placing a solid enemy clear of walls
	EnemyPlacementAttempts = 12

	// EnemyRadius and EnemyHeight describe the enemy collision envelope
	EnemyRadius = 0.3
	EnemyHeight = 1.9

	// EnemyMinSpawnTiles is the minimum tile distance from the player start for generated spawns
	EnemyMinSpawnTiles = 6
)
