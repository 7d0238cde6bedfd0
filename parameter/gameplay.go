package parameter

// Playfield
const (
	// ScreenWidth is the default playfield width in cells
	ScreenWidth = 120

	// ScreenHeight is the default playfield height in cells
	ScreenHeight = 30
)

// Bird sprite and hitbox
const (
	BirdWidth  = 10
	BirdHeight = 3
)

// Spawn Scheduler
const (
	// SpawnDelayInitial is the number of ticks between spawns at session start
	SpawnDelayInitial = 60

	// SpawnDelayFloor is the tightest cadence the scheduler ratchets down to
	SpawnDelayFloor = 20

	// SpawnDrawRange is the exclusive upper bound of the spawn-side draw
	// A draw above SpawnDrawRange/2 spawns on the right edge
	SpawnDrawRange = 100
)

// Crosshair
const (
	// CrosshairSpeed is cells moved per tick per unit of move intent
	CrosshairSpeed = 2
)

// Ammo and Score
const (
	AmmoMax     = 5
	AmmoInitial = AmmoMax

	// Instant-hit shots resolve with infinite projectile speed
	InstantHitReward = 1
	InstantHitScore  = 10

	// Ballistic hits are harder to land and pay more
	BallisticHitReward = 2
	BallisticHitScore  = 25
)

// Ballistics
const (
	// BulletSubsteps is the number of position updates per tick
	// At 1 a bullet's trail spans exactly the tick; higher values trade that for speed
	BulletSubsteps = 1

	// BarrelLength is the gun barrel length used for the aiming offset
	BarrelLength = 3

	// BarrelStretch compensates for terminal cells being taller than wide
	BarrelStretch = 1
)

// Animation
const (
	// AnimationInterval is the number of ticks between bird frame advances
	AnimationInterval = 2
)
