package game

// Field dimensions in pixels. The window shows the field one-to-one.
const (
	ScreenWidth  = 1200
	ScreenHeight = 720
)

// Physics tuning. Gravity pulls down every tick; drag opposes velocity
// relative to the wind field, so a banana left flying long enough drifts
// toward the wind speed.
const (
	gravity   = 260.0 // px/s^2
	dragCoeff = 0.55
	maxWind   = 140.0 // wind is sampled from [-maxWind, maxWind] per round
)

// Simulation step. Ebiten ticks Update at 60 Hz; the headless harness uses
// the same fixed step.
const (
	tickRate = 60
	tickDT   = 1.0 / tickRate
)

// Throw limits. Angles outside (0, 180) are rejected outright; speeds are
// clamped into this range after validation.
const (
	minThrowSpeed = 60.0
	maxThrowSpeed = 600.0
)

// explosionRadius is the circle carved out of the skyline by a terrain hit.
const explosionRadius = 38

// Building generation ranges, inclusive. Buildings are laid left to right
// with no gaps; the last one is clipped to the field edge.
const (
	buildingMinWidth  = 55
	buildingMaxWidth  = 110
	buildingMinHeight = 120
	buildingMaxHeight = 360
)

// Gorilla body box and throw origin offsets. The box sits mid-bottom on its
// building, sunk two pixels below the roof line.
const (
	gorillaWidth    = 42
	gorillaHeight   = 48
	gorillaRoofSink = 2
	throwSideOffset = 6  // px past the leading edge of the box
	throwDropOffset = 12 // px below the top of the box
)

// trailCap bounds the projectile trail kept for rendering.
const trailCap = 120

// roundsToWin ends the match as soon as either tally reaches it.
const roundsToWin = 2

// impactLifetime is how many ticks an explosion effect stays visible.
const impactLifetime = 36

// Default display names, used whenever a name field is left blank.
const (
	defaultName0 = "Gorilla A"
	defaultName1 = "Gorilla B"
)
