package game

// ThrowOutcome classifies how a live projectile's tick resolved.
type ThrowOutcome int

const (
	OutcomeNone ThrowOutcome = iota
	OutcomeOutOfBounds
	OutcomeTerrainHit
	OutcomeGorillaHit
)

func (o ThrowOutcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeOutOfBounds:
		return "out_of_bounds"
	case OutcomeTerrainHit:
		return "terrain_hit"
	case OutcomeGorillaHit:
		return "gorilla_hit"
	default:
		return "unknown"
	}
}

// CollisionResult is the outcome of one collision check. X and Y are the
// truncated integer probe point; Struck is only meaningful for gorilla hits.
type CollisionResult struct {
	Outcome ThrowOutcome
	X, Y    int
	Struck  int
}

// ResolveCollision checks a projectile position against the field bounds,
// the skyline and both gorillas, in that strict order, and reports at most
// one outcome. Leaving through the top is not terminal: a banana may sail
// above the field and fall back in.
func ResolveCollision(sky *Skyline, gorillas []Gorilla, x, y float64) CollisionResult {
	px, py := int(x), int(y)
	if px < 0 || px >= sky.Width || py >= sky.Height {
		return CollisionResult{Outcome: OutcomeOutOfBounds, X: px, Y: py}
	}
	if sky.Occupied(px, py) {
		return CollisionResult{Outcome: OutcomeTerrainHit, X: px, Y: py}
	}
	for i := range gorillas {
		if gorillas[i].Box.Contains(px, py) {
			return CollisionResult{Outcome: OutcomeGorillaHit, X: px, Y: py, Struck: i}
		}
	}
	return CollisionResult{Outcome: OutcomeNone, X: px, Y: py}
}
