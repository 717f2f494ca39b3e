package game

import "math"

// TrailPoint is a past projectile position kept for the fading trail.
type TrailPoint struct {
	X, Y float64
}

// Projectile is the single live banana. At most one exists at a time; the
// match destroys it on any terminal collision.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Wind   float64 // the round's wind, fixed at launch
	Trail  []TrailPoint
}

// Launch creates a projectile at the given origin. angleDeg is measured from
// the horizontal; up is negative y, so the vertical component is negated.
func Launch(x, y, speed, angleDeg, wind float64) *Projectile {
	rad := angleDeg * math.Pi / 180
	return &Projectile{
		X:    x,
		Y:    y,
		VX:   math.Cos(rad) * speed,
		VY:   -math.Sin(rad) * speed,
		Wind: wind,
	}
}

// Step advances one integration tick. Drag acts on velocity relative to the
// wind field; velocity updates before position (semi-implicit Euler).
func (p *Projectile) Step(dt float64) {
	relVX := p.VX - p.Wind
	ax := -dragCoeff * relVX
	ay := gravity - dragCoeff*p.VY
	p.VX += ax * dt
	p.VY += ay * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.Trail = append(p.Trail, TrailPoint{X: p.X, Y: p.Y})
	if len(p.Trail) > trailCap {
		copy(p.Trail, p.Trail[1:])
		p.Trail = p.Trail[:trailCap]
	}
}
