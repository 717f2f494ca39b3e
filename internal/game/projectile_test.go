package game

import (
	"math"
	"testing"
)

func TestProjectileStep_Deterministic(t *testing.T) {
	a := Launch(200, 300, 320, 45, 25)
	b := Launch(200, 300, 320, 45, 25)
	for i := 0; i < 600; i++ {
		a.Step(tickDT)
		b.Step(tickDT)
	}
	if a.X != b.X || a.Y != b.Y || a.VX != b.VX || a.VY != b.VY {
		t.Fatalf("identical launches diverged: (%v,%v,%v,%v) vs (%v,%v,%v,%v)",
			a.X, a.Y, a.VX, a.VY, b.X, b.Y, b.VX, b.VY)
	}
}

func TestProjectileLaunch_VectorSigns(t *testing.T) {
	p := Launch(0, 0, 320, 45, 0)
	if p.VX <= 0 {
		t.Fatalf("45 degree throw should move right, got vx=%v", p.VX)
	}
	if p.VY >= 0 {
		t.Fatalf("45 degree throw should move up (negative vy), got vy=%v", p.VY)
	}
	want := 320 * math.Cos(45*math.Pi/180)
	if math.Abs(p.VX-want) > 1e-9 {
		t.Fatalf("vx = %v, want %v", p.VX, want)
	}

	left := Launch(0, 0, 320, 135, 0)
	if left.VX >= 0 {
		t.Fatalf("135 degree throw should move left, got vx=%v", left.VX)
	}
}

func TestProjectileStep_ApexArc(t *testing.T) {
	// Speed 320 at 45 degrees under zero wind rises, tops out, then falls,
	// while drifting steadily rightward.
	p := Launch(100, 600, 320, 45, 0)

	startX, startY := p.X, p.Y
	sawApex := false
	prevY := p.Y
	for i := 0; i < 20*tickRate; i++ {
		p.Step(tickDT)
		if !sawApex {
			if p.Y >= prevY {
				sawApex = true
			}
		} else if p.Y <= prevY {
			t.Fatalf("tick %d: y rose again after apex (%v -> %v)", i, prevY, p.Y)
		}
		prevY = p.Y
		if p.Y > float64(ScreenHeight) {
			break
		}
	}
	if !sawApex {
		t.Fatal("projectile never reached an apex")
	}
	if prevY <= startY {
		t.Fatalf("projectile ended at y=%v, never fell below launch y=%v", prevY, startY)
	}
	if p.X <= startX {
		t.Fatalf("projectile landed at x=%v, want right of launch x=%v", p.X, startX)
	}
}

func TestProjectileStep_WindPushesDownwind(t *testing.T) {
	calm := Launch(100, 600, 320, 90, 0)
	gusty := Launch(100, 600, 320, 90, 120)
	for i := 0; i < 4*tickRate; i++ {
		calm.Step(tickDT)
		gusty.Step(tickDT)
	}
	if gusty.X <= calm.X {
		t.Fatalf("tailwind throw at x=%v, calm at x=%v; wind should push right", gusty.X, calm.X)
	}
}

func TestProjectileTrail_BoundedRing(t *testing.T) {
	p := Launch(100, 100, 400, 30, 0)
	for i := 0; i < trailCap+80; i++ {
		p.Step(tickDT)
	}
	if len(p.Trail) != trailCap {
		t.Fatalf("trail length %d, want capped at %d", len(p.Trail), trailCap)
	}
	last := p.Trail[len(p.Trail)-1]
	if last.X != p.X || last.Y != p.Y {
		t.Fatalf("newest trail point (%v,%v) != current position (%v,%v)", last.X, last.Y, p.X, p.Y)
	}
}

func TestProjectileTrail_GrowsBeforeCap(t *testing.T) {
	p := Launch(0, 0, 300, 60, 0)
	for i := 1; i <= 10; i++ {
		p.Step(tickDT)
		if len(p.Trail) != i {
			t.Fatalf("after %d steps trail length %d, want %d", i, len(p.Trail), i)
		}
	}
}
