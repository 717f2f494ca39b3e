package game

import (
	"math/rand"
	"testing"
)

func TestSkylineGenerate_CoversFullWidth(t *testing.T) {
	s := NewSkyline(ScreenWidth, ScreenHeight)
	s.Generate(rand.New(rand.NewSource(7)))

	if len(s.Buildings) == 0 {
		t.Fatal("generate produced no buildings")
	}
	x := 0
	for i, b := range s.Buildings {
		if b.Box.X != x {
			t.Fatalf("building %d starts at x=%d, want %d (gap or overlap)", i, b.Box.X, x)
		}
		if b.Box.W <= 0 {
			t.Fatalf("building %d has width %d", i, b.Box.W)
		}
		if i < len(s.Buildings)-1 && (b.Box.W < buildingMinWidth || b.Box.W > buildingMaxWidth) {
			t.Fatalf("building %d width %d outside [%d,%d]", i, b.Box.W, buildingMinWidth, buildingMaxWidth)
		}
		if b.Box.H < buildingMinHeight || b.Box.H > buildingMaxHeight {
			t.Fatalf("building %d height %d outside [%d,%d]", i, b.Box.H, buildingMinHeight, buildingMaxHeight)
		}
		if b.Box.Y+b.Box.H != ScreenHeight {
			t.Fatalf("building %d does not reach the field bottom", i)
		}
		x += b.Box.W
	}
	if x != ScreenWidth {
		t.Fatalf("buildings cover width %d, want %d", x, ScreenWidth)
	}
}

func TestSkylineGenerate_ClearsPreviousRound(t *testing.T) {
	s := NewSkyline(ScreenWidth, ScreenHeight)
	// Plant solid pixels well above any possible roof line.
	s.fillBox(Box{X: 0, Y: 0, W: 10, H: 10})
	if !s.Occupied(5, 5) {
		t.Fatal("fillBox did not mark (5,5) occupied")
	}
	s.Generate(rand.New(rand.NewSource(1)))
	if s.Occupied(5, 5) {
		t.Fatal("generate left stale occupancy above the new skyline")
	}
}

func TestSkylineOccupied_BoundsSafe(t *testing.T) {
	s := NewSkyline(ScreenWidth, ScreenHeight)
	s.Generate(rand.New(rand.NewSource(3)))

	probes := [][2]int{
		{-1, 0}, {ScreenWidth, 0}, {0, -1}, {0, ScreenHeight},
		{-100, -100}, {ScreenWidth + 50, ScreenHeight + 50},
	}
	for _, p := range probes {
		if s.Occupied(p[0], p[1]) {
			t.Fatalf("out-of-field point (%d,%d) reported occupied", p[0], p[1])
		}
	}
}

func TestSkylineOccupied_BuildingInteriorAndSky(t *testing.T) {
	s := NewSkyline(ScreenWidth, ScreenHeight)
	s.Generate(rand.New(rand.NewSource(11)))

	b := s.Buildings[0].Box
	cx := b.CenterX()
	if !s.Occupied(cx, b.Y) {
		t.Fatalf("roof pixel (%d,%d) should be occupied", cx, b.Y)
	}
	if !s.Occupied(cx, ScreenHeight-1) {
		t.Fatalf("base pixel (%d,%d) should be occupied", cx, ScreenHeight-1)
	}
	if s.Occupied(cx, b.Y-1) {
		t.Fatalf("sky pixel (%d,%d) above the roof should be empty", cx, b.Y-1)
	}
}

func TestSkylineCarve_EmptiesCircleOnly(t *testing.T) {
	s := NewSkyline(ScreenWidth, ScreenHeight)
	s.fillBox(Box{X: 40, Y: 40, W: 200, H: 200})

	if !s.Occupied(100, 100) {
		t.Fatal("(100,100) should start occupied")
	}
	s.Carve(100, 100, 38)
	if s.Occupied(100, 100) {
		t.Fatal("(100,100) still occupied after carve")
	}
	if s.Occupied(100, 138) {
		t.Fatal("(100,138) on the carve rim should be empty")
	}
	if !s.Occupied(100, 140) {
		t.Fatal("(100,140) beyond the radius should be untouched")
	}
	if !s.Occupied(60, 60) {
		t.Fatal("(60,60) outside the circle should be untouched")
	}
}

func TestSkylineCarve_MonotoneWithinRound(t *testing.T) {
	s := NewSkyline(ScreenWidth, ScreenHeight)
	rng := rand.New(rand.NewSource(99))
	s.Generate(rng)

	prev := make([]uint64, len(s.mask))
	for i := 0; i < 25; i++ {
		copy(prev, s.mask)
		s.Carve(rng.Intn(ScreenWidth), rng.Intn(ScreenHeight), explosionRadius)
		for w := range s.mask {
			if s.mask[w]&^prev[w] != 0 {
				t.Fatalf("carve %d set previously empty pixels (word %d)", i, w)
			}
		}
	}
}

func TestSkylineCarve_OutsideFieldIsNoOp(t *testing.T) {
	s := NewSkyline(ScreenWidth, ScreenHeight)
	s.Generate(rand.New(rand.NewSource(5)))

	// None of these may panic; near-edge carves only clip.
	s.Carve(-100, -100, explosionRadius)
	s.Carve(ScreenWidth+100, ScreenHeight+100, explosionRadius)
	s.Carve(0, ScreenHeight-1, explosionRadius)
	s.Carve(ScreenWidth-1, 0, explosionRadius)

	if !s.Occupied(s.Buildings[2].Box.CenterX(), ScreenHeight-1) {
		t.Fatal("edge carves should not have reached the third building's base")
	}
}

func TestSkylineGenerate_Deterministic(t *testing.T) {
	a := NewSkyline(ScreenWidth, ScreenHeight)
	b := NewSkyline(ScreenWidth, ScreenHeight)
	a.Generate(rand.New(rand.NewSource(1234)))
	b.Generate(rand.New(rand.NewSource(1234)))

	if len(a.Buildings) != len(b.Buildings) {
		t.Fatalf("building counts differ: %d vs %d", len(a.Buildings), len(b.Buildings))
	}
	for i := range a.Buildings {
		if a.Buildings[i].Box != b.Buildings[i].Box {
			t.Fatalf("building %d differs: %+v vs %+v", i, a.Buildings[i].Box, b.Buildings[i].Box)
		}
	}
	for w := range a.mask {
		if a.mask[w] != b.mask[w] {
			t.Fatalf("mask word %d differs between identically seeded generates", w)
		}
	}
}
