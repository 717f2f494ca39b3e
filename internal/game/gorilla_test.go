package game

import "testing"

func TestNewGorilla_StandsOnRoof(t *testing.T) {
	b := Building{Box: Box{X: 100, Y: 400, W: 80, H: 320}}

	g := NewGorilla(b, 0)
	if g.Facing != 1 {
		t.Fatalf("left gorilla facing %d, want 1", g.Facing)
	}
	if g.Box.W != gorillaWidth || g.Box.H != gorillaHeight {
		t.Fatalf("box %dx%d, want %dx%d", g.Box.W, g.Box.H, gorillaWidth, gorillaHeight)
	}
	// Centered on the roof, feet sunk a couple of pixels into it.
	if got, want := g.Box.X, 100+80/2-gorillaWidth/2; got != want {
		t.Fatalf("box.X = %d, want %d", got, want)
	}
	if got, want := g.Box.Y, 400+gorillaRoofSink-gorillaHeight; got != want {
		t.Fatalf("box.Y = %d, want %d", got, want)
	}

	right := NewGorilla(b, 1)
	if right.Facing != -1 {
		t.Fatalf("right gorilla facing %d, want -1", right.Facing)
	}
}

func TestGorillaThrowOrigin(t *testing.T) {
	b := Building{Box: Box{X: 100, Y: 400, W: 80, H: 320}}

	g := NewGorilla(b, 0)
	x, y := g.ThrowOrigin()
	wantX := float64(g.Box.CenterX() + gorillaWidth/2 + throwSideOffset)
	wantY := float64(g.Box.Y + throwDropOffset)
	if x != wantX || y != wantY {
		t.Fatalf("right-facing origin (%v,%v), want (%v,%v)", x, y, wantX, wantY)
	}

	g2 := NewGorilla(b, 1)
	x2, _ := g2.ThrowOrigin()
	wantX2 := float64(g2.Box.CenterX() - gorillaWidth/2 - throwSideOffset)
	if x2 != wantX2 {
		t.Fatalf("left-facing origin x=%v, want %v", x2, wantX2)
	}
	if x2 >= float64(g2.Box.CenterX()) {
		t.Fatalf("left-facing origin should sit left of center, got %v", x2)
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 30, H: 40}
	cases := []struct {
		x, y int
		in   bool
	}{
		{10, 20, true},
		{39, 59, true},
		{40, 30, false},
		{30, 60, false},
		{9, 30, false},
		{25, 19, false},
	}
	for _, c := range cases {
		if got := b.Contains(c.x, c.y); got != c.in {
			t.Fatalf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.in)
		}
	}
}
