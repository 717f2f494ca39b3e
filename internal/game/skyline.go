package game

import (
	"image/color"
	"math/rand"
)

// Box is an axis-aligned pixel rectangle, half-open on the right and bottom.
type Box struct {
	X, Y, W, H int
}

// Contains reports whether the point (px, py) lies inside the box.
func (b Box) Contains(px, py int) bool {
	return px >= b.X && px < b.X+b.W && py >= b.Y && py < b.Y+b.H
}

// CenterX returns the horizontal centre of the box.
func (b Box) CenterX() int { return b.X + b.W/2 }

// Building is one generated tower. The box is the solid footprint; Fill and
// Lit only drive rendering.
type Building struct {
	Box  Box
	Fill color.RGBA
	Lit  []Box // window panes that came up lit this round
}

// Skyline owns the destructible occupancy mask for the current round, plus
// the building list used for gorilla placement. Occupancy only ever goes
// from solid to empty between Generate calls.
type Skyline struct {
	Width     int
	Height    int
	Buildings []Building

	words int      // 64-bit words per row
	mask  []uint64 // row-major bitset, one bit per pixel
}

// NewSkyline creates an empty skyline for a field of the given size.
func NewSkyline(width, height int) *Skyline {
	words := (width + 63) / 64
	return &Skyline{
		Width:  width,
		Height: height,
		words:  words,
		mask:   make([]uint64, words*height),
	}
}

// Generate replaces the previous round's skyline with a fresh one: contiguous
// buildings spanning the full field width, random widths and heights, the
// last column clipped flush to the right edge.
func (s *Skyline) Generate(rng *rand.Rand) {
	for i := range s.mask {
		s.mask[i] = 0
	}
	s.Buildings = s.Buildings[:0]

	x := 0
	for x < s.Width {
		w := buildingMinWidth + rng.Intn(buildingMaxWidth-buildingMinWidth+1)
		if x+w > s.Width {
			w = s.Width - x
		}
		h := buildingMinHeight + rng.Intn(buildingMaxHeight-buildingMinHeight+1)
		b := Building{
			Box: Box{X: x, Y: s.Height - h, W: w, H: h},
			Fill: color.RGBA{
				R: uint8(60 + rng.Intn(81)),
				G: uint8(40 + rng.Intn(71)),
				B: uint8(90 + rng.Intn(71)),
				A: 255,
			},
		}
		// Lit windows: 8x12 panes stepped 16x20, inset from the walls.
		for wy := b.Box.Y + 10; wy < b.Box.Y+b.Box.H-10; wy += 20 {
			for wx := b.Box.X + 8; wx < b.Box.X+b.Box.W-8; wx += 16 {
				if rng.Float64() < 0.6 {
					b.Lit = append(b.Lit, Box{X: wx, Y: wy, W: 8, H: 12})
				}
			}
		}
		s.Buildings = append(s.Buildings, b)
		s.fillBox(b.Box)
		x += w
	}
}

func (s *Skyline) fillBox(b Box) {
	for y := b.Y; y < b.Y+b.H; y++ {
		for x := b.X; x < b.X+b.W; x++ {
			s.mask[y*s.words+x/64] |= 1 << uint(x%64)
		}
	}
}

// Occupied reports whether (x, y) is solid. Points outside the field are
// never occupied.
func (s *Skyline) Occupied(x, y int) bool {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return false
	}
	return s.mask[y*s.words+x/64]&(1<<uint(x%64)) != 0
}

// Carve empties a filled circle around (cx, cy). Pixels outside the field
// are skipped; carving already-empty space is a no-op.
func (s *Skyline) Carve(cx, cy, radius int) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= s.Height {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= s.Width {
				continue
			}
			if dx*dx+dy*dy <= r2 {
				s.mask[y*s.words+x/64] &^= 1 << uint(x%64)
			}
		}
	}
}
