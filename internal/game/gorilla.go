package game

import "image/color"

// Gorilla is one combatant, parked on a building roof for the round.
type Gorilla struct {
	Box    Box
	Color  color.RGBA
	Facing int // +1 throws rightward, -1 leftward
}

var gorillaColors = [2]color.RGBA{
	{R: 143, G: 98, B: 72, A: 255},
	{R: 91, G: 60, B: 111, A: 255},
}

// NewGorilla places combatant idx with its box mid-bottom on the building's
// roof line. Index 0 faces right, index 1 faces left.
func NewGorilla(b Building, idx int) Gorilla {
	facing := 1
	if idx == 1 {
		facing = -1
	}
	bottom := b.Box.Y + gorillaRoofSink
	return Gorilla{
		Box: Box{
			X: b.Box.CenterX() - gorillaWidth/2,
			Y: bottom - gorillaHeight,
			W: gorillaWidth,
			H: gorillaHeight,
		},
		Color:  gorillaColors[idx],
		Facing: facing,
	}
}

// ThrowOrigin is the point a banana leaves the gorilla's hand: just past the
// leading edge of the box, below the head.
func (g Gorilla) ThrowOrigin() (float64, float64) {
	x := g.Box.CenterX() + g.Facing*(g.Box.W/2+throwSideOffset)
	y := g.Box.Y + throwDropOffset
	return float64(x), float64(y)
}
