package game

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Night sky gradient endpoints and the shared window-light colour.
var (
	skyTop     = color.RGBA{R: 6, G: 11, B: 38, A: 255}
	skyBottom  = color.RGBA{R: 38, G: 77, B: 145, A: 255}
	cityLight  = color.RGBA{R: 229, G: 199, B: 126, A: 230}
	gorillaFur = color.RGBA{R: 255, G: 220, B: 193, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.skyBuf, nil)
	g.syncSkyline()
	screen.DrawImage(g.skylineBuf, nil)
	g.drawGorillas(screen)
	g.drawProjectile(screen)
	g.drawEffects(screen)
	g.drawHUD(screen)
}

// buildSky renders the static night backdrop once: a vertical gradient with
// a field of stars over the top half.
func buildSky() *ebiten.Image {
	img := ebiten.NewImage(ScreenWidth, ScreenHeight)
	for y := 0; y < ScreenHeight; y++ {
		t := float64(y) / ScreenHeight
		c := color.RGBA{
			R: uint8(float64(skyTop.R)*(1-t) + float64(skyBottom.R)*t),
			G: uint8(float64(skyTop.G)*(1-t) + float64(skyBottom.G)*t),
			B: uint8(float64(skyTop.B)*(1-t) + float64(skyBottom.B)*t),
			A: 255,
		}
		vector.FillRect(img, 0, float32(y), ScreenWidth, 1, c, false)
	}
	rng := rand.New(rand.NewSource(54321)) // #nosec G404 -- cosmetic only
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < 120; i++ {
		x := float32(rng.Intn(ScreenWidth))
		y := float32(rng.Intn(ScreenHeight / 2))
		vector.FillCircle(img, x, y, 1, white, false)
	}
	return img
}

// buildStamp pre-renders the white disc used to erase explosion craters from
// the skyline buffer with a destination-out blend.
func buildStamp(radius int) *ebiten.Image {
	side := 2*radius + 2
	img := ebiten.NewImage(side, side)
	vector.FillCircle(img, float32(radius+1), float32(radius+1), float32(radius),
		color.RGBA{R: 255, G: 255, B: 255, A: 255}, false)
	return img
}

// syncSkyline keeps skylineBuf in step with the match: a full rebuild when a
// round sets up, then one erase stamp per new impact. Impact IDs only grow,
// so the watermark survives rebuilds.
func (g *Game) syncSkyline() {
	if g.match.setupSeq != g.setupSeen {
		g.rebuildSkyline()
		g.setupSeen = g.match.setupSeq
	}
	for _, e := range g.match.effects {
		if e.ID > g.stampSeen {
			g.stampCarve(e.X, e.Y)
			g.stampSeen = e.ID
		}
	}
}

func (g *Game) rebuildSkyline() {
	g.skylineBuf.Clear()
	for _, b := range g.match.skyline.Buildings {
		vector.FillRect(g.skylineBuf,
			float32(b.Box.X), float32(b.Box.Y), float32(b.Box.W), float32(b.Box.H),
			b.Fill, false)
		for _, w := range b.Lit {
			vector.FillRect(g.skylineBuf,
				float32(w.X), float32(w.Y), float32(w.W), float32(w.H),
				cityLight, false)
		}
	}
}

func (g *Game) stampCarve(x, y int) {
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationOut}
	op.GeoM.Translate(float64(x-explosionRadius-1), float64(y-explosionRadius-1))
	g.skylineBuf.DrawImage(g.stampBuf, op)
}

func (g *Game) drawGorillas(screen *ebiten.Image) {
	for _, gor := range g.match.Gorillas() {
		b := gor.Box
		x, y := float32(b.X), float32(b.Y)
		w, h := float32(b.W), float32(b.H)
		cx := float32(b.CenterX())

		// Body below the head, head with two eyes, throwing arm out front.
		vector.FillRect(screen, x, y+10, w, h-10, gor.Color, false)
		vector.FillCircle(screen, cx, y+8, w/3, gorillaFur, false)
		eye := color.RGBA{A: 255}
		vector.FillCircle(screen, cx-6, y+6, 3, eye, false)
		vector.FillCircle(screen, cx+6, y+6, 3, eye, false)
		armX := cx + float32(gor.Facing)*14
		vector.StrokeLine(screen, cx, y+18, armX, y+14, 4,
			color.RGBA{R: 40, G: 28, B: 25, A: 255}, false)
	}
}

func (g *Game) drawProjectile(screen *ebiten.Image) {
	p := g.match.projectile
	if p == nil {
		return
	}
	for idx, pt := range p.Trail {
		fade := 255 * idx / len(p.Trail)
		blue := 80 - fade/3
		if blue < 0 {
			blue = 0
		}
		c := color.RGBA{R: 255, G: uint8(230 - fade/2), B: uint8(blue), A: 255}
		vector.FillCircle(screen, float32(pt.X), float32(pt.Y), 3, c, false)
	}
	vector.FillCircle(screen, float32(p.X), float32(p.Y), 6,
		color.RGBA{R: 255, G: 248, B: 150, A: 255}, false)
}

// drawEffects renders each live impact as a fading flash and an expanding
// shockwave ring.
func (g *Game) drawEffects(screen *ebiten.Image) {
	for _, e := range g.match.effects {
		progress := float32(e.Age) / impactLifetime
		fade := uint8(200 * (1 - progress))
		x, y, r := float32(e.X), float32(e.Y), float32(e.Radius)
		vector.FillCircle(screen, x, y, r*(0.5+0.3*progress),
			color.RGBA{R: 255, G: 196, B: 80, A: fade}, false)
		vector.StrokeCircle(screen, x, y, r*(0.6+0.6*progress), 2,
			color.RGBA{R: 255, G: 240, B: 200, A: fade}, false)
	}
}
