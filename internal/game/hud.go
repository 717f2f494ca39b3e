package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Debug font metrics at 1x.
const (
	charW = 6
	lineH = 12
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	m := g.match

	drawPanel(screen, Box{X: 20, Y: 15, W: 360, H: 90})
	drawPanel(screen, Box{X: 20, Y: ScreenHeight - 130, W: ScreenWidth - 40, H: 110})

	for i := range g.fields {
		g.drawField(screen, &g.fields[i], i == g.focused)
	}
	g.drawButton(screen)

	// Score banner, wind readout and status render at 1x into hudBuf and
	// blit at hudScale so they read from across the room.
	g.hudBuf.Clear()
	wins := m.RoundWins()
	score := fmt.Sprintf("%s %d - %d %s", m.Name(0), wins[0], wins[1], m.Name(1))
	bufW := ScreenWidth / hudScale
	ebitenutil.DebugPrintAt(g.hudBuf, score, (bufW-len(score)*charW)/2, 20/hudScale)
	wind := fmt.Sprintf("Wind: %d px/s", int(m.Wind()))
	ebitenutil.DebugPrintAt(g.hudBuf, wind, (ScreenWidth-220)/hudScale, 25/hudScale)
	for i, line := range strings.Split(m.Status(), "\n") {
		ebitenutil.DebugPrintAt(g.hudBuf, line, 470/hudScale, (ScreenHeight-120)/hudScale+i*lineH)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, op)

	g.drawWindArrow(screen)

	hint := "Win 2 rounds to take the match. R restarts, C copies history."
	ebitenutil.DebugPrintAt(screen, hint, ScreenWidth-len(hint)*charW-20, ScreenHeight-160)

	if g.copyNoteTicks > 0 {
		ebitenutil.DebugPrintAt(screen, g.copyNote, 470, ScreenHeight-30)
	}
}

// drawPanel renders the translucent widget backdrop with a lit top edge.
func drawPanel(screen *ebiten.Image, b Box) {
	x, y := float32(b.X), float32(b.Y)
	w, h := float32(b.W), float32(b.H)
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 10, G: 14, B: 30, A: 210}, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 70, G: 90, B: 140, A: 180}, false)
	vector.StrokeLine(screen, x+1, y+1, x+w-1, y+1, 1, color.RGBA{R: 110, G: 140, B: 200, A: 80}, false)
}

func (g *Game) drawField(screen *ebiten.Image, f *textField, focused bool) {
	ebitenutil.DebugPrintAt(screen, f.label, f.box.X, f.box.Y-18)

	x, y := float32(f.box.X), float32(f.box.Y)
	w, h := float32(f.box.W), float32(f.box.H)
	border := color.RGBA{R: 90, G: 110, B: 160, A: 200}
	if focused {
		border = colornames.Gold
	}
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 18, G: 22, B: 40, A: 235}, false)
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)

	textY := f.box.Y + (f.box.H-lineH)/2 - 2
	ebitenutil.DebugPrintAt(screen, f.text, f.box.X+5, textY)
	if focused && (g.tick/30)%2 == 0 {
		cx := float32(f.box.X + 5 + len(f.text)*charW)
		vector.StrokeLine(screen, cx+1, y+4, cx+1, y+h-4, 1,
			color.RGBA{R: 230, G: 230, B: 230, A: 255}, false)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	hover := g.button.Contains(mx, my)
	armed := g.match.Phase() == PhaseAwaitingThrow

	fill := color.RGBA{R: 40, G: 60, B: 110, A: 255}
	switch {
	case !armed:
		fill = color.RGBA{R: 30, G: 34, B: 48, A: 255}
	case hover:
		fill = color.RGBA{R: 60, G: 90, B: 160, A: 255}
	}
	x, y := float32(g.button.X), float32(g.button.Y)
	w, h := float32(g.button.W), float32(g.button.H)
	vector.FillRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 120, G: 150, B: 220, A: 220}, false)

	label := "Throw!"
	ebitenutil.DebugPrintAt(screen, label,
		g.button.X+(g.button.W-len(label)*charW)/2,
		g.button.Y+(g.button.H-lineH)/2)
}

// drawWindArrow renders the wind gauge under the readout, tip pointing
// downwind.
func (g *Game) drawWindArrow(screen *ebiten.Image) {
	const length = 70
	cx, cy := float32(ScreenWidth-120), float32(60)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	vector.StrokeLine(screen, cx-length/2, cy, cx+length/2, cy, 2, white, false)

	dir := float32(1)
	if g.match.Wind() < 0 {
		dir = -1
	}
	tipX := cx + dir*length/2
	vector.StrokeLine(screen, tipX, cy, tipX-10*dir, cy-6, 2, colornames.Gold, false)
	vector.StrokeLine(screen, tipX, cy, tipX-10*dir, cy+6, 2, colornames.Gold, false)
}
