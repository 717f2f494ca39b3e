package game

import (
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"gorillas/internal/persistence"
)

// hudScale is the integer upscale factor for the score banner and status
// text (rendered at 1x into hudBuf, blitted at 2x).
const hudScale = 2

// copyNoteLifetime is how many ticks the clipboard confirmation stays up.
const copyNoteLifetime = 120

// Input field indices, in Tab order.
const (
	fieldName0 = iota
	fieldName1
	fieldAngle
	fieldSpeed
	fieldCount
)

// textField is one clickable input box. The match reads names straight out
// of the two name fields every frame; angle and speed are parsed on fire.
type textField struct {
	label   string
	text    string
	box     Box
	numeric bool // restrict typing to digits and a dot
	maxLen  int
}

// Game is the windowed presenter around a Match. All simulation state lives
// in the match; the Game only owns input widgets and render buffers.
type Game struct {
	match *Match
	store *persistence.Store

	// Offscreen buffers. The sky never changes; the skyline is rebuilt on
	// every round setup and carved incrementally as impacts land.
	skyBuf     *ebiten.Image
	skylineBuf *ebiten.Image
	hudBuf     *ebiten.Image
	stampBuf   *ebiten.Image // white explosion disc, blitted with destination-out

	setupSeen int // match setup the skyline buffer was built from
	stampSeen int // highest impact ID already carved out of skylineBuf

	fields  [fieldCount]textField
	focused int // focused field index, -1 when none
	button  Box // the throw button

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
	backspaceHold int

	copyNote      string
	copyNoteTicks int

	tick int
}

// New creates the presenter for a fresh clock-seeded match recording into
// the given store.
func New(store *persistence.Store) *Game {
	g := &Game{
		match:    NewMatch(store),
		store:    store,
		focused:  -1,
		prevKeys: make(map[ebiten.Key]bool),
		button:   Box{X: 330, Y: 620, W: 120, H: 40},
	}
	g.fields[fieldName0] = textField{
		label: "Gorilla A name", text: defaultName0,
		box: Box{X: 30, Y: 45, W: 150, H: 25}, maxLen: 24,
	}
	g.fields[fieldName1] = textField{
		label: "Gorilla B name", text: defaultName1,
		box: Box{X: 210, Y: 45, W: 150, H: 25}, maxLen: 24,
	}
	g.fields[fieldAngle] = textField{
		label: "Angle (0-180)", text: "45",
		box: Box{X: 30, Y: 630, W: 120, H: 28}, numeric: true, maxLen: 8,
	}
	g.fields[fieldSpeed] = textField{
		label: "Speed (px/s)", text: "320",
		box: Box{X: 170, Y: 630, W: 140, H: 28}, numeric: true, maxLen: 8,
	}
	g.skyBuf = buildSky()
	g.skylineBuf = ebiten.NewImage(ScreenWidth, ScreenHeight)
	g.hudBuf = ebiten.NewImage(ScreenWidth/hudScale, ScreenHeight/hudScale)
	g.stampBuf = buildStamp(explosionRadius)
	return g
}

func (g *Game) Update() error {
	g.tick++
	g.handleInput()

	// Names apply live so a rename mid-round shows up in the next status.
	g.match.SetName(0, g.fields[fieldName0].text)
	g.match.SetName(1, g.fields[fieldName1].text)

	g.match.Update(tickDT)

	if g.copyNoteTicks > 0 {
		g.copyNoteTicks--
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// handleInput routes the keyboard and mouse: typing goes to the focused
// field, edge-triggered keys drive focus, firing and match control.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	edge := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// Left click: focus the field under the cursor, press the button, or
	// drop focus entirely.
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !g.prevMouseLeft {
		mx, my := ebiten.CursorPosition()
		g.focused = -1
		for i := range g.fields {
			if g.fields[i].box.Contains(mx, my) {
				g.focused = i
				break
			}
		}
		if g.button.Contains(mx, my) {
			g.tryFire()
		}
	}
	g.prevMouseLeft = mouseLeft

	if edge(ebiten.KeyTab) {
		g.focused = (g.focused + 1) % fieldCount
	}
	if edge(ebiten.KeyEnter) {
		g.tryFire()
	}

	if g.focused >= 0 {
		g.typeInto(&g.fields[g.focused], currentKeys)
	} else {
		// Match controls only bind while no field is focused, so typing
		// an R or C into a name never restarts the game.
		if edge(ebiten.KeyR) {
			g.match.StartMatch()
		}
		if edge(ebiten.KeyC) {
			g.copyHistory()
		}
	}

	g.prevKeys = currentKeys
}

// typeInto appends typed characters to the field and handles backspace with
// hold-to-repeat.
func (g *Game) typeInto(f *textField, currentKeys map[ebiten.Key]bool) {
	for _, r := range ebiten.AppendInputChars(nil) {
		if len(f.text) >= f.maxLen {
			break
		}
		if f.numeric {
			if (r < '0' || r > '9') && r != '.' {
				continue
			}
		} else if r < 0x20 || r == 0x7f {
			continue
		}
		f.text += string(r)
	}

	currentKeys[ebiten.KeyBackspace] = ebiten.IsKeyPressed(ebiten.KeyBackspace)
	if currentKeys[ebiten.KeyBackspace] {
		g.backspaceHold++
	} else {
		g.backspaceHold = 0
	}
	del := g.backspaceHold == 1 || (g.backspaceHold > 30 && g.backspaceHold%3 == 0)
	if del && len(f.text) > 0 {
		f.text = f.text[:len(f.text)-1]
	}
}

// tryFire parses the angle and speed fields and launches the throw. Parse
// failures land on the status line; range failures are reported by Fire.
func (g *Game) tryFire() {
	if g.match.Phase() != PhaseAwaitingThrow {
		return
	}
	angle, errA := strconv.ParseFloat(g.fields[fieldAngle].text, 64)
	speed, errS := strconv.ParseFloat(g.fields[fieldSpeed].text, 64)
	if errA != nil || errS != nil {
		g.match.setStatus("Invalid angle or speed.")
		return
	}
	// Fire reports rejection on the status line already.
	_ = g.match.Fire(angle, speed)
}

// copyHistory puts the formatted score history on the system clipboard.
func (g *Game) copyHistory() {
	if g.store == nil {
		return
	}
	if err := clipboard.WriteAll(g.store.FormatHistory()); err != nil {
		g.copyNote = "Clipboard unavailable."
	} else {
		g.copyNote = "Score history copied."
	}
	g.copyNoteTicks = copyNoteLifetime
}
