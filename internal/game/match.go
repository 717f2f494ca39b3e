package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Phase is the resting state of the match state machine. Round setup and
// round resolution happen synchronously inside transitions, so they never
// appear as a phase of their own.
type Phase int

const (
	PhaseAwaitingThrow Phase = iota
	PhaseInFlight
	PhaseMatchEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingThrow:
		return "awaiting_throw"
	case PhaseInFlight:
		return "in_flight"
	case PhaseMatchEnd:
		return "match_end"
	default:
		return "unknown"
	}
}

// Throw rejection errors. Fire never changes state when it returns one.
var (
	ErrThrowNotAllowed = errors.New("no throw allowed right now")
	ErrBadAngle        = errors.New("angle must be strictly between 0 and 180 degrees")
	ErrBadSpeed        = errors.New("speed must be positive")
)

// ScoreRecorder persists one completed match. persistence.Store implements it.
type ScoreRecorder interface {
	Record(winner, loser string, wins [2]int, wind float64) error
}

// Impact is a terrain explosion the presenter still needs to stamp and
// animate. IDs grow monotonically for the life of the match.
type Impact struct {
	ID     int
	X, Y   int
	Radius int
	Age    int // ticks since the explosion
}

// Match owns one duel end to end: skyline, placement, wind, the single live
// projectile, turn order and the round-win tally. Everything is mutated on
// the one simulation goroutine; the presenter only reads.
type Match struct {
	skyline    *Skyline
	gorillas   [2]Gorilla
	projectile *Projectile
	rng        *rand.Rand
	log        *MatchLog
	recorder   ScoreRecorder

	names     [2]string // raw inputs; blank falls back to the defaults
	wind      float64
	roundWins [2]int
	round     int
	turn      int
	phase     Phase
	status    string
	tick      int

	effects      []Impact
	nextImpactID int
	setupSeq     int // bumped every round setup so the presenter rebuilds
}

// NewMatch creates a clock-seeded match. Tests and the headless report use
// NewSeededMatch instead.
func NewMatch(rec ScoreRecorder) *Match {
	return NewSeededMatch(time.Now().UnixNano(), rec)
}

// NewSeededMatch creates a match with a deterministic random source.
func NewSeededMatch(seed int64, rec ScoreRecorder) *Match {
	m := &Match{
		skyline:  NewSkyline(ScreenWidth, ScreenHeight),
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay randomness
		log:      NewMatchLog(false),
		recorder: rec,
	}
	m.StartMatch()
	return m
}

// StartMatch resets the tally and begins round 1. It also serves as the
// restart after a match ends.
func (m *Match) StartMatch() {
	m.roundWins = [2]int{}
	m.round = 1
	m.log.Add(m.tick, "--", "match", "start", "", 0)
	m.startRound()
}

// startRound regenerates the skyline, re-places both gorillas, samples a new
// wind and hands the first throw to the combatant picked by round parity:
// odd rounds open with gorilla 0, even rounds with gorilla 1.
func (m *Match) startRound() {
	m.skyline.Generate(m.rng)
	m.placeGorillas()
	m.wind = m.rng.Float64()*2*maxWind - maxWind
	m.projectile = nil
	m.effects = m.effects[:0]
	m.setupSeq++
	if m.round%2 == 1 {
		m.turn = 0
	} else {
		m.turn = 1
	}
	m.phase = PhaseAwaitingThrow
	m.setStatus(fmt.Sprintf("Round %d - %s starts!", m.round, m.Name(m.turn)))
	m.log.Add(m.tick, "--", "round", "start",
		fmt.Sprintf("round=%d first=%s wind=%+.1f", m.round, m.Name(m.turn), m.wind),
		float64(m.round))
}

// placeGorillas parks gorilla 0 on a random building in the left part of the
// field and gorilla 1 on the right. If a side has no candidate, the ordered
// building list is split in half instead.
func (m *Match) placeGorillas() {
	bs := m.skyline.Buildings
	var left, right []Building
	for _, b := range bs {
		cx := float64(b.Box.CenterX())
		if cx < ScreenWidth*0.45 {
			left = append(left, b)
		}
		if cx > ScreenWidth*0.55 {
			right = append(right, b)
		}
	}
	if len(left) == 0 {
		left = bs[:len(bs)/2]
	}
	if len(right) == 0 {
		right = bs[len(bs)/2:]
	}
	m.gorillas[0] = NewGorilla(left[m.rng.Intn(len(left))], 0)
	m.gorillas[1] = NewGorilla(right[m.rng.Intn(len(right))], 1)
}

// Fire validates and launches the current combatant's throw. Range failures
// surface a message on the status line; a throw while a banana is live or
// after the match ends is silently rejected, exactly like mashing a dead
// button. State is never touched on rejection.
func (m *Match) Fire(angleDeg, speed float64) error {
	if m.projectile != nil || m.phase == PhaseMatchEnd {
		return ErrThrowNotAllowed
	}
	if angleDeg <= 0 || angleDeg >= 180 {
		m.setStatus("Enter an angle between 0 and 180 degrees and a positive speed.")
		return ErrBadAngle
	}
	if speed <= 0 {
		m.setStatus("Enter an angle between 0 and 180 degrees and a positive speed.")
		return ErrBadSpeed
	}
	if speed < minThrowSpeed {
		speed = minThrowSpeed
	}
	if speed > maxThrowSpeed {
		speed = maxThrowSpeed
	}
	g := m.gorillas[m.turn]
	// The angle is always entered as "toward the opponent"; mirror it for
	// the left-facing combatant.
	if g.Facing < 0 {
		angleDeg = 180 - angleDeg
	}
	ox, oy := g.ThrowOrigin()
	m.projectile = Launch(ox, oy, speed, angleDeg, m.wind)
	m.phase = PhaseInFlight
	m.setStatus(fmt.Sprintf("%s hurls a banana!", m.Name(m.turn)))
	m.log.Add(m.tick, m.Name(m.turn), "throw", "launched",
		fmt.Sprintf("angle=%.1f speed=%.1f wind=%+.1f", angleDeg, speed, m.wind), speed)
	return nil
}

// Update advances the simulation one fixed tick: age effects, then integrate
// and collision-check the live projectile, then apply at most one outcome.
func (m *Match) Update(dt float64) {
	m.tick++
	m.ageEffects()

	p := m.projectile
	if p == nil {
		return
	}
	p.Step(dt)
	m.log.AddVerbose(m.tick, m.Name(m.turn), "flight", "position",
		fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y), p.Y)

	res := ResolveCollision(m.skyline, m.gorillas[:], p.X, p.Y)
	switch res.Outcome {
	case OutcomeNone:
		return
	case OutcomeOutOfBounds:
		m.projectile = nil
		m.log.Add(m.tick, m.Name(m.turn), "impact", "out_of_bounds",
			fmt.Sprintf("(%d,%d)", res.X, res.Y), 0)
		m.switchTurn("The banana falls away...")
	case OutcomeTerrainHit:
		m.skyline.Carve(res.X, res.Y, explosionRadius)
		m.addImpact(res.X, res.Y)
		thrower := m.Name(m.turn)
		m.projectile = nil
		m.log.Add(m.tick, thrower, "impact", "terrain_hit",
			fmt.Sprintf("(%d,%d) r=%d", res.X, res.Y, explosionRadius), 0)
		m.switchTurn(fmt.Sprintf("%s hit a building!", thrower))
	case OutcomeGorillaHit:
		m.projectile = nil
		// The struck gorilla's opponent takes the round, even when a
		// thrower clips itself.
		winner := 1 - res.Struck
		m.log.Add(m.tick, m.Name(m.turn), "impact", "gorilla_hit",
			fmt.Sprintf("struck=%s winner=%s self=%v",
				m.Name(res.Struck), m.Name(winner), res.Struck == m.turn),
			float64(res.Struck))
		m.resolveHit(winner, res.Struck)
	}
}

// switchTurn hands the throw to the other combatant after a miss. Hits never
// come through here: they end the round instead.
func (m *Match) switchTurn(message string) {
	if m.phase == PhaseMatchEnd {
		return
	}
	m.turn = 1 - m.turn
	m.phase = PhaseAwaitingThrow
	m.setStatus(fmt.Sprintf("%s\n%s to throw.", message, m.Name(m.turn)))
	m.log.Add(m.tick, "--", "turn", "switch", m.Name(m.turn), float64(m.turn))
}

// resolveHit credits the winner with the round and either ends the match or
// moves on to the next round.
func (m *Match) resolveHit(winner, struck int) {
	m.roundWins[winner]++
	winnerName := m.Name(winner)
	struckName := m.Name(struck)
	m.setStatus(fmt.Sprintf("%s hits %s!", winnerName, struckName))
	m.log.Add(m.tick, winnerName, "score", "round_win",
		fmt.Sprintf("%d-%d", m.roundWins[0], m.roundWins[1]),
		float64(m.roundWins[winner]))
	if m.roundWins[winner] >= roundsToWin {
		m.phase = PhaseMatchEnd
		m.projectile = nil
		m.saveScore(winnerName, struckName)
		m.setStatus(fmt.Sprintf("%s wins the match!\nPress R to play again.", winnerName))
		m.log.Add(m.tick, winnerName, "match", "end",
			fmt.Sprintf("%s defeats %s %d-%d", winnerName, struckName,
				m.roundWins[0], m.roundWins[1]), 0)
		return
	}
	m.round++
	m.startRound()
}

// saveScore writes the finished match through the recorder, if any. A write
// failure only shows up in the log; the match result stands regardless.
func (m *Match) saveScore(winner, loser string) {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Record(winner, loser, m.roundWins, m.wind); err != nil {
		m.log.Add(m.tick, "--", "score", "save_failed", err.Error(), 0)
		return
	}
	m.log.Add(m.tick, "--", "score", "saved", fmt.Sprintf("winner=%s", winner), 0)
}

func (m *Match) addImpact(x, y int) {
	m.nextImpactID++
	m.effects = append(m.effects, Impact{ID: m.nextImpactID, X: x, Y: y, Radius: explosionRadius})
}

// ageEffects advances the effect clocks and drops finished ones.
func (m *Match) ageEffects() {
	alive := m.effects[:0]
	for _, e := range m.effects {
		e.Age++
		if e.Age <= impactLifetime {
			alive = append(alive, e)
		}
	}
	m.effects = alive
}

func (m *Match) setStatus(text string) {
	m.status = text
}

// SetName sets combatant i's display name. Blank names fall back to the
// defaults when read back through Name.
func (m *Match) SetName(i int, name string) {
	m.names[i] = strings.TrimSpace(name)
}

// Name returns combatant i's display name.
func (m *Match) Name(i int) string {
	if m.names[i] != "" {
		return m.names[i]
	}
	if i == 0 {
		return defaultName0
	}
	return defaultName1
}

// Read-only snapshot accessors for the presenter and the headless report.

func (m *Match) Phase() Phase         { return m.phase }
func (m *Match) Round() int           { return m.round }
func (m *Match) Turn() int            { return m.turn }
func (m *Match) Wind() float64        { return m.wind }
func (m *Match) RoundWins() [2]int    { return m.roundWins }
func (m *Match) Status() string       { return m.status }
func (m *Match) Log() *MatchLog       { return m.log }
func (m *Match) Gorillas() [2]Gorilla { return m.gorillas }
