package game

import "math/rand"

// Autoplayer throws random bananas until the match ends. It drives the
// headless report and the whole-match tests; the windowed game never uses it.
type Autoplayer struct {
	match *Match
	rng   *rand.Rand
}

// NewAutoplayer wraps a match with a deterministic random thrower.
func NewAutoplayer(m *Match, seed int64) *Autoplayer {
	return &Autoplayer{
		match: m,
		rng:   rand.New(rand.NewSource(seed)), // #nosec G404 -- headless harness
	}
}

// PlayMatch alternates random throws until the match ends or maxThrows is
// reached, whichever comes first. Returns the number of throws made.
func (a *Autoplayer) PlayMatch(maxThrows int) int {
	throws := 0
	for throws < maxThrows && a.match.Phase() != PhaseMatchEnd {
		if err := a.ThrowRandom(); err != nil {
			break
		}
		throws++
		a.FlyOut()
	}
	return throws
}

// ThrowRandom fires one throw with an angle and speed drawn from ranges that
// always pass validation.
func (a *Autoplayer) ThrowRandom() error {
	angle := 20 + a.rng.Float64()*140
	speed := 150 + a.rng.Float64()*450
	return a.match.Fire(angle, speed)
}

// FlyOut ticks the match until the live banana resolves. The cap is far
// beyond any physically possible flight time.
func (a *Autoplayer) FlyOut() {
	for i := 0; i < 10*tickRate*60 && a.match.Phase() == PhaseInFlight; i++ {
		a.match.Update(tickDT)
	}
}
