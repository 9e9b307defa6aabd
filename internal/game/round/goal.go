// Package round steps a round of golf frame by frame and keeps its score.
package round

// GoalDuration is how long the hole-in banner stays up, in seconds.
const GoalDuration float32 = 2.0

// Goal is the transient "ball holed" banner.
type Goal struct {
	Active    bool
	Countdown float32
}

// Activate shows the banner for d seconds.
func (g *Goal) Activate(d float32) {
	g.Active = true
	g.Countdown = d
}

// Tick counts the banner down and hides it once the time is up.
func (g *Goal) Tick(dt float32) {
	if !g.Active || !(dt > 0) {
		return
	}
	g.Countdown -= dt
	if g.Countdown <= 0 {
		g.Active = false
		g.Countdown = 0
	}
}
