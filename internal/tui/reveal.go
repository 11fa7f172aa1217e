package tui

import (
	"math"
	"time"

	"github.com/akyairhashvil/coursecards/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

var revealSpring = harmonica.NewSpring(
	harmonica.FPS(config.AnimationFPS),
	config.AnimationFrequency,
	config.AnimationDamping,
)

// revealAnim smooths a card's height between collapsed (0) and expanded (1).
type revealAnim struct {
	pos    float64
	vel    float64
	target float64
	frames int
}

func settledReveal(expanded bool) *revealAnim {
	r := &revealAnim{}
	if expanded {
		r.pos, r.target = 1, 1
	}
	return r
}

func (r *revealAnim) retarget(expanded bool) {
	r.target = 0
	if expanded {
		r.target = 1
	}
	r.frames = 0
}

func (r *revealAnim) settled() bool {
	return r.pos == r.target && r.vel == 0
}

// step advances one frame and reports whether the animation has settled.
func (r *revealAnim) step() bool {
	if r.settled() {
		return true
	}
	r.pos, r.vel = revealSpring.Update(r.pos, r.vel, r.target)
	r.frames++
	if (math.Abs(r.pos-r.target) < config.AnimationEpsilon && math.Abs(r.vel) < config.AnimationEpsilon) ||
		r.frames >= config.AnimationMaxFrames {
		r.pos, r.vel = r.target, 0
		return true
	}
	return false
}

// value clamps the spring position to [0,1] for rendering.
func (r *revealAnim) value() float64 {
	return math.Max(0, math.Min(1, r.pos))
}

// --- Messages ---

// revealFrameMsg drives one animation frame of the list it was issued for.
type revealFrameMsg struct {
	generation int
}

func revealFrameCmd(generation int) tea.Cmd {
	return tea.Tick(config.FrameInterval, func(time.Time) tea.Msg {
		return revealFrameMsg{generation: generation}
	})
}
