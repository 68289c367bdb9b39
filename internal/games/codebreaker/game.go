// Package codebreaker adapts the code-breaking engine to the terminal platform:
// it maps platform actions onto engine operations, supplies the clock, and
// draws engine snapshots into a core.Screen.
package codebreaker

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-codebreaker/internal/core"
	"github.com/vovakirdan/tui-codebreaker/internal/engine"
)

// Clock is the monotonic time source the game reads once per step.
type Clock interface {
	Now() time.Duration
}

type systemClock struct {
	origin time.Time
}

// Now returns the time since the clock was created. time.Since reads the
// monotonic reading, so wall clock jumps do not leak into the game.
func (c systemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// SystemClock returns a Clock backed by the process monotonic clock.
func SystemClock() Clock {
	return systemClock{origin: time.Now()}
}

// Game is one playable variant.
type Game struct {
	id          string
	title       string
	description string
	rules       engine.Rules
	clock       Clock

	eng *engine.Engine
}

// New creates a game for the given rules. Invalid rules are rejected here so
// a broken variant never reaches the board.
func New(id, title, description string, rules engine.Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("codebreaker: variant %q: %w", id, err)
	}
	return newGame(id, title, description, rules), nil
}

func newGame(id, title, description string, rules engine.Rules) *Game {
	return &Game{
		id:          id,
		title:       title,
		description: description,
		rules:       rules,
		clock:       SystemClock(),
	}
}

// SetClock replaces the time source. It must be called before Reset.
func (g *Game) SetClock(c Clock) {
	g.clock = c
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Rules returns the rules every session of this game is played under.
func (g *Game) Rules() engine.Rules {
	return g.rules
}

// Summary describes the variant for menus and listings.
func (g *Game) Summary() string {
	rules := RulesSummary(g.rules)
	if g.description == "" {
		return rules
	}
	return g.description + " (" + rules + ")"
}

// RulesSummary renders rules as a short comma separated line.
func RulesSummary(r engine.Rules) string {
	parts := []string{
		fmt.Sprintf("%d pegs", r.Pegs),
		fmt.Sprintf("%d colors", r.Colors),
	}
	if r.AllowRepeat {
		parts = append(parts, "repeats")
	} else {
		parts = append(parts, "no repeats")
	}
	parts = append(parts, fmt.Sprintf("%d attempts", r.MaxAttempts))
	if r.TimeLimit > 0 {
		parts = append(parts, r.TimeLimit.String())
	} else {
		parts = append(parts, "no time limit")
	}
	return strings.Join(parts, ", ")
}

// Reset starts a fresh session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	eng, err := engine.New(g.rules, rng, g.clock.Now())
	if err != nil {
		// Rules were validated when the game was built.
		panic(err)
	}
	g.eng = eng
}

// Step applies the frame's actions in order, after advancing the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil {
		return core.StepResult{}
	}

	now := g.clock.Now()
	g.eng.Tick(now)

	exit := false
	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			g.eng.MoveCursor(-1)
		case core.ActionRight:
			g.eng.MoveCursor(1)
		case core.ActionUp:
			g.eng.CycleColor(1)
		case core.ActionDown:
			g.eng.CycleColor(-1)
		case core.ActionConfirm:
			g.confirm(now)
		case core.ActionReveal:
			if g.eng.Phase() == engine.PhaseRevealing {
				g.eng.HideReveal(now)
			} else {
				g.eng.Reveal(now)
			}
		case core.ActionPause:
			if g.eng.Phase() == engine.PhasePaused {
				exit = true
			} else {
				g.eng.Pause(now)
			}
		case core.ActionRestart:
			// A running game has to be paused before it can be thrown away
			if g.eng.Phase() != engine.PhasePlaying {
				g.eng.Reset(now)
			}
		}
	}

	return core.StepResult{State: g.State(), Exit: exit}
}

// confirm is the context-dependent OK button.
func (g *Game) confirm(now time.Duration) {
	switch g.eng.Phase() {
	case engine.PhasePlaying:
		g.eng.Submit(now)
	case engine.PhasePaused:
		g.eng.Resume(now)
	case engine.PhaseRevealing:
		g.eng.HideReveal(now)
	}
}

// Snapshot returns the engine view as of the clock's current reading.
func (g *Game) Snapshot() engine.Snapshot {
	if g.eng == nil {
		return engine.Snapshot{}
	}
	return g.eng.Snapshot(g.clock.Now())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}

	phase := g.eng.Phase()
	return core.GameState{
		GameOver: phase.Terminal(),
		Paused:   phase == engine.PhasePaused || phase == engine.PhaseRevealing,
		Outcome: core.Outcome{
			Won:        phase == engine.PhaseWon,
			Attempts:   g.eng.AttemptsUsed(),
			Elapsed:    g.eng.Elapsed(g.clock.Now()),
			LossReason: g.eng.LossReason().String(),
		},
	}
}
