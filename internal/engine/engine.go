package engine

import (
	"fmt"
	"time"
)

// Engine owns one game session at a time and the rules it is played under.
//
// Timestamps are offsets on a monotonic clock chosen by the host; the engine
// only ever subtracts them. Operations that the current phase forbids are
// silent no-ops and report false. Submit, Pause and Reveal check the time
// budget first: once it is spent they end the session as Lost and still
// report false, so callers re-read Phase.
//
// Engine is not safe for concurrent use: hosts with several event producers
// must serialize calls.
type Engine struct {
	rules Rules
	rng   Random

	phase   Phase
	secret  []Color
	guess   []Color
	cursor  int
	history []Attempt
	loss    LossReason

	accrued time.Duration // elapsed time banked before the current running stretch
	since   time.Duration // timestamp the current running stretch started at
}

// New validates rules and starts the first session at now.
func New(rules Rules, rng Random, now time.Duration) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidRules)
	}
	e := &Engine{rules: rules, rng: rng}
	e.Reset(now)
	return e, nil
}

// Reset replaces the session wholesale: new secret, empty history, empty
// guess, cursor on the first slot, clock restarted at now. It is accepted in
// every phase.
func (e *Engine) Reset(now time.Duration) {
	e.phase = PhasePlaying
	e.secret = GenerateSecret(e.rules, e.rng)
	e.guess = make([]Color, e.rules.Pegs)
	e.cursor = 0
	e.history = nil
	e.loss = LossNone
	e.accrued = 0
	e.since = now
}

// MoveCursor shifts the cursor by delta, clamped to the peg range.
func (e *Engine) MoveCursor(delta int) bool {
	if e.phase != PhasePlaying {
		return false
	}
	next := min(max(e.cursor+delta, 0), e.rules.Pegs-1)
	if next == e.cursor {
		return false
	}
	e.cursor = next
	return true
}

// CycleColor steps the color under the cursor by delta through {None, 1..N}.
func (e *Engine) CycleColor(delta int) bool {
	if e.phase != PhasePlaying || delta == 0 {
		return false
	}
	e.guess[e.cursor] = e.guess[e.cursor].Next(delta, e.rules.Colors)
	return true
}

// CanSubmit reports whether Submit would currently be accepted, ignoring the
// clock: the session is playing, every slot has a color, and the guess differs
// from the previous attempt.
func (e *Engine) CanSubmit() bool {
	if e.phase != PhasePlaying {
		return false
	}
	for _, c := range e.guess {
		if c == ColorNone {
			return false
		}
	}
	if n := len(e.history); n > 0 && equalColors(e.history[n-1].guess, e.guess) {
		return false
	}
	return true
}

// Submit scores the current guess and records it as an attempt. A winning
// guess ends the session as Won; using up the last attempt ends it as Lost.
// The guess is left in place as the starting point for the next one.
// If the time budget has already run out the session is lost instead,
// nothing is recorded, and Submit reports false.
func (e *Engine) Submit(now time.Duration) bool {
	if e.phase != PhasePlaying || e.expire(now) || !e.CanSubmit() {
		return false
	}

	guess := append([]Color(nil), e.guess...)
	fb := Score(guess, e.secret)
	e.history = append(e.history, Attempt{guess: guess, feedback: fb})

	switch {
	case IsWin(fb):
		e.stop(now, PhaseWon)
	case len(e.history) >= e.rules.MaxAttempts:
		e.stop(now, PhaseLost)
		e.loss = LossAttempts
	}
	return true
}

// Pause freezes the clock. Past the deadline it reports false and the
// session is Lost instead.
func (e *Engine) Pause(now time.Duration) bool {
	if e.phase != PhasePlaying || e.expire(now) {
		return false
	}
	e.stop(now, PhasePaused)
	return true
}

// Resume restarts the clock after Pause.
func (e *Engine) Resume(now time.Duration) bool {
	if e.phase != PhasePaused {
		return false
	}
	e.run(now)
	return true
}

// Reveal shows the secret and freezes the clock until HideReveal. Past the
// deadline it reports false and the session is Lost instead.
func (e *Engine) Reveal(now time.Duration) bool {
	if e.phase != PhasePlaying || e.expire(now) {
		return false
	}
	e.stop(now, PhaseRevealing)
	return true
}

// HideReveal returns from Reveal to play and restarts the clock.
func (e *Engine) HideReveal(now time.Duration) bool {
	if e.phase != PhaseRevealing {
		return false
	}
	e.run(now)
	return true
}

// Tick checks the time budget and ends the session as Lost once it is spent.
// It reports whether the session ended on this call.
func (e *Engine) Tick(now time.Duration) bool {
	if e.phase != PhasePlaying {
		return false
	}
	return e.expire(now)
}

// expire moves a playing session to Lost when the time budget is spent.
// Elapsed time is pinned to exactly the limit.
func (e *Engine) expire(now time.Duration) bool {
	limit := e.rules.TimeLimit
	if limit <= 0 || e.Elapsed(now) < limit {
		return false
	}
	e.accrued = limit
	e.phase = PhaseLost
	e.loss = LossTimeout
	return true
}

func (e *Engine) stop(now time.Duration, next Phase) {
	e.accrued = e.Elapsed(now)
	e.phase = next
}

func (e *Engine) run(now time.Duration) {
	e.since = now
	e.phase = PhasePlaying
}

// Elapsed returns the playing time accrued by now, capped at the time limit.
func (e *Engine) Elapsed(now time.Duration) time.Duration {
	elapsed := e.accrued
	if e.phase.clockRunning() && now > e.since {
		elapsed += now - e.since
	}
	if limit := e.rules.TimeLimit; limit > 0 && elapsed > limit {
		elapsed = limit
	}
	return elapsed
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules { return e.rules }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Cursor returns the slot color changes apply to.
func (e *Engine) Cursor() int { return e.cursor }

// Guess returns a copy of the guess being composed.
func (e *Engine) Guess() []Color {
	return append([]Color(nil), e.guess...)
}

// History returns the submitted attempts, oldest first.
func (e *Engine) History() []Attempt {
	return append([]Attempt(nil), e.history...)
}

// AttemptsUsed returns the number of submitted attempts.
func (e *Engine) AttemptsUsed() int { return len(e.history) }

// LossReason returns why the session was lost, or LossNone.
func (e *Engine) LossReason() LossReason { return e.loss }

// Secret returns a copy of the secret when the phase allows showing it.
func (e *Engine) Secret() ([]Color, bool) {
	if !e.phase.ShowsSecret() {
		return nil, false
	}
	return append([]Color(nil), e.secret...), true
}

func equalColors(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
