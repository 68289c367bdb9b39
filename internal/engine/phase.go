package engine

// Phase is the state-machine state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseWon
	PhaseLost
	PhaseRevealing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseRevealing:
		return "revealing"
	default:
		return "unknown"
	}
}

// Terminal reports whether p only exits through Reset.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// ShowsSecret reports whether the secret may be displayed in p.
func (p Phase) ShowsSecret() bool {
	return p == PhaseRevealing || p.Terminal()
}

// clockRunning reports whether elapsed time accrues in p.
func (p Phase) clockRunning() bool {
	return p == PhasePlaying
}

// LossReason records why a session was lost.
type LossReason int

const (
	LossNone LossReason = iota
	LossAttempts
	LossTimeout
)

// String returns the loss reason name.
func (r LossReason) String() string {
	switch r {
	case LossAttempts:
		return "attempts"
	case LossTimeout:
		return "timeout"
	default:
		return ""
	}
}

// Attempt is one submitted guess and its feedback. It is immutable: the
// accessors return copies.
type Attempt struct {
	guess    []Color
	feedback []Feedback
}

// Guess returns a copy of the submitted guess.
func (a Attempt) Guess() []Color {
	return append([]Color(nil), a.guess...)
}

// Feedback returns a copy of the feedback pegs, black first.
func (a Attempt) Feedback() []Feedback {
	return append([]Feedback(nil), a.feedback...)
}

// Black returns the number of exact matches.
func (a Attempt) Black() int {
	b, _ := Tally(a.feedback)
	return b
}

// White returns the number of color-only matches.
func (a Attempt) White() int {
	_, w := Tally(a.feedback)
	return w
}
