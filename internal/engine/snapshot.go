package engine

import "time"

// Snapshot is the read-only view a renderer pulls once per redraw.
type Snapshot struct {
	Phase        Phase
	Secret       []Color // nil unless the phase shows the secret
	Guess        []Color
	Cursor       int
	History      []Attempt
	AttemptsUsed int
	MaxAttempts  int
	Elapsed      time.Duration
	TimeLimit    time.Duration
	LossReason   LossReason
	CanSubmit    bool
}

// Snapshot captures the session as of now.
func (e *Engine) Snapshot(now time.Duration) Snapshot {
	secret, _ := e.Secret()
	return Snapshot{
		Phase:        e.phase,
		Secret:       secret,
		Guess:        e.Guess(),
		Cursor:       e.cursor,
		History:      e.History(),
		AttemptsUsed: len(e.history),
		MaxAttempts:  e.rules.MaxAttempts,
		Elapsed:      e.Elapsed(now),
		TimeLimit:    e.rules.TimeLimit,
		LossReason:   e.loss,
		CanSubmit:    e.CanSubmit(),
	}
}

// Last returns the most recent attempt, if any.
func (s Snapshot) Last() (Attempt, bool) {
	if len(s.History) == 0 {
		return Attempt{}, false
	}
	return s.History[len(s.History)-1], true
}

// Remaining returns the time left in the budget, or 0 without a limit.
func (s Snapshot) Remaining() time.Duration {
	if s.TimeLimit <= 0 {
		return 0
	}
	return max(s.TimeLimit-s.Elapsed, 0)
}
