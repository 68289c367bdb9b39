package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRandom replays a fixed sequence of draws.
type seqRandom struct {
	vals []int
	i    int
}

func (s *seqRandom) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// drawsFor returns the draws that make GenerateSecret produce secret when no
// draw is rejected.
func drawsFor(secret ...Color) *seqRandom {
	vals := make([]int, len(secret))
	for i, c := range secret {
		vals[i] = int(c) - 1
	}
	return &seqRandom{vals: vals}
}

func sixColorRules() Rules {
	return Rules{Pegs: 4, Colors: 6, MaxAttempts: 10, TimeLimit: 10 * time.Minute}
}

func newTestEngine(t *testing.T, rules Rules, secret ...Color) *Engine {
	t.Helper()
	e, err := New(rules, drawsFor(secret...), 0)
	require.NoError(t, err)
	return e
}

// enter composes guess slot by slot through the cursor and color operations.
func enter(t *testing.T, e *Engine, guess ...Color) {
	t.Helper()
	e.MoveCursor(-e.Rules().Pegs)
	for i, c := range guess {
		cur := e.Guess()[i]
		if delta := int(c) - int(cur); delta != 0 {
			require.True(t, e.CycleColor(delta))
		}
		e.MoveCursor(1)
	}
	require.Equal(t, guess, e.Guess())
}

func TestNewRejectsInvalidRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rules Rules
	}{
		{"fewer colors than pegs without repeats", Rules{Pegs: 4, Colors: 3, MaxAttempts: 10}},
		{"zero pegs", Rules{Pegs: 0, Colors: 4, MaxAttempts: 10}},
		{"zero colors", Rules{Pegs: 1, Colors: 0, AllowRepeat: true, MaxAttempts: 10}},
		{"palette too large", Rules{Pegs: 4, Colors: MaxColors + 1, MaxAttempts: 10}},
		{"zero attempts", Rules{Pegs: 4, Colors: 4, MaxAttempts: 0}},
		{"negative time limit", Rules{Pegs: 4, Colors: 4, MaxAttempts: 1, TimeLimit: -time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := New(tt.rules, rand.New(rand.NewSource(1)), 0)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, ErrInvalidRules)
		})
	}
}

func TestNewRequiresRandom(t *testing.T) {
	t.Parallel()

	_, err := New(ClassicRules(), nil, 0)
	assert.ErrorIs(t, err, ErrInvalidRules)
}

func TestRepeatsAllowedWithFewColors(t *testing.T) {
	t.Parallel()

	rules := Rules{Pegs: 4, Colors: 2, AllowRepeat: true, MaxAttempts: 5}
	require.NoError(t, rules.Validate())
}

func TestGenerateSecretDistinct(t *testing.T) {
	t.Parallel()

	for _, rules := range []Rules{ClassicRules(), sixColorRules()} {
		for seed := int64(0); seed < 500; seed++ {
			secret := GenerateSecret(rules, rand.New(rand.NewSource(seed)))
			require.Len(t, secret, rules.Pegs)

			seen := map[Color]bool{}
			for _, c := range secret {
				require.NotEqual(t, ColorNone, c)
				require.LessOrEqual(t, int(c), rules.Colors)
				require.False(t, seen[c], "seed %d produced repeated color in %v", seed, secret)
				seen[c] = true
			}
		}
	}
}

func TestGenerateSecretRejectsUsedColors(t *testing.T) {
	t.Parallel()

	rules := Rules{Pegs: 3, Colors: 4, MaxAttempts: 1}
	rng := &seqRandom{vals: []int{0, 0, 0, 1, 1, 2}}
	assert.Equal(t, []Color{R, G, B}, GenerateSecret(rules, rng))
}

func TestGenerateSecretWithRepeats(t *testing.T) {
	t.Parallel()

	rules := Rules{Pegs: 4, Colors: 6, AllowRepeat: true, MaxAttempts: 1}
	rng := &seqRandom{vals: []int{2, 2, 2, 5}}
	assert.Equal(t, []Color{B, B, B, O}, GenerateSecret(rules, rng))
}

func TestDeterminism(t *testing.T) {
	t.Parallel()

	e1, err := New(sixColorRules(), rand.New(rand.NewSource(42)), 0)
	require.NoError(t, err)
	e2, err := New(sixColorRules(), rand.New(rand.NewSource(42)), 0)
	require.NoError(t, err)

	for range 5 {
		e1.Reset(0)
		e2.Reset(0)
		e1.Reveal(time.Second)
		e2.Reveal(time.Second)
		s1, _ := e1.Secret()
		s2, _ := e2.Secret()
		assert.Equal(t, s1, s2)
	}
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)
	snap := e.Snapshot(0)

	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Nil(t, snap.Secret)
	assert.Equal(t, []Color{ColorNone, ColorNone, ColorNone, ColorNone}, snap.Guess)
	assert.Equal(t, 0, snap.Cursor)
	assert.Empty(t, snap.History)
	assert.Equal(t, 0, snap.AttemptsUsed)
	assert.Equal(t, 10, snap.MaxAttempts)
	assert.Equal(t, time.Duration(0), snap.Elapsed)
	assert.False(t, snap.CanSubmit)
}

func TestMoveCursorClamps(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)

	assert.False(t, e.MoveCursor(-1))
	assert.Equal(t, 0, e.Cursor())

	for i := 1; i < 4; i++ {
		assert.True(t, e.MoveCursor(1))
		assert.Equal(t, i, e.Cursor())
	}
	assert.False(t, e.MoveCursor(1))
	assert.Equal(t, 3, e.Cursor())

	assert.True(t, e.MoveCursor(-10))
	assert.Equal(t, 0, e.Cursor())
}

func TestPalette(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow}, Palette(4))
	assert.Len(t, Palette(MaxColors), MaxColors)
	assert.NotContains(t, Palette(MaxColors), ColorNone)
	assert.Empty(t, Palette(0))
}

func TestCycleColorWraps(t *testing.T) {
	t.Parallel()

	rules := ClassicRules()
	e := newTestEngine(t, rules, R, G, B, Y)

	want := []Color{R, G, B, Y, ColorNone, R}
	for _, c := range want {
		require.True(t, e.CycleColor(1))
		assert.Equal(t, c, e.Guess()[0])
	}

	e.CycleColor(-1)
	assert.Equal(t, ColorNone, e.Guess()[0])
	e.CycleColor(-1)
	assert.Equal(t, Y, e.Guess()[0], "stepping back from None wraps to the last color")

	assert.Equal(t, ColorNone, e.Guess()[1], "other slots untouched")
}

func TestSubmitScenario(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)
	enter(t, e, G, R, B, P)

	require.True(t, e.Submit(time.Second))
	require.Equal(t, 1, e.AttemptsUsed())

	last := e.History()[0]
	assert.Equal(t, []Color{G, R, B, P}, last.Guess())
	assert.Equal(t, 1, last.Black())
	assert.Equal(t, 2, last.White())
	assert.Equal(t, PhasePlaying, e.Phase())
	assert.Equal(t, []Color{G, R, B, P}, e.Guess(), "guess carries forward")
}

func TestSubmitIncompleteGuessIgnored(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)
	enter(t, e, R, G, ColorNone, Y)

	assert.False(t, e.CanSubmit())
	assert.False(t, e.Submit(time.Second))
	assert.Equal(t, 0, e.AttemptsUsed())
}

func TestSubmitRepeatedGuessIgnored(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)
	enter(t, e, G, R, B, P)
	require.True(t, e.Submit(time.Second))

	assert.False(t, e.CanSubmit())
	assert.False(t, e.Submit(2*time.Second))
	assert.Equal(t, 1, e.AttemptsUsed())

	enter(t, e, G, R, B, O)
	assert.True(t, e.Submit(3*time.Second))
	assert.Equal(t, 2, e.AttemptsUsed())

	// Only the immediately preceding attempt blocks resubmission.
	enter(t, e, G, R, B, P)
	assert.True(t, e.Submit(4*time.Second))
	assert.Equal(t, 3, e.AttemptsUsed())
}

func TestSubmitWin(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)
	enter(t, e, R, G, B, Y)

	require.True(t, e.Submit(42*time.Second))
	assert.Equal(t, PhaseWon, e.Phase())
	assert.Equal(t, LossNone, e.LossReason())
	assert.Equal(t, 4, e.History()[0].Black())
	assert.Equal(t, 0, e.History()[0].White())
	assert.Equal(t, 42*time.Second, e.Elapsed(time.Hour), "clock frozen on win")

	secret, ok := e.Secret()
	assert.True(t, ok)
	assert.Equal(t, []Color{R, G, B, Y}, secret)
}

func TestMaxAttemptsLosesOnTriggeringSubmit(t *testing.T) {
	t.Parallel()

	rules := sixColorRules()
	rules.MaxAttempts = 3
	e := newTestEngine(t, rules, R, G, B, Y)

	guesses := [][]Color{{G, R, B, P}, {G, R, B, O}, {O, P, B, Y}}
	for i, g := range guesses {
		enter(t, e, g...)
		require.True(t, e.Submit(time.Duration(i+1)*time.Second))
	}

	assert.Equal(t, PhaseLost, e.Phase())
	assert.Equal(t, LossAttempts, e.LossReason())
	assert.Equal(t, 3, e.AttemptsUsed())

	// A further distinct guess cannot be composed or submitted.
	assert.False(t, e.CycleColor(1))
	assert.False(t, e.Submit(10*time.Second))
	assert.Equal(t, 3, e.AttemptsUsed())
}

func TestWinOnLastAttemptIsWin(t *testing.T) {
	t.Parallel()

	rules := sixColorRules()
	rules.MaxAttempts = 1
	e := newTestEngine(t, rules, R, G, B, Y)
	enter(t, e, R, G, B, Y)

	require.True(t, e.Submit(time.Second))
	assert.Equal(t, PhaseWon, e.Phase())
	assert.Equal(t, LossNone, e.LossReason())
}

func TestPauseResumePreservesElapsed(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)

	require.True(t, e.Pause(10*time.Second))
	assert.Equal(t, PhasePaused, e.Phase())
	assert.Equal(t, 10*time.Second, e.Elapsed(20*time.Second), "clock frozen while paused")

	require.True(t, e.Resume(25*time.Second))
	require.True(t, e.Pause(30*time.Second))

	assert.Equal(t, 15*time.Second, e.Elapsed(30*time.Second))
	assert.Equal(t, 15*time.Second, e.Elapsed(time.Hour))
}

func TestPausedSessionRejectsMutations(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)
	enter(t, e, R, G, B, P)
	e.MoveCursor(-1)
	require.True(t, e.Pause(time.Second))

	assert.False(t, e.MoveCursor(-1))
	assert.False(t, e.CycleColor(1))
	assert.False(t, e.Submit(2*time.Second))
	assert.False(t, e.Pause(2*time.Second))
	assert.False(t, e.Reveal(2*time.Second))
	assert.False(t, e.HideReveal(2*time.Second))
	assert.False(t, e.Tick(time.Hour))

	assert.Equal(t, []Color{R, G, B, P}, e.Guess())
	assert.Equal(t, 2, e.Cursor())
	assert.Equal(t, PhasePaused, e.Phase())
}

func TestResumeRequiresPaused(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)
	assert.False(t, e.Resume(time.Second))
	assert.Equal(t, PhasePlaying, e.Phase())
}

func TestRevealShowsSecretAndFreezesClock(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)

	_, ok := e.Secret()
	assert.False(t, ok)

	require.True(t, e.Reveal(5*time.Second))
	assert.Equal(t, PhaseRevealing, e.Phase())

	secret, ok := e.Secret()
	require.True(t, ok)
	assert.Equal(t, []Color{R, G, B, Y}, secret)
	assert.Equal(t, []Color{R, G, B, Y}, e.Snapshot(6*time.Second).Secret)
	assert.False(t, e.CycleColor(1))
	assert.False(t, e.Pause(6*time.Second))

	require.True(t, e.HideReveal(65*time.Second))
	assert.Equal(t, PhasePlaying, e.Phase())
	assert.Nil(t, e.Snapshot(65*time.Second).Secret)
	assert.Equal(t, 10*time.Second, e.Elapsed(70*time.Second))
}

func TestTickTimesOut(t *testing.T) {
	t.Parallel()

	rules := sixColorRules()
	rules.TimeLimit = time.Minute
	e := newTestEngine(t, rules, R, G, B, Y)

	assert.False(t, e.Tick(59*time.Second))
	assert.Equal(t, PhasePlaying, e.Phase())

	assert.True(t, e.Tick(61*time.Second))
	assert.Equal(t, PhaseLost, e.Phase())
	assert.Equal(t, LossTimeout, e.LossReason())
	assert.Equal(t, time.Minute, e.Elapsed(2*time.Minute), "elapsed pinned to the limit")

	assert.False(t, e.Tick(2*time.Minute), "already lost")
}

func TestTickIgnoresPausedTime(t *testing.T) {
	t.Parallel()

	rules := sixColorRules()
	rules.TimeLimit = time.Minute
	e := newTestEngine(t, rules, R, G, B, Y)

	require.True(t, e.Pause(50*time.Second))
	require.True(t, e.Resume(10*time.Minute))
	assert.False(t, e.Tick(10*time.Minute+9*time.Second))
	assert.True(t, e.Tick(10*time.Minute+10*time.Second))
}

func TestSubmitAfterDeadlineLoses(t *testing.T) {
	t.Parallel()

	rules := sixColorRules()
	rules.TimeLimit = time.Minute
	e := newTestEngine(t, rules, R, G, B, Y)
	enter(t, e, R, G, B, Y)

	assert.False(t, e.Submit(90*time.Second))
	assert.Equal(t, PhaseLost, e.Phase())
	assert.Equal(t, LossTimeout, e.LossReason())
	assert.Equal(t, 0, e.AttemptsUsed())
}

func TestPauseAndRevealAfterDeadlineLose(t *testing.T) {
	t.Parallel()

	ops := map[string]func(*Engine, time.Duration) bool{
		"pause":  (*Engine).Pause,
		"reveal": (*Engine).Reveal,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rules := sixColorRules()
			rules.TimeLimit = time.Minute
			e := newTestEngine(t, rules, R, G, B, Y)

			assert.False(t, op(e, 2*time.Minute), "not applied")
			assert.Equal(t, PhaseLost, e.Phase(), "but the session ended")
			assert.Equal(t, LossTimeout, e.LossReason())
			assert.Equal(t, time.Minute, e.Elapsed(3*time.Minute))
			_, shown := e.Secret()
			assert.True(t, shown)
		})
	}
}

func TestNoTimeLimit(t *testing.T) {
	t.Parallel()

	rules := sixColorRules()
	rules.TimeLimit = 0
	e := newTestEngine(t, rules, R, G, B, Y)

	assert.False(t, e.Tick(1000*time.Hour))
	assert.Equal(t, 1000*time.Hour, e.Elapsed(1000*time.Hour))
	assert.Equal(t, time.Duration(0), e.Snapshot(time.Hour).Remaining())
}

func TestResetFromTerminal(t *testing.T) {
	t.Parallel()

	rng := &seqRandom{vals: []int{0, 1, 2, 3, 5, 4, 3, 2}}
	e, err := New(sixColorRules(), rng, 0)
	require.NoError(t, err)

	enter(t, e, R, G, B, Y)
	require.True(t, e.Submit(time.Second))
	require.Equal(t, PhaseWon, e.Phase())

	e.Reset(time.Minute)
	assert.Equal(t, PhasePlaying, e.Phase())
	assert.Empty(t, e.History())
	assert.Equal(t, 0, e.Cursor())
	assert.Equal(t, []Color{ColorNone, ColorNone, ColorNone, ColorNone}, e.Guess())
	assert.Equal(t, LossNone, e.LossReason())
	assert.Equal(t, time.Duration(0), e.Elapsed(time.Minute))
	assert.Equal(t, 5*time.Second, e.Elapsed(time.Minute+5*time.Second))

	e.Reveal(time.Minute)
	secret, _ := e.Secret()
	assert.Equal(t, []Color{O, P, Y, B}, secret)
}

func TestResetWhilePaused(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)
	require.True(t, e.Pause(time.Second))
	e.Reset(2 * time.Second)
	assert.Equal(t, PhasePlaying, e.Phase())
}

func TestHistoryIsImmutable(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)
	enter(t, e, G, R, B, P)
	require.True(t, e.Submit(time.Second))

	h := e.History()
	g := h[0].Guess()
	g[0] = O
	fb := h[0].Feedback()
	fb[0] = FeedbackNone
	guess := e.Guess()
	guess[0] = O

	assert.Equal(t, []Color{G, R, B, P}, e.History()[0].Guess())
	assert.Equal(t, 1, e.History()[0].Black())
	assert.Equal(t, G, e.Guess()[0])
}

func TestSnapshotLastAndRemaining(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, sixColorRules(), R, G, B, Y)

	_, ok := e.Snapshot(0).Last()
	assert.False(t, ok)

	enter(t, e, G, R, B, P)
	require.True(t, e.Submit(time.Minute))

	snap := e.Snapshot(2 * time.Minute)
	last, ok := snap.Last()
	require.True(t, ok)
	assert.Equal(t, 1, last.Black())
	assert.Equal(t, 8*time.Minute, snap.Remaining())
}
