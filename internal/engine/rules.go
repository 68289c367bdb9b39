package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is returned (wrapped) when a Rules value cannot produce a
// playable session.
var ErrInvalidRules = errors.New("engine: invalid rules")

// Rules fixes the shape of every session an Engine runs.
type Rules struct {
	Pegs        int           // Secret and guess length (P)
	Colors      int           // Number of named colors (N)
	AllowRepeat bool          // Whether the secret may repeat a color
	MaxAttempts int           // Attempt cap, at least 1
	TimeLimit   time.Duration // Time budget while playing; 0 disables it
}

// ClassicRules returns the rules of the original handheld game:
// four pegs, four colors, no repeats, 99 attempts, 90 minutes.
func ClassicRules() Rules {
	return Rules{
		Pegs:        4,
		Colors:      4,
		AllowRepeat: false,
		MaxAttempts: 99,
		TimeLimit:   90 * time.Minute,
	}
}

// Validate reports why r cannot be played, or nil.
func (r Rules) Validate() error {
	switch {
	case r.Pegs < 1:
		return fmt.Errorf("%w: pegs must be at least 1, got %d", ErrInvalidRules, r.Pegs)
	case r.Colors < 1 || r.Colors > MaxColors:
		return fmt.Errorf("%w: colors must be between 1 and %d, got %d", ErrInvalidRules, MaxColors, r.Colors)
	case !r.AllowRepeat && r.Colors < r.Pegs:
		return fmt.Errorf("%w: %d colors cannot fill %d pegs without repeats", ErrInvalidRules, r.Colors, r.Pegs)
	case r.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts must be at least 1, got %d", ErrInvalidRules, r.MaxAttempts)
	case r.TimeLimit < 0:
		return fmt.Errorf("%w: time limit must not be negative, got %s", ErrInvalidRules, r.TimeLimit)
	}
	return nil
}

// Random is the randomness port. *math/rand.Rand satisfies it.
type Random interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// GenerateSecret draws a secret for r from rng. Without repeats each slot is
// resampled until it picks a color not used by an earlier slot.
// r must be valid.
func GenerateSecret(r Rules, rng Random) []Color {
	secret := make([]Color, r.Pegs)
	used := make([]bool, r.Colors+1)
	for i := range secret {
		c := Color(rng.Intn(r.Colors) + 1)
		if !r.AllowRepeat {
			for used[c] {
				c = Color(rng.Intn(r.Colors) + 1)
			}
			used[c] = true
		}
		secret[i] = c
	}
	return secret
}
