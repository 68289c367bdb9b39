package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	R = ColorRed
	G = ColorGreen
	B = ColorBlue
	Y = ColorYellow
	P = ColorPurple
	O = ColorOrange
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		guess  []Color
		secret []Color
		black  int
		white  int
	}{
		{"swapped pair plus exact", []Color{G, R, B, P}, []Color{R, G, B, Y}, 1, 2},
		{"exact match", []Color{R, G, B, Y}, []Color{R, G, B, Y}, 4, 0},
		{"no shared colors", []Color{P, O, P, O}, []Color{R, G, B, Y}, 0, 0},
		{"all colors misplaced", []Color{Y, B, G, R}, []Color{R, G, B, Y}, 0, 4},
		{"repeated guess color counts once", []Color{R, R, R, R}, []Color{R, G, B, Y}, 1, 0},
		{"repeated secret colors swapped", []Color{G, G, R, R}, []Color{R, R, G, G}, 0, 4},
		{"exact consumes before color pass", []Color{R, G, R, Y}, []Color{R, R, G, B}, 1, 2},
		{"guess repeat exceeds secret", []Color{B, B, B, R}, []Color{R, B, G, Y}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fb := Score(tt.guess, tt.secret)
			black, white := Tally(fb)
			assert.Len(t, fb, len(tt.guess))
			assert.Equal(t, tt.black, black, "black pegs")
			assert.Equal(t, tt.white, white, "white pegs")
		})
	}
}

func TestScoreGroupsBlackFirst(t *testing.T) {
	t.Parallel()

	fb := Score([]Color{G, R, B, P}, []Color{R, G, B, Y})
	assert.Equal(t, []Feedback{FeedbackBlack, FeedbackWhite, FeedbackWhite, FeedbackNone}, fb)
}

func TestScoreDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	guess := []Color{G, R, B, P}
	secret := []Color{R, G, B, Y}
	Score(guess, secret)
	assert.Equal(t, []Color{G, R, B, P}, guess)
	assert.Equal(t, []Color{R, G, B, Y}, secret)
}

// TestScoreExhaustive checks the scoring invariants over every guess/secret
// pair of four pegs drawn from four colors with repeats.
func TestScoreExhaustive(t *testing.T) {
	t.Parallel()

	const pegs, colors = 4, 4
	all := allCodes(pegs, colors)

	for _, secret := range all {
		for _, guess := range all {
			fb := Score(guess, secret)
			black, white := Tally(fb)

			exact := 0
			for i := range guess {
				if guess[i] == secret[i] {
					exact++
				}
			}

			var gc, sc [colors + 1]int
			for i := range guess {
				gc[guess[i]]++
				sc[secret[i]]++
			}
			common := 0
			for c := 1; c <= colors; c++ {
				common += min(gc[c], sc[c])
			}

			if black+white > pegs {
				t.Fatalf("Score(%v, %v): %d black + %d white exceeds %d", guess, secret, black, white, pegs)
			}
			if black != exact {
				t.Fatalf("Score(%v, %v): black = %d, want %d", guess, secret, black, exact)
			}
			if black+white != common {
				t.Fatalf("Score(%v, %v): total = %d, want %d", guess, secret, black+white, common)
			}
			if IsWin(fb) != equalColors(guess, secret) {
				t.Fatalf("Score(%v, %v): IsWin = %v", guess, secret, IsWin(fb))
			}
		}
	}
}

func TestIsWin(t *testing.T) {
	t.Parallel()

	assert.False(t, IsWin(nil))
	assert.False(t, IsWin([]Feedback{FeedbackBlack, FeedbackWhite}))
	assert.True(t, IsWin([]Feedback{FeedbackBlack, FeedbackBlack}))
}

func allCodes(pegs, colors int) [][]Color {
	codes := [][]Color{{}}
	for range pegs {
		var next [][]Color
		for _, prefix := range codes {
			for c := 1; c <= colors; c++ {
				code := append(append([]Color(nil), prefix...), Color(c))
				next = append(next, code)
			}
		}
		codes = next
	}
	return codes
}
