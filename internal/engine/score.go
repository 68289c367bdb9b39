package engine

// Feedback is one feedback peg.
type Feedback uint8

const (
	FeedbackNone  Feedback = iota // unused slot
	FeedbackBlack                 // right color, right position
	FeedbackWhite                 // right color, wrong position
)

// String returns a short name for the feedback peg.
func (f Feedback) String() string {
	switch f {
	case FeedbackBlack:
		return "Black"
	case FeedbackWhite:
		return "White"
	default:
		return "None"
	}
}

// Score computes the feedback pegs for guess against secret.
//
// The result has len(guess) entries grouped Black first, then White, then
// None padding. Exact matches are resolved in a first pass and consumed on
// both sides before any color match is considered, so a peg is never counted
// twice. In the second pass each remaining guess peg claims the lowest-index
// unconsumed secret peg of the same color.
func Score(guess, secret []Color) []Feedback {
	n := len(guess)
	fb := make([]Feedback, n)
	guessUsed := make([]bool, n)
	secretUsed := make([]bool, len(secret))
	k := 0

	// Exact matches.
	for i := 0; i < n && i < len(secret); i++ {
		if guess[i] == secret[i] {
			fb[k] = FeedbackBlack
			k++
			guessUsed[i] = true
			secretUsed[i] = true
		}
	}

	// Color matches among the leftovers.
	for i := 0; i < n; i++ {
		if guessUsed[i] {
			continue
		}
		for j := range secret {
			if !secretUsed[j] && guess[i] == secret[j] {
				fb[k] = FeedbackWhite
				k++
				secretUsed[j] = true
				break
			}
		}
	}

	return fb
}

// Tally counts the black and white pegs in fb.
func Tally(fb []Feedback) (black, white int) {
	for _, f := range fb {
		switch f {
		case FeedbackBlack:
			black++
		case FeedbackWhite:
			white++
		}
	}
	return black, white
}

// IsWin reports whether fb is a full set of black pegs.
func IsWin(fb []Feedback) bool {
	if len(fb) == 0 {
		return false
	}
	black, _ := Tally(fb)
	return black == len(fb)
}
