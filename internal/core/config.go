package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome describes how a finished game ended.
type Outcome struct {
	Won        bool
	Attempts   int
	Elapsed    time.Duration
	LossReason string // Empty when won
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool    // Whether the game has ended (won or lost)
	Paused   bool    // Whether the clock is stopped by the player
	Outcome  Outcome // Valid once GameOver is set
}

// StepResult is returned by Game.Step() after each platform tick.
type StepResult struct {
	State GameState
	// Exit is set when the game asks the platform to leave it,
	// e.g. cancel pressed while already paused.
	Exit bool
}
