package game

import "math"

// Config holds gameplay constants. There is no runtime configuration; the
// board, pacing, and scoring are fixed here.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// TPS is the tick rate; simulation and rendering both run at this rate
	TPS int

	// NumFood is the number of food items kept on the board
	NumFood int

	// MinPoison is the poison count at score zero
	MinPoison int

	// Lives is the number of lives at the start of a game
	Lives int

	// StartSpeed is the ant's speed at game start, in pixels per tick
	StartSpeed float64

	// TurnRate scales the ant's maximum turn per tick: speed * TurnRate radians
	TurnRate float64

	// EdgePadding is the spawn margin kept from the board edges
	EdgePadding float64

	// AntClearance is the minimum spawn distance from the ant
	AntClearance float64

	// ItemClearance is the minimum spawn distance from every other item
	ItemClearance float64

	// EatScore is the score awarded per food item
	EatScore int

	// SpeedStep: every SpeedStep points the ant speeds up by one
	SpeedStep int

	// PoisonStep: every PoisonStep points one poison item is added
	PoisonStep int

	// PoisonScoreCap stops score-triggered poison growth at this score
	PoisonScoreCap int
}

// DefaultConfig returns the game as it is meant to be played.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    800,
		ScreenHeight:   600,
		TPS:            30,
		NumFood:        4,
		MinPoison:      6,
		Lives:          3,
		StartSpeed:     5,
		TurnRate:       math.Pi / 75,
		EdgePadding:    50,
		AntClearance:   200,
		ItemClearance:  50,
		EatScore:       100,
		SpeedStep:      1000,
		PoisonStep:     5000,
		PoisonScoreCap: 30000,
	}
}
