// internal/game/types.go
//
// Core type definitions for the Hangman round engine.
// Defines:
//   - Difficulty: the three playable levels and their settings.
//   - Round: state for a single in-progress or finished round.
//   - Sentinel errors shared by callers (HTTP handlers, CLI loop).

package game

import (
	"errors"
	"math/rand"
)

// Difficulty selects the word length range, attempt budget, and score
// multiplier for a round.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Settings describes one difficulty level.
type Settings struct {
	MinLen      int     `json:"minLen"`      // shortest word drawn for this level
	MaxLen      int     `json:"maxLen"`      // longest word drawn for this level
	MaxAttempts int     `json:"maxAttempts"` // wrong guesses allowed before loss
	HintCost    int     `json:"hintCost"`    // relative cost shown to clients
	Multiplier  float64 `json:"multiplier"`  // score multiplier
}

var settingsTable = map[Difficulty]Settings{
	Easy:   {MinLen: 4, MaxLen: 6, MaxAttempts: 8, HintCost: 1, Multiplier: 1.0},
	Medium: {MinLen: 6, MaxLen: 9, MaxAttempts: 7, HintCost: 2, Multiplier: 1.5},
	Hard:   {MinLen: 9, MaxLen: 15, MaxAttempts: 6, HintCost: 3, Multiplier: 2.0},
}

// SettingsFor returns the settings for d, reporting false for an
// unknown difficulty.
func SettingsFor(d Difficulty) (Settings, bool) {
	s, ok := settingsTable[d]
	return s, ok
}

// Difficulties lists the playable levels in ascending order.
func Difficulties() []Difficulty { return []Difficulty{Easy, Medium, Hard} }

var (
	// ErrInvalidInput rejects construction with a malformed secret word
	// or a non-positive attempt budget.
	ErrInvalidInput = errors.New("game: secret word must be alphabetic and attempts positive")

	// ErrInvalidGuess rejects a guess that is not a single letter, was
	// already tried, or arrives after the round is over.
	ErrInvalidGuess = errors.New("game: guess must be a single unused letter")
)

// MaxHints caps auto-reveals per round.
const MaxHints = 3

// Round holds the state of a single Hangman round.
// The secret word and attempt budget are fixed at construction; every
// operation is a synchronous in-memory transition owned by one caller.
type Round struct {
	ID          string     // unique round identifier (random hex string)
	Secret      string     // the secret word (always lowercase)
	Difficulty  Difficulty // level the round was created for
	MaxAttempts int        // wrong guesses allowed

	correct  map[rune]struct{} // guessed letters present in Secret
	wrong    map[rune]struct{} // guessed letters absent from Secret
	revealed map[int]struct{}  // positions auto-revealed by hints
	hints    int               // hints consumed so far

	rng *rand.Rand // hint position selection; injectable for tests
}
