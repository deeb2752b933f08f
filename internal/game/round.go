// internal/game/round.go
//
// Core round engine for a single Hangman session.
// Responsibilities:
//   - Construct rounds from a secret word and an attempt budget
//     (explicit or derived from a difficulty level).
//   - Validate and apply single-letter guesses.
//   - Reveal hint positions from an injectable random source.
//   - Track state transitions: playing → won/lost.
//   - Compute the derived score on demand.
//
// Notes:
//   - Candidate words are provided by the words package; this package
//     never touches I/O.
//   - Guesses follow the strict contract: invalid or repeated input is
//     an ErrInvalidGuess and never mutates state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"math"
	mrand "math/rand"
	"sort"
	"strings"
	"time"
)

// New constructs a round from a secret word and an explicit attempt
// budget. The word is lowercased; difficulty defaults to Medium for
// scoring purposes.
func New(secret string, maxAttempts int) (*Round, error) {
	return newRound(secret, maxAttempts, Medium)
}

// NewForDifficulty constructs a round whose attempt budget comes from
// the difficulty settings table.
func NewForDifficulty(secret string, d Difficulty) (*Round, error) {
	s, ok := SettingsFor(d)
	if !ok {
		return nil, ErrInvalidInput
	}
	return newRound(secret, s.MaxAttempts, d)
}

func newRound(secret string, maxAttempts int, d Difficulty) (*Round, error) {
	secret = strings.ToLower(strings.TrimSpace(secret))
	if secret == "" || !isAlpha(secret) || maxAttempts <= 0 {
		return nil, ErrInvalidInput
	}
	return &Round{
		ID:          randomID(),
		Secret:      secret,
		Difficulty:  d,
		MaxAttempts: maxAttempts,
		correct:     make(map[rune]struct{}),
		wrong:       make(map[rune]struct{}),
		revealed:    make(map[int]struct{}),
		rng:         mrand.New(mrand.NewSource(time.Now().UnixNano())),
	}, nil
}

// SetRand replaces the random source used for hint selection.
// Tests inject a seeded source for determinism.
func (r *Round) SetRand(rng *mrand.Rand) {
	if rng != nil {
		r.rng = rng
	}
}

// Guess applies a single-letter guess, reporting whether the letter
// occurs in the secret word.
//
// Validation rules:
//   - Round must not be over.
//   - Input must normalize to exactly one letter a–z.
//   - The letter must not have been guessed before.
//
// On ErrInvalidGuess no state changes.
func (r *Round) Guess(letter string) (bool, error) {
	if r.IsOver() {
		return false, ErrInvalidGuess
	}
	letter = strings.ToLower(strings.TrimSpace(letter))
	if len(letter) != 1 || !isAlpha(letter) {
		return false, ErrInvalidGuess
	}
	c := rune(letter[0])
	if _, dup := r.correct[c]; dup {
		return false, ErrInvalidGuess
	}
	if _, dup := r.wrong[c]; dup {
		return false, ErrInvalidGuess
	}

	if strings.ContainsRune(r.Secret, c) {
		r.correct[c] = struct{}{}
		return true, nil
	}
	r.wrong[c] = struct{}{}
	return false, nil
}

// Hint reveals one unrevealed letter position chosen uniformly at
// random and charges a hint. Reports false without changing state when
// the cap is reached or nothing is left to reveal.
func (r *Round) Hint() bool {
	if r.hints >= MaxHints || r.IsOver() {
		return false
	}
	var open []int
	for i, c := range r.Secret {
		if _, ok := r.correct[c]; ok {
			continue
		}
		if _, ok := r.revealed[i]; ok {
			continue
		}
		open = append(open, i)
	}
	if len(open) == 0 {
		return false
	}
	i := open[r.rng.Intn(len(open))]
	r.revealed[i] = struct{}{}
	r.correct[rune(r.Secret[i])] = struct{}{}
	r.hints++
	return true
}

// MaskedWord renders the secret with unguessed letters replaced by "_",
// one element per position, in secret-word order.
func (r *Round) MaskedWord() []string {
	out := make([]string, 0, len(r.Secret))
	for i, c := range r.Secret {
		if _, ok := r.correct[c]; ok {
			out = append(out, string(c))
			continue
		}
		if _, ok := r.revealed[i]; ok {
			out = append(out, string(c))
			continue
		}
		out = append(out, "_")
	}
	return out
}

// RemainingAttempts is the attempt budget minus wrong guesses so far.
func (r *Round) RemainingAttempts() int { return r.MaxAttempts - len(r.wrong) }

// IsWon reports whether every distinct letter of the secret is guessed.
func (r *Round) IsWon() bool {
	for _, c := range r.Secret {
		if _, ok := r.correct[c]; !ok {
			return false
		}
	}
	return true
}

// IsLost reports whether the attempt budget is exhausted.
func (r *Round) IsLost() bool { return r.RemainingAttempts() <= 0 }

// IsOver reports whether the round finished either way.
func (r *Round) IsOver() bool { return r.IsWon() || r.IsLost() }

// State reports a coarse string representation of the round state.
func (r *Round) State() string {
	switch {
	case r.IsWon():
		return "won"
	case r.IsLost():
		return "lost"
	default:
		return "playing"
	}
}

// WrongLetters returns the incorrect guesses in alphabetical order.
func (r *Round) WrongLetters() []string {
	out := make([]string, 0, len(r.wrong))
	for c := range r.wrong {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}

// WrongCount is len(WrongLetters) without the allocation.
func (r *Round) WrongCount() int { return len(r.wrong) }

// HintsUsed and HintsLeft report hint consumption against the cap.
func (r *Round) HintsUsed() int { return r.hints }
func (r *Round) HintsLeft() int { return MaxHints - r.hints }

// Score computes the derived round score:
//
//	floor((len(secret)*10 + remaining*5 − hints*10) × multiplier)
//
// Recomputed on demand, never stored.
func (r *Round) Score() int {
	base := float64(len(r.Secret) * 10)
	bonus := float64(r.RemainingAttempts() * 5)
	penalty := float64(r.hints * 10)
	mult := 1.5
	if s, ok := SettingsFor(r.Difficulty); ok {
		mult = s.Multiplier
	}
	return int(math.Floor((base + bonus - penalty) * mult))
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
