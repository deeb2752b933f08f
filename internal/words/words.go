// internal/words/words.go
//
// Word source for the round engine.
//
// Responsibilities:
//   - Load candidate words from a caller-provided file or fall back to
//     the embedded default list.
//   - Normalize entries (trim, lowercase, alphabetic only, len >= 2)
//     and skip blanks and # comments.
//   - Subset by length range for a difficulty level.
//   - Pick uniformly at random from an injected source.
//
// A Source is an explicit value handed to callers at construction; this
// package keeps no mutable state of its own.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/zak213934-a11y/hangman/internal/game"
)

//go:embed default_words.txt
var embeddedWords string

var (
	// ErrMissingFile wraps a word-list path that does not exist.
	ErrMissingFile = errors.New("words: word list file not found")

	// ErrEmptySource means no valid candidate words were available.
	ErrEmptySource = errors.New("words: no candidate words")
)

// Source is a finite non-empty ordered sequence of candidate words.
type Source struct {
	words []string
}

// Load reads one word per line from path. Returns ErrMissingFile when
// the file does not exist and ErrEmptySource when nothing valid remains
// after normalization.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalize(sc.Text()); ok {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}
	return &Source{words: out}, nil
}

// Embedded returns the built-in default list. It covers every
// difficulty length bucket so the binaries run without configuration.
func Embedded() *Source {
	var out []string
	for _, line := range strings.Split(embeddedWords, "\n") {
		if w, ok := normalize(line); ok {
			out = append(out, w)
		}
	}
	return &Source{words: out}
}

// normalize lowercases and trims a line, rejecting blanks, comments,
// and anything non-alphabetic or shorter than two letters.
func normalize(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if w == "" || strings.HasPrefix(w, "#") {
		return "", false
	}
	if len(w) < 2 || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// FilterLen returns the subset of words with min <= len <= max. When
// the subset would be empty the full list is returned instead, so a
// sparse custom list still yields a playable round.
func (s *Source) FilterLen(min, max int) *Source {
	var out []string
	for _, w := range s.words {
		if len(w) >= min && len(w) <= max {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return s
	}
	return &Source{words: out}
}

// ForDifficulty subsets by the length range of a difficulty level.
// Unknown difficulties return the source unchanged.
func (s *Source) ForDifficulty(d game.Difficulty) *Source {
	set, ok := game.SettingsFor(d)
	if !ok {
		return s
	}
	return s.FilterLen(set.MinLen, set.MaxLen)
}

// Pick chooses a word uniformly at random from rng.
func (s *Source) Pick(rng *rand.Rand) string {
	return s.words[rng.Intn(len(s.words))]
}

// At returns the i-th candidate word. The order is stable for a given
// underlying list, which the daily mode relies on for deterministic
// date-based selection.
func (s *Source) At(i int) string { return s.words[i] }

// Len reports the number of candidate words.
func (s *Source) Len() int { return len(s.words) }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
