// cmd/hangman/main.go
//
// Console variant: one interactive round per invocation.
//
// Flags:
//   -words path     optional word-list file (embedded list if unset)
//   -difficulty d   easy | medium | hard (default medium)
//   -attempts n     override the attempt budget from the difficulty
//   -seed n         seed word and hint selection (deterministic runs)
//
// Exit status: 0 when a round completes (won or lost), 2 on bad
// configuration (missing word file, empty list, bad attempts).

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/zak213934-a11y/hangman/internal/game"
	"github.com/zak213934-a11y/hangman/internal/words"
)

// gallows holds the seven drawing stages, empty frame through full figure.
var gallows = []string{
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// stageIndex maps wrong-guess progress onto the gallows stages so any
// attempt budget ends on the full figure at the final wrong guess.
func stageIndex(wrong, maxAttempts int) int {
	if maxAttempts <= 0 {
		return len(gallows) - 1
	}
	idx := wrong * (len(gallows) - 1) / maxAttempts
	if idx >= len(gallows) {
		idx = len(gallows) - 1
	}
	return idx
}

func main() {
	var (
		wordsPath  = flag.String("words", "", "path to a word-list file (one word per line)")
		difficulty = flag.String("difficulty", "medium", "easy, medium, or hard")
		attempts   = flag.Int("attempts", 0, "override the attempt budget (must be > 0)")
		seed       = flag.Int64("seed", 0, "random seed (0 means time-based)")
	)
	flag.Parse()

	// -attempts 0 must fail loudly rather than silently falling back to
	// the difficulty budget, so track whether the flag was actually set.
	attemptsSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "attempts" {
			attemptsSet = true
		}
	})
	if err := checkAttemptsOverride(attemptsSet, *attempts); err != nil {
		fail("%v", err)
	}

	diff := game.Difficulty(strings.ToLower(*difficulty))
	if _, ok := game.SettingsFor(diff); !ok {
		fail("unknown difficulty %q (want easy, medium, or hard)", *difficulty)
	}

	src := words.Embedded()
	if *wordsPath != "" {
		var err error
		src, err = words.Load(*wordsPath)
		if err != nil {
			fail("%v", err)
		}
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	secret := src.ForDifficulty(diff).Pick(rng)
	var (
		r   *game.Round
		err error
	)
	if attemptsSet {
		r, err = game.New(secret, *attempts)
	} else {
		r, err = game.NewForDifficulty(secret, diff)
	}
	if err != nil {
		fail("cannot start round: %v", err)
	}
	r.SetRand(rng)

	if err := playRound(r, os.Stdin, os.Stdout); err != nil {
		fail("%v", err)
	}
}

// checkAttemptsOverride rejects an explicitly set -attempts value that
// is not positive. An unset flag keeps the difficulty's budget.
func checkAttemptsOverride(set bool, n int) error {
	if set && n <= 0 {
		return fmt.Errorf("attempts must be a positive number, got %d", n)
	}
	return nil
}

// playRound drives one round over the given streams. Returns an error
// only when input ends before the round does.
func playRound(r *game.Round, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Hangman — %s, %d wrong guesses allowed. Type a letter, or !hint.\n",
		r.Difficulty, r.MaxAttempts)

	sc := bufio.NewScanner(in)
	for !r.IsOver() {
		printBoard(r, out)
		fmt.Fprint(out, "guess: ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return fmt.Errorf("input closed before the round finished")
		}
		line := strings.TrimSpace(sc.Text())

		if line == "!hint" {
			if r.Hint() {
				fmt.Fprintf(out, "hint used, %d left\n", r.HintsLeft())
			} else {
				fmt.Fprintln(out, "no hints left")
			}
			continue
		}

		correct, err := r.Guess(line)
		switch {
		case err != nil:
			fmt.Fprintln(out, "enter a single letter you haven't tried yet")
		case correct:
			fmt.Fprintln(out, "correct!")
		default:
			fmt.Fprintf(out, "nope — %d attempts left\n", r.RemainingAttempts())
		}
	}

	printBoard(r, out)
	if r.IsWon() {
		fmt.Fprintf(out, "You won! The word was %q. Score: %d\n", r.Secret, r.Score())
	} else {
		fmt.Fprintf(out, "You lost. The word was %q.\n", r.Secret)
	}
	return nil
}

func printBoard(r *game.Round, out io.Writer) {
	fmt.Fprintln(out, gallows[stageIndex(r.WrongCount(), r.MaxAttempts)])
	fmt.Fprintf(out, "word: %s\n", strings.Join(r.MaskedWord(), " "))
	if wrong := r.WrongLetters(); len(wrong) > 0 {
		fmt.Fprintf(out, "wrong: %s\n", strings.Join(wrong, ", "))
	}
	fmt.Fprintf(out, "attempts left: %d | hints left: %d\n", r.RemainingAttempts(), r.HintsLeft())
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "hangman: "+format+"\n", args...)
	os.Exit(2)
}
