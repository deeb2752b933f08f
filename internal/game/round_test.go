package game

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func mustRound(t *testing.T, secret string, attempts int) *Round {
	t.Helper()
	r, err := New(secret, attempts)
	if err != nil {
		t.Fatalf("New(%q, %d): %v", secret, attempts, err)
	}
	return r
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name     string
		secret   string
		attempts int
		wantErr  bool
	}{
		{"ok", "code", 6, false},
		{"uppercase normalized", "CoDe", 6, false},
		{"empty word", "", 6, true},
		{"digits", "c0de", 6, true},
		{"punctuation", "co-de", 6, true},
		{"zero attempts", "code", 0, true},
		{"negative attempts", "code", -1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := New(tc.secret, tc.attempts)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("want ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Secret != strings.ToLower(tc.secret) {
				t.Errorf("secret not lowercased: %q", r.Secret)
			}
		})
	}
}

func TestFreshRound(t *testing.T) {
	r := mustRound(t, "code", 6)
	if got := r.RemainingAttempts(); got != 6 {
		t.Errorf("RemainingAttempts = %d, want 6", got)
	}
	if r.IsOver() {
		t.Error("fresh round reports over")
	}
	if len(r.WrongLetters()) != 0 {
		t.Errorf("fresh round has wrong letters: %v", r.WrongLetters())
	}
	if got := strings.Join(r.MaskedWord(), ""); got != "____" {
		t.Errorf("MaskedWord = %q, want ____", got)
	}
}

func TestGuessCorrectKeepsAttempts(t *testing.T) {
	r := mustRound(t, "code", 6)
	ok, err := r.Guess("c")
	if err != nil || !ok {
		t.Fatalf("Guess(c) = %v, %v; want correct", ok, err)
	}
	if got := r.RemainingAttempts(); got != 6 {
		t.Errorf("correct guess changed attempts: %d", got)
	}
	want := []string{"c", "_", "_", "_"}
	if got := r.MaskedWord(); strings.Join(got, "") != strings.Join(want, "") {
		t.Errorf("MaskedWord = %v, want %v", got, want)
	}
}

func TestGuessIncorrectBurnsOneAttempt(t *testing.T) {
	r := mustRound(t, "code", 6)
	ok, err := r.Guess("z")
	if err != nil || ok {
		t.Fatalf("Guess(z) = %v, %v; want incorrect", ok, err)
	}
	if got := r.RemainingAttempts(); got != 5 {
		t.Errorf("RemainingAttempts = %d, want 5", got)
	}
	if got := r.WrongLetters(); len(got) != 1 || got[0] != "z" {
		t.Errorf("WrongLetters = %v, want [z]", got)
	}
}

func TestGuessRejectsInvalidAndRepeats(t *testing.T) {
	r := mustRound(t, "pointer", 7)
	for _, bad := range []string{"", "ab", "1", "!", "abc"} {
		if _, err := r.Guess(bad); !errors.Is(err, ErrInvalidGuess) {
			t.Errorf("Guess(%q): want ErrInvalidGuess, got %v", bad, err)
		}
	}
	if _, err := r.Guess("p"); err != nil {
		t.Fatalf("Guess(p): %v", err)
	}
	if _, err := r.Guess("P"); !errors.Is(err, ErrInvalidGuess) {
		t.Errorf("repeat guess: want ErrInvalidGuess, got %v", err)
	}
	if _, err := r.Guess("z"); err != nil {
		t.Fatalf("Guess(z): %v", err)
	}
	if _, err := r.Guess("z"); !errors.Is(err, ErrInvalidGuess) {
		t.Errorf("repeat wrong guess: want ErrInvalidGuess, got %v", err)
	}
	// Rejections must not have touched state.
	if got := r.RemainingAttempts(); got != 6 {
		t.Errorf("RemainingAttempts = %d, want 6", got)
	}
	if got := r.WrongLetters(); len(got) != 1 {
		t.Errorf("WrongLetters = %v, want single z", got)
	}
}

func TestWinFlow(t *testing.T) {
	r := mustRound(t, "code", 6)
	for _, l := range []string{"c", "o", "d", "e"} {
		if ok, err := r.Guess(l); err != nil || !ok {
			t.Fatalf("Guess(%s) = %v, %v", l, ok, err)
		}
	}
	if !r.IsWon() || r.IsLost() || !r.IsOver() {
		t.Errorf("state = won:%v lost:%v over:%v", r.IsWon(), r.IsLost(), r.IsOver())
	}
	if got := r.RemainingAttempts(); got != 6 {
		t.Errorf("RemainingAttempts = %d, want 6", got)
	}
	if got := r.State(); got != "won" {
		t.Errorf("State = %q, want won", got)
	}
}

func TestLossFlow(t *testing.T) {
	r := mustRound(t, "code", 1)
	if ok, _ := r.Guess("z"); ok {
		t.Fatal("z should be incorrect")
	}
	if got := r.RemainingAttempts(); got != 0 {
		t.Errorf("RemainingAttempts = %d, want 0", got)
	}
	if !r.IsLost() || r.IsWon() {
		t.Errorf("state = won:%v lost:%v", r.IsWon(), r.IsLost())
	}
	if got := r.State(); got != "lost" {
		t.Errorf("State = %q, want lost", got)
	}
	// Finished rounds refuse further guesses.
	if _, err := r.Guess("a"); !errors.Is(err, ErrInvalidGuess) {
		t.Errorf("guess after loss: want ErrInvalidGuess, got %v", err)
	}
}

func TestRepeatedSecretLetters(t *testing.T) {
	r := mustRound(t, "banana", 7)
	if ok, err := r.Guess("a"); err != nil || !ok {
		t.Fatalf("Guess(a) = %v, %v", ok, err)
	}
	want := "_a_a_a"
	if got := strings.Join(r.MaskedWord(), ""); got != want {
		t.Errorf("MaskedWord = %q, want %q", got, want)
	}
	if ok, _ := r.Guess("b"); !ok {
		t.Fatal("b should be correct")
	}
	if ok, _ := r.Guess("n"); !ok {
		t.Fatal("n should be correct")
	}
	if !r.IsWon() {
		t.Error("round should be won after b, a, n")
	}
}

func TestHintRevealsAndCaps(t *testing.T) {
	r := mustRound(t, "banana", 8)
	r.SetRand(rand.New(rand.NewSource(1)))

	if !r.Hint() {
		t.Fatal("first hint refused")
	}
	if r.HintsUsed() != 1 || r.HintsLeft() != MaxHints-1 {
		t.Errorf("hints used/left = %d/%d", r.HintsUsed(), r.HintsLeft())
	}
	masked := strings.Join(r.MaskedWord(), "")
	if !strings.ContainsAny(masked, "ban") {
		t.Errorf("hint revealed nothing: %q", masked)
	}

	// banana has only three distinct letters, so the next two hints win
	// the round and further hints are no-ops.
	r.Hint()
	r.Hint()
	if r.Hint() {
		t.Error("hint allowed past cap or after round over")
	}
	if r.HintsUsed() > MaxHints {
		t.Errorf("HintsUsed = %d exceeds cap", r.HintsUsed())
	}
}

func TestHintDeterministicWithSeed(t *testing.T) {
	first := func() string {
		r := mustRound(t, "encyclopedia", 7)
		r.SetRand(rand.New(rand.NewSource(42)))
		r.Hint()
		return strings.Join(r.MaskedWord(), "")
	}
	if a, b := first(), first(); a != b {
		t.Errorf("seeded hints diverged: %q vs %q", a, b)
	}
}

func TestHintLowersScore(t *testing.T) {
	r, err := NewForDifficulty("banana", Easy)
	if err != nil {
		t.Fatal(err)
	}
	r.SetRand(rand.New(rand.NewSource(7)))
	before := r.Score()
	if !r.Hint() {
		t.Fatal("hint refused")
	}
	if after := r.Score(); after >= before {
		t.Errorf("score did not drop after hint: %d -> %d", before, after)
	}
}

func TestScoreExamples(t *testing.T) {
	// quiz on hard: base 40, bonus 6*5=30, no hints, multiplier 2.0.
	r, err := NewForDifficulty("quiz", Hard)
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range []string{"q", "u", "i", "z"} {
		if _, err := r.Guess(l); err != nil {
			t.Fatalf("Guess(%s): %v", l, err)
		}
	}
	if got := r.Score(); got != 140 {
		t.Errorf("Score = %d, want 140", got)
	}
}

func TestNewForDifficultyBudgets(t *testing.T) {
	for _, tc := range []struct {
		d    Difficulty
		want int
	}{{Easy, 8}, {Medium, 7}, {Hard, 6}} {
		r, err := NewForDifficulty("encyclopedia", tc.d)
		if err != nil {
			t.Fatalf("%s: %v", tc.d, err)
		}
		if r.MaxAttempts != tc.want {
			t.Errorf("%s budget = %d, want %d", tc.d, r.MaxAttempts, tc.want)
		}
	}
	if _, err := NewForDifficulty("word", Difficulty("brutal")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown difficulty: want ErrInvalidInput, got %v", err)
	}
}
