package store

import (
	"context"
	"errors"
	"testing"

	"github.com/zak213934-a11y/hangman/internal/game"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	r, err := game.New("code", 6)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Save(ctx, r); err != nil {
		t.Fatal(err)
	}
	got, err := st.Get(ctx, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != r {
		t.Error("Get returned a different round")
	}
	if err := st.Delete(ctx, r.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Get(ctx, r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound after delete, got %v", err)
	}
	if err := st.Delete(ctx, r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete: want ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	if _, err := NewMemoryStore().Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}
