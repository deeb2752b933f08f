// internal/store/memory.go
//
// In-memory implementation of the round Store interface. Ephemeral
// session storage for active rounds; durable history lives in SQLite.
//
// Characteristics:
//   - Stores *game.Round objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/zak213934-a11y/hangman/internal/game"
)

// ErrNotFound is returned by Get and Delete for unknown round IDs.
var ErrNotFound = errors.New("store: round not found")

// Store defines the persistence interface for round sessions.
type Store interface {
	// Save persists or updates a round.
	Save(ctx context.Context, r *game.Round) error

	// Get retrieves a round by ID, ErrNotFound if missing.
	Get(ctx context.Context, id string) (*game.Round, error)

	// Delete drops a finished round.
	Delete(ctx context.Context, id string) error
}

type memory struct {
	mu     sync.RWMutex
	rounds map[string]*game.Round
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

func (m *memory) Save(ctx context.Context, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rounds[id]; !ok {
		return ErrNotFound
	}
	delete(m.rounds, id)
	return nil
}
