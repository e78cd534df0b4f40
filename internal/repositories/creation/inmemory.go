package creation

import (
	"context"
	"sort"
	"sync"

	"github.com/pokeforge/pokeforge-api/internal/entities/pokemon"
	"github.com/pokeforge/pokeforge-api/internal/errors"
	"github.com/pokeforge/pokeforge-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage.
// Used for development without a database and in tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	store  []*pokemon.CustomPokemon
	nextID int64
	clock  clock.Clock
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		nextID: 1,
		clock:  clk,
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Insert stores a new creation; the store assigns ID and CreatedAt
func (r *InMemoryRepository) Insert(ctx context.Context, input *InsertInput) (*InsertOutput, error) {
	if input == nil || input.Pokemon == nil {
		return nil, errors.InvalidArgument("pokemon is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *input.Pokemon
	stored.ID = r.nextID
	stored.CreatedAt = r.clock.Now()
	r.nextID++

	r.store = append(r.store, &stored)

	// Return a copy to prevent external modification
	result := stored
	return &InsertOutput{Pokemon: &result}, nil
}

// List returns all creations ordered by creation time descending
func (r *InMemoryRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*pokemon.CustomPokemon, 0, len(r.store))
	for _, p := range r.store {
		record := *p
		out = append(out, &record)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return &ListOutput{Pokemon: out}, nil
}
