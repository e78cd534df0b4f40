// Package creation provides the storage interface and types for
// user-created pokemon
package creation

//go:generate mockgen -destination=mock/mock_repository.go -package=creationmock github.com/pokeforge/pokeforge-api/internal/repositories/creation Repository

import (
	"context"

	"github.com/pokeforge/pokeforge-api/internal/entities/pokemon"
)

// Repository defines the storage interface for created pokemon.
// Records are write-once: there is no update or delete.
type Repository interface {
	// Insert stores a new creation; the store assigns ID and CreatedAt
	Insert(ctx context.Context, input *InsertInput) (*InsertOutput, error)

	// List returns all creations ordered by creation time descending
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// InsertInput defines the request for storing a creation.
// ID and CreatedAt on the given pokemon are ignored.
type InsertInput struct {
	Pokemon *pokemon.CustomPokemon
}

// InsertOutput defines the response for storing a creation
type InsertOutput struct {
	// Pokemon is the stored record with ID and CreatedAt assigned
	Pokemon *pokemon.CustomPokemon
}

// ListInput defines the request for listing creations
type ListInput struct{}

// ListOutput defines the response for listing creations
type ListOutput struct {
	Pokemon []*pokemon.CustomPokemon
}
