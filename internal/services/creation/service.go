// Package creation implements the validation gate and persistence
// orchestration for user-created pokemon
package creation

//go:generate mockgen -destination=mock/mock_service.go -package=forgemock github.com/pokeforge/pokeforge-api/internal/services/creation Service

import (
	"context"

	"github.com/pokeforge/pokeforge-api/internal/entities/pokemon"
	"github.com/pokeforge/pokeforge-api/internal/errors"
	creationrepo "github.com/pokeforge/pokeforge-api/internal/repositories/creation"
	"github.com/pokeforge/pokeforge-api/internal/services/catalog"
)

// Service defines the interface for creating and listing custom pokemon
type Service interface {
	// CreatePokemon validates a creation request, cross-checks learned
	// moves against the pokemon's learnset, resolves the sprite, and
	// persists the result. Validation has no hidden randomness: the
	// same valid input always produces the same stored record (modulo
	// store-assigned id and timestamp).
	CreatePokemon(ctx context.Context, input *CreatePokemonInput) (*CreatePokemonOutput, error)

	// ListCreated returns all stored creations, newest first. Storage
	// failures degrade to an empty list rather than an error.
	ListCreated(ctx context.Context, input *ListCreatedInput) (*ListCreatedOutput, error)
}

// MoveInput is one chosen move in a creation request
type MoveInput struct {
	Name          string `json:"name"`
	LocalizedName string `json:"localizedName,omitempty"`
	Kind          string `json:"kind"`
}

// CreatePokemonInput defines a creation request
type CreatePokemonInput struct {
	PokemonID     int         `json:"pokemonId"`
	Name          string      `json:"name"`
	LocalizedName string      `json:"localizedName,omitempty"`
	Nickname      string      `json:"nickname,omitempty"`
	Gender        string      `json:"gender"`
	IsShiny       bool        `json:"isShiny"`
	Moves         []MoveInput `json:"moves"`
	CreatorName   string      `json:"creatorName"`
	SpriteURL     string      `json:"spriteUrl,omitempty"`
}

// CreatePokemonOutput defines the response for a successful creation
type CreatePokemonOutput struct {
	Pokemon *pokemon.CustomPokemon
}

// ListCreatedInput defines the request for listing creations
type ListCreatedInput struct{}

// ListCreatedOutput defines the response for listing creations
type ListCreatedOutput struct {
	Pokemon []*pokemon.CustomPokemon
}

// Config holds the dependencies for the creation service
type Config struct {
	Catalog    catalog.Service
	Repository creationrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog catalog.Service
	repo    creationrepo.Repository
}

// New creates a new creation service with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog: cfg.Catalog,
		repo:    cfg.Repository,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)
