package creation

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pokeforge/pokeforge-api/internal/entities/pokemon"
	"github.com/pokeforge/pokeforge-api/internal/errors"
	creationrepo "github.com/pokeforge/pokeforge-api/internal/repositories/creation"
)

const maxNameLength = 100

// CreatePokemon validates, cross-checks, enriches, and persists a creation
func (o *orchestrator) CreatePokemon(ctx context.Context, input *CreatePokemonInput) (*CreatePokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	// Consistency check: the pokemon must exist upstream, and every
	// learned move must be in its learnset
	detail, err := o.catalog.GetPokemonDetail(ctx, input.PokemonID)
	if err != nil {
		return nil, err
	}

	if err := validateLearnedMoves(input.Moves, detail); err != nil {
		return nil, err
	}

	record := &pokemon.CustomPokemon{
		PokemonID:     input.PokemonID,
		Name:          input.Name,
		LocalizedName: input.LocalizedName,
		Nickname:      input.Nickname,
		Gender:        pokemon.Gender(input.Gender),
		IsShiny:       input.IsShiny,
		Moves:         toChosenMoves(input.Moves),
		CreatorName:   input.CreatorName,
		SpriteURL:     resolveSpriteURL(detail, input.IsShiny),
	}

	out, err := o.repo.Insert(ctx, &creationrepo.InsertInput{Pokemon: record})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store pokemon")
	}

	slog.Info("Stored custom pokemon",
		"id", out.Pokemon.ID,
		"pokemon_id", out.Pokemon.PokemonID,
		"creator", out.Pokemon.CreatorName,
		"shiny", out.Pokemon.IsShiny)

	return &CreatePokemonOutput{Pokemon: out.Pokemon}, nil
}

// ListCreated returns all stored creations, newest first. The read path
// degrades: a storage failure is logged and yields an empty list.
func (o *orchestrator) ListCreated(ctx context.Context, _ *ListCreatedInput) (*ListCreatedOutput, error) {
	out, err := o.repo.List(ctx, &creationrepo.ListInput{})
	if err != nil {
		slog.Error("Failed to list created pokemon", "error", err)
		return &ListCreatedOutput{Pokemon: []*pokemon.CustomPokemon{}}, nil
	}

	return &ListCreatedOutput{Pokemon: out.Pokemon}, nil
}

// validateCreateInput runs the structural checks; every failing field is
// reported in one pass
func validateCreateInput(input *CreatePokemonInput) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("pokemonId", input.PokemonID, pokemon.MinID, pokemon.MaxID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("nickname", input.Nickname, maxNameLength, vb)
	errors.ValidateEnum("gender", input.Gender, pokemon.Genders(), vb)

	if len(input.Moves) != pokemon.MoveCount {
		vb.Fieldf("moves", "exactly %d moves are required", pokemon.MoveCount)
	}
	for i, m := range input.Moves {
		errors.ValidateRequired(fmt.Sprintf("moves[%d].name", i), m.Name, vb)
		errors.ValidateEnum(fmt.Sprintf("moves[%d].kind", i), m.Kind, pokemon.MoveKinds(), vb)
	}

	errors.ValidateRequired("creatorName", input.CreatorName, vb)
	errors.ValidateMaxLength("creatorName", input.CreatorName, maxNameLength, vb)

	if input.SpriteURL != "" && !isValidURL(input.SpriteURL) {
		vb.InvalidField("spriteUrl", "must be a valid URL")
	}

	return vb.Build()
}

// validateLearnedMoves checks every learned move against the pokemon's
// learnset. Moves picked at random (or written in as custom) were
// resolved client-side and are accepted as-is, never re-randomized.
// All offending names are reported together.
func validateLearnedMoves(moves []MoveInput, detail *pokemon.Detail) error {
	known := make(map[string]struct{}, len(detail.Moves))
	for _, m := range detail.Moves {
		known[m.Name] = struct{}{}
	}

	var invalid []string
	for _, m := range moves {
		if pokemon.MoveKind(m.Kind) != pokemon.MoveKindLearned {
			continue
		}
		if _, ok := known[m.Name]; !ok {
			invalid = append(invalid, m.Name)
		}
	}

	if len(invalid) > 0 {
		return errors.InvalidArgumentf("invalid moves for this pokemon: %s", strings.Join(invalid, ", ")).
			WithMeta("invalid_moves", invalid)
	}
	return nil
}

// resolveSpriteURL picks the shiny sprite when requested and available,
// falling back to the default sprite, which itself may be empty
func resolveSpriteURL(detail *pokemon.Detail, isShiny bool) string {
	if isShiny && detail.ShinySpriteURL != "" {
		return detail.ShinySpriteURL
	}
	return detail.DefaultSpriteURL
}

func toChosenMoves(moves []MoveInput) []pokemon.ChosenMove {
	out := make([]pokemon.ChosenMove, len(moves))
	for i, m := range moves {
		out[i] = pokemon.ChosenMove{
			Name:          m.Name,
			LocalizedName: m.LocalizedName,
			Kind:          pokemon.MoveKind(m.Kind),
		}
	}
	return out
}

func isValidURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
