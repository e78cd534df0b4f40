package catalog

import (
	"context"
	"log/slog"

	"github.com/pokeforge/pokeforge-api/internal/clients/pokeapi"
)

// localizedName returns the entry matching the target locale tag, or ""
// when no entry matches. The match is an exact, case-sensitive tag
// comparison with no fallback chain; callers substitute the canonical
// name themselves.
func localizedName(names []pokeapi.LocalizedName, locale string) string {
	for _, n := range names {
		if n.Language.Name == locale {
			return n.Name
		}
	}
	return ""
}

// localizedPokemonName resolves a pokemon's display name through its
// species payload, falling back to the canonical name when the species
// fetch fails or carries no entry for the locale
func (o *orchestrator) localizedPokemonName(ctx context.Context, p *pokeapi.Pokemon) string {
	s, err := o.pokeAPI.GetSpecies(ctx, p.Species.URL)
	if err != nil {
		slog.Debug("Species lookup failed, keeping canonical name", "pokemon", p.Name, "error", err)
		return p.Name
	}

	if name := localizedName(s.Names, o.locale); name != "" {
		return name
	}
	return p.Name
}

// localizedMoveName resolves a move's display name, falling back to the
// canonical name when the move fetch fails or carries no entry for the
// locale
func (o *orchestrator) localizedMoveName(ctx context.Context, name, url string) string {
	md, err := o.pokeAPI.GetMove(ctx, url)
	if err != nil {
		slog.Debug("Move lookup failed, keeping canonical name", "move", name, "error", err)
		return name
	}

	if localized := localizedName(md.Names, o.locale); localized != "" {
		return localized
	}
	return name
}
