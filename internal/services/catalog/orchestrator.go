package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	redis "github.com/redis/go-redis/v9"
	"golang.org/x/text/collate"

	"github.com/pokeforge/pokeforge-api/internal/entities/pokemon"
	"github.com/pokeforge/pokeforge-api/internal/errors"
)

const (
	// Key pattern: pokedex:{tag}:{locale}[:{id}]
	cacheKeyPrefix = "pokedex:"

	// TagList covers the full catalog listing
	TagList = "list"
	// TagDetail covers per-pokemon detail entries
	TagDetail = "detail"
	// TagMoves covers the full move listing
	TagMoves = "moves"
)

func (o *orchestrator) listKey() string {
	return fmt.Sprintf("%s%s:%s", cacheKeyPrefix, TagList, o.locale)
}

func (o *orchestrator) detailKey(id int) string {
	return fmt.Sprintf("%s%s:%s:%d", cacheKeyPrefix, TagDetail, o.locale, id)
}

func (o *orchestrator) movesKey() string {
	return fmt.Sprintf("%s%s:%s", cacheKeyPrefix, TagMoves, o.locale)
}

// ListPokemon returns the full catalog, ordered by id ascending
func (o *orchestrator) ListPokemon(ctx context.Context) ([]pokemon.Summary, error) {
	key := o.listKey()

	var cached []pokemon.Summary
	if o.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	list := o.fetchPokemonList(ctx)
	o.cacheSet(ctx, key, list)
	return list, nil
}

// fetchPokemonList fans out one fetch per dex id, each followed by a
// dependent species fetch for the localized name. Failed ids are
// dropped; a fully failed fan-out yields an empty catalog.
func (o *orchestrator) fetchPokemonList(ctx context.Context) []pokemon.Summary {
	slog.Info("Refreshing pokemon list from upstream", "locale", o.locale, "count", pokemon.MaxID)

	results := make([]*pokemon.Summary, pokemon.MaxID)
	sem := make(chan struct{}, o.fanOutLimit)
	var wg sync.WaitGroup

	for id := pokemon.MinID; id <= pokemon.MaxID; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			p, err := o.pokeAPI.GetPokemon(ctx, id)
			if err != nil {
				slog.Warn("Dropping pokemon from listing", "id", id, "error", err)
				return
			}

			results[id-1] = &pokemon.Summary{
				ID:            p.ID,
				Name:          p.Name,
				LocalizedName: o.localizedPokemonName(ctx, p),
				SpriteURL:     p.Sprites.FrontDefault,
			}
		}(id)
	}

	wg.Wait()

	// Slots are indexed by id, so compacting preserves ascending order
	list := make([]pokemon.Summary, 0, len(results))
	for _, s := range results {
		if s != nil {
			list = append(list, *s)
		}
	}

	slog.Info("Pokemon list refreshed", "entries", len(list))
	return list
}

// GetPokemonDetail returns one enriched catalog entry, or NotFound.
// Absent results are cached too (as a null entry), so a missing or
// unreachable upstream id is not re-fetched until the TTL expires.
func (o *orchestrator) GetPokemonDetail(ctx context.Context, id int) (*pokemon.Detail, error) {
	if id < pokemon.MinID || id > pokemon.MaxID {
		return nil, errors.InvalidArgumentf("pokemon id must be between %d and %d", pokemon.MinID, pokemon.MaxID)
	}

	key := o.detailKey(id)

	if payload, err := o.redis.Get(ctx, key).Result(); err == nil {
		var cached *pokemon.Detail
		if jsonErr := json.Unmarshal([]byte(payload), &cached); jsonErr == nil {
			if cached == nil {
				return nil, errors.NotFoundf("pokemon %d not found", id)
			}
			return cached, nil
		}
		slog.Warn("Discarding unreadable cache entry", "key", key)
	} else if err != redis.Nil {
		slog.Warn("Cache read failed", "key", key, "error", err)
	}

	detail := o.fetchPokemonDetail(ctx, id)
	o.cacheSet(ctx, key, detail)

	if detail == nil {
		return nil, errors.NotFoundf("pokemon %d not found", id)
	}
	return detail, nil
}

// fetchPokemonDetail builds the enriched detail for one pokemon, or nil
// when the entity fetch itself fails. Individual move localization
// failures fall back to the canonical name for that entry only.
func (o *orchestrator) fetchPokemonDetail(ctx context.Context, id int) *pokemon.Detail {
	p, err := o.pokeAPI.GetPokemon(ctx, id)
	if err != nil {
		slog.Warn("Pokemon detail unavailable upstream", "id", id, "error", err)
		return nil
	}

	detail := &pokemon.Detail{
		ID:               p.ID,
		Name:             p.Name,
		LocalizedName:    o.localizedPokemonName(ctx, p),
		DefaultSpriteURL: p.Sprites.FrontDefault,
		ShinySpriteURL:   p.Sprites.FrontShiny,
		SpeciesURL:       p.Species.URL,
		Moves:            make([]pokemon.MoveRef, len(p.Moves)),
		LocalizedMoves:   make([]pokemon.Move, len(p.Moves)),
	}

	// One localization fetch per learnset entry, duplicates included,
	// so index correspondence between Moves and LocalizedMoves holds
	sem := make(chan struct{}, o.fanOutLimit)
	var wg sync.WaitGroup

	for i, m := range p.Moves {
		wg.Add(1)
		go func(idx int, name, url string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			detail.Moves[idx] = pokemon.MoveRef{Name: name, URL: url}
			detail.LocalizedMoves[idx] = pokemon.Move{
				Name:          name,
				LocalizedName: o.localizedMoveName(ctx, name, url),
				URL:           url,
			}
		}(i, m.Move.Name, m.Move.URL)
	}

	wg.Wait()
	return detail
}

// ListMoves returns every known move, sorted by localized name
func (o *orchestrator) ListMoves(ctx context.Context) ([]pokemon.Move, error) {
	key := o.movesKey()

	var cached []pokemon.Move
	if o.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	moves := o.fetchMoveList(ctx)
	o.cacheSet(ctx, key, moves)
	return moves, nil
}

// fetchMoveList fetches the full move listing and localizes each entry.
// A failed listing call yields an empty result: there is no partial
// listing without it.
func (o *orchestrator) fetchMoveList(ctx context.Context) []pokemon.Move {
	refs, err := o.pokeAPI.ListMoves(ctx, o.moveListLimit)
	if err != nil {
		slog.Warn("Move listing unavailable upstream", "error", err)
		return []pokemon.Move{}
	}

	slog.Info("Refreshing move list from upstream", "locale", o.locale, "count", len(refs))

	moves := make([]pokemon.Move, len(refs))
	sem := make(chan struct{}, o.fanOutLimit)
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, name, url string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			moves[idx] = pokemon.Move{
				Name:          name,
				LocalizedName: o.localizedMoveName(ctx, name, url),
				URL:           url,
			}
		}(i, ref.Name, ref.URL)
	}

	wg.Wait()

	// Locale-aware, diacritic-sensitive ordering; canonical name breaks ties
	c := collate.New(o.collation)
	sort.SliceStable(moves, func(i, j int) bool {
		if cmp := c.CompareString(moves[i].LocalizedName, moves[j].LocalizedName); cmp != 0 {
			return cmp < 0
		}
		return moves[i].Name < moves[j].Name
	})

	return moves
}

// InvalidateTag drops all cached entries under the given tag
func (o *orchestrator) InvalidateTag(ctx context.Context, tag string) error {
	pattern := fmt.Sprintf("%s%s:*", cacheKeyPrefix, tag)

	iter := o.redis.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan cache keys")
	}

	if len(keys) > 0 {
		if err := o.redis.Del(ctx, keys...).Err(); err != nil {
			return errors.Wrap(err, "failed to delete cache keys")
		}
	}

	slog.Info("Invalidated cache tag", "tag", tag, "keys", len(keys))
	return nil
}

// cacheGet loads and decodes a cached value, reporting whether it hit.
// Cache errors are treated as misses: the read path degrades, never fails.
func (o *orchestrator) cacheGet(ctx context.Context, key string, v interface{}) bool {
	payload, err := o.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(payload), v); err != nil {
		slog.Warn("Discarding unreadable cache entry", "key", key, "error", err)
		return false
	}
	return true
}

// cacheSet stores a value with the configured TTL; failures are logged
// and swallowed so a flaky cache never breaks a read
func (o *orchestrator) cacheSet(ctx context.Context, key string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to encode cache entry", "key", key, "error", err)
		return
	}

	if err := o.redis.Set(ctx, key, payload, o.cacheTTL).Err(); err != nil {
		slog.Warn("Cache write failed", "key", key, "error", err)
	}
}
