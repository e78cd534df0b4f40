// Package catalog serves the pokemon catalog: list, detail, and move
// views enriched with localized names, cached in Redis with a TTL.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/pokeforge/pokeforge-api/internal/services/catalog Service

import (
	"context"
	"time"

	"golang.org/x/text/language"

	"github.com/pokeforge/pokeforge-api/internal/clients/pokeapi"
	"github.com/pokeforge/pokeforge-api/internal/entities/pokemon"
	"github.com/pokeforge/pokeforge-api/internal/errors"
	redisclient "github.com/pokeforge/pokeforge-api/internal/redis"
)

// Service defines the interface for catalog reads.
//
// All three list/detail operations are cached per locale for CacheTTL;
// a cache hit makes zero upstream calls. Upstream failures degrade to
// empty or absent results, which are cached like any other outcome, so
// a down upstream is retried only after the TTL expires. Concurrent
// misses on the same key may each run the full upstream fan-out; the
// last writer wins, which is benign because every writer computes the
// same result from the same upstream state.
type Service interface {
	// ListPokemon returns the full catalog, ordered by id ascending.
	// Entries whose upstream fetch failed are dropped from the result.
	ListPokemon(ctx context.Context) ([]pokemon.Summary, error)

	// GetPokemonDetail returns one enriched catalog entry, or NotFound
	// when the upstream has no data for the id
	GetPokemonDetail(ctx context.Context, id int) (*pokemon.Detail, error)

	// ListMoves returns every known move, sorted ascending by localized
	// name under the configured locale's collation, ties broken by
	// canonical name
	ListMoves(ctx context.Context) ([]pokemon.Move, error)

	// InvalidateTag drops all cached entries under the given tag
	// ("list", "detail", "moves"). Advisory: nothing in this service
	// calls it
	InvalidateTag(ctx context.Context, tag string) error
}

// Config holds the dependencies for the catalog service
type Config struct {
	PokeAPI pokeapi.Client
	Redis   redisclient.Client

	// Locale is the upstream language tag for localized names (e.g. "fr")
	Locale string

	// CacheTTL is how long each cached view stays valid (default 24h)
	CacheTTL time.Duration

	// FanOutLimit caps concurrent upstream fetches (default 50)
	FanOutLimit int

	// MoveListLimit is the page size for the move listing, large enough
	// to cover the entire known set (default 1000)
	MoveListLimit int
}

// Validate ensures all required dependencies are provided and applies defaults
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PokeAPI == nil {
		vb.RequiredField("PokeAPI")
	}
	if c.Redis == nil {
		vb.RequiredField("Redis")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Locale == "" {
		c.Locale = "fr"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 24 * time.Hour
	}
	if c.FanOutLimit <= 0 {
		c.FanOutLimit = 50
	}
	if c.MoveListLimit <= 0 {
		c.MoveListLimit = 1000
	}
	return nil
}

type orchestrator struct {
	pokeAPI       pokeapi.Client
	redis         redisclient.Client
	locale        string
	collation     language.Tag
	cacheTTL      time.Duration
	fanOutLimit   int
	moveListLimit int
}

// New creates a new catalog service with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, errors.InvalidArgumentf("unsupported locale %q: %v", cfg.Locale, err)
	}

	return &orchestrator{
		pokeAPI:       cfg.PokeAPI,
		redis:         cfg.Redis,
		locale:        cfg.Locale,
		collation:     tag,
		cacheTTL:      cfg.CacheTTL,
		fanOutLimit:   cfg.FanOutLimit,
		moveListLimit: cfg.MoveListLimit,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)
