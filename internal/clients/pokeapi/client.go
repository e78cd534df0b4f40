// Package pokeapi is the client for the public PokéAPI
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/pokeforge/pokeforge-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client defines the interface for upstream catalog fetches.
//
// All methods are single-shot: no retries, no backoff. A non-2xx
// response or transport failure surfaces as an error; the catalog
// service decides how to degrade.
type Client interface {
	// GetPokemon fetches a pokemon by national dex number
	GetPokemon(ctx context.Context, id int) (*Pokemon, error)

	// GetSpecies fetches a species payload by its upstream URL
	GetSpecies(ctx context.Context, url string) (*Species, error)

	// GetMove fetches a move payload by its upstream URL
	GetMove(ctx context.Context, url string) (*MoveDetail, error)

	// ListMoves fetches the move listing, up to limit entries
	ListMoves(ctx context.Context, limit int) ([]Resource, error)
}

// Config contains configuration options for the PokéAPI client.
type Config struct {
	// BaseURL for the PokéAPI (optional, defaults to https://pokeapi.co/api/v2)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://pokeapi.co/api/v2"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	return nil
}

type client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a new PokéAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:    cfg.BaseURL,
	}, nil
}

// Ensure client implements Client
var _ Client = (*client)(nil)

func (c *client) GetPokemon(ctx context.Context, id int) (*Pokemon, error) {
	var p Pokemon
	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)
	if err := c.getJSON(ctx, url, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *client) GetSpecies(ctx context.Context, url string) (*Species, error) {
	var s Species
	if err := c.getJSON(ctx, url, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *client) GetMove(ctx context.Context, url string) (*MoveDetail, error) {
	var m MoveDetail
	if err := c.getJSON(ctx, url, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *client) ListMoves(ctx context.Context, limit int) ([]Resource, error) {
	var list moveList
	url := fmt.Sprintf("%s/move?limit=%d", c.baseURL, limit)
	if err := c.getJSON(ctx, url, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

// getJSON performs a single GET and decodes the JSON body into v
func (c *client) getJSON(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("pokeapi: building request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pokeapi: fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pokeapi: unexpected status %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("pokeapi: decoding response from %s: %w", url, err)
	}

	return nil
}
