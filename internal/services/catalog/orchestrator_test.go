package catalog_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/pokeforge/pokeforge-api/internal/clients/pokeapi"
	pokeapimock "github.com/pokeforge/pokeforge-api/internal/clients/pokeapi/mock"
	"github.com/pokeforge/pokeforge-api/internal/entities/pokemon"
	"github.com/pokeforge/pokeforge-api/internal/errors"
	redisclient "github.com/pokeforge/pokeforge-api/internal/redis"
	"github.com/pokeforge/pokeforge-api/internal/services/catalog"
	"github.com/pokeforge/pokeforge-api/internal/testutils"
)

const testCacheTTL = 24 * time.Hour

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockAPI *pokeapimock.MockClient
	redis   redisclient.Client
	mr      *miniredis.Miniredis
	svc     catalog.Service
	ctx     context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAPI = pokeapimock.NewMockClient(s.ctrl)
	s.redis, s.mr = testutils.CreateTestRedis(s.T())
	s.ctx = context.Background()

	svc, err := catalog.New(&catalog.Config{
		PokeAPI:  s.mockAPI,
		Redis:    s.redis,
		Locale:   "fr",
		CacheTTL: testCacheTTL,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func speciesURL(id int) string {
	return fmt.Sprintf("https://pokeapi.test/pokemon-species/%d/", id)
}

// expectPokemonUpstream wires GetPokemon so ids up to available succeed
// and everything above fails, returning a counter of upstream calls
func (s *OrchestratorTestSuite) expectPokemonUpstream(available int) *atomic.Int64 {
	var calls atomic.Int64

	s.mockAPI.EXPECT().
		GetPokemon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int) (*pokeapi.Pokemon, error) {
			calls.Add(1)
			if id > available {
				return nil, fmt.Errorf("pokeapi: unexpected status 500 for id %d", id)
			}
			return &pokeapi.Pokemon{
				ID:      id,
				Name:    fmt.Sprintf("pokemon-%d", id),
				Sprites: pokeapi.Sprites{FrontDefault: fmt.Sprintf("https://sprites.test/%d.png", id)},
				Species: pokeapi.Resource{Name: fmt.Sprintf("pokemon-%d", id), URL: speciesURL(id)},
			}, nil
		}).
		AnyTimes()

	s.mockAPI.EXPECT().
		GetSpecies(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, url string) (*pokeapi.Species, error) {
			if url == speciesURL(1) {
				return &pokeapi.Species{Names: []pokeapi.LocalizedName{
					{Name: "Bulbizarre", Language: pokeapi.Language{Name: "fr"}},
					{Name: "Bulbasaur", Language: pokeapi.Language{Name: "en"}},
				}}, nil
			}
			return &pokeapi.Species{}, nil
		}).
		AnyTimes()

	return &calls
}

func (s *OrchestratorTestSuite) TestListPokemon() {
	calls := s.expectPokemonUpstream(3)

	list, err := s.svc.ListPokemon(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal(int64(pokemon.MaxID), calls.Load())

	// Failed ids are dropped; the survivors keep ascending id order
	s.Equal(1, list[0].ID)
	s.Equal(2, list[1].ID)
	s.Equal(3, list[2].ID)

	// Localized where upstream has a french entry, canonical otherwise
	s.Equal("Bulbizarre", list[0].LocalizedName)
	s.Equal("pokemon-2", list[1].LocalizedName)
	s.Equal("https://sprites.test/1.png", list[0].SpriteURL)
}

func (s *OrchestratorTestSuite) TestListPokemonServedFromCache() {
	calls := s.expectPokemonUpstream(2)

	first, err := s.svc.ListPokemon(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(pokemon.MaxID), calls.Load())

	// Second read must not touch the upstream at all
	second, err := s.svc.ListPokemon(s.ctx)
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Equal(int64(pokemon.MaxID), calls.Load())
}

func (s *OrchestratorTestSuite) TestListPokemonRefetchesAfterTTL() {
	calls := s.expectPokemonUpstream(1)

	_, err := s.svc.ListPokemon(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(pokemon.MaxID), calls.Load())

	s.mr.FastForward(testCacheTTL + time.Minute)

	_, err = s.svc.ListPokemon(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2*pokemon.MaxID), calls.Load())
}

func (s *OrchestratorTestSuite) TestListPokemonCachesEmptyOnUpstreamOutage() {
	calls := s.expectPokemonUpstream(0)

	list, err := s.svc.ListPokemon(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
	s.Equal(int64(pokemon.MaxID), calls.Load())

	// The empty outcome is cached like any other: no retry storm
	list, err = s.svc.ListPokemon(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
	s.Equal(int64(pokemon.MaxID), calls.Load())
}

func (s *OrchestratorTestSuite) TestGetPokemonDetail() {
	var calls atomic.Int64

	moveURL := func(name string) string {
		return fmt.Sprintf("https://pokeapi.test/move/%s/", name)
	}

	s.mockAPI.EXPECT().
		GetPokemon(gomock.Any(), 25).
		DoAndReturn(func(_ context.Context, _ int) (*pokeapi.Pokemon, error) {
			calls.Add(1)
			return &pokeapi.Pokemon{
				ID:   25,
				Name: "pikachu",
				Sprites: pokeapi.Sprites{
					FrontDefault: "https://sprites.test/25.png",
					FrontShiny:   "https://sprites.test/shiny/25.png",
				},
				Species: pokeapi.Resource{Name: "pikachu", URL: speciesURL(25)},
				Moves: []pokeapi.PokemonMove{
					{Move: pokeapi.Resource{Name: "thunder-shock", URL: moveURL("thunder-shock")}},
					{Move: pokeapi.Resource{Name: "growl", URL: moveURL("growl")}},
					// Upstream learnsets repeat moves across version groups
					{Move: pokeapi.Resource{Name: "thunder-shock", URL: moveURL("thunder-shock")}},
				},
			}, nil
		}).
		AnyTimes()

	s.mockAPI.EXPECT().
		GetSpecies(gomock.Any(), speciesURL(25)).
		Return(&pokeapi.Species{Names: []pokeapi.LocalizedName{
			{Name: "Pikachu", Language: pokeapi.Language{Name: "fr"}},
		}}, nil).
		AnyTimes()

	s.mockAPI.EXPECT().
		GetMove(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, url string) (*pokeapi.MoveDetail, error) {
			if url == moveURL("thunder-shock") {
				return &pokeapi.MoveDetail{Name: "thunder-shock", Names: []pokeapi.LocalizedName{
					{Name: "Éclair", Language: pokeapi.Language{Name: "fr"}},
				}}, nil
			}
			return nil, fmt.Errorf("pokeapi: unexpected status 500 for %s", url)
		}).
		AnyTimes()

	detail, err := s.svc.GetPokemonDetail(s.ctx, 25)
	s.Require().NoError(err)
	s.Require().NotNil(detail)
	s.Equal(int64(1), calls.Load())

	s.Equal(25, detail.ID)
	s.Equal("pikachu", detail.Name)
	s.Equal("Pikachu", detail.LocalizedName)
	s.Equal("https://sprites.test/25.png", detail.DefaultSpriteURL)
	s.Equal("https://sprites.test/shiny/25.png", detail.ShinySpriteURL)

	// Both views carry the learnset entry-for-entry, duplicates included
	s.Require().Len(detail.Moves, 3)
	s.Require().Len(detail.LocalizedMoves, 3)
	for i := range detail.Moves {
		s.Equal(detail.Moves[i].Name, detail.LocalizedMoves[i].Name)
	}
	s.Equal("Éclair", detail.LocalizedMoves[0].LocalizedName)
	s.Equal("growl", detail.LocalizedMoves[1].LocalizedName)
	s.Equal(detail.LocalizedMoves[0], detail.LocalizedMoves[2])

	// Second read comes from the cache
	cached, err := s.svc.GetPokemonDetail(s.ctx, 25)
	s.Require().NoError(err)
	s.Equal(detail, cached)
	s.Equal(int64(1), calls.Load())
}

func (s *OrchestratorTestSuite) TestGetPokemonDetailRejectsOutOfRangeIDs() {
	for _, id := range []int{0, -1, pokemon.MaxID + 1} {
		_, err := s.svc.GetPokemonDetail(s.ctx, id)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err), "id %d should be rejected before any upstream call", id)
	}
}

func (s *OrchestratorTestSuite) TestGetPokemonDetailCachesAbsence() {
	var calls atomic.Int64

	s.mockAPI.EXPECT().
		GetPokemon(gomock.Any(), 400).
		DoAndReturn(func(_ context.Context, _ int) (*pokeapi.Pokemon, error) {
			calls.Add(1)
			return nil, fmt.Errorf("pokeapi: unexpected status 404")
		}).
		AnyTimes()

	_, err := s.svc.GetPokemonDetail(s.ctx, 400)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(int64(1), calls.Load())

	// Absence is cached: the same NotFound without an upstream call
	_, err = s.svc.GetPokemonDetail(s.ctx, 400)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(int64(1), calls.Load())

	s.mr.FastForward(testCacheTTL + time.Minute)

	_, err = s.svc.GetPokemonDetail(s.ctx, 400)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(int64(2), calls.Load())
}

func (s *OrchestratorTestSuite) TestListMoves() {
	var calls atomic.Int64

	refs := []pokeapi.Resource{
		{Name: "sunny-day", URL: "https://pokeapi.test/move/sunny-day/"},
		{Name: "pound", URL: "https://pokeapi.test/move/pound/"},
		{Name: "mimic", URL: "https://pokeapi.test/move/mimic/"},
		{Name: "protect", URL: "https://pokeapi.test/move/protect/"},
		{Name: "copycat", URL: "https://pokeapi.test/move/copycat/"},
	}
	french := map[string]string{
		"sunny-day": "Zénith",
		"pound":     "Écras'Face",
		"mimic":     "Copie",
		"protect":   "Abri",
		"copycat":   "Copie",
	}

	s.mockAPI.EXPECT().
		ListMoves(gomock.Any(), 1000).
		DoAndReturn(func(_ context.Context, _ int) ([]pokeapi.Resource, error) {
			calls.Add(1)
			return refs, nil
		}).
		AnyTimes()

	s.mockAPI.EXPECT().
		GetMove(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, url string) (*pokeapi.MoveDetail, error) {
			for _, ref := range refs {
				if ref.URL == url {
					return &pokeapi.MoveDetail{Name: ref.Name, Names: []pokeapi.LocalizedName{
						{Name: french[ref.Name], Language: pokeapi.Language{Name: "fr"}},
					}}, nil
				}
			}
			return nil, fmt.Errorf("pokeapi: unexpected status 404 for %s", url)
		}).
		AnyTimes()

	moves, err := s.svc.ListMoves(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(moves, 5)

	// French collation keeps Écras'Face between Copie and Zénith; a
	// plain byte sort would push it past Z. Same localized name falls
	// back to canonical name order.
	localized := make([]string, len(moves))
	canonical := make([]string, len(moves))
	for i, m := range moves {
		localized[i] = m.LocalizedName
		canonical[i] = m.Name
	}
	s.Equal([]string{"Abri", "Copie", "Copie", "Écras'Face", "Zénith"}, localized)
	s.Equal([]string{"protect", "copycat", "mimic", "pound", "sunny-day"}, canonical)

	// Second read comes from the cache
	again, err := s.svc.ListMoves(s.ctx)
	s.Require().NoError(err)
	s.Equal(moves, again)
	s.Equal(int64(1), calls.Load())
}

func (s *OrchestratorTestSuite) TestListMovesCachesEmptyOnUpstreamOutage() {
	var calls atomic.Int64

	s.mockAPI.EXPECT().
		ListMoves(gomock.Any(), 1000).
		DoAndReturn(func(_ context.Context, _ int) ([]pokeapi.Resource, error) {
			calls.Add(1)
			return nil, fmt.Errorf("pokeapi: connection refused")
		}).
		AnyTimes()

	moves, err := s.svc.ListMoves(s.ctx)
	s.Require().NoError(err)
	s.Empty(moves)

	moves, err = s.svc.ListMoves(s.ctx)
	s.Require().NoError(err)
	s.Empty(moves)
	s.Equal(int64(1), calls.Load())
}

func (s *OrchestratorTestSuite) TestInvalidateTag() {
	s.Require().NoError(s.redis.Set(s.ctx, "pokedex:detail:fr:1", "{}", 0).Err())
	s.Require().NoError(s.redis.Set(s.ctx, "pokedex:detail:fr:2", "{}", 0).Err())
	s.Require().NoError(s.redis.Set(s.ctx, "pokedex:list:fr", "[]", 0).Err())

	err := s.svc.InvalidateTag(s.ctx, catalog.TagDetail)
	s.Require().NoError(err)

	s.False(s.mr.Exists("pokedex:detail:fr:1"))
	s.False(s.mr.Exists("pokedex:detail:fr:2"))
	s.True(s.mr.Exists("pokedex:list:fr"))
}

func (s *OrchestratorTestSuite) TestInvalidateTagWithNoKeys() {
	s.Require().NoError(s.svc.InvalidateTag(s.ctx, catalog.TagMoves))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestNewValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := pokeapimock.NewMockClient(ctrl)
	client, _ := testutils.CreateTestRedis(t)

	t.Run("missing dependencies", func(t *testing.T) {
		_, err := catalog.New(&catalog.Config{})
		if err == nil {
			t.Fatal("expected error for missing dependencies")
		}
	})

	t.Run("unsupported locale", func(t *testing.T) {
		_, err := catalog.New(&catalog.Config{
			PokeAPI: mockAPI,
			Redis:   client,
			Locale:  "not a locale!",
		})
		if err == nil {
			t.Fatal("expected error for unparseable locale")
		}
	})
}
