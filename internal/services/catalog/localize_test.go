package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokeforge/pokeforge-api/internal/clients/pokeapi"
)

func TestLocalizedName(t *testing.T) {
	names := []pokeapi.LocalizedName{
		{Name: "フシギダネ", Language: pokeapi.Language{Name: "ja"}},
		{Name: "Bulbizarre", Language: pokeapi.Language{Name: "fr"}},
		{Name: "Bulbasaur", Language: pokeapi.Language{Name: "en"}},
	}

	t.Run("matching locale", func(t *testing.T) {
		assert.Equal(t, "Bulbizarre", localizedName(names, "fr"))
		assert.Equal(t, "フシギダネ", localizedName(names, "ja"))
	})

	t.Run("no matching locale", func(t *testing.T) {
		assert.Equal(t, "", localizedName(names, "de"))
	})

	t.Run("exact tag match only", func(t *testing.T) {
		// No fallback chain: "fr-CA" does not match "fr"
		assert.Equal(t, "", localizedName(names, "fr-CA"))
	})

	t.Run("empty names", func(t *testing.T) {
		assert.Equal(t, "", localizedName(nil, "fr"))
	})
}
