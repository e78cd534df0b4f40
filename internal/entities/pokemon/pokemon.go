// Package pokemon defines the domain entities for the pokeforge service
package pokemon

import "time"

// Summary is a single catalog entry as shown in the picker list
type Summary struct {
	// ID is the national dex number (1-493)
	ID int `json:"id"`

	// Name is the canonical (English) name from the upstream source
	Name string `json:"name"`

	// LocalizedName is the name in the configured display locale,
	// falling back to the canonical name when unavailable
	LocalizedName string `json:"localizedName"`

	// SpriteURL is the default front sprite, possibly empty
	SpriteURL string `json:"spriteUrl"`
}

// MoveRef is a move as referenced by a pokemon's learnset, canonical name only
type MoveRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Move is a move enriched with its localized name
type Move struct {
	Name          string `json:"name"`
	LocalizedName string `json:"localizedName"`
	URL           string `json:"url"`
}

// Detail is a fully enriched catalog entry for a single pokemon.
//
// Moves and LocalizedMoves always have the same length and index
// correspondence: LocalizedMoves[i] is the enriched form of Moves[i].
// Upstream duplicates are preserved as-is.
type Detail struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	LocalizedName    string    `json:"localizedName"`
	DefaultSpriteURL string    `json:"defaultSpriteUrl,omitempty"`
	ShinySpriteURL   string    `json:"shinySpriteUrl,omitempty"`
	SpeciesURL       string    `json:"speciesUrl"`
	Moves            []MoveRef `json:"moves"`
	LocalizedMoves   []Move    `json:"localizedMoves"`
}

// ChosenMove is one of the four moves picked for a custom pokemon
type ChosenMove struct {
	Name          string   `json:"name"`
	LocalizedName string   `json:"localizedName,omitempty"`
	Kind          MoveKind `json:"kind"`
}

// CustomPokemon is a user creation as persisted by the store.
// Records are immutable once created; ID and CreatedAt are
// assigned by the store at insert time.
type CustomPokemon struct {
	ID            int64        `json:"id"`
	PokemonID     int          `json:"pokemonId"`
	Name          string       `json:"name"`
	LocalizedName string       `json:"localizedName,omitempty"`
	Nickname      string       `json:"nickname,omitempty"`
	Gender        Gender       `json:"gender"`
	IsShiny       bool         `json:"isShiny"`
	Moves         []ChosenMove `json:"moves"`
	CreatorName   string       `json:"creatorName"`
	SpriteURL     string       `json:"spriteUrl,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}
