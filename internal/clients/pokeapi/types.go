package pokeapi

// Resource is an upstream reference: a canonical name plus the URL
// where the full payload lives
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Language identifies the language of a localized name entry
type Language struct {
	Name string `json:"name"`
}

// LocalizedName is one name/language pair from an upstream payload
type LocalizedName struct {
	Name     string   `json:"name"`
	Language Language `json:"language"`
}

// Sprites holds the sprite URLs for a pokemon. Upstream uses null for
// missing sprites, which decodes to an empty string here.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
}

// PokemonMove is one entry in a pokemon's learnset
type PokemonMove struct {
	Move Resource `json:"move"`
}

// Pokemon is the raw upstream pokemon payload, limited to the fields
// this service consumes
type Pokemon struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Sprites Sprites       `json:"sprites"`
	Species Resource      `json:"species"`
	Moves   []PokemonMove `json:"moves"`
}

// Species is the raw upstream species payload, carrying the localized names
type Species struct {
	Names []LocalizedName `json:"names"`
}

// MoveDetail is the raw upstream move payload
type MoveDetail struct {
	Name  string          `json:"name"`
	Names []LocalizedName `json:"names"`
}

// moveList is the paginated upstream move listing
type moveList struct {
	Count   int        `json:"count"`
	Results []Resource `json:"results"`
}
