package creation

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/pokeforge/pokeforge-api/internal/entities/pokemon"
	"github.com/pokeforge/pokeforge-api/internal/errors"
)

// OpenDB opens a PostgreSQL connection pool for the repository
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return db, nil
}

// PostgresConfig holds the configuration for the Postgres repository
type PostgresConfig struct {
	DB *sql.DB
}

// Validate ensures all required dependencies are provided
func (c *PostgresConfig) Validate() error {
	if c.DB == nil {
		return errors.InvalidArgument("db is required")
	}
	return nil
}

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL-backed repository
func NewPostgresRepository(cfg *PostgresConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &postgresRepository{db: cfg.DB}, nil
}

// Ensure postgresRepository implements Repository
var _ Repository = (*postgresRepository)(nil)

// Insert stores a new creation; the store assigns ID and CreatedAt
func (r *postgresRepository) Insert(ctx context.Context, input *InsertInput) (*InsertOutput, error) {
	if input == nil || input.Pokemon == nil {
		return nil, errors.InvalidArgument("pokemon is required")
	}

	moves, err := json.Marshal(input.Pokemon.Moves)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal moves")
	}

	query := `
		INSERT INTO custom_pokemon (
			pokemon_id, pokemon_name, pokemon_name_localized, nickname,
			gender, is_shiny, moves, creator_name, sprite_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	stored := *input.Pokemon
	err = r.db.QueryRowContext(ctx, query,
		input.Pokemon.PokemonID,
		input.Pokemon.Name,
		nullString(input.Pokemon.LocalizedName),
		nullString(input.Pokemon.Nickname),
		string(input.Pokemon.Gender),
		input.Pokemon.IsShiny,
		moves,
		input.Pokemon.CreatorName,
		nullString(input.Pokemon.SpriteURL),
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert pokemon")
	}

	return &InsertOutput{Pokemon: &stored}, nil
}

// List returns all creations ordered by creation time descending
func (r *postgresRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	query := `
		SELECT id, pokemon_id, pokemon_name, pokemon_name_localized, nickname,
			gender, is_shiny, moves, creator_name, sprite_url, created_at
		FROM custom_pokemon
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query pokemon")
	}
	defer func() { _ = rows.Close() }()

	var out []*pokemon.CustomPokemon
	for rows.Next() {
		var (
			p             pokemon.CustomPokemon
			localizedName sql.NullString
			nickname      sql.NullString
			spriteURL     sql.NullString
			gender        string
			moves         []byte
		)

		err := rows.Scan(
			&p.ID, &p.PokemonID, &p.Name, &localizedName, &nickname,
			&gender, &p.IsShiny, &moves, &p.CreatorName, &spriteURL, &p.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan pokemon row")
		}

		if err := json.Unmarshal(moves, &p.Moves); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal moves for pokemon %d", p.ID)
		}

		p.LocalizedName = localizedName.String
		p.Nickname = nickname.String
		p.SpriteURL = spriteURL.String
		p.Gender = pokemon.Gender(gender)

		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate pokemon rows")
	}

	return &ListOutput{Pokemon: out}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
