// Package rest exposes the HTTP surface consumed by the web frontend
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pokeforge/pokeforge-api/internal/entities/pokemon"
	"github.com/pokeforge/pokeforge-api/internal/errors"
	"github.com/pokeforge/pokeforge-api/internal/services/catalog"
	creationsvc "github.com/pokeforge/pokeforge-api/internal/services/creation"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	catalog  catalog.Service
	creation creationsvc.Service
}

// HandlerConfig holds the dependencies for the REST handler
type HandlerConfig struct {
	Catalog  catalog.Service
	Creation creationsvc.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Creation == nil {
		vb.RequiredField("Creation")
	}

	return vb.Build()
}

// NewHandler creates a new REST handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		catalog:  cfg.Catalog,
		creation: cfg.Creation,
	}, nil
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pokeforge-api",
	})
}

// ListPokemon returns the full pokemon catalog
func (h *Handler) ListPokemon(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListPokemon(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch pokemon list", err)
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// GetPokemonDetail returns one enriched catalog entry
func (h *Handler) GetPokemonDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.Atoi(vars["id"])
	if err != nil || id < pokemon.MinID || id > pokemon.MaxID {
		respondError(w, http.StatusBadRequest, "Invalid pokemon ID", nil)
		return
	}

	detail, err := h.catalog.GetPokemonDetail(r.Context(), id)
	if err != nil {
		respondError(w, errors.GetCode(err).HTTPStatus(), errors.GetMessage(err), err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// ListMoves returns every known move, sorted by localized name
func (h *Handler) ListMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := h.catalog.ListMoves(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch moves", err)
		return
	}

	respondJSON(w, http.StatusOK, moves)
}

// createResponse is the envelope for creation submissions
type createResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CreatePokemon validates and stores a creation request
func (h *Handler) CreatePokemon(w http.ResponseWriter, r *http.Request) {
	var input creationsvc.CreatePokemonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, createResponse{
			Success: false,
			Error:   "invalid JSON body",
		})
		return
	}

	out, err := h.creation.CreatePokemon(r.Context(), &input)
	if err != nil {
		slog.Warn("Creation rejected", "pokemon_id", input.PokemonID, "error", err)
		respondJSON(w, errors.GetCode(err).HTTPStatus(), createResponse{
			Success: false,
			Error:   errors.GetMessage(err),
		})
		return
	}

	respondJSON(w, http.StatusCreated, createResponse{
		Success: true,
		ID:      out.Pokemon.ID,
	})
}

// ListCreated returns all stored creations, newest first
func (h *Handler) ListCreated(w http.ResponseWriter, r *http.Request) {
	out, err := h.creation.ListCreated(r.Context(), &creationsvc.ListCreatedInput{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch created pokemon", err)
		return
	}

	respondJSON(w, http.StatusOK, out.Pokemon)
}

// InvalidateCache drops all cached catalog entries under a tag
func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tag := vars["tag"]

	switch tag {
	case catalog.TagList, catalog.TagDetail, catalog.TagMoves:
	default:
		respondError(w, http.StatusBadRequest, "Unknown cache tag", nil)
		return
	}

	if err := h.catalog.InvalidateTag(r.Context(), tag); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to invalidate cache", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"invalidated": tag})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		slog.Debug("Request failed", "status", status, "error", err)
	}

	respondJSON(w, status, response)
}
