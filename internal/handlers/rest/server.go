package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	server *http.Server
}

// NewServer creates a new REST API server with all routes wired
func NewServer(port int, handler *Handler) *Server {
	router := NewRouter(handler)

	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewRouter builds the route table; exposed separately so tests can
// drive it through httptest
func NewRouter(handler *Handler) *mux.Router {
	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// Catalog (cached reads over the upstream API)
	api.HandleFunc("/catalog/pokemon", handler.ListPokemon).Methods("GET")
	api.HandleFunc("/catalog/pokemon/{id}", handler.GetPokemonDetail).Methods("GET")
	api.HandleFunc("/catalog/moves", handler.ListMoves).Methods("GET")
	api.HandleFunc("/catalog/invalidate/{tag}", handler.InvalidateCache).Methods("POST")

	// Creations
	api.HandleFunc("/pokemon", handler.CreatePokemon).Methods("POST")
	api.HandleFunc("/pokemon", handler.ListCreated).Methods("GET")

	return router
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
