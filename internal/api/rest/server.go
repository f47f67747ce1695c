// Package rest exposes the scraping pipeline over HTTP. Every endpoint
// is a pull: fetch, normalize, return records. Nothing is stored between
// requests.
package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Server is the REST API server.
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer wires the router. Scrapers are injected so tests can swap in
// fakes.
func NewServer(port string, stats StatsScraper, league LeagueAPI) *Server {
	handler := NewHandler(stats, league)

	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// Basketball Reference scrapes
	api.HandleFunc("/stats/season/{season}", handler.GetSeasonStats).Methods("GET")
	api.HandleFunc("/players/gamelog", handler.GetPlayerGameLogs).Methods("GET")
	api.HandleFunc("/teams/ratings/{season}", handler.GetTeamRatings).Methods("GET")

	// Stats API
	api.HandleFunc("/league/gamelogs", handler.GetLeagueGameLogs).Methods("GET")
	api.HandleFunc("/league/players", handler.GetAllPlayers).Methods("GET")

	// Salary files
	api.HandleFunc("/salaries/parse", handler.ParseSalaryFile).Methods("POST")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
