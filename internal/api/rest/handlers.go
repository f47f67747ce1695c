package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/anthonysuherli/featherweight/internal/htmltable"
	"github.com/anthonysuherli/featherweight/internal/ingest/bref"
	"github.com/anthonysuherli/featherweight/internal/ingest/nbastats"
	"github.com/anthonysuherli/featherweight/internal/salary"
	"github.com/anthonysuherli/featherweight/pkg/models"
)

// StatsScraper is the Basketball Reference surface the handlers need.
type StatsScraper interface {
	PlayerGameLogs(ctx context.Context, name string, season int, playoffs bool) ([]models.GameStatRecord, error)
	SeasonStats(ctx context.Context, season int, statType bref.StatType, playoffs bool) ([]models.GameStatRecord, error)
	TeamRatings(ctx context.Context, season int) (htmltable.Table, error)
}

// LeagueAPI is the stats-API surface the handlers need.
type LeagueAPI interface {
	LeagueGameLogs(ctx context.Context, season string, seasonType nbastats.SeasonType, dateFrom, dateTo string) ([]models.GameStatRecord, error)
	AllPlayers(ctx context.Context, season string, activeOnly bool) (htmltable.Table, error)
}

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	stats  StatsScraper
	league LeagueAPI
}

func NewHandler(stats StatsScraper, league LeagueAPI) *Handler {
	return &Handler{stats: stats, league: league}
}

// HealthCheck handles health check requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "featherweight",
	})
}

// GetSeasonStats scrapes the league-wide stats table for a season.
// Query params: type (stat type, default per_game), playoffs (bool).
func (h *Handler) GetSeasonStats(w http.ResponseWriter, r *http.Request) {
	season, err := strconv.Atoi(mux.Vars(r)["season"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season (use the ending year, e.g. 2025)", err)
		return
	}

	statTypeStr := r.URL.Query().Get("type")
	if statTypeStr == "" {
		statTypeStr = string(bref.PerGame)
	}
	statType, err := bref.ParseStatType(statTypeStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid stat type", err)
		return
	}

	records, err := h.stats.SeasonStats(r.Context(), season, statType, boolParam(r, "playoffs"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch season stats", err)
		return
	}

	respondJSON(w, http.StatusOK, nonNil(records))
}

// GetPlayerGameLogs scrapes one player's game log.
// Query params: name (required), season (required), playoffs (bool).
func (h *Handler) GetPlayerGameLogs(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "Missing required query param: name", nil)
		return
	}
	season, err := strconv.Atoi(r.URL.Query().Get("season"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid or missing season", err)
		return
	}

	records, err := h.stats.PlayerGameLogs(r.Context(), name, season, boolParam(r, "playoffs"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch game logs", err)
		return
	}

	respondJSON(w, http.StatusOK, nonNil(records))
}

// GetTeamRatings scrapes the team ratings table for a season.
func (h *Handler) GetTeamRatings(w http.ResponseWriter, r *http.Request) {
	season, err := strconv.Atoi(mux.Vars(r)["season"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season", err)
		return
	}

	t, err := h.stats.TeamRatings(r.Context(), season)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch team ratings", err)
		return
	}

	respondJSON(w, http.StatusOK, t.Maps())
}

// GetLeagueGameLogs fetches every player's game log from the stats API.
// Query params: season ("YYYY-YY", required), season_type, date_from,
// date_to.
func (h *Handler) GetLeagueGameLogs(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	if season == "" {
		respondError(w, http.StatusBadRequest, "Missing required query param: season (YYYY-YY)", nil)
		return
	}
	seasonType, err := nbastats.ParseSeasonType(r.URL.Query().Get("season_type"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season type", err)
		return
	}

	records, err := h.league.LeagueGameLogs(r.Context(), season, seasonType,
		r.URL.Query().Get("date_from"), r.URL.Query().Get("date_to"))
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch league game logs", err)
		return
	}

	respondJSON(w, http.StatusOK, nonNil(records))
}

// GetAllPlayers fetches the season's player index from the stats API.
func (h *Handler) GetAllPlayers(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	if season == "" {
		respondError(w, http.StatusBadRequest, "Missing required query param: season (YYYY-YY)", nil)
		return
	}

	t, err := h.league.AllPlayers(r.Context(), season, boolParam(r, "active"))
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch players", err)
		return
	}

	respondJSON(w, http.StatusOK, t.Maps())
}

// ParseSalaryFile normalizes an uploaded salary CSV. The platform query
// param may be draftkings/dk or fanduel/fd; omitted means auto-detect.
func (h *Handler) ParseSalaryFile(w http.ResponseWriter, r *http.Request) {
	platform, err := salary.ParsePlatform(r.URL.Query().Get("platform"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid platform", err)
		return
	}

	records, err := salary.Parse(r.Body, platform)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse salary file", err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// nonNil keeps a zero-result scrape encoding as an empty JSON array
// rather than null.
func nonNil(records []models.GameStatRecord) []models.GameStatRecord {
	if records == nil {
		return []models.GameStatRecord{}
	}
	return records
}

func boolParam(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
