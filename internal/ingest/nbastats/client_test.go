package nbastats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthonysuherli/featherweight/internal/fetch"
	"github.com/anthonysuherli/featherweight/pkg/models"
)

const leagueLogJSON = `{
	"resource": "leaguegamelog",
	"resultSets": [{
		"name": "LeagueGameLog",
		"headers": ["PLAYER_NAME", "TEAM_ABBREVIATION", "GAME_DATE", "MATCHUP", "MIN", "FGM", "FGA", "FG3M", "FTM", "FTA", "PTS", "REB", "AST", "STL", "BLK", "TOV"],
		"rowSet": [
			["Nikola Jokic", "DEN", "2024-10-22", "DEN @ LAL", 35.0, 12, 20, 4, 3, 4, 31, 8, 5, 2, 1, 3],
			["LeBron James", "LAL", "2024-10-22", "LAL vs. DEN", 36.0, 10, 18, 2, 4, 5, 26, 10, 10, 1, 1, 4],
			["Inactive Guy", "LAL", "2024-10-22", "LAL vs. DEN", null, null, null, null, null, null, null, null, null, null, null, null]
		]
	}]
}`

// apiClient wires a real retrying fetcher at a test server with no
// delays.
func apiClient(srv *httptest.Server) *Client {
	f := fetch.New(
		fetch.WithSleep(func(time.Duration) {}),
		fetch.WithMaxRetries(1),
		fetch.WithHeaders(RequiredHeaders()),
	)
	return NewClient(f, WithBaseURL(srv.URL))
}

func TestParseSeasonType(t *testing.T) {
	st, err := ParseSeasonType("")
	require.NoError(t, err)
	assert.Equal(t, RegularSeason, st)

	st, err = ParseSeasonType("Playoffs")
	require.NoError(t, err)
	assert.Equal(t, Playoffs, st)

	_, err = ParseSeasonType("Preseason")
	require.Error(t, err)
}

func TestLeagueGameLogs(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	var gotReferer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotReferer = r.Header.Get("Referer")
		w.Write([]byte(leagueLogJSON))
	}))
	defer srv.Close()

	records, err := apiClient(srv).LeagueGameLogs(context.Background(), "2024-25", RegularSeason, "", "")
	require.NoError(t, err)

	assert.Equal(t, "/leaguegamelog", gotPath)
	assert.Equal(t, "00", gotQuery.Get("LeagueID"))
	assert.Equal(t, "2024-25", gotQuery.Get("Season"))
	assert.Equal(t, "Regular Season", gotQuery.Get("SeasonType"))
	assert.Equal(t, "P", gotQuery.Get("PlayerOrTeam"))
	assert.Equal(t, "https://www.nba.com/", gotReferer)

	require.Len(t, records, 3)

	road := records[0]
	assert.Equal(t, "Nikola Jokic", road.PlayerName)
	assert.Equal(t, "2024-25", road.Season)
	assert.Equal(t, "DEN", road.Team)
	assert.Equal(t, "LAL", road.Opponent)
	require.NotNil(t, road.IsHome)
	assert.False(t, *road.IsHome)
	assert.Equal(t, 31.0, models.Value(road.Points))
	assert.InDelta(t, 55.0, road.FantasyPoints, 1e-9)

	home := records[1]
	assert.Equal(t, "DEN", home.Opponent)
	require.NotNil(t, home.IsHome)
	assert.True(t, *home.IsHome)
	// 26 + 1 + 12.5 + 15 + 2 + 2 - 2, triple-double bonus on top.
	assert.InDelta(t, 59.5, home.FantasyPoints, 1e-9)

	// Null cells become missing, not zeros.
	assert.Nil(t, records[2].Points)
	assert.Equal(t, 0.0, records[2].FantasyPoints)
}

func TestLeagueGameLogsDateRange(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(leagueLogJSON))
	}))
	defer srv.Close()

	_, err := apiClient(srv).LeagueGameLogs(context.Background(), "2024-25", Playoffs, "04/20/2025", "04/27/2025")
	require.NoError(t, err)
	assert.Equal(t, "04/20/2025", gotQuery.Get("DateFrom"))
	assert.Equal(t, "04/27/2025", gotQuery.Get("DateTo"))
	assert.Equal(t, "Playoffs", gotQuery.Get("SeasonType"))
}

func TestLeagueGameLogsPropagatesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	records, err := apiClient(srv).LeagueGameLogs(context.Background(), "2024-25", RegularSeason, "", "")
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "fetching league game logs")
}

func TestLeagueGameLogsHTMLErrorPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Access Denied</body></html>"))
	}))
	defer srv.Close()

	_, err := apiClient(srv).LeagueGameLogs(context.Background(), "2024-25", RegularSeason, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTML error page")
}

func TestLeagueGameLogsBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultSets": `))
	}))
	defer srv.Close()

	_, err := apiClient(srv).LeagueGameLogs(context.Background(), "2024-25", RegularSeason, "", "")
	require.Error(t, err)
}

func TestLeagueGameLogsNoResultSets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resource": "leaguegamelog", "resultSets": []}`))
	}))
	defer srv.Close()

	_, err := apiClient(srv).LeagueGameLogs(context.Background(), "2024-25", RegularSeason, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no result sets")
}

func TestPlayerGameLogSwallowsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	records, err := apiClient(srv).PlayerGameLog(context.Background(), 203999, "2024-25", RegularSeason)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPlayerGameLog(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(leagueLogJSON))
	}))
	defer srv.Close()

	records, err := apiClient(srv).PlayerGameLog(context.Background(), 203999, "2024-25", RegularSeason)
	require.NoError(t, err)
	assert.Equal(t, "203999", gotQuery.Get("PlayerID"))
	assert.Len(t, records, 3)
}

func TestAllPlayers(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"resultSets": [{
				"name": "CommonAllPlayers",
				"headers": ["PERSON_ID", "DISPLAY_FIRST_LAST", "TEAM_ABBREVIATION"],
				"rowSet": [[203999, "Nikola Jokic", "DEN"]]
			}]
		}`))
	}))
	defer srv.Close()

	table, err := apiClient(srv).AllPlayers(context.Background(), "2024-25", true)
	require.NoError(t, err)
	assert.Equal(t, "1", gotQuery.Get("IsOnlyCurrentSeason"))
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "203999", table.Cell(0, "PERSON_ID"))
	assert.Equal(t, "Nikola Jokic", table.Cell(0, "DISPLAY_FIRST_LAST"))
}

func TestTeamMetricsPropagatesError(t *testing.T) {
	c := NewClient(failingFetcher{})
	_, err := c.TeamMetrics(context.Background(), "2024-25")
	require.Error(t, err)
}

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context, string) ([]byte, error) {
	return nil, errors.New("network down")
}

func TestParseAPIMatchup(t *testing.T) {
	tests := []struct {
		matchup  string
		wantOpp  string
		wantHome bool
		wantOK   bool
	}{
		{"LAL vs. PHX", "PHX", true, true},
		{"LAL @ PHX", "PHX", false, true},
		{"LAL PHX", "", false, false},
		{"", "", false, false},
	}
	for _, tt := range tests {
		opp, home, ok := parseAPIMatchup(tt.matchup)
		assert.Equal(t, tt.wantOpp, opp, tt.matchup)
		assert.Equal(t, tt.wantHome, home, tt.matchup)
		assert.Equal(t, tt.wantOK, ok, tt.matchup)
	}
}
