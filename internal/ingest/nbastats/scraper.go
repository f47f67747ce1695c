package nbastats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/anthonysuherli/featherweight/internal/htmltable"
	"github.com/anthonysuherli/featherweight/internal/ingest"
	"github.com/anthonysuherli/featherweight/pkg/models"
)

// numericColumns the API reports that feed the canonical record.
var numericColumns = []string{
	"PTS", "REB", "AST", "STL", "BLK", "TOV",
	"FGM", "FGA", "FG3M", "FTM", "FTA", "MIN",
}

var columnRenames = map[string]string{
	"PLAYER_NAME":       "player_name",
	"TEAM_ABBREVIATION": "team",
	"GAME_DATE":         "game_date",
	"MATCHUP":           "matchup",
	"PTS":               "points",
	"REB":               "rebounds",
	"AST":               "assists",
	"STL":               "steals",
	"BLK":               "blocks",
	"TOV":               "turnovers",
	"FG3M":              "three_pointers_made",
	"MIN":               "minutes",
	"FGM":               "field_goals_made",
	"FGA":               "field_goals_attempted",
	"FTM":               "free_throws_made",
	"FTA":               "free_throws_attempted",
}

// LeagueGameLogs fetches every player's game log for a season, optionally
// restricted to a date range (MM/DD/YYYY). Season uses the API's
// "YYYY-YY" form. Failures propagate: losing a whole season of logs is
// not something to paper over.
func (c *Client) LeagueGameLogs(ctx context.Context, season string, seasonType SeasonType, dateFrom, dateTo string) ([]models.GameStatRecord, error) {
	c.log.WithFields(logrus.Fields{
		"season":      season,
		"season_type": seasonType,
	}).Info("fetching league game logs")

	params := url.Values{
		"LeagueID":     {"00"},
		"Season":       {season},
		"SeasonType":   {string(seasonType)},
		"PlayerOrTeam": {"P"},
		"Counter":      {"1000"},
		"Sorter":       {"DATE"},
		"Direction":    {"DESC"},
		"DateFrom":     {dateFrom},
		"DateTo":       {dateTo},
	}

	t, err := c.resultTable(ctx, "leaguegamelog", params)
	if err != nil {
		return nil, fmt.Errorf("fetching league game logs: %w", err)
	}

	records := c.gameLogRecords(t, season)
	c.log.WithField("records", len(records)).Info("retrieved league game logs")
	return records, nil
}

// PlayerGameLog fetches one player's game log. A failure here is a single
// missing player, so it degrades to an empty result with a diagnostic.
func (c *Client) PlayerGameLog(ctx context.Context, playerID int, season string, seasonType SeasonType) ([]models.GameStatRecord, error) {
	params := url.Values{
		"PlayerID":   {strconv.Itoa(playerID)},
		"Season":     {season},
		"SeasonType": {string(seasonType)},
	}

	t, err := c.resultTable(ctx, "playergamelog", params)
	if err != nil {
		c.log.WithError(err).WithField("player_id", playerID).Warn("player game log fetch failed, returning empty result")
		return nil, nil
	}

	return c.gameLogRecords(t, season), nil
}

// AllPlayers fetches the season's player index
// (PERSON_ID, DISPLAY_FIRST_LAST, TEAM_ID, TEAM_ABBREVIATION, ...).
func (c *Client) AllPlayers(ctx context.Context, season string, activeOnly bool) (htmltable.Table, error) {
	current := "0"
	if activeOnly {
		current = "1"
	}
	params := url.Values{
		"LeagueID":            {"00"},
		"Season":              {season},
		"IsOnlyCurrentSeason": {current},
	}

	t, err := c.resultTable(ctx, "commonallplayers", params)
	if err != nil {
		return htmltable.Table{}, fmt.Errorf("fetching players: %w", err)
	}

	c.log.WithField("players", t.Len()).Info("retrieved player index")
	return htmltable.Clean(t, nil, nil), nil
}

// TeamMetrics fetches estimated team-level metrics used for opponent
// adjustments.
func (c *Client) TeamMetrics(ctx context.Context, season string) (htmltable.Table, error) {
	params := url.Values{
		"LeagueID":   {"00"},
		"Season":     {season},
		"SeasonType": {string(RegularSeason)},
	}

	t, err := c.resultTable(ctx, "teamestimatedmetrics", params)
	if err != nil {
		return htmltable.Table{}, fmt.Errorf("fetching team metrics: %w", err)
	}

	c.log.WithField("teams", t.Len()).Info("retrieved team metrics")
	return htmltable.Clean(t, nil, nil), nil
}

// gameLogRecords cleans an API game-log table and converts each row into
// a canonical, scored record.
func (c *Client) gameLogRecords(t htmltable.Table, season string) []models.GameStatRecord {
	cleaned := htmltable.Clean(t, numericColumns, columnRenames)

	records := make([]models.GameStatRecord, 0, cleaned.Len())
	for i := 0; i < cleaned.Len(); i++ {
		rec := models.GameStatRecord{
			PlayerName: cleaned.Cell(i, "player_name"),
			Season:     season,
			Team:       cleaned.Cell(i, "team"),
			GameDate:   cleaned.Cell(i, "game_date"),
		}
		if opp, home, ok := parseAPIMatchup(cleaned.Cell(i, "matchup")); ok {
			rec.Opponent = opp
			rec.IsHome = models.Bool(home)
		}
		ingest.FillStats(&rec, cleaned, i)
		rec.FantasyPoints = ingest.Score(rec)
		records = append(records, rec)
	}
	return records
}

// parseAPIMatchup splits the API's matchup form: "LAL vs. PHX" means a
// home game for LAL, "LAL @ PHX" a road game.
func parseAPIMatchup(matchup string) (opponent string, isHome bool, ok bool) {
	fields := strings.Fields(matchup)
	if len(fields) != 3 {
		return "", false, false
	}
	switch fields[1] {
	case "vs.":
		return fields[2], true, true
	case "@":
		return fields[2], false, true
	default:
		return "", false, false
	}
}
