package bref

import (
	"github.com/anthonysuherli/featherweight/internal/htmltable"
	"github.com/anthonysuherli/featherweight/internal/ingest"
	"github.com/anthonysuherli/featherweight/pkg/models"
)

// gameLogNumericColumns are the source columns coerced to numbers before
// renaming. MP is "MM:SS" on game-log pages and coerces to missing, same
// as every other unparseable cell.
var gameLogNumericColumns = []string{
	"PTS", "TRB", "AST", "STL", "BLK", "TOV",
	"FG", "FGA", "3P", "3PA", "FT", "FTA", "MP",
}

// gameLogRenames maps game-log source columns to canonical field names.
// The unlabeled column between Tm and Opp holds "@" for road games.
var gameLogRenames = map[string]string{
	"Date": "game_date",
	"Tm":   "team",
	"":     "location",
	"Opp":  "opponent",
	"PTS":  "points",
	"TRB":  "rebounds",
	"AST":  "assists",
	"STL":  "steals",
	"BLK":  "blocks",
	"TOV":  "turnovers",
	"3P":   "three_pointers_made",
	"MP":   "minutes",
	"FG":   "field_goals_made",
	"FGA":  "field_goals_attempted",
	"FT":   "free_throws_made",
	"FTA":  "free_throws_attempted",
}

var seasonNumericColumns = gameLogNumericColumns

var seasonRenames = map[string]string{
	"Player": "player_name",
	"Pos":    "position",
	"Tm":     "team",
	"G":      "games",
	"GS":     "games_started",
	"PTS":    "points",
	"TRB":    "rebounds",
	"AST":    "assists",
	"STL":    "steals",
	"BLK":    "blocks",
	"TOV":    "turnovers",
	"3P":     "three_pointers_made",
	"MP":     "minutes",
	"FG":     "field_goals_made",
	"FGA":    "field_goals_attempted",
	"FT":     "free_throws_made",
	"FTA":    "free_throws_attempted",
}

// gameLogRecords converts a cleaned game-log table into canonical
// records, one per game, with fantasy points applied.
func gameLogRecords(t htmltable.Table, playerName, season string) []models.GameStatRecord {
	records := make([]models.GameStatRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rec := models.GameStatRecord{
			PlayerName: playerName,
			Season:     season,
			Team:       t.Cell(i, "team"),
			GameDate:   t.Cell(i, "game_date"),
		}
		if opp := t.Cell(i, "opponent"); opp != "" {
			rec.Opponent = opp
			rec.IsHome = models.Bool(t.Cell(i, "location") != "@")
		}
		ingest.FillStats(&rec, t, i)
		rec.FantasyPoints = ingest.Score(rec)
		records = append(records, rec)
	}
	return records
}

// seasonStatRecords converts a cleaned league stats table into one
// canonical record per player row.
func seasonStatRecords(t htmltable.Table, season string) []models.GameStatRecord {
	records := make([]models.GameStatRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		name := t.Cell(i, "player_name")
		if name == "" {
			continue
		}
		rec := models.GameStatRecord{
			PlayerName: name,
			Season:     season,
			Team:       t.Cell(i, "team"),
		}
		ingest.FillStats(&rec, t, i)
		rec.FantasyPoints = ingest.Score(rec)
		records = append(records, rec)
	}
	return records
}
