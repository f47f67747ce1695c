// Package ingest holds the conversion step shared by the source
// adapters: once a table has been cleaned and its columns renamed to
// canonical names, turning a row into a record and scoring it is
// identical no matter where the table came from.
package ingest

import (
	"github.com/anthonysuherli/featherweight/internal/htmltable"
	"github.com/anthonysuherli/featherweight/internal/scoring"
	"github.com/anthonysuherli/featherweight/pkg/models"
)

// FillStats copies the canonical numeric columns of row i into rec.
// Columns the table does not have stay nil on the record.
func FillStats(rec *models.GameStatRecord, t htmltable.Table, i int) {
	rec.Points = t.Float(i, "points")
	rec.Rebounds = t.Float(i, "rebounds")
	rec.Assists = t.Float(i, "assists")
	rec.Steals = t.Float(i, "steals")
	rec.Blocks = t.Float(i, "blocks")
	rec.Turnovers = t.Float(i, "turnovers")
	rec.ThreePointersMade = t.Float(i, "three_pointers_made")
	rec.Minutes = t.Float(i, "minutes")
	rec.FieldGoalsMade = t.Float(i, "field_goals_made")
	rec.FieldGoalsAttempted = t.Float(i, "field_goals_attempted")
	rec.FreeThrowsMade = t.Float(i, "free_throws_made")
	rec.FreeThrowsAttempted = t.Float(i, "free_throws_attempted")
}

// Score computes fantasy points for a record, treating absent stats as
// zero.
func Score(rec models.GameStatRecord) float64 {
	return scoring.Score(scoring.StatLine{
		Points:            models.Value(rec.Points),
		ThreePointersMade: models.Value(rec.ThreePointersMade),
		Rebounds:          models.Value(rec.Rebounds),
		Assists:           models.Value(rec.Assists),
		Steals:            models.Value(rec.Steals),
		Blocks:            models.Value(rec.Blocks),
		Turnovers:         models.Value(rec.Turnovers),
	})
}
