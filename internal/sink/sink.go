// Package sink writes pipeline output. The pipeline itself never
// persists anything; it hands records to whichever Sink the caller
// supplies.
package sink

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anthonysuherli/featherweight/internal/htmltable"
	"github.com/anthonysuherli/featherweight/pkg/models"
)

// Sink receives the pipeline's terminal outputs.
type Sink interface {
	WriteGameStats(records []models.GameStatRecord) error
	WriteSalaries(records []models.SalaryRecord) error
	WriteTable(t htmltable.Table) error
}

// ForFormat returns a sink writing the given format to w. Unknown formats
// are a configuration error.
func ForFormat(format string, w io.Writer) (Sink, error) {
	switch format {
	case "csv":
		return NewCSV(w), nil
	case "json":
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want csv or json)", format)
	}
}

// CSV writes records as comma-separated values with a header row.
type CSV struct {
	w io.Writer
}

func NewCSV(w io.Writer) *CSV {
	return &CSV{w: w}
}

var gameStatHeader = []string{
	"player_name", "season", "team", "opponent", "is_home", "game_date",
	"points", "rebounds", "assists", "steals", "blocks", "turnovers",
	"three_pointers_made", "minutes", "field_goals_made",
	"field_goals_attempted", "free_throws_made", "free_throws_attempted",
	"fantasy_points",
}

func (s *CSV) WriteGameStats(records []models.GameStatRecord) error {
	w := csv.NewWriter(s.w)
	if err := w.Write(gameStatHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.PlayerName,
			rec.Season,
			rec.Team,
			rec.Opponent,
			boolCell(rec.IsHome),
			rec.GameDate,
			floatCell(rec.Points),
			floatCell(rec.Rebounds),
			floatCell(rec.Assists),
			floatCell(rec.Steals),
			floatCell(rec.Blocks),
			floatCell(rec.Turnovers),
			floatCell(rec.ThreePointersMade),
			floatCell(rec.Minutes),
			floatCell(rec.FieldGoalsMade),
			floatCell(rec.FieldGoalsAttempted),
			floatCell(rec.FreeThrowsMade),
			floatCell(rec.FreeThrowsAttempted),
			strconv.FormatFloat(rec.FantasyPoints, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

var salaryHeader = []string{
	"name", "position", "positions", "salary", "avg_fpts", "team",
	"opponent", "is_home", "injury_status", "injury_details",
}

func (s *CSV) WriteSalaries(records []models.SalaryRecord) error {
	w := csv.NewWriter(s.w)
	if err := w.Write(salaryHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Name,
			rec.Position,
			strings.Join(rec.Positions, "/"),
			strconv.Itoa(rec.Salary),
			strconv.FormatFloat(rec.AvgFpts, 'f', -1, 64),
			rec.Team,
			rec.Opponent,
			strconv.FormatBool(rec.IsHome),
			rec.InjuryStatus,
			rec.InjuryDetails,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func (s *CSV) WriteTable(t htmltable.Table) error {
	w := csv.NewWriter(s.w)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return w.Error()
}

// JSON writes records as JSON lines, one record per line.
type JSON struct {
	w io.Writer
}

func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

func (s *JSON) WriteGameStats(records []models.GameStatRecord) error {
	enc := json.NewEncoder(s.w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
	}
	return nil
}

func (s *JSON) WriteSalaries(records []models.SalaryRecord) error {
	enc := json.NewEncoder(s.w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
	}
	return nil
}

func (s *JSON) WriteTable(t htmltable.Table) error {
	enc := json.NewEncoder(s.w)
	for _, row := range t.Maps() {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("encoding row: %w", err)
		}
	}
	return nil
}

func floatCell(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func boolCell(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}
