// Package salary loads DraftKings and FanDuel salary-file exports into
// canonical slate records. The two platforms use different column layouts
// and different ways of expressing the opponent; both converge on
// models.SalaryRecord here.
package salary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/anthonysuherli/featherweight/internal/logger"
	"github.com/anthonysuherli/featherweight/internal/normalize"
	"github.com/anthonysuherli/featherweight/pkg/models"
)

// Platform identifies a salary-file format. Empty means auto-detect.
type Platform string

const (
	DraftKings Platform = "draftkings"
	FanDuel    Platform = "fanduel"
	AutoDetect Platform = ""
)

// Columns whose presence uniquely identifies a platform. Column names are
// an external contract and matched case-sensitively.
const (
	dkDetectColumn = "AvgPointsPerGame"
	fdDetectColumn = "FPPG"
)

// ParsePlatform maps user input to a platform. Unknown values are a
// configuration error.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return AutoDetect, nil
	case "draftkings", "dk":
		return DraftKings, nil
	case "fanduel", "fd":
		return FanDuel, nil
	default:
		return "", fmt.Errorf("unknown platform %q (want draftkings/dk or fanduel/fd)", s)
	}
}

// Load reads a salary CSV from disk. With AutoDetect the platform is
// inferred from the column headers; a file matching neither platform is a
// configuration error, never a silent guess.
func Load(path string, platform Platform) ([]models.SalaryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening salary file: %w", err)
	}
	defer f.Close()

	records, err := Parse(f, platform)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return records, nil
}

// Parse reads salary CSV content from r.
func Parse(r io.Reader, platform Platform) ([]models.SalaryRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // platforms pad some rows unevenly

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	if platform == AutoDetect {
		switch {
		case has(columns, dkDetectColumn):
			platform = DraftKings
		case has(columns, fdDetectColumn):
			platform = FanDuel
		default:
			return nil, fmt.Errorf("unknown salary file format: could not auto-detect platform from columns %v", header)
		}
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		rows = append(rows, row)
	}

	switch platform {
	case DraftKings:
		return fromDraftKings(columns, rows), nil
	case FanDuel:
		return fromFanDuel(columns, rows), nil
	default:
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
}

func fromDraftKings(columns map[string]int, rows [][]string) []models.SalaryRecord {
	log := logger.Get().WithField("component", "salary")

	records := make([]models.SalaryRecord, 0, len(rows))
	for _, row := range rows {
		rec := models.SalaryRecord{
			Name: cell(columns, row, "Name"),
			Team: cell(columns, row, "TeamAbbrev"),
		}
		rec.Position, rec.Positions = splitPositions(cell(columns, row, "Position"))

		salaryStr := cell(columns, row, "Salary")
		sal, err := parseSalary(salaryStr)
		if err != nil {
			log.WithFields(logrus.Fields{"player": rec.Name, "salary": salaryStr}).Warn("skipping row with unparseable salary")
			continue
		}
		rec.Salary = sal
		rec.AvgFpts = parseFloat(cell(columns, row, dkDetectColumn))
		rec.Opponent, rec.IsHome = normalize.ParseMatchup(cell(columns, row, "Game Info"), rec.Team)

		records = append(records, rec)
	}
	return records
}

func fromFanDuel(columns map[string]int, rows [][]string) []models.SalaryRecord {
	log := logger.Get().WithField("component", "salary")

	records := make([]models.SalaryRecord, 0, len(rows))
	for _, row := range rows {
		rec := models.SalaryRecord{
			Name:          cell(columns, row, "Nickname"),
			Team:          cell(columns, row, "Team"),
			Opponent:      cell(columns, row, "Opponent"),
			InjuryStatus:  cell(columns, row, "Injury Indicator"),
			InjuryDetails: cell(columns, row, "Injury Details"),
		}
		rec.Position, rec.Positions = splitPositions(cell(columns, row, "Position"))

		salaryStr := cell(columns, row, "Salary")
		sal, err := parseSalary(salaryStr)
		if err != nil {
			log.WithFields(logrus.Fields{"player": rec.Name, "salary": salaryStr}).Warn("skipping row with unparseable salary")
			continue
		}
		rec.Salary = sal
		rec.AvgFpts = parseFloat(cell(columns, row, fdDetectColumn))

		// The Game column reads "AWAY@HOME"; a game that starts with the
		// player's own team code is a road game.
		if has(columns, "Game") {
			game := cell(columns, row, "Game")
			rec.IsHome = game != "" && !strings.HasPrefix(game, rec.Team)
		}

		records = append(records, rec)
	}
	return records
}

func has(columns map[string]int, name string) bool {
	_, ok := columns[name]
	return ok
}

func cell(columns map[string]int, row []string, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// splitPositions breaks a "/"-delimited eligibility list ("PG/SG") into
// the ordered list plus the primary position.
func splitPositions(raw string) (primary string, all []string) {
	if raw == "" {
		return "", nil
	}
	all = strings.Split(raw, "/")
	for i := range all {
		all[i] = strings.TrimSpace(all[i])
	}
	return all[0], all
}

func parseSalary(s string) (int, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	return strconv.Atoi(cleaned)
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
