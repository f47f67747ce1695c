package sink

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthonysuherli/featherweight/internal/htmltable"
	"github.com/anthonysuherli/featherweight/pkg/models"
)

func sampleGameStats() []models.GameStatRecord {
	return []models.GameStatRecord{
		{
			PlayerName:    "Nikola Jokic",
			Season:        "2025",
			Team:          "DEN",
			Opponent:      "LAL",
			IsHome:        models.Bool(false),
			GameDate:      "2024-10-22",
			Points:        models.Float(31),
			Rebounds:      models.Float(8),
			FantasyPoints: 55,
		},
		{
			PlayerName: "Scratch Guy",
			Season:     "2025",
			Team:       "LAL",
		},
	}
}

func TestForFormat(t *testing.T) {
	var buf bytes.Buffer

	s, err := ForFormat("csv", &buf)
	require.NoError(t, err)
	assert.IsType(t, &CSV{}, s)

	s, err = ForFormat("json", &buf)
	require.NoError(t, err)
	assert.IsType(t, &JSON{}, s)

	_, err = ForFormat("parquet", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestCSVWriteGameStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSV(&buf).WriteGameStats(sampleGameStats()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, gameStatHeader, rows[0])
	assert.Equal(t, "Nikola Jokic", rows[1][0])
	assert.Equal(t, "false", rows[1][4])
	assert.Equal(t, "31", rows[1][6])
	assert.Equal(t, "55.00", rows[1][18])

	// Missing stats stay empty, not zero.
	assert.Equal(t, "", rows[2][4])
	assert.Equal(t, "", rows[2][6])
	assert.Equal(t, "0.00", rows[2][18])
}

func TestCSVWriteSalaries(t *testing.T) {
	var buf bytes.Buffer
	records := []models.SalaryRecord{
		{
			Name:      "Luka Doncic",
			Position:  "PG",
			Positions: []string{"PG", "SG"},
			Salary:    10800,
			AvgFpts:   55.43,
			Team:      "DAL",
			Opponent:  "SAS",
			IsHome:    false,
		},
	}
	require.NoError(t, NewCSV(&buf).WriteSalaries(records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, salaryHeader, rows[0])
	assert.Equal(t, "PG/SG", rows[1][2])
	assert.Equal(t, "10800", rows[1][3])
	assert.Equal(t, "55.43", rows[1][4])
}

func TestCSVWriteTable(t *testing.T) {
	var buf bytes.Buffer
	table := htmltable.Table{
		Columns: []string{"Team", "ORtg"},
		Rows:    [][]string{{"BOS", "122.2"}, {"DEN", "117.8"}},
	}
	require.NoError(t, NewCSV(&buf).WriteTable(table))
	assert.Equal(t, "Team,ORtg\nBOS,122.2\nDEN,117.8\n", buf.String())
}

func TestJSONWriteGameStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSON(&buf).WriteGameStats(sampleGameStats()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Nikola Jokic", first["player_name"])
	assert.Equal(t, false, first["is_home"])
	assert.Equal(t, 31.0, first["points"])

	// omitempty keeps absent stats out of the second record entirely.
	var second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	_, hasPoints := second["points"]
	assert.False(t, hasPoints)
}

func TestJSONWriteTable(t *testing.T) {
	var buf bytes.Buffer
	table := htmltable.Table{
		Columns: []string{"Team", "W"},
		Rows:    [][]string{{"BOS", "64"}},
	}
	require.NoError(t, NewJSON(&buf).WriteTable(table))

	var row map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &row))
	assert.Equal(t, map[string]string{"Team": "BOS", "W": "64"}, row)
}
