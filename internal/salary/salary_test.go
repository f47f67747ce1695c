package salary

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
	}{
		{"", AutoDetect},
		{"dk", DraftKings},
		{"draftkings", DraftKings},
		{"DraftKings", DraftKings},
		{"fd", FanDuel},
		{"fanduel", FanDuel},
		{" FD ", FanDuel},
	}
	for _, tt := range tests {
		got, err := ParsePlatform(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParsePlatform("yahoo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown platform")
}

func TestLoadDraftKings(t *testing.T) {
	records, err := Load(filepath.Join("testdata", "draftkings.csv"), AutoDetect)
	require.NoError(t, err)

	// The row with salary "N/A" is skipped.
	require.Len(t, records, 3)

	jokic := records[0]
	assert.Equal(t, "Nikola Jokic", jokic.Name)
	assert.Equal(t, "C", jokic.Position)
	assert.Equal(t, []string{"C"}, jokic.Positions)
	assert.Equal(t, 11200, jokic.Salary)
	assert.Equal(t, 58.91, jokic.AvgFpts)
	assert.Equal(t, "DEN", jokic.Team)
	assert.Equal(t, "LAL", jokic.Opponent)
	assert.False(t, jokic.IsHome)

	luka := records[1]
	assert.Equal(t, "PG", luka.Position)
	assert.Equal(t, []string{"PG", "SG"}, luka.Positions)

	lebron := records[2]
	assert.Equal(t, "DEN", lebron.Opponent)
	assert.True(t, lebron.IsHome)
}

func TestLoadFanDuel(t *testing.T) {
	records, err := Load(filepath.Join("testdata", "fanduel.csv"), AutoDetect)
	require.NoError(t, err)
	require.Len(t, records, 3)

	jokic := records[0]
	assert.Equal(t, "Nikola Jokic", jokic.Name)
	assert.Equal(t, 11500, jokic.Salary)
	assert.Equal(t, 59.3, jokic.AvgFpts)
	assert.Equal(t, "DEN", jokic.Team)
	assert.Equal(t, "LAL", jokic.Opponent)
	assert.False(t, jokic.IsHome)
	assert.Empty(t, jokic.InjuryStatus)

	lebron := records[1]
	assert.True(t, lebron.IsHome)
	assert.Equal(t, "GTD", lebron.InjuryStatus)
	assert.Equal(t, "Ankle soreness", lebron.InjuryDetails)

	trent := records[2]
	assert.Equal(t, []string{"PG", "SG"}, trent.Positions)
	assert.Equal(t, "O", trent.InjuryStatus)
}

func TestParseExplicitPlatformSkipsDetection(t *testing.T) {
	// A DK-shaped file parsed as DK even without asking for detection.
	csv := "Name,Position,Salary,TeamAbbrev,Game Info,AvgPointsPerGame\n" +
		"Nikola Jokic,C,$11200,DEN,DEN@LAL 10:00PM ET,58.91\n"
	records, err := Parse(strings.NewReader(csv), DraftKings)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 11200, records[0].Salary)
}

func TestParseSalaryStripsFormatting(t *testing.T) {
	csv := "Name,Position,Salary,TeamAbbrev,Game Info,AvgPointsPerGame\n" +
		"Nikola Jokic,C,\"$11,200\",DEN,DEN@LAL,58.91\n"
	records, err := Parse(strings.NewReader(csv), AutoDetect)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 11200, records[0].Salary)
}

func TestParseUnknownFormat(t *testing.T) {
	csv := "Player,Cost,Club\nNikola Jokic,11200,DEN\n"
	records, err := Parse(strings.NewReader(csv), AutoDetect)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "could not auto-detect")
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""), AutoDetect)
	require.Error(t, err)
}

func TestParseFanDuelWithoutGameColumn(t *testing.T) {
	csv := "Nickname,Position,Salary,Team,Opponent,FPPG\n" +
		"Nikola Jokic,C,11500,DEN,LAL,59.3\n"
	records, err := Parse(strings.NewReader(csv), AutoDetect)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].IsHome)
}

func TestSplitPositions(t *testing.T) {
	primary, all := splitPositions("PG/SG/SF")
	assert.Equal(t, "PG", primary)
	assert.Equal(t, []string{"PG", "SG", "SF"}, all)

	primary, all = splitPositions("")
	assert.Empty(t, primary)
	assert.Nil(t, all)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.csv"), AutoDetect)
	require.Error(t, err)
}
