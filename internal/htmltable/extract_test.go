package htmltable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const visibleDoc = `<html><body>
<table id="pgl_basic">
  <thead>
    <tr><th colspan="3">Totals</th></tr>
    <tr><th>Rk</th><th>Date</th><th>PTS</th></tr>
  </thead>
  <tbody>
    <tr><th>1</th><td>2025-01-01</td><td>31</td></tr>
    <tr><th>2</th><td>2025-01-03</td><td>28</td></tr>
  </tbody>
</table>
</body></html>`

const commentedDoc = `<html><body>
<div id="all_per_game">
<!--
<table id="per_game_stats">
  <thead><tr><th>Player</th><th>PTS</th></tr></thead>
  <tbody><tr><td>Nikola Jokic</td><td>29.7</td></tr></tbody>
</table>
-->
</div>
</body></html>`

func TestExtractVisibleTable(t *testing.T) {
	tables := Extract(visibleDoc, "")
	require.Len(t, tables, 1)

	tbl := tables[0]
	assert.Equal(t, "pgl_basic", tbl.ID)
	assert.Equal(t, []string{"Rk", "Date", "PTS"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"1", "2025-01-01", "31"}, tbl.Rows[0])
}

func TestExtractCommentedTable(t *testing.T) {
	tables := Extract(commentedDoc, "")
	require.Len(t, tables, 1)

	tbl := tables[0]
	assert.Equal(t, "per_game_stats", tbl.ID)
	assert.Equal(t, "Nikola Jokic", tbl.Cell(0, "Player"))
	assert.Equal(t, "29.7", tbl.Cell(0, "PTS"))
}

func TestExtractMixedDocument(t *testing.T) {
	doc := visibleDoc + commentedDoc
	tables := Extract(doc, "")
	require.Len(t, tables, 2)
	// Visible tables come before comment-embedded ones.
	assert.Equal(t, "pgl_basic", tables[0].ID)
	assert.Equal(t, "per_game_stats", tables[1].ID)
}

func TestExtractFiltersByID(t *testing.T) {
	doc := visibleDoc + commentedDoc

	tables := Extract(doc, "per_game_stats")
	require.Len(t, tables, 1)
	assert.Equal(t, "per_game_stats", tables[0].ID)

	assert.Empty(t, Extract(doc, "no_such_table"))
}

func TestExtractNeverErrors(t *testing.T) {
	assert.Empty(t, Extract("", ""))
	assert.Empty(t, Extract("<p>no tables here</p>", ""))
	assert.Empty(t, Extract("<<<< not even html", ""))
}

func TestExtractTableWithoutThead(t *testing.T) {
	doc := `<table>
		<tr><th>Team</th><th>W</th></tr>
		<tr><td>DEN</td><td>57</td></tr>
	</table>`
	tables := Extract(doc, "")
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Team", "W"}, tables[0].Columns)
	require.Equal(t, 1, tables[0].Len())
	assert.Equal(t, "DEN", tables[0].Cell(0, "Team"))
}

func TestExtractPadsRaggedRows(t *testing.T) {
	doc := `<table>
		<thead><tr><th>A</th><th>B</th><th>C</th></tr></thead>
		<tbody>
			<tr><td>1</td></tr>
			<tr><td>1</td><td>2</td><td>3</td><td>4</td></tr>
		</tbody>
	</table>`
	tables := Extract(doc, "")
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"1", Missing, Missing}, tables[0].Rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, tables[0].Rows[1])
}
