// Package htmltable extracts tabular data from HTML documents and cleans
// it into a uniform shape. Extraction covers both tables rendered normally
// and tables hidden inside HTML comments, which some sources use to defeat
// naive scrapers.
package htmltable

import "strconv"

// Missing marks a cell whose value is absent or failed numeric coercion.
const Missing = ""

// Table is an untyped tabular structure straight out of extraction. Rows
// may still contain repeated header rows and fully-empty rows until Clean
// has run over it.
type Table struct {
	ID      string
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at row i in the named column. Out-of-range
// lookups return the missing marker.
func (t Table) Cell(i int, column string) string {
	idx := t.ColumnIndex(column)
	if idx < 0 || i < 0 || i >= len(t.Rows) || idx >= len(t.Rows[i]) {
		return Missing
	}
	return t.Rows[i][idx]
}

// Float returns the numeric value at row i in the named column, or nil if
// the cell is missing or not numeric.
func (t Table) Float(i int, column string) *float64 {
	cell := t.Cell(i, column)
	if cell == Missing {
		return nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Maps renders the table as one map per row, keyed by column name. Handy
// for JSON responses where column order does not matter.
func (t Table) Maps() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		m := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(row) {
				m[col] = row[i]
			}
		}
		out = append(out, m)
	}
	return out
}

// clone deep-copies the table so cleaning never mutates its input.
func (t Table) clone() Table {
	out := Table{
		ID:      t.ID,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
