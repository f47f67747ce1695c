package htmltable

import (
	"strconv"
	"strings"
)

// rankColumns are the index-style columns sources use to restate the
// header every N rows. A row whose rank cell equals the column's own
// label is a repeated header, not data.
var rankColumns = []string{"Rk", "Rank"}

// Clean normalizes one extracted table, in order:
//
//  1. drop repeated header rows (rank cell equals the rank column label)
//  2. drop rows that are empty across all columns
//  3. coerce each column named in numericFields to a numeric value,
//     replacing anything unparseable with the missing marker
//  4. rename columns per rename
//
// Renaming runs last because numericFields and the rename keys both refer
// to source column names. Clean never mutates its input and is
// idempotent: cleaning already-clean output changes nothing.
func Clean(t Table, numericFields []string, rename map[string]string) Table {
	out := t.clone()

	for _, rank := range rankColumns {
		idx := out.ColumnIndex(rank)
		if idx < 0 {
			continue
		}
		kept := out.Rows[:0]
		for _, row := range out.Rows {
			if idx < len(row) && row[idx] == rank {
				continue
			}
			kept = append(kept, row)
		}
		out.Rows = kept
	}

	kept := out.Rows[:0]
	for _, row := range out.Rows {
		if !emptyRow(row) {
			kept = append(kept, row)
		}
	}
	out.Rows = kept

	for _, field := range numericFields {
		idx := out.ColumnIndex(field)
		if idx < 0 {
			continue
		}
		for _, row := range out.Rows {
			if idx < len(row) {
				row[idx] = coerceNumeric(row[idx])
			}
		}
	}

	if len(rename) > 0 {
		for i, col := range out.Columns {
			if canonical, ok := rename[col]; ok {
				out.Columns[i] = canonical
			}
		}
	}

	return out
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// coerceNumeric parses a cell as a number and reformats it canonically.
// Unparseable values become the missing marker rather than an error:
// partially-populated rows are routine, not exceptional. The canonical
// formatting is stable under re-parsing, which is what makes Clean
// idempotent.
func coerceNumeric(cell string) string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Missing
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
