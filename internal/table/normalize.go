package table

// FillValue replaces missing cells once blank rows are gone
const FillValue = "0.0"

// Normalize returns a cleaned copy of t. The passes run in order:
// blanks become missing, fully missing rows are dropped, the rest is zero-filled.
// Filling before dropping would keep blank rows alive as rows of zeros.
func Normalize(t *Table) *Table {
	rows := markMissing(t.rows)
	rows = dropBlankRows(rows)
	rows = fillMissing(rows, FillValue)

	return &Table{
		columns: t.Columns(),
		rows:    rows,
	}
}

// markMissing copies rows, replacing empty-string cells with the missing marker
func markMissing(rows [][]Cell) [][]Cell {
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, c := range row {
			if !c.Missing && c.Text == "" {
				c = NA()
			}
			cells[j] = c
		}
		out[i] = cells
	}
	return out
}

func dropBlankRows(rows [][]Cell) [][]Cell {
	kept := make([][]Cell, 0, len(rows))
	for _, row := range rows {
		if allMissing(row) {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// allMissing is true for an empty row too, matching a repeated header row with no data cells
func allMissing(row []Cell) bool {
	for _, c := range row {
		if !c.Missing {
			return false
		}
	}
	return true
}

func fillMissing(rows [][]Cell, fill string) [][]Cell {
	for _, row := range rows {
		for j := range row {
			if row[j].Missing {
				row[j] = Value(fill)
			}
		}
	}
	return rows
}

