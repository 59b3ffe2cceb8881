package table

import (
	"errors"
	"fmt"
)

const (
	// TeamColumn holds the team abbreviation of each player row
	TeamColumn = "Tm"
	// TotalTeam marks a traded player's combined row across teams
	TotalTeam = "TOT"
)

var (
	ErrShapeMismatch = errors.New("row width does not match header")
	ErrUnknownColumn = errors.New("unknown column")
)

// Cell is a single field value. A Missing cell carries no text.
type Cell struct {
	Text    string `json:"text"`
	Missing bool   `json:"missing,omitempty"`
}

// Value creates a present cell
func Value(text string) Cell {
	return Cell{Text: text}
}

// NA creates a missing cell
func NA() Cell {
	return Cell{Missing: true}
}

// Table is a season's per-player stats: ordered columns and rows of cells.
// Every row has exactly len(Columns) cells.
type Table struct {
	columns []string
	rows    [][]Cell
}

// New creates a Table, rejecting rows whose width differs from the header.
// Column names must be non-empty and unique.
func New(columns []string, rows [][]Cell) (*Table, error) {
	if err := checkColumns(columns); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d", ErrShapeMismatch, i, len(row), len(columns))
		}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Table{
		columns: cols,
		rows:    rows,
	}, nil
}

func checkColumns(columns []string) error {
	seen := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			return fmt.Errorf("%w: column %d has no name", ErrShapeMismatch, i)
		}
		if j, ok := seen[c]; ok {
			return fmt.Errorf("%w: column %q appears at %d and %d", ErrShapeMismatch, c, j, i)
		}
		seen[c] = i
	}
	return nil
}

// FromRecords builds a Table from a header record followed by data records,
// treating every value as present
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New("no header record")
	}

	rows := make([][]Cell, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]Cell, len(rec))
		for j, v := range rec {
			row[j] = Value(v)
		}
		rows = append(rows, row)
	}
	return New(records[0], rows)
}

// Columns returns a copy of the column names in order
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the cells of row i
func (t *Table) Row(i int) []Cell {
	return t.rows[i]
}

// ColumnIndex returns the position of a column, or -1 if absent
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has a column with that name
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns the text of every cell in the named column
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}

	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[idx].Text
	}
	return values, nil
}

// Records returns the header followed by one record per row.
// Missing cells are written as empty strings.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.rows)+1)
	records = append(records, t.Columns())
	for _, row := range t.rows {
		rec := make([]string, len(row))
		for j, c := range row {
			rec[j] = c.Text
		}
		records = append(records, rec)
	}
	return records
}
