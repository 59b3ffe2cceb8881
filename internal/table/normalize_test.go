package table

import (
	"reflect"
	"testing"
)

// hasMissing reports whether any cell is still marked missing
func hasMissing(t *Table) bool {
	for _, row := range t.rows {
		for _, c := range row {
			if c.Missing {
				return true
			}
		}
	}
	return false
}

func TestNormalize(t *testing.T) {
	columns := []string{"Player", "Tm", "3P%", "PTS"}
	rows := [][]Cell{
		{Value("Jane Doe"), Value("LAL"), Value(""), Value("21.3")},
		{Value(""), Value(""), Value(""), Value("")},
		{NA(), NA(), NA(), NA()},
		{Value("John Roe"), Value("BOS"), Value(".351"), NA()},
	}
	raw, err := New(columns, rows)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	got := Normalize(raw)

	want := [][]string{
		{"Player", "Tm", "3P%", "PTS"},
		{"Jane Doe", "LAL", "0.0", "21.3"},
		{"John Roe", "BOS", ".351", "0.0"},
	}
	if !reflect.DeepEqual(got.Records(), want) {
		t.Errorf("Normalize() = %v, want %v", got.Records(), want)
	}

	if hasMissing(got) {
		t.Error("normalized table still has missing cells")
	}
}

func TestNormalize_NoZeroRowsFromBlankRows(t *testing.T) {
	raw, _ := New([]string{"A", "B"}, [][]Cell{
		{Value(""), Value("")},
		{Value("1"), Value("")},
		{Value(""), Value("")},
	})

	got := Normalize(raw)

	if got.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", got.Len())
	}
	for i := 0; i < got.Len(); i++ {
		allFill := true
		for _, c := range got.Row(i) {
			if c.Text != FillValue {
				allFill = false
			}
		}
		if allFill {
			t.Errorf("row %d consists only of fill values", i)
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw, _ := New([]string{"A"}, [][]Cell{{Value("")}, {Value("x")}})

	Normalize(raw)

	if raw.Len() != 2 {
		t.Errorf("input Len() = %d, want 2", raw.Len())
	}
	if raw.Row(0)[0].Missing || raw.Row(0)[0].Text != "" {
		t.Errorf("input cell changed to %+v", raw.Row(0)[0])
	}
}

func TestNormalize_EmptyRow(t *testing.T) {
	raw, _ := New(nil, [][]Cell{{}})

	if got := Normalize(raw); got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}
