package table

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// LoadOptions keeps every column as text so values survive a round trip unchanged.
// No cell text is treated as a NaN marker ("NA" is a real value).
var LoadOptions = []dataframe.LoadOption{
	dataframe.HasHeader(true),
	dataframe.DetectTypes(false),
	dataframe.DefaultType(series.String),
	dataframe.NaNValues(nil),
}

// Frame converts the table into a string-typed DataFrame.
// The frame carries an error if the table has no rows.
func (t *Table) Frame() dataframe.DataFrame {
	return dataframe.LoadRecords(t.Records(), LoadOptions...)
}

// FromFrame builds a table from a DataFrame's records
func FromFrame(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("reading frame: %w", df.Err)
	}
	return FromRecords(df.Records())
}
