package istdaten

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ReadCSV parses a daily istdaten source file. Every column is kept as text;
// type conversion is a pipeline concern, not a parse concern.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(';'),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse istdaten csv: %w", df.Err)
	}
	if missing := missingColumns(df); len(missing) > 0 {
		return dataframe.DataFrame{}, fmt.Errorf("istdaten csv is missing columns: %s", strings.Join(missing, ", "))
	}
	return df, nil
}

// ReadCSVFile reads and parses the source file at path.
func ReadCSVFile(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open istdaten csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// HasColumn reports whether the table carries a column with the given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func missingColumns(df dataframe.DataFrame) []string {
	var missing []string
	for _, col := range RawColumns() {
		if !HasColumn(df, col) {
			missing = append(missing, col)
		}
	}
	return missing
}
