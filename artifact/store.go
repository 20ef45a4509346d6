package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/parquet-go/parquet-go"
)

const dataset = "istdaten"

// Store reads and writes cache artifacts under one directory.
type Store struct {
	dir string
}

// NewStore creates the cache root if needed; creation is idempotent and a
// no-op when the directory already exists.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache root: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the cache root.
func (s *Store) Dir() string { return s.dir }

// ArtifactPath returns the deterministic artifact filename for (date, tier),
// e.g. 2021-01-01_istdaten_cleaned.parquet.
func (s *Store) ArtifactPath(date time.Time, tier Tier) string {
	return filepath.Join(s.dir, date.Format("2006-01-02")+"_"+dataset+tier.suffix()+".parquet")
}

// CSVPath returns the expected location of the daily source file.
func (s *Store) CSVPath(date time.Time) string {
	return filepath.Join(s.dir, date.Format("2006-01-02")+"_"+dataset+".csv")
}

// Has reports whether the (date, tier) artifact exists.
func (s *Store) Has(date time.Time, tier Tier) bool {
	_, err := os.Stat(s.ArtifactPath(date, tier))
	return err == nil
}

// Write persists a table as the (date, tier) artifact. The file appears
// atomically: rows are written to a temporary sibling first and renamed into
// place once complete.
func (s *Store) Write(date time.Time, tier Tier, df dataframe.DataFrame) error {
	path := s.ArtifactPath(date, tier)
	tmp := path + ".tmp"
	var err error
	if tier == TierRaw {
		var rows []rawRow
		if rows, err = rawRowsFromFrame(df); err == nil {
			err = parquet.WriteFile(tmp, rows)
		}
	} else {
		var rows []derivedRow
		if rows, err = derivedRowsFromFrame(df); err == nil {
			err = parquet.WriteFile(tmp, rows)
		}
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s artifact for %s: %w", tier, date.Format("2006-01-02"), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s artifact for %s: %w", tier, date.Format("2006-01-02"), err)
	}
	return nil
}

// Read loads the (date, tier) artifact back into a table.
func (s *Store) Read(date time.Time, tier Tier) (dataframe.DataFrame, error) {
	path := s.ArtifactPath(date, tier)
	if tier == TierRaw {
		rows, err := parquet.ReadFile[rawRow](path)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("read %s artifact for %s: %w", tier, date.Format("2006-01-02"), err)
		}
		return frameFromRawRows(rows), nil
	}
	rows, err := parquet.ReadFile[derivedRow](path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read %s artifact for %s: %w", tier, date.Format("2006-01-02"), err)
	}
	return frameFromDerivedRows(rows), nil
}
