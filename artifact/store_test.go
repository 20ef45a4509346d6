package artifact_test

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/artifact"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/pipeline"
)

var testDate = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

func rawFrame() dataframe.DataFrame {
	records := [][]string{
		istdaten.RawColumns(),
		{
			"01.01.2021", "85:11:2600:001", "85:11", "SBB", "Schweizerische Bundesbahnen SBB",
			"Zug", "26", "IC 26", "", "IC", "false", "false", "8507000", "Bern",
			"01.01.2021 09:58", "01.01.2021 09:58:30", "REAL",
			"01.01.2021 10:00", "01.01.2021 10:02:30", "REAL", "false",
		},
		{
			"01.01.2021", "85:11:2600:002", "85:11", "SBB", "Schweizerische Bundesbahnen SBB",
			"Zug", "26", "IC 26", "", "IC", "false", "false", "8503000", "Zürich HB",
			"", "", "UNBEKANNT",
			"01.01.2021 11:00", "01.01.2021 11:00:40", "REAL", "false",
		},
	}
	return dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
}

func TestArtifactPaths(t *testing.T) {
	store, err := artifact.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		tier artifact.Tier
		want string
	}{
		{artifact.TierRaw, "2021-01-01_istdaten.parquet"},
		{artifact.TierCleaned, "2021-01-01_istdaten_cleaned.parquet"},
		{artifact.TierPrepared, "2021-01-01_istdaten_prepared.parquet"},
	}
	for _, tt := range tests {
		if got := filepath.Base(store.ArtifactPath(testDate, tt.tier)); got != tt.want {
			t.Errorf("tier %s: path %q, want %q", tt.tier, got, tt.want)
		}
	}
	if got := filepath.Base(store.CSVPath(testDate)); got != "2021-01-01_istdaten.csv" {
		t.Errorf("csv path %q", got)
	}
}

func TestNewStoreIdempotent(t *testing.T) {
	dir := t.TempDir()
	if _, err := artifact.NewStore(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := artifact.NewStore(dir); err != nil {
		t.Fatalf("second create on an existing directory failed: %v", err)
	}
}

func TestRawRoundTrip(t *testing.T) {
	store, err := artifact.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	df := rawFrame()

	if store.Has(testDate, artifact.TierRaw) {
		t.Fatal("artifact should not exist before write")
	}
	if err := store.Write(testDate, artifact.TierRaw, df); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !store.Has(testDate, artifact.TierRaw) {
		t.Fatal("artifact should exist after write")
	}

	got, err := store.Read(testDate, artifact.TierRaw)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.Nrow() != df.Nrow() {
		t.Fatalf("got %d rows, want %d", got.Nrow(), df.Nrow())
	}
	for _, col := range istdaten.RawColumns() {
		want := df.Col(col).Records()
		have := got.Col(col).Records()
		for i := range want {
			if have[i] != want[i] {
				t.Errorf("column %s row %d: %q, want %q", col, i, have[i], want[i])
			}
		}
	}
}

func TestDerivedRoundTrip(t *testing.T) {
	store, err := artifact.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cleaned, err := pipeline.Clean(pipeline.DeparturePolicy()).Run(rawFrame())
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}

	if err := store.Write(testDate, artifact.TierCleaned, cleaned); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := store.Read(testDate, artifact.TierCleaned)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if got.Nrow() != cleaned.Nrow() {
		t.Fatalf("got %d rows, want %d", got.Nrow(), cleaned.Nrow())
	}
	wantDep := cleaned.Col(istdaten.ColDepartureDelaySeconds).Float()
	haveDep := got.Col(istdaten.ColDepartureDelaySeconds).Float()
	for i := range wantDep {
		if haveDep[i] != wantDep[i] {
			t.Errorf("departure delay row %d: %v, want %v", i, haveDep[i], wantDep[i])
		}
	}
	// NaN arrival delays must survive the round trip as NaN.
	wantArr := cleaned.Col(istdaten.ColArrivalDelaySeconds).Float()
	haveArr := got.Col(istdaten.ColArrivalDelaySeconds).Float()
	for i := range wantArr {
		if math.IsNaN(wantArr[i]) != math.IsNaN(haveArr[i]) {
			t.Errorf("arrival delay row %d: NaN mismatch (%v vs %v)", i, haveArr[i], wantArr[i])
		} else if !math.IsNaN(wantArr[i]) && haveArr[i] != wantArr[i] {
			t.Errorf("arrival delay row %d: %v, want %v", i, haveArr[i], wantArr[i])
		}
	}
}

func TestWriteRejectsSchemaMismatch(t *testing.T) {
	store, err := artifact.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// A raw table lacks the derived delay columns.
	if err := store.Write(testDate, artifact.TierCleaned, rawFrame()); err == nil {
		t.Fatal("expected an error writing a raw table as a derived tier")
	}
	if store.Has(testDate, artifact.TierCleaned) {
		t.Error("failed write must not leave an artifact behind")
	}
}
