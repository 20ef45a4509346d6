package pipeline_test

import (
	"math"
	"testing"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/pipeline"
)

func TestCleanEndToEnd(t *testing.T) {
	df := rawFrame(
		row(nil), // SBB train, all REAL: survives
		row(map[string]string{istdaten.ColTransportMode: "Bus"}),
		row(map[string]string{istdaten.ColArrivalStatus: "GESCHAETZT"}),
		row(map[string]string{istdaten.ColPredictedDeparture: ""}),
		row(map[string]string{istdaten.ColOperatorCode: "BLS"}), // other operator, still a train
	)

	out, err := pipeline.Clean(pipeline.DefaultPolicy()).Run(df)
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	// Clean keeps all operators; only mode and validity gates apply.
	if out.Nrow() != 2 {
		t.Fatalf("got %d rows, want 2", out.Nrow())
	}
	for _, col := range []string{istdaten.ColArrivalDelaySeconds, istdaten.ColDepartureDelaySeconds} {
		if !istdaten.HasColumn(out, col) {
			t.Errorf("cleaned table misses derived column %s", col)
		}
	}
	if istdaten.HasColumn(out, istdaten.ColRosterID) {
		t.Error("cleaned table still carries a dropped column")
	}

	depDelays := out.Col(istdaten.ColDepartureDelaySeconds).Float()
	for _, v := range depDelays {
		if v != 150.0 {
			t.Errorf("departure delay = %v, want 150", v)
		}
	}
	arrDelays := out.Col(istdaten.ColArrivalDelaySeconds).Float()
	for _, v := range arrDelays {
		if v != 30.0 {
			t.Errorf("arrival delay = %v, want 30", v)
		}
	}
}

func TestPrepareIsOperatorSubsetOfClean(t *testing.T) {
	df := rawFrame(
		row(nil),
		row(map[string]string{istdaten.ColOperatorCode: "BLS"}),
		row(map[string]string{istdaten.ColOperatorCode: "SOB"}),
	)
	p := pipeline.DefaultPolicy()

	cleaned, err := pipeline.Clean(p).Run(df)
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	prepared, err := pipeline.Prepare(p).Run(df)
	if err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	viaSuffix, err := pipeline.PrepareSuffix(p).Run(cleaned)
	if err != nil {
		t.Fatalf("prepare suffix failed: %v", err)
	}

	if cleaned.Nrow() != 3 || prepared.Nrow() != 1 {
		t.Fatalf("clean=%d prepare=%d rows, want 3 and 1", cleaned.Nrow(), prepared.Nrow())
	}
	// Running the suffix on the cleaned table must equal running prepare on
	// the raw table; the tiered cache depends on this.
	if got, want := viaSuffix.Records(), prepared.Records(); len(got) != len(want) {
		t.Fatalf("suffix path yields %d records, prepare yields %d", len(got), len(want))
	} else {
		for i := range got {
			for j := range got[i] {
				if got[i][j] != want[i][j] {
					t.Fatalf("record %d field %d differs: %q vs %q", i, j, got[i][j], want[i][j])
				}
			}
		}
	}
}

func TestDeparturePolicyKeepsEstimatedArrivals(t *testing.T) {
	df := rawFrame(
		row(map[string]string{
			istdaten.ColArrivalStatus:    "GESCHAETZT",
			istdaten.ColScheduledArrival: "",
			istdaten.ColPredictedArrival: "",
		}),
	)

	// Under the two-sided default this row is gated out entirely.
	strict, err := pipeline.Clean(pipeline.DefaultPolicy()).Run(df)
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if strict.Nrow() != 0 {
		t.Fatalf("two-sided gate kept %d rows, want 0", strict.Nrow())
	}

	// The departure-only variant keeps it: the departure side is REAL and
	// complete, the arrival delay derives to NaN.
	loose, err := pipeline.Clean(pipeline.DeparturePolicy()).Run(df)
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if loose.Nrow() != 1 {
		t.Fatalf("departure-only gate kept %d rows, want 1", loose.Nrow())
	}
	if v := loose.Col(istdaten.ColArrivalDelaySeconds).Float()[0]; !math.IsNaN(v) {
		t.Errorf("arrival delay should be NaN, got %v", v)
	}
	if v := loose.Col(istdaten.ColDepartureDelaySeconds).Float()[0]; v != 150.0 {
		t.Errorf("departure delay = %v, want 150", v)
	}
}

func TestOutlierClipPolicy(t *testing.T) {
	df := rawFrame(
		row(nil), // 150 s departure delay
		row(map[string]string{istdaten.ColPredictedDeparture: "01.01.2021 11:30"}), // 5400 s
	)

	p := pipeline.DefaultPolicy()
	p.EnableOutlierClip = true

	out, err := pipeline.Clean(p).Run(df)
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if out.Nrow() != 1 {
		t.Fatalf("got %d rows, want 1 after clipping", out.Nrow())
	}
	if v := out.Col(istdaten.ColDepartureDelaySeconds).Float()[0]; v != 150.0 {
		t.Errorf("surviving delay = %v, want 150", v)
	}
}
