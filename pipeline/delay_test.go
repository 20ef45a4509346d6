package pipeline_test

import (
	"math"
	"testing"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/pipeline"
)

func TestDeriveDelaySign(t *testing.T) {
	tests := []struct {
		name      string
		scheduled string
		predicted string
		want      float64
	}{
		{"late departure", "01.01.2021 10:00:00", "01.01.2021 10:02:30", 150.0},
		{"early departure", "01.01.2021 10:00:00", "01.01.2021 09:59:00", -60.0},
		{"on time", "01.01.2021 10:00:00", "01.01.2021 10:00:00", 0.0},
		{"across midnight", "01.01.2021 23:59:00", "02.01.2021 00:01:00", 120.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df := rawFrame(row(map[string]string{
				istdaten.ColScheduledDeparture: tt.scheduled,
				istdaten.ColPredictedDeparture: tt.predicted,
			}))
			df = mustApply(t, pipeline.ParseTimestamps(), df)
			df = mustApply(t, pipeline.DeriveDelay(pipeline.Departure), df)

			got := df.Col(istdaten.ColDepartureDelaySeconds).Float()[0]
			if got != tt.want {
				t.Errorf("delay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeriveDelayNullTimestamps(t *testing.T) {
	df := rawFrame(
		row(map[string]string{istdaten.ColScheduledArrival: ""}),
		row(map[string]string{istdaten.ColPredictedArrival: "garbage"}),
		row(nil),
	)
	df = mustApply(t, pipeline.ParseTimestamps(), df)
	df = mustApply(t, pipeline.DeriveDelay(pipeline.Arrival), df)

	if df.Nrow() != 3 {
		t.Fatalf("derivation must not drop rows, got %d", df.Nrow())
	}
	delays := df.Col(istdaten.ColArrivalDelaySeconds).Float()
	if !math.IsNaN(delays[0]) {
		t.Errorf("missing scheduled time should derive NaN, got %v", delays[0])
	}
	if !math.IsNaN(delays[1]) {
		t.Errorf("unparseable predicted time should derive NaN, got %v", delays[1])
	}
	if delays[2] != 30.0 {
		t.Errorf("intact row should derive 30 s, got %v", delays[2])
	}
}

func TestDeriveDelayRejectsBoth(t *testing.T) {
	df := mustApply(t, pipeline.ParseTimestamps(), rawFrame(row(nil)))
	if _, err := pipeline.DeriveDelay(pipeline.Both).Apply(df); err == nil {
		t.Fatal("expected an error for the two-sided direction")
	}
}
