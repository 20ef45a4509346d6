// Package stats derives punctuality metrics from cleaned or prepared
// istdaten tables.
package stats

import (
	"math"

	"github.com/go-gota/gota/dataframe"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"
)

// PunctualThresholdSeconds is the delay below which a stop counts as
// punctual, following the operator's three-minute convention.
const PunctualThresholdSeconds = 180.0

// DirectionSummary aggregates one delay column, ignoring null delays.
type DirectionSummary struct {
	Observations     int     `json:"observations"`
	MeanDelaySeconds float64 `json:"meanDelaySeconds"`
	PunctualShare    float64 `json:"punctualShare"`
}

// Summary is the punctuality picture of one table.
type Summary struct {
	Rows      int              `json:"rows"`
	Arrival   DirectionSummary `json:"arrival"`
	Departure DirectionSummary `json:"departure"`
}

// Summarize computes mean delay and punctual share per direction over a table
// carrying the derived delay columns.
func Summarize(df dataframe.DataFrame) Summary {
	return Summary{
		Rows:      df.Nrow(),
		Arrival:   summarizeColumn(df, istdaten.ColArrivalDelaySeconds),
		Departure: summarizeColumn(df, istdaten.ColDepartureDelaySeconds),
	}
}

func summarizeColumn(df dataframe.DataFrame, col string) DirectionSummary {
	if !istdaten.HasColumn(df, col) {
		return DirectionSummary{}
	}
	var sum float64
	var n, punctual int
	for _, v := range df.Col(col).Float() {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
		if v < PunctualThresholdSeconds {
			punctual++
		}
	}
	if n == 0 {
		return DirectionSummary{}
	}
	return DirectionSummary{
		Observations:     n,
		MeanDelaySeconds: sum / float64(n),
		PunctualShare:    float64(punctual) / float64(n),
	}
}
