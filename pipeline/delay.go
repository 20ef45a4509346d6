package pipeline

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"
)

// DeriveDelay adds the delay column for one direction: predicted minus
// scheduled, in signed float seconds. Rows with a null timestamp on either
// side derive a NaN delay, never an error. Must run after ParseTimestamps.
func DeriveDelay(which Direction) Stage {
	var schedCol, predCol, delayCol string
	switch which {
	case Arrival:
		schedCol, predCol, delayCol = istdaten.ColScheduledArrival, istdaten.ColPredictedArrival, istdaten.ColArrivalDelaySeconds
	case Departure:
		schedCol, predCol, delayCol = istdaten.ColScheduledDeparture, istdaten.ColPredictedDeparture, istdaten.ColDepartureDelaySeconds
	}
	return Stage{
		Name: "derive-delay-" + which.String(),
		Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			if which == Both {
				return dataframe.DataFrame{}, fmt.Errorf("derive-delay applies to one direction at a time")
			}
			sched := df.Col(schedCol).Records()
			pred := df.Col(predCol).Records()
			if df.Err != nil {
				return df, df.Err
			}
			delays := make([]float64, len(sched))
			for i := range sched {
				st, okS := istdaten.ParseNormalized(sched[i])
				pt, okP := istdaten.ParseNormalized(pred[i])
				if !okS || !okP {
					delays[i] = math.NaN()
					continue
				}
				delays[i] = pt.Sub(st).Seconds()
			}
			return result(df.Mutate(series.New(delays, series.Float, delayCol)))
		},
	}
}
