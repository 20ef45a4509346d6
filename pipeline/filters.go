package pipeline

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"
)

// Direction selects which side of a stop observation a stage applies to.
type Direction int

const (
	Arrival Direction = iota
	Departure
	Both
)

func (d Direction) String() string {
	switch d {
	case Arrival:
		return "arrival"
	case Departure:
		return "departure"
	default:
		return "both"
	}
}

// statusColumns returns the prognosis status column(s) gated by d.
func (d Direction) statusColumns() []string {
	switch d {
	case Arrival:
		return []string{istdaten.ColArrivalStatus}
	case Departure:
		return []string{istdaten.ColDepartureStatus}
	default:
		return []string{istdaten.ColArrivalStatus, istdaten.ColDepartureStatus}
	}
}

// timeColumns returns the scheduled+predicted timestamp pair(s) for d.
func (d Direction) timeColumns() []string {
	switch d {
	case Arrival:
		return []string{istdaten.ColScheduledArrival, istdaten.ColPredictedArrival}
	case Departure:
		return []string{istdaten.ColScheduledDeparture, istdaten.ColPredictedDeparture}
	default:
		return []string{
			istdaten.ColScheduledArrival, istdaten.ColPredictedArrival,
			istdaten.ColScheduledDeparture, istdaten.ColPredictedDeparture,
		}
	}
}

// unusedColumns are identifiers no later stage reads.
var unusedColumns = []string{
	istdaten.ColOperatorID,
	istdaten.ColLineID,
	istdaten.ColRosterID,
	istdaten.ColVehicleText,
	istdaten.ColCancelled,
}

// timestampColumns are normalized by ParseTimestamps.
var timestampColumns = []string{
	istdaten.ColPredictedArrival,
	istdaten.ColScheduledArrival,
	istdaten.ColPredictedDeparture,
	istdaten.ColScheduledDeparture,
	istdaten.ColServiceDay,
}

// SelectByOperator keeps rows operated by the given operator code.
func SelectByOperator(code string) Stage {
	return Stage{
		Name: "select-operator",
		Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			return result(df.Filter(dataframe.F{
				Colname:    istdaten.ColOperatorCode,
				Comparator: series.Eq,
				Comparando: code,
			}))
		},
	}
}

// SelectByMode keeps rows of one transport mode, e.g. istdaten.ModeTrain.
func SelectByMode(mode string) Stage {
	return Stage{
		Name: "select-mode",
		Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			return result(df.Filter(dataframe.F{
				Colname:    istdaten.ColTransportMode,
				Comparator: series.Eq,
				Comparando: mode,
			}))
		},
	}
}

// DropUnusedColumns removes identifier columns not needed downstream.
func DropUnusedColumns() Stage {
	return Stage{
		Name: "drop-unused-columns",
		Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			return result(df.Drop(unusedColumns))
		},
	}
}

// ParseTimestamps normalizes the day-first timestamp columns and the service
// day to the canonical layout. Unparseable values become the null sentinel,
// never an error; the non-null gates drop such rows later.
func ParseTimestamps() Stage {
	return Stage{
		Name: "parse-timestamps",
		Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			for _, col := range timestampColumns {
				vals := df.Col(col).Records()
				norm := make([]string, len(vals))
				for i, v := range vals {
					norm[i] = istdaten.NormalizeDayFirst(v)
				}
				df = df.Mutate(series.New(norm, series.String, col))
				if df.Err != nil {
					return df, df.Err
				}
			}
			return df, nil
		},
	}
}

// RequireStatusReal keeps rows whose prognosis status is an observed value for
// the given direction(s).
func RequireStatusReal(which Direction) Stage {
	return Stage{
		Name: "require-status-real-" + which.String(),
		Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			for _, col := range which.statusColumns() {
				df = df.Filter(dataframe.F{
					Colname:    col,
					Comparator: series.Eq,
					Comparando: istdaten.StatusReal,
				})
				if df.Err != nil {
					return df, df.Err
				}
			}
			return df, nil
		},
	}
}

// RequireNonNullTimes keeps rows where the relevant scheduled and predicted
// timestamps are both present.
func RequireNonNullTimes(which Direction) Stage {
	return Stage{
		Name: "require-non-null-times-" + which.String(),
		Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			for _, col := range which.timeColumns() {
				df = df.Filter(dataframe.F{
					Colname:    col,
					Comparator: series.CompFunc,
					Comparando: func(el series.Element) bool {
						return !el.IsNA() && el.String() != ""
					},
				})
				if df.Err != nil {
					return df, df.Err
				}
			}
			return df, nil
		},
	}
}

// Bounds is an exclusive delay interval in seconds.
type Bounds struct {
	Lower float64
	Upper float64
}

// SymmetricHourBounds keeps delays strictly inside one hour either way.
func SymmetricHourBounds() Bounds { return Bounds{Lower: -3600, Upper: 3600} }

// AsymmetricBounds allows ten minutes of earliness and one hour of lateness.
func AsymmetricBounds() Bounds { return Bounds{Lower: -600, Upper: 3600} }

// ClipDelayOutliers keeps rows whose derived delay lies strictly within b.
// Rows with a null (NaN) delay are dropped as well. The default pipelines do
// not invoke this stage; it is enabled through Policy.EnableOutlierClip.
func ClipDelayOutliers(which Direction, b Bounds) Stage {
	return Stage{
		Name: "clip-delay-outliers-" + which.String(),
		Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			for _, col := range which.delayColumns() {
				df = df.Filter(dataframe.F{
					Colname:    col,
					Comparator: series.CompFunc,
					Comparando: func(el series.Element) bool {
						v := el.Float()
						return v > b.Lower && v < b.Upper
					},
				})
				if df.Err != nil {
					return df, df.Err
				}
			}
			return df, nil
		},
	}
}

// delayColumns returns the derived delay column(s) for d.
func (d Direction) delayColumns() []string {
	switch d {
	case Arrival:
		return []string{istdaten.ColArrivalDelaySeconds}
	case Departure:
		return []string{istdaten.ColDepartureDelaySeconds}
	default:
		return []string{istdaten.ColArrivalDelaySeconds, istdaten.ColDepartureDelaySeconds}
	}
}
