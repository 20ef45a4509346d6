package artifact

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"
)

// rawRow is the parquet schema of the raw tier: the full provider schema, all
// columns as text, exactly as parsed from the source CSV.
type rawRow struct {
	ServiceDay         string `parquet:"BETRIEBSTAG"`
	JourneyID          string `parquet:"FAHRT_BEZEICHNER"`
	OperatorID         string `parquet:"BETREIBER_ID"`
	OperatorCode       string `parquet:"BETREIBER_ABK"`
	OperatorName       string `parquet:"BETREIBER_NAME"`
	TransportMode      string `parquet:"PRODUKT_ID"`
	LineID             string `parquet:"LINIEN_ID"`
	LineText           string `parquet:"LINIEN_TEXT"`
	RosterID           string `parquet:"UMLAUF_ID"`
	VehicleText        string `parquet:"VERKEHRSMITTEL_TEXT"`
	ExtraTrip          string `parquet:"ZUSATZFAHRT_TF"`
	Cancelled          string `parquet:"FAELLT_AUS_TF"`
	StopID             string `parquet:"BPUIC"`
	StopName           string `parquet:"HALTESTELLEN_NAME"`
	ScheduledArrival   string `parquet:"ANKUNFTSZEIT"`
	PredictedArrival   string `parquet:"AN_PROGNOSE"`
	ArrivalStatus      string `parquet:"AN_PROGNOSE_STATUS"`
	ScheduledDeparture string `parquet:"ABFAHRTSZEIT"`
	PredictedDeparture string `parquet:"AB_PROGNOSE"`
	DepartureStatus    string `parquet:"AB_PROGNOSE_STATUS"`
	PassThrough        string `parquet:"DURCHFAHRT_TF"`
}

// derivedRow is the shared parquet schema of the cleaned and prepared tiers:
// the post-drop text columns plus the two derived delay columns.
type derivedRow struct {
	ServiceDay         string  `parquet:"BETRIEBSTAG"`
	JourneyID          string  `parquet:"FAHRT_BEZEICHNER"`
	OperatorCode       string  `parquet:"BETREIBER_ABK"`
	OperatorName       string  `parquet:"BETREIBER_NAME"`
	TransportMode      string  `parquet:"PRODUKT_ID"`
	LineText           string  `parquet:"LINIEN_TEXT"`
	ExtraTrip          string  `parquet:"ZUSATZFAHRT_TF"`
	StopID             string  `parquet:"BPUIC"`
	StopName           string  `parquet:"HALTESTELLEN_NAME"`
	ScheduledArrival   string  `parquet:"ANKUNFTSZEIT"`
	PredictedArrival   string  `parquet:"AN_PROGNOSE"`
	ArrivalStatus      string  `parquet:"AN_PROGNOSE_STATUS"`
	ScheduledDeparture string  `parquet:"ABFAHRTSZEIT"`
	PredictedDeparture string  `parquet:"AB_PROGNOSE"`
	DepartureStatus    string  `parquet:"AB_PROGNOSE_STATUS"`
	PassThrough        string  `parquet:"DURCHFAHRT_TF"`
	ArrivalDelay       float64 `parquet:"ANKUNFTSVERSPAETUNG_s"`
	DepartureDelay     float64 `parquet:"ABFAHRTSVERSPAETUNG_s"`
}

// derivedTextColumns is the text part of the derived schema, in table order.
var derivedTextColumns = []string{
	istdaten.ColServiceDay,
	istdaten.ColJourneyID,
	istdaten.ColOperatorCode,
	istdaten.ColOperatorName,
	istdaten.ColTransportMode,
	istdaten.ColLineText,
	istdaten.ColExtraTrip,
	istdaten.ColStopID,
	istdaten.ColStopName,
	istdaten.ColScheduledArrival,
	istdaten.ColPredictedArrival,
	istdaten.ColArrivalStatus,
	istdaten.ColScheduledDeparture,
	istdaten.ColPredictedDeparture,
	istdaten.ColDepartureStatus,
	istdaten.ColPassThrough,
}

// textColumns extracts the named columns as value slices, failing on a schema
// mismatch rather than persisting a hole.
func textColumns(df dataframe.DataFrame, names []string) (map[string][]string, error) {
	cols := make(map[string][]string, len(names))
	for _, name := range names {
		if !istdaten.HasColumn(df, name) {
			return nil, fmt.Errorf("table is missing column %s", name)
		}
		cols[name] = df.Col(name).Records()
	}
	return cols, nil
}

func rawRowsFromFrame(df dataframe.DataFrame) ([]rawRow, error) {
	cols, err := textColumns(df, istdaten.RawColumns())
	if err != nil {
		return nil, err
	}
	rows := make([]rawRow, df.Nrow())
	for i := range rows {
		rows[i] = rawRow{
			ServiceDay:         cols[istdaten.ColServiceDay][i],
			JourneyID:          cols[istdaten.ColJourneyID][i],
			OperatorID:         cols[istdaten.ColOperatorID][i],
			OperatorCode:       cols[istdaten.ColOperatorCode][i],
			OperatorName:       cols[istdaten.ColOperatorName][i],
			TransportMode:      cols[istdaten.ColTransportMode][i],
			LineID:             cols[istdaten.ColLineID][i],
			LineText:           cols[istdaten.ColLineText][i],
			RosterID:           cols[istdaten.ColRosterID][i],
			VehicleText:        cols[istdaten.ColVehicleText][i],
			ExtraTrip:          cols[istdaten.ColExtraTrip][i],
			Cancelled:          cols[istdaten.ColCancelled][i],
			StopID:             cols[istdaten.ColStopID][i],
			StopName:           cols[istdaten.ColStopName][i],
			ScheduledArrival:   cols[istdaten.ColScheduledArrival][i],
			PredictedArrival:   cols[istdaten.ColPredictedArrival][i],
			ArrivalStatus:      cols[istdaten.ColArrivalStatus][i],
			ScheduledDeparture: cols[istdaten.ColScheduledDeparture][i],
			PredictedDeparture: cols[istdaten.ColPredictedDeparture][i],
			DepartureStatus:    cols[istdaten.ColDepartureStatus][i],
			PassThrough:        cols[istdaten.ColPassThrough][i],
		}
	}
	return rows, nil
}

func frameFromRawRows(rows []rawRow) dataframe.DataFrame {
	n := len(rows)
	cols := make(map[string][]string, len(istdaten.RawColumns()))
	for _, name := range istdaten.RawColumns() {
		cols[name] = make([]string, n)
	}
	for i, r := range rows {
		cols[istdaten.ColServiceDay][i] = r.ServiceDay
		cols[istdaten.ColJourneyID][i] = r.JourneyID
		cols[istdaten.ColOperatorID][i] = r.OperatorID
		cols[istdaten.ColOperatorCode][i] = r.OperatorCode
		cols[istdaten.ColOperatorName][i] = r.OperatorName
		cols[istdaten.ColTransportMode][i] = r.TransportMode
		cols[istdaten.ColLineID][i] = r.LineID
		cols[istdaten.ColLineText][i] = r.LineText
		cols[istdaten.ColRosterID][i] = r.RosterID
		cols[istdaten.ColVehicleText][i] = r.VehicleText
		cols[istdaten.ColExtraTrip][i] = r.ExtraTrip
		cols[istdaten.ColCancelled][i] = r.Cancelled
		cols[istdaten.ColStopID][i] = r.StopID
		cols[istdaten.ColStopName][i] = r.StopName
		cols[istdaten.ColScheduledArrival][i] = r.ScheduledArrival
		cols[istdaten.ColPredictedArrival][i] = r.PredictedArrival
		cols[istdaten.ColArrivalStatus][i] = r.ArrivalStatus
		cols[istdaten.ColScheduledDeparture][i] = r.ScheduledDeparture
		cols[istdaten.ColPredictedDeparture][i] = r.PredictedDeparture
		cols[istdaten.ColDepartureStatus][i] = r.DepartureStatus
		cols[istdaten.ColPassThrough][i] = r.PassThrough
	}
	ss := make([]series.Series, 0, len(istdaten.RawColumns()))
	for _, name := range istdaten.RawColumns() {
		ss = append(ss, series.New(cols[name], series.String, name))
	}
	return dataframe.New(ss...)
}

func derivedRowsFromFrame(df dataframe.DataFrame) ([]derivedRow, error) {
	cols, err := textColumns(df, derivedTextColumns)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{istdaten.ColArrivalDelaySeconds, istdaten.ColDepartureDelaySeconds} {
		if !istdaten.HasColumn(df, name) {
			return nil, fmt.Errorf("table is missing column %s", name)
		}
	}
	arrDelay := df.Col(istdaten.ColArrivalDelaySeconds).Float()
	depDelay := df.Col(istdaten.ColDepartureDelaySeconds).Float()
	rows := make([]derivedRow, df.Nrow())
	for i := range rows {
		rows[i] = derivedRow{
			ServiceDay:         cols[istdaten.ColServiceDay][i],
			JourneyID:          cols[istdaten.ColJourneyID][i],
			OperatorCode:       cols[istdaten.ColOperatorCode][i],
			OperatorName:       cols[istdaten.ColOperatorName][i],
			TransportMode:      cols[istdaten.ColTransportMode][i],
			LineText:           cols[istdaten.ColLineText][i],
			ExtraTrip:          cols[istdaten.ColExtraTrip][i],
			StopID:             cols[istdaten.ColStopID][i],
			StopName:           cols[istdaten.ColStopName][i],
			ScheduledArrival:   cols[istdaten.ColScheduledArrival][i],
			PredictedArrival:   cols[istdaten.ColPredictedArrival][i],
			ArrivalStatus:      cols[istdaten.ColArrivalStatus][i],
			ScheduledDeparture: cols[istdaten.ColScheduledDeparture][i],
			PredictedDeparture: cols[istdaten.ColPredictedDeparture][i],
			DepartureStatus:    cols[istdaten.ColDepartureStatus][i],
			PassThrough:        cols[istdaten.ColPassThrough][i],
			ArrivalDelay:       arrDelay[i],
			DepartureDelay:     depDelay[i],
		}
	}
	return rows, nil
}

func frameFromDerivedRows(rows []derivedRow) dataframe.DataFrame {
	n := len(rows)
	cols := make(map[string][]string, len(derivedTextColumns))
	for _, name := range derivedTextColumns {
		cols[name] = make([]string, n)
	}
	arrDelay := make([]float64, n)
	depDelay := make([]float64, n)
	for i, r := range rows {
		cols[istdaten.ColServiceDay][i] = r.ServiceDay
		cols[istdaten.ColJourneyID][i] = r.JourneyID
		cols[istdaten.ColOperatorCode][i] = r.OperatorCode
		cols[istdaten.ColOperatorName][i] = r.OperatorName
		cols[istdaten.ColTransportMode][i] = r.TransportMode
		cols[istdaten.ColLineText][i] = r.LineText
		cols[istdaten.ColExtraTrip][i] = r.ExtraTrip
		cols[istdaten.ColStopID][i] = r.StopID
		cols[istdaten.ColStopName][i] = r.StopName
		cols[istdaten.ColScheduledArrival][i] = r.ScheduledArrival
		cols[istdaten.ColPredictedArrival][i] = r.PredictedArrival
		cols[istdaten.ColArrivalStatus][i] = r.ArrivalStatus
		cols[istdaten.ColScheduledDeparture][i] = r.ScheduledDeparture
		cols[istdaten.ColPredictedDeparture][i] = r.PredictedDeparture
		cols[istdaten.ColDepartureStatus][i] = r.DepartureStatus
		cols[istdaten.ColPassThrough][i] = r.PassThrough
		arrDelay[i] = r.ArrivalDelay
		depDelay[i] = r.DepartureDelay
	}
	ss := make([]series.Series, 0, len(derivedTextColumns)+2)
	for _, name := range derivedTextColumns {
		ss = append(ss, series.New(cols[name], series.String, name))
	}
	ss = append(ss,
		series.New(arrDelay, series.Float, istdaten.ColArrivalDelaySeconds),
		series.New(depDelay, series.Float, istdaten.ColDepartureDelaySeconds),
	)
	return dataframe.New(ss...)
}
