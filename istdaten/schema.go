package istdaten

// Column names as published by the open transport data provider. The raw CSV
// header and every parquet tier use exactly these names.
const (
	ColServiceDay    = "BETRIEBSTAG"
	ColJourneyID     = "FAHRT_BEZEICHNER"
	ColOperatorID    = "BETREIBER_ID"
	ColOperatorCode  = "BETREIBER_ABK"
	ColOperatorName  = "BETREIBER_NAME"
	ColTransportMode = "PRODUKT_ID"
	ColLineID        = "LINIEN_ID"
	ColLineText      = "LINIEN_TEXT"
	ColRosterID      = "UMLAUF_ID"
	ColVehicleText   = "VERKEHRSMITTEL_TEXT"
	ColExtraTrip     = "ZUSATZFAHRT_TF"
	ColCancelled     = "FAELLT_AUS_TF"
	ColStopID        = "BPUIC"
	ColStopName      = "HALTESTELLEN_NAME"

	ColScheduledArrival   = "ANKUNFTSZEIT"
	ColPredictedArrival   = "AN_PROGNOSE"
	ColArrivalStatus      = "AN_PROGNOSE_STATUS"
	ColScheduledDeparture = "ABFAHRTSZEIT"
	ColPredictedDeparture = "AB_PROGNOSE"
	ColDepartureStatus    = "AB_PROGNOSE_STATUS"
	ColPassThrough        = "DURCHFAHRT_TF"
)

// Derived delay columns, measured in signed seconds (positive = late).
const (
	ColArrivalDelaySeconds   = "ANKUNFTSVERSPAETUNG_s"
	ColDepartureDelaySeconds = "ABFAHRTSVERSPAETUNG_s"
)

// Well-known field values.
const (
	// StatusReal marks a prognosis timestamp as an observed value rather
	// than an estimate.
	StatusReal = "REAL"

	// ModeTrain is the PRODUKT_ID value for train services.
	ModeTrain = "Zug"

	// OperatorSBB is the BETREIBER_ABK of the national railway operator.
	OperatorSBB = "SBB"
)

// RawColumns returns the full raw schema in provider order.
func RawColumns() []string {
	return []string{
		ColServiceDay,
		ColJourneyID,
		ColOperatorID,
		ColOperatorCode,
		ColOperatorName,
		ColTransportMode,
		ColLineID,
		ColLineText,
		ColRosterID,
		ColVehicleText,
		ColExtraTrip,
		ColCancelled,
		ColStopID,
		ColStopName,
		ColScheduledArrival,
		ColPredictedArrival,
		ColArrivalStatus,
		ColScheduledDeparture,
		ColPredictedDeparture,
		ColDepartureStatus,
		ColPassThrough,
	}
}
