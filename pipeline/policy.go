package pipeline

import "github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"

// Policy parameterizes the named pipelines. The historical cleaning variants
// disagreed on validity gating and outlier bounds; both live here as explicit
// knobs instead of separate pipelines.
type Policy struct {
	// Mode is the transport mode the clean pipeline restricts to.
	Mode string

	// Operator is the operator code the prepare pipeline restricts to.
	Operator string

	// RequireBothStatuses gates on both arrival and departure validity
	// before deriving delays. When false only the departure side is gated;
	// arrival delays then derive to NaN where arrival fields are null.
	RequireBothStatuses bool

	// EnableOutlierClip appends the outlier stages after delay derivation.
	EnableOutlierClip bool

	ArrivalBounds   Bounds
	DepartureBounds Bounds
}

// DefaultPolicy gates on both directions, restricts to trains and SBB, and
// leaves outlier clipping off.
func DefaultPolicy() Policy {
	return Policy{
		Mode:                istdaten.ModeTrain,
		Operator:            istdaten.OperatorSBB,
		RequireBothStatuses: true,
		ArrivalBounds:       SymmetricHourBounds(),
		DepartureBounds:     SymmetricHourBounds(),
	}
}

// DeparturePolicy is the departure-only variant: only departure validity is
// required before delays are derived.
func DeparturePolicy() Policy {
	p := DefaultPolicy()
	p.RequireBothStatuses = false
	return p
}

// gate is the direction whose status and timestamps must be valid.
func (p Policy) gate() Direction {
	if p.RequireBothStatuses {
		return Both
	}
	return Departure
}
