package pipeline

// Clean builds the "clean" pipeline: restrict to one transport mode, drop
// unused columns, normalize timestamps, gate on validity, derive both delay
// columns. Stage order matters: delays require parsed, non-null timestamps.
func Clean(p Policy) Pipeline {
	return Pipeline{name: "clean", stages: cleanStages(p)}
}

// Prepare builds the "prepare" pipeline: the operator restriction followed by
// the full clean sequence.
func Prepare(p Policy) Pipeline {
	stages := append([]Stage{SelectByOperator(p.Operator)}, cleanStages(p)...)
	return Pipeline{name: "prepare", stages: stages}
}

// PrepareSuffix is the part of Prepare not already covered by Clean. The
// tiered reader applies it to a cached cleaned table to produce the prepared
// tier without recomputing the clean stages.
func PrepareSuffix(p Policy) Pipeline {
	return Pipeline{name: "prepare-suffix", stages: []Stage{SelectByOperator(p.Operator)}}
}

func cleanStages(p Policy) []Stage {
	gate := p.gate()
	stages := []Stage{
		SelectByMode(p.Mode),
		DropUnusedColumns(),
		ParseTimestamps(),
		RequireStatusReal(gate),
		RequireNonNullTimes(gate),
		DeriveDelay(Arrival),
		DeriveDelay(Departure),
	}
	if p.EnableOutlierClip {
		stages = append(stages,
			ClipDelayOutliers(Arrival, p.ArrivalBounds),
			ClipDelayOutliers(Departure, p.DepartureBounds),
		)
	}
	return stages
}
