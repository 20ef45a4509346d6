package pipeline

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// Stage is one step of a pipeline. Apply must treat its input as immutable
// from the caller's perspective; gota's value semantics give that for free.
type Stage struct {
	Name  string
	Apply func(dataframe.DataFrame) (dataframe.DataFrame, error)
}

// Pipeline composes stages into one named Table -> Table function.
type Pipeline struct {
	name   string
	stages []Stage
}

// Name returns the pipeline name ("clean", "prepare", ...).
func (p Pipeline) Name() string { return p.name }

// Run folds the input table through every stage in order. The first stage
// error aborts the run.
func (p Pipeline) Run(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	cur := df
	for _, st := range p.stages {
		next, err := st.Apply(cur)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("pipeline %s: stage %s: %w", p.name, st.Name, err)
		}
		cur = next
	}
	return cur, nil
}

// result pairs a gota frame with its embedded error so stages stay one-liners.
func result(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	return df, df.Err
}
