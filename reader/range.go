package reader

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"
)

// ReadCleanedRange concatenates the cleaned tables for every calendar day in
// the closed range [start, end], in ascending date order.
func (r *Reader) ReadCleanedRange(ctx context.Context, start, end time.Time) (dataframe.DataFrame, error) {
	return r.readRange(ctx, start, end, r.ReadCleaned)
}

// ReadPreparedRange concatenates the prepared tables for every calendar day
// in the closed range [start, end], in ascending date order.
func (r *Reader) ReadPreparedRange(ctx context.Context, start, end time.Time) (dataframe.DataFrame, error) {
	return r.readRange(ctx, start, end, r.ReadPrepared)
}

// readRange is a sequential fold: the first failing date aborts the whole
// range, no partial aggregation.
func (r *Reader) readRange(ctx context.Context, start, end time.Time, read func(context.Context, time.Time) (dataframe.DataFrame, error)) (dataframe.DataFrame, error) {
	start, end = istdaten.Day(start), istdaten.Day(end)
	if end.Before(start) {
		return dataframe.DataFrame{}, fmt.Errorf("range end %s before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	var out dataframe.DataFrame
	first := true
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		df, err := read(ctx, d)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("read %s: %w", d.Format("2006-01-02"), err)
		}
		if first {
			out = df
			first = false
			continue
		}
		out = out.RBind(df)
		if out.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("concat %s: %w", d.Format("2006-01-02"), out.Err)
		}
	}
	return out, nil
}
