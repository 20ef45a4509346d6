package reader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/archive"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/artifact"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/config"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/pipeline"
)

// Reader resolves tables for single dates and ranges through the tiered
// cache. Construct one per cache root; it is not safe for concurrent use.
type Reader struct {
	store  *artifact.Store
	client *archive.Client
	policy pipeline.Policy
}

// New builds a Reader from an explicit configuration value and pipeline
// policy.
func New(cfg *config.AppConfig, policy pipeline.Policy) (*Reader, error) {
	store, err := artifact.NewStore(cfg.Data.Directory)
	if err != nil {
		return nil, err
	}
	client := archive.NewClient(cfg.Archive.BaseURL, time.Duration(cfg.Archive.TimeoutMS)*time.Millisecond)
	return &Reader{store: store, client: client, policy: policy}, nil
}

// Store exposes the underlying artifact store, mainly for inspection.
func (r *Reader) Store() *artifact.Store { return r.store }

// ReadRaw returns the raw table for date: the raw artifact if present,
// otherwise the local CSV (persisted as raw artifact), otherwise the CSV
// extracted from the remote monthly archive.
//
// When only the artifact write fails the parsed table is still returned,
// together with a *CacheWriteError.
func (r *Reader) ReadRaw(ctx context.Context, date time.Time) (dataframe.DataFrame, error) {
	date = istdaten.Day(date)
	if r.store.Has(date, artifact.TierRaw) {
		return r.store.Read(date, artifact.TierRaw)
	}

	csvPath := r.store.CSVPath(date)
	if _, err := os.Stat(csvPath); err != nil {
		if err := r.client.FetchMonth(ctx, date, r.store.Dir()); err != nil {
			return dataframe.DataFrame{}, err
		}
		if _, err := os.Stat(csvPath); err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrSourceUnavailable, date.Format("2006-01-02"))
		}
	}

	df, err := istdaten.ReadCSVFile(csvPath)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	log.Printf("parsed %s: %d rows", csvPath, df.Nrow())
	return df, r.persist(date, artifact.TierRaw, df)
}

// ReadCleaned returns the cleaned table for date, computing and persisting
// the raw and cleaned tiers as needed. A cache-write failure on a lower tier
// does not stop derivation; the first such error travels with the result.
func (r *Reader) ReadCleaned(ctx context.Context, date time.Time) (dataframe.DataFrame, error) {
	date = istdaten.Day(date)
	if r.store.Has(date, artifact.TierCleaned) {
		return r.store.Read(date, artifact.TierCleaned)
	}

	raw, werr, err := splitWriteError(r.ReadRaw(ctx, date))
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	cleaned, err := pipeline.Clean(r.policy).Run(raw)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	log.Printf("computed cleaned tier for %s: %d of %d rows kept", date.Format("2006-01-02"), cleaned.Nrow(), raw.Nrow())
	return cleaned, firstError(werr, r.persist(date, artifact.TierCleaned, cleaned))
}

// ReadPrepared returns the prepared table for date. A cached cleaned tier is
// only passed through the prepare suffix (the operator restriction), never
// recleaned.
func (r *Reader) ReadPrepared(ctx context.Context, date time.Time) (dataframe.DataFrame, error) {
	date = istdaten.Day(date)
	if r.store.Has(date, artifact.TierPrepared) {
		return r.store.Read(date, artifact.TierPrepared)
	}

	cleaned, werr, err := splitWriteError(r.ReadCleaned(ctx, date))
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	prepared, err := pipeline.PrepareSuffix(r.policy).Run(cleaned)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	log.Printf("computed prepared tier for %s: %d of %d rows kept", date.Format("2006-01-02"), prepared.Nrow(), cleaned.Nrow())
	return prepared, firstError(werr, r.persist(date, artifact.TierPrepared, prepared))
}

func (r *Reader) persist(date time.Time, tier artifact.Tier, df dataframe.DataFrame) error {
	if err := r.store.Write(date, tier, df); err != nil {
		return &CacheWriteError{Path: r.store.ArtifactPath(date, tier), Err: err}
	}
	return nil
}

// splitWriteError separates a lower-tier CacheWriteError, whose table is
// still usable, from errors that invalidate the read.
func splitWriteError(df dataframe.DataFrame, err error) (dataframe.DataFrame, error, error) {
	var werr *CacheWriteError
	if err != nil && !errors.As(err, &werr) {
		return df, nil, err
	}
	return df, err, nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
