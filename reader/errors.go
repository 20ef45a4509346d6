package reader

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable means neither a local source file nor the remote
// archive contains data for the requested date.
var ErrSourceUnavailable = errors.New("no istdaten source for date")

// CacheWriteError reports a failed artifact write. The read that produced the
// table succeeded; single-date reads return the in-memory table alongside
// this error so the data is not lost with the report.
type CacheWriteError struct {
	Path string
	Err  error
}

func (e *CacheWriteError) Error() string {
	return fmt.Sprintf("persist cache artifact %s: %v", e.Path, e.Err)
}

func (e *CacheWriteError) Unwrap() error { return e.Err }
