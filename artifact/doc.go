// Package artifact persists istdaten tables as parquet cache artifacts, one
// file per (date, tier).
//
// An artifact that exists on disk is immutable ground truth: the tiered
// reader never rewrites it, it only computes the next missing tier. Writes go
// to a temporary file in the same directory and are renamed into place so a
// reader never observes a partially written artifact.
package artifact
