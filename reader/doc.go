// Package reader resolves istdaten tables for calendar dates through the
// tiered cache.
//
// For one date the tiers are checked in order: prepared artifact, cleaned
// artifact, raw parquet artifact, local CSV source, remote monthly archive.
// Each tier that has to be computed is persisted exactly once; artifacts that
// already exist are immutable and are never recomputed. Range reads fold the
// single-date reader over a closed date range in ascending order and fail
// fast on the first failing date.
package reader
