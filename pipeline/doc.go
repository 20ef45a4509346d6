// Package pipeline cleans istdaten tables and derives delay columns.
//
// A pipeline is an ordered list of stages, each a pure Table -> Table
// function that only removes rows or adds/drops columns. The two named
// pipelines, "clean" and "prepare", are composed from a Policy value, so the
// historical behavior variants (validity gating, outlier bounds) are explicit
// configurations of one composer rather than duplicated code paths.
package pipeline
