// Package istdaten defines the provider schema of Swiss railway actual-data
// ("istdaten") records and loads the daily semicolon-separated source files
// into all-text dataframes.
//
// Column names are the provider's German headers; they are the stable contract
// between the raw parse stage and every persisted cache tier. Go code refers
// to them through the Col* constants.
package istdaten
