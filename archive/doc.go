// Package archive fetches the provider's monthly istdaten zip archives and
// extracts the daily CSV files they contain into the local cache root.
//
// The provider renamed its archives mid-2021; ArchiveURL picks the naming
// scheme from the requested date. Downloads fail for the requested date only,
// with no retries.
package archive
