package archive

import (
	"fmt"
	"time"
)

// DefaultBaseURL is the provider's archive directory.
const DefaultBaseURL = "https://opentransportdata.swiss/wp-content/uploads/ist-daten-archive"

// schemeCutoff is the date after which archives use the long naming scheme.
var schemeCutoff = time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)

// ArchiveURL returns the monthly archive URL covering date. Dates after the
// cutoff use ist-daten-YYYY-MM.zip, dates on or before it YY_MM.zip.
func ArchiveURL(baseURL string, date time.Time) string {
	if date.After(schemeCutoff) {
		return fmt.Sprintf("%s/ist-daten-%s.zip", baseURL, date.Format("2006-01"))
	}
	return fmt.Sprintf("%s/%s.zip", baseURL, date.Format("06_01"))
}

// ArchiveFilename is the local name the downloaded archive is stored under.
func ArchiveFilename(date time.Time) string {
	return fmt.Sprintf("ist-daten-%s.zip", date.Format("2006-01"))
}
