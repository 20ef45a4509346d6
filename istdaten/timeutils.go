package istdaten

import "time"

// TimeLayout is the canonical timestamp layout used inside tables after the
// parse stage.
const TimeLayout = "2006-01-02 15:04:05"

// dayFirstLayouts are the textual formats the provider uses, most specific
// first. Scheduled times carry minute precision, prognosis times seconds, the
// service day is a bare date.
var dayFirstLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
}

// NormalizeDayFirst converts a day-first provider timestamp to the canonical
// layout. Unparseable or empty input yields "", the table-level null sentinel.
func NormalizeDayFirst(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout)
		}
	}
	return ""
}

// ParseNormalized parses a canonical timestamp back into a time.Time. The
// second return value is false for the null sentinel and for values that never
// went through NormalizeDayFirst.
func ParseNormalized(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Day truncates a date to midnight UTC so it can act as a cache key.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
