package istdaten_test

import (
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/istdaten"
)

func TestNormalizeDayFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "prognosis with seconds",
			input:    "01.01.2021 13:14:36",
			expected: "2021-01-01 13:14:36",
		},
		{
			name:     "scheduled with minute precision",
			input:    "01.01.2021 13:14",
			expected: "2021-01-01 13:14:00",
		},
		{
			name:     "service day",
			input:    "31.12.2020",
			expected: "2020-12-31 00:00:00",
		},
		{
			name:     "empty stays null",
			input:    "",
			expected: "",
		},
		{
			name:     "garbage becomes null",
			input:    "not a timestamp",
			expected: "",
		},
		{
			name:     "month-first layout is rejected",
			input:    "2021-01-01 13:14:36",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := istdaten.NormalizeDayFirst(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseNormalized(t *testing.T) {
	got, ok := istdaten.ParseNormalized("2021-01-01 10:02:30")
	if !ok {
		t.Fatal("expected canonical timestamp to parse")
	}
	want := time.Date(2021, time.January, 1, 10, 2, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, ok := istdaten.ParseNormalized(""); ok {
		t.Error("null sentinel must not parse")
	}
	if _, ok := istdaten.ParseNormalized("01.01.2021 10:00"); ok {
		t.Error("unnormalized input must not parse")
	}
}

func TestDay(t *testing.T) {
	in := time.Date(2021, time.March, 5, 17, 30, 12, 99, time.FixedZone("x", 3600))
	got := istdaten.Day(in)
	want := time.Date(2021, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
