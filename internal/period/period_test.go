package period

import (
	"strings"
	"sync"
	"testing"
	"time"

	"olexsmir.xyz/x/is"
)

// fixedPeriod returns a Period pinned to a known instant so boundary
// computations are deterministic.
func fixedPeriod(f Format, offsetMinutes int, at time.Time) *Period {
	return &Period{
		offsetMinutes: offsetMinutes,
		format:        f,
		clock:         func() time.Time { return at },
	}
}

// 2025-03-15 is a Saturday.
var saturday = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func TestPeriod_PresetRanges(t *testing.T) {
	p := fixedPeriod(FormatRFC3339, 0, saturday)

	tests := []struct {
		name string
		got  Range
		want Range
	}{
		{"today", p.Today(), Range{
			Start: "2025-03-15T00:00:00.000000Z",
			End:   "2025-03-15T23:59:59.999999Z",
		}},
		{"yesterday", p.Yesterday(), Range{
			Start: "2025-03-14T00:00:00.000000Z",
			End:   "2025-03-14T23:59:59.999999Z",
		}},
		{"this week runs monday through sunday", p.ThisWeek(), Range{
			Start: "2025-03-10T00:00:00.000000Z",
			End:   "2025-03-16T23:59:59.999999Z",
		}},
		{"last week", p.LastWeek(), Range{
			Start: "2025-03-03T00:00:00.000000Z",
			End:   "2025-03-09T23:59:59.999999Z",
		}},
		{"this month", p.ThisMonth(), Range{
			Start: "2025-03-01T00:00:00.000000Z",
			End:   "2025-03-31T23:59:59.999999Z",
		}},
		{"last month", p.LastMonth(), Range{
			Start: "2025-02-01T00:00:00.000000Z",
			End:   "2025-02-28T23:59:59.999999Z",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is.Equal(t, tt.got, tt.want)
		})
	}
}

func TestPeriod_LastMonthRollsYearBack(t *testing.T) {
	p := fixedPeriod(FormatDate, 0, time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))
	is.Equal(t, p.LastMonth(), Range{Start: "2024-12-01", End: "2024-12-31"})
}

func TestPeriod_OffsetShiftsTheDay(t *testing.T) {
	// 23:00 UTC is already the next day at UTC+2.
	at := time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC)
	p := fixedPeriod(FormatDate, 120, at)
	is.Equal(t, p.Today(), Range{Start: "2025-03-16", End: "2025-03-16"})

	// And still the same day at UTC-5.
	p = fixedPeriod(FormatDate, -300, at)
	is.Equal(t, p.Today(), Range{Start: "2025-03-15", End: "2025-03-15"})
}

func TestPeriod_SundayBelongsToCurrentWeek(t *testing.T) {
	sunday := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)
	p := fixedPeriod(FormatDate, 0, sunday)
	is.Equal(t, p.ThisWeek(), Range{Start: "2025-03-10", End: "2025-03-16"})
}

func TestPeriod_DefinedRange(t *testing.T) {
	p := fixedPeriod(FormatRFC3339, 0, saturday)

	presets := []Preset{
		PresetToday, PresetYesterday,
		PresetThisWeek, PresetLastWeek,
		PresetThisMonth, PresetLastMonth,
	}
	direct := []Range{
		p.Today(), p.Yesterday(),
		p.ThisWeek(), p.LastWeek(),
		p.ThisMonth(), p.LastMonth(),
	}

	for i, preset := range presets {
		rng, err := p.DefinedRange(preset)
		is.Err(t, err, nil)
		is.Equal(t, rng, direct[i])
	}

	t.Run("unknown preset is rejected", func(t *testing.T) {
		_, err := p.DefinedRange(Preset(42))
		is.Err(t, err, ErrUnsupportedPreset)
	})
}

func TestParsePreset(t *testing.T) {
	for name, want := range map[string]Preset{
		"today":      PresetToday,
		"yesterday":  PresetYesterday,
		"this-week":  PresetThisWeek,
		"last-week":  PresetLastWeek,
		"this-month": PresetThisMonth,
		"last-month": PresetLastMonth,
	} {
		got, err := ParsePreset(name)
		is.Err(t, err, nil)
		is.Equal(t, got, want)
	}

	_, err := ParsePreset("next-week")
	is.Err(t, err, ErrUnsupportedPreset)
}

func TestPeriod_PastRange(t *testing.T) {
	p := fixedPeriod(FormatRFC3339, 0, saturday)

	t.Run("including today ends now", func(t *testing.T) {
		is.Equal(t, p.PastRange(7, true), Range{
			Start: "2025-03-08T10:30:00.000000Z",
			End:   "2025-03-15T10:30:00.000000Z",
		})
	})

	t.Run("excluding today ends a day earlier", func(t *testing.T) {
		is.Equal(t, p.PastRange(0, false), Range{
			Start: "2025-03-14T10:30:00.000000Z",
			End:   "2025-03-14T10:30:00.000000Z",
		})
	})

	t.Run("negative days invert the range unchecked", func(t *testing.T) {
		rng := p.PastRange(-3, true)
		is.Equal(t, rng.Start, "2025-03-18T10:30:00.000000Z")
		is.Equal(t, rng.End, "2025-03-15T10:30:00.000000Z")
	})
}

func TestFormat(t *testing.T) {
	t.Run("date format has no time of day", func(t *testing.T) {
		p := fixedPeriod(FormatDate, 0, saturday)
		rng := p.Today()
		is.Equal(t, strings.Contains(rng.Start, "T"), false)
		is.Equal(t, strings.Contains(rng.End, "T"), false)
	})

	t.Run("rfc3339 format always ends with Z", func(t *testing.T) {
		p := fixedPeriod(FormatRFC3339, 120, saturday)
		rng := p.PastRange(1, true)
		is.Equal(t, strings.HasSuffix(rng.Start, "Z"), true)
		is.Equal(t, strings.HasSuffix(rng.End, "Z"), true)
	})

	t.Run("parse", func(t *testing.T) {
		f, err := ParseFormat("rfc3339")
		is.Err(t, err, nil)
		is.Equal(t, f, FormatRFC3339)

		f, err = ParseFormat("date")
		is.Err(t, err, nil)
		is.Equal(t, f, FormatDate)

		_, err = ParseFormat("iso")
		is.Err(t, err, ErrUnknownFormat)
	})
}

func TestPeriod_ConcurrentUse(t *testing.T) {
	at := time.Date(2025, 6, 30, 22, 0, 0, 0, time.UTC)
	// 22:00 UTC on June 30th: already July at UTC+2, still June at UTC-6.
	paris := fixedPeriod(FormatDate, 120, at)
	denver := fixedPeriod(FormatDate, -360, at)

	var wg sync.WaitGroup
	results := make([]Range, 2)
	wg.Add(2)
	go func() { defer wg.Done(); results[0] = paris.ThisMonth() }()
	go func() { defer wg.Done(); results[1] = denver.ThisMonth() }()
	wg.Wait()

	is.Equal(t, results[0], Range{Start: "2025-07-01", End: "2025-07-31"})
	is.Equal(t, results[1], Range{Start: "2025-06-01", End: "2025-06-30"})
}
