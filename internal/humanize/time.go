// Package humanize renders instants as localized relative-time phrases
// (e.g. "3 hours ago", "dans 2 jours").
package humanize

import (
	"math"
	"strconv"
	"time"
)

// bucket thresholds are upper bounds on the absolute delta in seconds. The
// reported magnitude divides by the PREVIOUS bucket's threshold (1 for the
// first), which is the table's defined behavior near boundaries; keep the
// values in lockstep.
type bucket struct {
	limit int64
	div   int64
	unit  unit
}

var buckets = []bucket{
	{60, 1, unitSecond},
	{3600, 60, unitMinute},
	{86400, 3600, unitHour},
	{604800, 86400, unitDay},
	{2592000, 604800, unitWeek},
	{31536000, 2592000, unitMonth},
}

// yearSeconds scales everything past the last bucket.
const yearSeconds = 31536000

// Time returns an English relative-time phrase for t.
func Time(t time.Time) string {
	return TimeAgo(t, "en")
}

// TimeAgo renders t relative to the current instant in the given BCP 47
// locale. Past instants read "... ago", future ones "in ...". Locale tags
// are resolved by the language matcher, which falls back to English for
// anything it does not recognize.
func TimeAgo(t time.Time, locale string) string {
	return timeAgoAt(t, time.Now(), locale)
}

func timeAgoAt(t, now time.Time, locale string) string {
	delta := t.Sub(now).Seconds()
	abs := math.Abs(delta)

	div, u := float64(yearSeconds), unitYear
	for _, b := range buckets {
		if abs < float64(b.limit) {
			div, u = float64(b.div), b.unit
			break
		}
	}

	// Half rounds toward +inf, so -90s is "1 minute ago" rather than 2.
	value := int64(math.Floor(delta/div + 0.5))
	return localeFor(locale).phrase(value, u)
}

// ParseInstant reads RFC 3339 text, a bare calendar date, or unix
// milliseconds. Anything else yields the zero time, which downstream
// formats to a degenerate (but harmless) phrase instead of failing.
func ParseInstant(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms)
	}
	return time.Time{}
}
