// Package period computes calendar-aligned date ranges relative to a UTC
// offset resolved once from an IANA timezone name.
package period

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// Format selects the pattern used to render range boundaries.
type Format int

const (
	// FormatRFC3339 renders microsecond precision with a literal trailing Z.
	// The Z stays literal even when the configured offset is non-zero: the
	// rendered components are the wall clock of the offset zone.
	FormatRFC3339 Format = iota
	// FormatDate renders the calendar date only.
	FormatDate
)

const (
	layoutRFC3339 = "2006-01-02T15:04:05.000000Z"
	layoutDate    = "2006-01-02"
)

var (
	ErrUnknownFormat     = errors.New("unknown format")
	ErrUnsupportedPreset = errors.New("unsupported preset")
)

// ParseFormat maps the config/CLI spelling of a format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "rfc3339":
		return FormatRFC3339, nil
	case "date":
		return FormatDate, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) String() string {
	if f == FormatDate {
		return "date"
	}
	return "rfc3339"
}

func (f Format) layout() string {
	if f == FormatDate {
		return layoutDate
	}
	return layoutRFC3339
}

// Preset names one of the six calendar ranges computable without parameters.
type Preset int

const (
	PresetToday Preset = iota
	PresetYesterday
	PresetThisWeek
	PresetLastWeek
	PresetThisMonth
	PresetLastMonth
)

// ParsePreset maps the kebab-case CLI spelling of a preset.
func ParsePreset(s string) (Preset, error) {
	switch s {
	case "today":
		return PresetToday, nil
	case "yesterday":
		return PresetYesterday, nil
	case "this-week":
		return PresetThisWeek, nil
	case "last-week":
		return PresetLastWeek, nil
	case "this-month":
		return PresetThisMonth, nil
	case "last-month":
		return PresetLastMonth, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPreset, s)
}

// Range is a formatted date range. Both ends are rendered with the owning
// Period's format.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Period computes ranges against a UTC offset captured at construction.
// The offset is a snapshot: it does not track later timezone rule changes,
// construct a new Period to refresh it. Instances are immutable and safe
// for concurrent use.
type Period struct {
	offsetMinutes int
	format        Format
	clock         func() time.Time
}

// New resolves timezone to a signed whole-minute UTC offset and captures it
// together with the output format. An empty or unresolvable timezone means
// UTC; offset text that resolves but cannot be parsed is an error.
func New(format Format, timezone string) (*Period, error) {
	offset, err := GetOffset(timezone)
	if err != nil {
		return nil, err
	}
	return &Period{
		offsetMinutes: offset,
		format:        format,
		clock:         time.Now,
	}, nil
}

// OffsetMinutes returns the captured UTC offset.
func (p *Period) OffsetMinutes() int { return p.offsetMinutes }

// now is the current instant viewed in the fixed offset zone.
func (p *Period) now() time.Time {
	return p.clock().In(time.FixedZone("", p.offsetMinutes*60))
}

// calendar wraps t with Monday-based week boundaries.
func calendar(t time.Time) *now.Now {
	cfg := &now.Config{WeekStartDay: time.Monday}
	return cfg.With(t)
}

func (p *Period) render(start, end time.Time) Range {
	layout := p.format.layout()
	return Range{Start: start.Format(layout), End: end.Format(layout)}
}

// Today spans the current calendar day, 00:00:00 to 23:59:59.999999.
func (p *Period) Today() Range {
	c := calendar(p.now())
	return p.render(c.BeginningOfDay(), c.EndOfDay())
}

// Yesterday spans the previous calendar day.
func (p *Period) Yesterday() Range {
	c := calendar(p.now().AddDate(0, 0, -1))
	return p.render(c.BeginningOfDay(), c.EndOfDay())
}

// ThisWeek spans Monday through Sunday of the current week.
func (p *Period) ThisWeek() Range {
	c := calendar(p.now())
	return p.render(c.BeginningOfWeek(), c.EndOfWeek())
}

// LastWeek spans Monday through Sunday of the previous week.
func (p *Period) LastWeek() Range {
	c := calendar(p.now().AddDate(0, 0, -7))
	return p.render(c.BeginningOfWeek(), c.EndOfWeek())
}

// ThisMonth spans the first through the last day of the current month.
func (p *Period) ThisMonth() Range {
	c := calendar(p.now())
	return p.render(c.BeginningOfMonth(), c.EndOfMonth())
}

// LastMonth spans the first through the last day of the previous month,
// rolling the year back in January.
func (p *Period) LastMonth() Range {
	first := calendar(p.now()).BeginningOfMonth()
	c := calendar(first.AddDate(0, 0, -1))
	return p.render(c.BeginningOfMonth(), c.EndOfMonth())
}

// DefinedRange dispatches to the preset's range method. Preset values
// outside the six known ones are rejected rather than computed wrong.
func (p *Period) DefinedRange(preset Preset) (Range, error) {
	switch preset {
	case PresetToday:
		return p.Today(), nil
	case PresetYesterday:
		return p.Yesterday(), nil
	case PresetThisWeek:
		return p.ThisWeek(), nil
	case PresetLastWeek:
		return p.LastWeek(), nil
	case PresetThisMonth:
		return p.ThisMonth(), nil
	case PresetLastMonth:
		return p.LastMonth(), nil
	}
	return Range{}, fmt.Errorf("%w: %d", ErrUnsupportedPreset, preset)
}

// PastRange looks back prevDays days. The end is now, or now minus one day
// when includingToday is false; the start is the end minus prevDays days.
// Ends are not day-aligned, and a negative prevDays yields an inverted
// range: both are the caller's responsibility.
func (p *Period) PastRange(prevDays int, includingToday bool) Range {
	end := p.now()
	if !includingToday {
		end = end.AddDate(0, 0, -1)
	}
	start := end.AddDate(0, 0, -prevDays)
	return p.render(start, end)
}
