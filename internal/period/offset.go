package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimezoneFormat reports offset text that was present but could
// not be parsed.
var ErrInvalidTimezoneFormat = errors.New("invalid timezone format")

// offsetTextLayout renders the short UTC offset of an instant, e.g. "+05:30".
const offsetTextLayout = "-07:00"

// GetOffset resolves an IANA timezone name to a signed whole-minute UTC
// offset at the current instant. An empty name, or one the timezone
// database cannot resolve, yields 0 (UTC) without error.
func GetOffset(timezone string) (int, error) {
	return offsetAt(time.Now(), timezone)
}

func offsetAt(t time.Time, timezone string) (int, error) {
	if timezone == "" {
		return 0, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return 0, nil
	}
	return parseOffsetText(t.In(loc).Format(offsetTextLayout))
}

// parseOffsetText converts short offset text to minutes. Only the hour
// field is read: half-hour zones such as Asia/Kolkata resolve to the whole
// hour. Flagged for correctness review, kept for output parity.
func parseOffsetText(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	sign := 1
	switch text[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimezoneFormat, text)
	}
	hourText, _, _ := strings.Cut(text[1:], ":")
	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimezoneFormat, text)
	}
	return sign * hour * 60, nil
}
