package humanize

import (
	"fmt"

	"golang.org/x/text/language"
)

type unit int

const (
	unitSecond unit = iota
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

// localeData renders one locale. idioms substitute whole phrases for
// specific (unit, value) pairs, the way "yesterday" replaces "1 day ago".
type localeData struct {
	units  map[unit][2]string // singular, plural
	past   string
	future string
	idioms map[unit]map[int64]string
	plural func(n int64) bool
}

var english = &localeData{
	units: map[unit][2]string{
		unitSecond: {"second", "seconds"},
		unitMinute: {"minute", "minutes"},
		unitHour:   {"hour", "hours"},
		unitDay:    {"day", "days"},
		unitWeek:   {"week", "weeks"},
		unitMonth:  {"month", "months"},
		unitYear:   {"year", "years"},
	},
	past:   "%d %s ago",
	future: "in %d %s",
	idioms: map[unit]map[int64]string{
		unitSecond: {0: "now"},
		unitDay:    {-1: "yesterday", 1: "tomorrow"},
		unitWeek:   {-1: "last week", 1: "next week"},
		unitMonth:  {-1: "last month", 1: "next month"},
		unitYear:   {-1: "last year", 1: "next year"},
	},
	plural: func(n int64) bool { return n != 1 },
}

var french = &localeData{
	units: map[unit][2]string{
		unitSecond: {"seconde", "secondes"},
		unitMinute: {"minute", "minutes"},
		unitHour:   {"heure", "heures"},
		unitDay:    {"jour", "jours"},
		unitWeek:   {"semaine", "semaines"},
		unitMonth:  {"mois", "mois"},
		unitYear:   {"an", "ans"},
	},
	past:   "il y a %d %s",
	future: "dans %d %s",
	idioms: map[unit]map[int64]string{
		unitSecond: {0: "maintenant"},
		unitDay:    {-1: "hier", 1: "demain"},
		unitWeek:   {-1: "la semaine dernière", 1: "la semaine prochaine"},
		unitMonth:  {-1: "le mois dernier", 1: "le mois prochain"},
		unitYear:   {-1: "l'année dernière", 1: "l'année prochaine"},
	},
	plural: func(n int64) bool { return n >= 2 },
}

var (
	supported = []language.Tag{language.English, language.French}
	byTag     = map[language.Tag]*localeData{
		language.English: english,
		language.French:  french,
	}
	matcher = language.NewMatcher(supported)
)

// localeFor matches a BCP 47 tag against the supported set. The matcher's
// own contract applies to unknown tags: it picks the closest supported
// locale, English when nothing matches.
func localeFor(locale string) *localeData {
	if locale == "" {
		return english
	}
	_, idx := language.MatchStrings(matcher, locale)
	return byTag[supported[idx]]
}

func (l *localeData) phrase(value int64, u unit) string {
	if forms, ok := l.idioms[u]; ok {
		if s, ok := forms[value]; ok {
			return s
		}
	}

	n := value
	if n < 0 {
		n = -n
	}
	name := l.units[u][0]
	if l.plural(n) {
		name = l.units[u][1]
	}

	if value < 0 {
		return fmt.Sprintf(l.past, n, name)
	}
	return fmt.Sprintf(l.future, n, name)
}
