package i18n

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
)

type relLabels struct {
	past, future string
}

var relTimeLabels = map[language.Tag]relLabels{
	language.English: {"ago", "from now"},
	language.German:  {"vor", "in"},
	language.French:  {"il y a", "dans"},
}

// relTimeMagnitudes follow humanize's default table. The German and French
// formats put the label first.
var relTimeMagnitudes = map[language.Tag][]humanize.RelTimeMagnitude{
	language.German: {
		{D: time.Second, Format: "jetzt", DivBy: time.Second},
		{D: 2 * time.Second, Format: "%s 1 Sekunde", DivBy: 1},
		{D: time.Minute, Format: "%s %d Sekunden", DivBy: time.Second},
		{D: 2 * time.Minute, Format: "%s 1 Minute", DivBy: 1},
		{D: time.Hour, Format: "%s %d Minuten", DivBy: time.Minute},
		{D: 2 * time.Hour, Format: "%s 1 Stunde", DivBy: 1},
		{D: humanize.Day, Format: "%s %d Stunden", DivBy: time.Hour},
		{D: 2 * humanize.Day, Format: "%s 1 Tag", DivBy: 1},
		{D: humanize.Week, Format: "%s %d Tagen", DivBy: humanize.Day},
		{D: 2 * humanize.Week, Format: "%s 1 Woche", DivBy: 1},
		{D: humanize.Month, Format: "%s %d Wochen", DivBy: humanize.Week},
		{D: 2 * humanize.Month, Format: "%s 1 Monat", DivBy: 1},
		{D: humanize.Year, Format: "%s %d Monaten", DivBy: humanize.Month},
		{D: 18 * humanize.Month, Format: "%s 1 Jahr", DivBy: 1},
		{D: humanize.LongTime, Format: "%s %d Jahren", DivBy: humanize.Year},
		{D: math.MaxInt64, Format: "%s langer Zeit", DivBy: 1},
	},
	language.French: {
		{D: time.Second, Format: "maintenant", DivBy: time.Second},
		{D: 2 * time.Second, Format: "%s 1 seconde", DivBy: 1},
		{D: time.Minute, Format: "%s %d secondes", DivBy: time.Second},
		{D: 2 * time.Minute, Format: "%s 1 minute", DivBy: 1},
		{D: time.Hour, Format: "%s %d minutes", DivBy: time.Minute},
		{D: 2 * time.Hour, Format: "%s 1 heure", DivBy: 1},
		{D: humanize.Day, Format: "%s %d heures", DivBy: time.Hour},
		{D: 2 * humanize.Day, Format: "%s 1 jour", DivBy: 1},
		{D: humanize.Week, Format: "%s %d jours", DivBy: humanize.Day},
		{D: 2 * humanize.Week, Format: "%s 1 semaine", DivBy: 1},
		{D: humanize.Month, Format: "%s %d semaines", DivBy: humanize.Week},
		{D: 2 * humanize.Month, Format: "%s 1 mois", DivBy: 1},
		{D: humanize.Year, Format: "%s %d mois", DivBy: humanize.Month},
		{D: 18 * humanize.Month, Format: "%s 1 an", DivBy: 1},
		{D: humanize.LongTime, Format: "%s %d ans", DivBy: humanize.Year},
		{D: math.MaxInt64, Format: "%s longtemps", DivBy: 1},
	},
}

// RelTime describes then relative to now, e.g. "3 minutes ago".
func (c *Catalog) RelTime(then, now time.Time) string {
	labels := relTimeLabels[c.tag]
	magnitudes, ok := relTimeMagnitudes[c.tag]
	if !ok {
		return humanize.RelTime(then, now, labels.past, labels.future)
	}
	return humanize.CustomRelTime(then, now, labels.past, labels.future, magnitudes)
}
