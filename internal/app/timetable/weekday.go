// Package timetable holds the pure scheduling core: weekday normalization,
// hour-range parsing, slot overlap detection, prerequisite validation, the
// baseline/working schedule diff and the calendar grid projection.
//
// Everything in this package is a synchronous, side-effect-free function over
// caller-supplied snapshots. Nothing here logs, retries or keeps state
// between calls.
package timetable

import "strings"

// Weekday is the canonical weekday enumerant used for all comparisons.
// Catalog and schedule data carry two encodings of the same day (accented
// Spanish display names and uppercase ASCII keys); both are normalized to
// this type before any slot is compared.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
)

// Weekdays lists the six schedulable days in calendar order.
var Weekdays = [6]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayAliases = map[string]Weekday{
	"MONDAY":    Monday,
	"LUNES":     Monday,
	"TUESDAY":   Tuesday,
	"MARTES":    Tuesday,
	"WEDNESDAY": Wednesday,
	"MIERCOLES": Wednesday,
	"MIÉRCOLES": Wednesday,
	"THURSDAY":  Thursday,
	"JUEVES":    Thursday,
	"FRIDAY":    Friday,
	"VIERNES":   Friday,
	"SATURDAY":  Saturday,
	"SABADO":    Saturday,
	"SÁBADO":    Saturday,
}

var weekdayDisplay = map[Weekday]string{
	Monday:    "Lunes",
	Tuesday:   "Martes",
	Wednesday: "Miércoles",
	Thursday:  "Jueves",
	Friday:    "Viernes",
	Saturday:  "Sábado",
}

// ParseWeekday normalizes a raw day value through the alias table.
// Unrecognized values report ok=false and must never match anything.
func ParseWeekday(raw string) (Weekday, bool) {
	day, ok := weekdayAliases[strings.ToUpper(strings.TrimSpace(raw))]
	return day, ok
}

// DisplayName returns the accented display form of a weekday.
func (d Weekday) DisplayName() string {
	return weekdayDisplay[d]
}
