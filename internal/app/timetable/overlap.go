package timetable

import "github.com/tomascl/horarium/internal/app/models"

// Overlaps reports whether any slot in candidate collides with any slot in
// existing. It is existential: the first colliding pair decides, no full
// conflict enumeration happens.
//
// Malformed records fail closed here: a slot with an unrecognized weekday or
// an unparseable hour range never matches anything. Callers that need to
// reject such data validate it with ValidateSlots on ingestion instead.
func Overlaps(existing, candidate []models.ScheduleSlot) bool {
	for _, a := range existing {
		dayA, ok := ParseWeekday(a.Day)
		if !ok {
			continue
		}
		intervalA, err := ParseHourRange(a.HourRange)
		if err != nil {
			continue
		}

		for _, b := range candidate {
			dayB, ok := ParseWeekday(b.Day)
			if !ok || dayA != dayB {
				continue
			}
			intervalB, err := ParseHourRange(b.HourRange)
			if err != nil {
				continue
			}
			if intervalA.Overlaps(intervalB) {
				return true
			}
		}
	}
	return false
}

// GroupSlots flattens the weekly slots of every group in a schedule entry
// list, so a whole working snapshot can be checked against a candidate group.
func GroupSlots(entries []models.ScheduleEntry) []models.ScheduleSlot {
	var slots []models.ScheduleSlot
	for _, entry := range entries {
		for _, group := range entry.Groups {
			slots = append(slots, group.Slots...)
		}
	}
	return slots
}
