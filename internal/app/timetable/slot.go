package timetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomascl/horarium/internal/app/models"
)

// Slot parsing errors
var (
	ErrInvalidHourRange    = errors.New("invalid hour range")
	ErrUnrecognizedWeekday = errors.New("unrecognized weekday")
)

// Interval is a half-open hour interval [Start, End).
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints (6-8 against 8-10) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Span returns the interval length in hours.
func (i Interval) Span() int {
	return i.End - i.Start
}

// ParseHourRange parses an "<startHour>-<endHour>" encoding into a half-open
// interval. Non-numeric bounds or end <= start are errors.
func ParseHourRange(raw string) (Interval, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), "-", 2)
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidHourRange, raw)
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidHourRange, raw)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidHourRange, raw)
	}

	if end <= start {
		return Interval{}, fmt.Errorf("%w: %q: end must be after start", ErrInvalidHourRange, raw)
	}

	return Interval{Start: start, End: end}, nil
}

// ValidateSlots checks every slot for a recognizable weekday and a parseable
// hour range. The ingestion path uses this to reject corrupt catalog or
// schedule data; the overlap and grid paths instead skip malformed records so
// a single bad row cannot break rendering.
func ValidateSlots(slots []models.ScheduleSlot) error {
	for _, slot := range slots {
		if _, ok := ParseWeekday(slot.Day); !ok {
			return fmt.Errorf("%w: %q", ErrUnrecognizedWeekday, slot.Day)
		}
		if _, err := ParseHourRange(slot.HourRange); err != nil {
			return err
		}
	}
	return nil
}
