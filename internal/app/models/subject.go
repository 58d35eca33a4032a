package models

// ScheduleSlot is a single weekly occupancy of a group: a weekday plus an
// hour range of the form "<startHour>-<endHour>". The day value is stored as
// received (accented display names and uppercase ASCII keys both occur in
// catalog data) and is normalized by the timetable package before comparison.
type ScheduleSlot struct {
	Day       string  `json:"day" db:"day" csv:"day"`
	HourRange string  `json:"hour" db:"hour_range" csv:"hour"`
	Location  *string `json:"location,omitempty" db:"location" csv:"location"`
	Professor *string `json:"professor,omitempty" db:"professor" csv:"professor"`
}

// Group represents a section/offering of a subject with its own weekly slots.
// Its sku is unique within the parent subject.
type Group struct {
	Sku      string         `json:"sku" db:"sku"`
	Capacity *int           `json:"capacity,omitempty" db:"capacity"`
	Enrolled *int           `json:"enrolled,omitempty" db:"enrolled"`
	Slots    []ScheduleSlot `json:"schedule" db:"-"`
}

// Subject represents a catalog course identified by sku.
// Requirements holds sku references to prerequisite subjects, in catalog order.
type Subject struct {
	Sku          string   `json:"sku" db:"sku"`
	Name         string   `json:"name" db:"name"`
	Credits      int      `json:"credits" db:"credits"`
	Level        int      `json:"level" db:"level"`
	Requirements []string `json:"requirements,omitempty" db:"-"`
	Groups       []Group  `json:"groups,omitempty" db:"-"`
}
