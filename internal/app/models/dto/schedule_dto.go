package dto

import (
	"github.com/tomascl/horarium/internal/app/models"
	"github.com/tomascl/horarium/internal/app/timetable"
)

// ScheduleEntryRequest references one subject of a working snapshot by sku
// together with the group skus it currently holds. The server hydrates the
// full subject and group records from the catalog.
type ScheduleEntryRequest struct {
	Sku    string   `json:"sku" binding:"required" example:"MAT201"`
	Groups []string `json:"groups" binding:"required" example:"G1"`
}

// WorkingScheduleRequest is a client-supplied working snapshot.
type WorkingScheduleRequest struct {
	Entries []ScheduleEntryRequest `json:"entries" binding:"required"`
}

// CandidateCheckRequest asks whether a group may be added to the given
// working snapshot: overlap and requirement rules are evaluated, nothing is
// persisted.
type CandidateCheckRequest struct {
	Sku     string                 `json:"sku" binding:"required" example:"MAT201"`
	Group   string                 `json:"group" binding:"required" example:"G2"`
	Entries []ScheduleEntryRequest `json:"entries"`
}

// CandidateCheckResponse is the typed outcome of a candidate check.
type CandidateCheckResponse struct {
	Allowed bool `json:"allowed"`
	// Conflict is set when the candidate's slots collide with the snapshot.
	Conflict bool `json:"conflict"`
	// Violation is set when a requirement rule rejects the addition.
	Violation *timetable.Violation `json:"violation,omitempty"`
	Reason    *string              `json:"reason,omitempty"`
}

// ScheduleEntryResponse is one working/baseline entry enriched with the
// per-group edit state so clients render exactly what the diff will submit.
type ScheduleEntryResponse struct {
	Subject models.Subject       `json:"subject"`
	Groups  []GroupStateResponse `json:"groups"`
}

// GroupStateResponse pairs a chosen group with its classification.
type GroupStateResponse struct {
	models.Group
	State timetable.BlockState `json:"state"`
}

// ScheduleResponse is the persisted baseline of a student, widened into the
// entries shape the editing workflow uses.
type ScheduleResponse struct {
	Entries []models.ScheduleEntry `json:"entries"`
}

// GridCellResponse is one non-empty day × hour cell of the projected grid.
type GridCellResponse struct {
	Day     timetable.Weekday `json:"day"`
	DayName string            `json:"dayName" example:"Miércoles"`
	Hour    int               `json:"hour" example:"8"`
	Blocks  []timetable.Block `json:"blocks"`
}

// GridResponse is the full projection, cells ordered day-major then by hour.
type GridResponse struct {
	StartHour int                `json:"startHour" example:"6"`
	EndHour   int                `json:"endHour" example:"22"`
	Cells     []GridCellResponse `json:"cells"`
}
