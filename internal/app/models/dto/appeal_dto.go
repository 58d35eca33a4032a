package dto

import "github.com/tomascl/horarium/internal/app/models"

// AppealPreviewResponse is the derived appeal list for a working snapshot
// before anything is persisted.
type AppealPreviewResponse struct {
	Appeals        []models.Appeal `json:"appeals"`
	PendingChanges bool            `json:"pendingChanges"`
}

// SubmitAppealsRequest derives the diff against the persisted baseline and
// files the resulting appeals.
type SubmitAppealsRequest struct {
	Entries []ScheduleEntryRequest `json:"entries" binding:"required"`
	Reason  *string                `json:"reason,omitempty" example:"Group clashes with my work shift"`
}

// UpdateAppealStatusRequest moves an appeal out of PENDING.
type UpdateAppealStatusRequest struct {
	Status models.AppealStatus `json:"status" binding:"required,oneof=APPROVED REJECTED" example:"APPROVED"`
	Reason *string             `json:"reason,omitempty" example:"Approved, seats available"`
}
