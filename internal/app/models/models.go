package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAdvisor RoleType = "ADVISOR"
)

// AppealStatus represents the review state of a schedule change request.
type AppealStatus string

const (
	AppealPending  AppealStatus = "PENDING"
	AppealApproved AppealStatus = "APPROVED"
	AppealRejected AppealStatus = "REJECTED"
)

// IsValid reports whether the status is one of the known appeal states.
func (s AppealStatus) IsValid() bool {
	switch s {
	case AppealPending, AppealApproved, AppealRejected:
		return true
	}
	return false
}
