package models

import "time"

// User represents an application user (student or advisor).
type User struct {
	ID            int64    `json:"id" db:"id"`
	Email         string   `json:"email" db:"email"`
	Password      string   `json:"-" db:"password"` // Hashed, never serialized
	FirstName     string   `json:"firstName" db:"first_name"`
	LastName      string   `json:"lastName" db:"last_name"`
	RoleType      RoleType `json:"roleType" db:"role_type"`
	StudentNumber *string  `json:"studentNumber,omitempty" db:"student_number"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
