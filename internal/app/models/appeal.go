package models

import "time"

// GroupRef names one side of an appeal: a group of a subject.
type GroupRef struct {
	Group string `json:"group"`
	Sku   string `json:"sku"`
	Name  string `json:"name"`
}

// Appeal is a structured schedule change request derived from the diff of a
// baseline snapshot against a working snapshot.
//
// From present and To empty is a pure drop; From nil with a single To is a
// pure add; both present is a group swap within the same subject. To is a
// list because a dropped slot may point at several replacement groups while
// the student is still mid-edit.
type Appeal struct {
	ID        string       `json:"id,omitempty" db:"id"`
	StudentID int64        `json:"studentId,omitempty" db:"student_id"`
	From      *GroupRef    `json:"from"`
	To        []GroupRef   `json:"to"`
	Status    AppealStatus `json:"status"`
	Reason    *string      `json:"reason"`
	CreatedAt time.Time    `json:"createdAt,omitempty" db:"created_at"`
}
