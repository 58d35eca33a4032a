package timetable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomascl/horarium/internal/app/models"
)

// Identity errors. These indicate corrupt input, not a rejected request.
var (
	ErrMissingSubjectSku = errors.New("schedule entry is missing its subject sku")
	ErrSelfRequirement   = errors.New("subject lists itself as a requirement")
)

// ViolationKind enumerates the reasons an addition can be rejected.
type ViolationKind string

const (
	// ViolationConcurrentPrerequisite: a prerequisite of the candidate (direct
	// or transitive) is already in the current schedule, so the student would
	// take a subject and its prerequisite simultaneously.
	ViolationConcurrentPrerequisite ViolationKind = "CONCURRENT_PREREQUISITE"
	// ViolationAlreadyCompleted: a subject in the current schedule lists the
	// candidate among its requirements, meaning the candidate is treated as
	// already satisfied.
	ViolationAlreadyCompleted ViolationKind = "ALREADY_COMPLETED"
)

// Violation is the typed, user-facing reason an addition was rejected. It is
// informational only; returning one never mutates anything.
type Violation struct {
	Kind ViolationKind `json:"kind"`
	// Subject is the sku whose requirement list triggered the violation.
	Subject string `json:"subject"`
	// Conflict is the sku in conflict: the scheduled prerequisite for
	// CONCURRENT_PREREQUISITE, the candidate itself for ALREADY_COMPLETED.
	Conflict string `json:"conflict"`
}

// Message renders a reason string suitable for direct presentation.
func (v *Violation) Message() string {
	switch v.Kind {
	case ViolationConcurrentPrerequisite:
		return fmt.Sprintf("%s requires %s, which is already in the schedule", v.Subject, v.Conflict)
	case ViolationAlreadyCompleted:
		return fmt.Sprintf("%s is a prerequisite of %s and counts as already completed", v.Conflict, v.Subject)
	}
	return string(v.Kind)
}

// ValidateRequirements walks the requirement graph of candidate against the
// current schedule and the catalog. A nil Violation with a nil error means
// the addition is allowed.
//
// The walk is an explicit worklist with a visited set owned by this call, so
// no state can leak between validator invocations. Already-visited skus are
// skipped, which makes a malformed catalog cycle (A→B→A) terminate instead of
// recursing forever. Requirements are expanded depth-first, left to right,
// and the first violation found wins.
func ValidateRequirements(candidate models.Subject, current []models.ScheduleEntry, catalog []models.Subject) (*Violation, error) {
	if strings.TrimSpace(candidate.Sku) == "" {
		return nil, ErrMissingSubjectSku
	}
	for _, req := range candidate.Requirements {
		if req == candidate.Sku {
			return nil, fmt.Errorf("%w: %s", ErrSelfRequirement, candidate.Sku)
		}
	}

	scheduled := make(map[string]bool, len(current))
	for _, entry := range current {
		if strings.TrimSpace(entry.Subject.Sku) == "" {
			return nil, ErrMissingSubjectSku
		}
		scheduled[entry.Subject.Sku] = true
	}

	bySku := make(map[string]models.Subject, len(catalog)+1)
	for _, subject := range catalog {
		bySku[subject.Sku] = subject
	}
	bySku[candidate.Sku] = candidate

	visited := make(map[string]bool)
	stack := []string{candidate.Sku}

	for len(stack) > 0 {
		sku := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[sku] {
			continue
		}
		visited[sku] = true

		subject, ok := bySku[sku]
		if !ok {
			// Requirement not present in the catalog: nothing to expand.
			continue
		}

		for _, req := range subject.Requirements {
			if scheduled[req] {
				return &Violation{
					Kind:     ViolationConcurrentPrerequisite,
					Subject:  subject.Sku,
					Conflict: req,
				}, nil
			}
		}

		// Push in reverse so the leftmost requirement is expanded first.
		for i := len(subject.Requirements) - 1; i >= 0; i-- {
			stack = append(stack, subject.Requirements[i])
		}
	}

	for _, entry := range current {
		for _, req := range entry.Subject.Requirements {
			if req == candidate.Sku {
				return &Violation{
					Kind:     ViolationAlreadyCompleted,
					Subject:  entry.Subject.Sku,
					Conflict: candidate.Sku,
				}, nil
			}
		}
	}

	return nil, nil
}
