package timetable

import (
	"strings"

	"github.com/tomascl/horarium/internal/app/models"
)

// Diff computes the ordered appeal list that turns baseline into working.
//
// Two passes, and their order is part of the contract because reviewers index
// appeals positionally: first removals and group changes in baseline
// iteration order, then pure additions in working iteration order. Calling
// Diff twice on the same snapshots yields the same list; equal snapshots
// yield an empty one.
//
// A subject that keeps its baseline group while temporarily holding an extra
// working group emits nothing yet: the tried-out group only materializes as
// an appeal once the original group is dropped, at which point it becomes the
// swap target.
func Diff(baseline, working []models.ScheduleEntry) ([]models.Appeal, error) {
	if err := checkIdentity(baseline); err != nil {
		return nil, err
	}
	if err := checkIdentity(working); err != nil {
		return nil, err
	}

	workingBySku := make(map[string]models.ScheduleEntry, len(working))
	for _, entry := range working {
		workingBySku[entry.Subject.Sku] = entry
	}
	baselineSkus := make(map[string]bool, len(baseline))
	for _, entry := range baseline {
		baselineSkus[entry.Subject.Sku] = true
	}

	appeals := []models.Appeal{}

	// Pass 1: drops and group changes, in baseline order.
	for _, base := range baseline {
		current, stillPresent := workingBySku[base.Subject.Sku]

		if !stillPresent {
			for _, group := range base.Groups {
				appeals = append(appeals, newAppeal(groupRef(base.Subject, group), nil))
			}
			continue
		}

		kept := make(map[string]bool, len(current.Groups))
		for _, group := range current.Groups {
			kept[group.Sku] = true
		}

		for _, group := range base.Groups {
			if kept[group.Sku] {
				continue
			}
			// This slot now goes to whatever other groups the subject holds.
			var to []models.GroupRef
			for _, replacement := range current.Groups {
				if replacement.Sku == group.Sku {
					continue
				}
				to = append(to, *groupRef(current.Subject, replacement))
			}
			appeals = append(appeals, newAppeal(groupRef(base.Subject, group), to))
		}
	}

	// Pass 2: pure additions, in working order.
	for _, entry := range working {
		if baselineSkus[entry.Subject.Sku] {
			continue
		}
		for _, group := range entry.Groups {
			appeals = append(appeals, newAppeal(nil, []models.GroupRef{*groupRef(entry.Subject, group)}))
		}
	}

	return appeals, nil
}

// HasPendingChanges reports whether the working snapshot differs from the
// baseline. It is defined on top of Diff itself so the two can never drift.
func HasPendingChanges(baseline, working []models.ScheduleEntry) (bool, error) {
	appeals, err := Diff(baseline, working)
	if err != nil {
		return false, err
	}
	return len(appeals) > 0, nil
}

func checkIdentity(entries []models.ScheduleEntry) error {
	for _, entry := range entries {
		if strings.TrimSpace(entry.Subject.Sku) == "" {
			return ErrMissingSubjectSku
		}
	}
	return nil
}

func groupRef(subject models.Subject, group models.Group) *models.GroupRef {
	return &models.GroupRef{
		Group: group.Sku,
		Sku:   subject.Sku,
		Name:  subject.Name,
	}
}

func newAppeal(from *models.GroupRef, to []models.GroupRef) models.Appeal {
	return models.Appeal{
		From:   from,
		To:     to,
		Status: models.AppealPending,
	}
}
