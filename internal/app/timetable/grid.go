package timetable

import "github.com/tomascl/horarium/internal/app/models"

// The calendar grid covers six days by sixteen hour rows, 06:00 to 22:00.
const (
	GridStartHour = 6
	GridEndHour   = 22
)

// BlockState classifies a rendered block against the baseline/working pair.
// The same classification drives which blocks the UI may remove or restore,
// so it must stay consistent with what Diff would emit for the same pair.
type BlockState string

const (
	// StateDeletedPendingRestore: the group exists in baseline but its subject
	// is gone from working. Removing such a block restores the baseline group
	// instead of deleting anything further.
	StateDeletedPendingRestore BlockState = "DELETED_PENDING_RESTORE"
	// StateOriginalLocked: the baseline group is still the only group its
	// subject holds in working. Locked blocks are not removable.
	StateOriginalLocked BlockState = "ORIGINAL_LOCKED"
	// StateOriginalPartial: the baseline group's subject now holds more than
	// one working group (a swap is being evaluated).
	StateOriginalPartial BlockState = "ORIGINAL_PARTIAL"
	// StateModified: everything else, i.e. a group introduced or changed in
	// the working snapshot.
	StateModified BlockState = "MODIFIED"
)

// Cell addresses one day × hour-row position on the grid.
type Cell struct {
	Day  Weekday `json:"day"`
	Hour int     `json:"hour"`
}

// Block is one renderable schedule block, anchored at the hour row where its
// interval starts and spanning SpanHours rows downward.
type Block struct {
	SubjectSku  string             `json:"sku"`
	SubjectName string             `json:"name"`
	GroupSku    string             `json:"group"`
	Day         Weekday            `json:"day"`
	StartHour   int                `json:"startHour"`
	SpanHours   int                `json:"spanHours"`
	State       BlockState         `json:"state"`
	Slot        models.ScheduleSlot `json:"slot"`
}

// Removable reports whether the caller may remove or restore this block.
// Only untouched original blocks are locked.
func (b Block) Removable() bool {
	return b.State != StateOriginalLocked
}

// GroupKey identifies a (subject, group) pair across both snapshots.
type GroupKey struct {
	SubjectSku string
	GroupSku   string
}

// Classify evaluates the block state of every (subject, group) pair in the
// union of both snapshots. Precedence per pair present in baseline, first
// match wins: deleted-pending-restore, original-locked, original-partial,
// then modified. Pairs only present in working are always modified.
//
// This is the single source of truth for the classification; ProjectGrid and
// the schedule editing rules both consume it so the rendered grid and the
// submitted appeals can never disagree.
func Classify(baseline, working []models.ScheduleEntry) map[GroupKey]BlockState {
	workingGroups := make(map[string]map[string]bool, len(working))
	for _, entry := range working {
		groups := make(map[string]bool, len(entry.Groups))
		for _, group := range entry.Groups {
			groups[group.Sku] = true
		}
		workingGroups[entry.Subject.Sku] = groups
	}

	states := make(map[GroupKey]BlockState)

	for _, entry := range baseline {
		for _, group := range entry.Groups {
			key := GroupKey{SubjectSku: entry.Subject.Sku, GroupSku: group.Sku}
			groups, subjectPresent := workingGroups[entry.Subject.Sku]
			switch {
			case !subjectPresent:
				states[key] = StateDeletedPendingRestore
			case len(groups) == 1 && groups[group.Sku]:
				states[key] = StateOriginalLocked
			case len(groups) > 1:
				states[key] = StateOriginalPartial
			default:
				states[key] = StateModified
			}
		}
	}

	for _, entry := range working {
		for _, group := range entry.Groups {
			key := GroupKey{SubjectSku: entry.Subject.Sku, GroupSku: group.Sku}
			if _, classified := states[key]; !classified {
				states[key] = StateModified
			}
		}
	}

	return states
}

// ProjectGrid maps the union of both snapshots onto the fixed day × hour
// grid. Within a cell, blocks stack in union traversal order: working entries
// first, then baseline-only leftovers; ties are not otherwise broken.
//
// Each (subject, group, day) triple is rendered at most once: a two-hour
// block anchored at its starting row spans the next row by height, it is not
// re-emitted there. Slots with unrecognized weekdays or unparseable hour
// ranges are skipped, a single bad record cannot break rendering.
func ProjectGrid(baseline, working []models.ScheduleEntry) map[Cell][]Block {
	type pair struct {
		subject models.Subject
		group   models.Group
	}

	inUnion := make(map[GroupKey]bool)
	var union []pair
	collect := func(entries []models.ScheduleEntry) {
		for _, entry := range entries {
			for _, group := range entry.Groups {
				key := GroupKey{SubjectSku: entry.Subject.Sku, GroupSku: group.Sku}
				if inUnion[key] {
					continue
				}
				inUnion[key] = true
				union = append(union, pair{subject: entry.Subject, group: group})
			}
		}
	}
	collect(working)
	collect(baseline)

	states := Classify(baseline, working)

	grid := make(map[Cell][]Block)
	rendered := make(map[GroupKey]map[Weekday]bool)

	for _, p := range union {
		key := GroupKey{SubjectSku: p.subject.Sku, GroupSku: p.group.Sku}
		for _, slot := range p.group.Slots {
			day, ok := ParseWeekday(slot.Day)
			if !ok {
				continue
			}
			interval, err := ParseHourRange(slot.HourRange)
			if err != nil {
				continue
			}
			if interval.Start < GridStartHour || interval.Start >= GridEndHour {
				continue
			}

			if rendered[key] == nil {
				rendered[key] = make(map[Weekday]bool)
			}
			if rendered[key][day] {
				continue
			}
			rendered[key][day] = true

			cell := Cell{Day: day, Hour: interval.Start}
			grid[cell] = append(grid[cell], Block{
				SubjectSku:  p.subject.Sku,
				SubjectName: p.subject.Name,
				GroupSku:    p.group.Sku,
				Day:         day,
				StartHour:   interval.Start,
				SpanHours:   interval.Span(),
				State:       states[key],
				Slot:        slot,
			})
		}
	}

	return grid
}
