package timetable

import (
	"testing"

	"github.com/tomascl/horarium/internal/app/models"
)

func gridEntry(sku, name string, groups ...models.Group) models.ScheduleEntry {
	return models.ScheduleEntry{
		Subject: models.Subject{Sku: sku, Name: name},
		Groups:  groups,
	}
}

func gridGroup(sku string, slots ...models.ScheduleSlot) models.Group {
	return models.Group{Sku: sku, Slots: slots}
}

func TestProjectGridAnchorsBlockAtStartRowOnly(t *testing.T) {
	working := []models.ScheduleEntry{
		gridEntry("MAT101", "Cálculo I", gridGroup("G1", slot("MONDAY", "8-10"))),
	}

	grid := ProjectGrid(working, working)

	anchored := grid[Cell{Day: Monday, Hour: 8}]
	if len(anchored) != 1 {
		t.Fatalf("cell (MONDAY, 8) holds %d blocks, want 1", len(anchored))
	}
	if anchored[0].SpanHours != 2 {
		t.Fatalf("SpanHours = %d, want 2", anchored[0].SpanHours)
	}
	if next := grid[Cell{Day: Monday, Hour: 9}]; len(next) != 0 {
		t.Fatalf("cell (MONDAY, 9) holds %d blocks, want 0", len(next))
	}
}

func TestProjectGridClassifications(t *testing.T) {
	baseline := []models.ScheduleEntry{
		gridEntry("LOCKED", "Locked", gridGroup("G1", slot("MONDAY", "6-8"))),
		gridEntry("GONE", "Deleted", gridGroup("G1", slot("TUESDAY", "6-8"))),
		gridEntry("SWAP", "Partial", gridGroup("G1", slot("WEDNESDAY", "6-8"))),
	}
	working := []models.ScheduleEntry{
		gridEntry("LOCKED", "Locked", gridGroup("G1", slot("MONDAY", "6-8"))),
		gridEntry("SWAP", "Partial",
			gridGroup("G1", slot("WEDNESDAY", "6-8")),
			gridGroup("G2", slot("THURSDAY", "6-8")),
		),
		gridEntry("NEW", "Added", gridGroup("A", slot("FRIDAY", "6-8"))),
	}

	grid := ProjectGrid(baseline, working)

	stateOf := func(day Weekday, hour int, group string) BlockState {
		t.Helper()
		for _, b := range grid[Cell{Day: day, Hour: hour}] {
			if b.GroupSku == group {
				return b.State
			}
		}
		t.Fatalf("no block for group %s at (%s, %d)", group, day, hour)
		return ""
	}

	if got := stateOf(Monday, 6, "G1"); got != StateOriginalLocked {
		t.Fatalf("LOCKED/G1 state = %q, want ORIGINAL_LOCKED", got)
	}
	if got := stateOf(Tuesday, 6, "G1"); got != StateDeletedPendingRestore {
		t.Fatalf("GONE/G1 state = %q, want DELETED_PENDING_RESTORE", got)
	}
	if got := stateOf(Wednesday, 6, "G1"); got != StateOriginalPartial {
		t.Fatalf("SWAP/G1 state = %q, want ORIGINAL_PARTIAL", got)
	}
	if got := stateOf(Thursday, 6, "G2"); got != StateModified {
		t.Fatalf("SWAP/G2 state = %q, want MODIFIED", got)
	}
	if got := stateOf(Friday, 6, "A"); got != StateModified {
		t.Fatalf("NEW/A state = %q, want MODIFIED", got)
	}
}

func TestProjectGridStacksWorkingBeforeBaseline(t *testing.T) {
	// Baseline group dropped, new group occupies the same period: both render
	// in the same cell, working entry first.
	baseline := []models.ScheduleEntry{
		gridEntry("A", "Subject A", gridGroup("G1", slot("MONDAY", "10-12"))),
	}
	working := []models.ScheduleEntry{
		gridEntry("B", "Subject B", gridGroup("X", slot("MONDAY", "10-12"))),
	}

	grid := ProjectGrid(baseline, working)

	blocks := grid[Cell{Day: Monday, Hour: 10}]
	if len(blocks) != 2 {
		t.Fatalf("cell holds %d blocks, want 2", len(blocks))
	}
	if blocks[0].SubjectSku != "B" || blocks[1].SubjectSku != "A" {
		t.Fatalf("stack order = %s, %s; want B then A", blocks[0].SubjectSku, blocks[1].SubjectSku)
	}
	if blocks[1].State != StateDeletedPendingRestore {
		t.Fatalf("baseline leftover state = %q, want DELETED_PENDING_RESTORE", blocks[1].State)
	}
}

func TestProjectGridDedupesSameDaySlots(t *testing.T) {
	// Two slots of one group on the same day: only the first is rendered.
	working := []models.ScheduleEntry{
		gridEntry("A", "Subject A", gridGroup("G1",
			slot("MONDAY", "6-8"),
			slot("MONDAY", "10-12"),
			slot("FRIDAY", "6-8"),
		)),
	}

	grid := ProjectGrid(working, working)

	if len(grid[Cell{Day: Monday, Hour: 6}]) != 1 {
		t.Fatal("first Monday slot missing")
	}
	if len(grid[Cell{Day: Monday, Hour: 10}]) != 0 {
		t.Fatal("second Monday slot of the same group was rendered twice")
	}
	if len(grid[Cell{Day: Friday, Hour: 6}]) != 1 {
		t.Fatal("other-day slot of the same group missing")
	}
}

func TestProjectGridFailsClosedOnMalformedSlots(t *testing.T) {
	working := []models.ScheduleEntry{
		gridEntry("A", "Subject A", gridGroup("G1",
			slot("SOMEDAY", "6-8"),
			slot("MONDAY", "banana"),
			slot("MONDAY", "3-5"), // outside the 6..22 grid
			slot("TUESDAY", "6-8"),
		)),
	}

	grid := ProjectGrid(nil, working)

	total := 0
	for _, blocks := range grid {
		total += len(blocks)
	}
	if total != 1 {
		t.Fatalf("grid holds %d blocks, want only the well-formed TUESDAY one", total)
	}
	if len(grid[Cell{Day: Tuesday, Hour: 6}]) != 1 {
		t.Fatal("well-formed slot missing from the grid")
	}
}

func TestBlockRemovable(t *testing.T) {
	cases := []struct {
		state BlockState
		want  bool
	}{
		{state: StateOriginalLocked, want: false},
		{state: StateOriginalPartial, want: true},
		{state: StateDeletedPendingRestore, want: true},
		{state: StateModified, want: true},
	}
	for _, tc := range cases {
		if got := (Block{State: tc.state}).Removable(); got != tc.want {
			t.Fatalf("Removable(%s) = %v, want %v", tc.state, got, tc.want)
		}
	}
}

func TestClassifyBaselineGroupDroppedMidSwap(t *testing.T) {
	// Baseline group dropped while the subject still holds one different
	// working group: none of the original-state rules apply, so modified.
	baseline := []models.ScheduleEntry{gridEntry("A", "Subject A", gridGroup("G1"))}
	working := []models.ScheduleEntry{gridEntry("A", "Subject A", gridGroup("G2"))}

	states := Classify(baseline, working)

	if got := states[GroupKey{SubjectSku: "A", GroupSku: "G1"}]; got != StateModified {
		t.Fatalf("dropped baseline group state = %q, want MODIFIED", got)
	}
	if got := states[GroupKey{SubjectSku: "A", GroupSku: "G2"}]; got != StateModified {
		t.Fatalf("replacement group state = %q, want MODIFIED", got)
	}
}
