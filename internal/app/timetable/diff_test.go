package timetable

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomascl/horarium/internal/app/models"
)

func diffEntry(sku, name string, groupSkus ...string) models.ScheduleEntry {
	groups := make([]models.Group, 0, len(groupSkus))
	for _, g := range groupSkus {
		groups = append(groups, models.Group{Sku: g})
	}
	return models.ScheduleEntry{
		Subject: models.Subject{Sku: sku, Name: name},
		Groups:  groups,
	}
}

func TestDiffReflexivity(t *testing.T) {
	s := []models.ScheduleEntry{
		diffEntry("MAT101", "Cálculo I", "G1"),
		diffEntry("FIS201", "Física II", "B"),
	}

	appeals, err := Diff(s, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appeals) != 0 {
		t.Fatalf("Diff(S, S) = %d appeals, want 0", len(appeals))
	}

	pending, err := HasPendingChanges(s, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending {
		t.Fatal("HasPendingChanges(S, S) = true, want false")
	}
}

func TestDiffFullDrop(t *testing.T) {
	baseline := []models.ScheduleEntry{diffEntry("A", "Subject A", "G1")}

	appeals, err := Diff(baseline, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appeals) != 1 {
		t.Fatalf("got %d appeals, want 1", len(appeals))
	}

	a := appeals[0]
	if a.From == nil || a.From.Group != "G1" || a.From.Sku != "A" || a.From.Name != "Subject A" {
		t.Fatalf("from = %+v, want group G1 of A", a.From)
	}
	if len(a.To) != 0 {
		t.Fatalf("to = %+v, want empty", a.To)
	}
	if a.Status != models.AppealPending {
		t.Fatalf("status = %q, want PENDING", a.Status)
	}
	if a.Reason != nil {
		t.Fatalf("reason = %v, want nil", a.Reason)
	}
}

func TestDiffDropEmitsOneAppealPerGroup(t *testing.T) {
	baseline := []models.ScheduleEntry{diffEntry("A", "Subject A", "G1", "G2")}

	appeals, err := Diff(baseline, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appeals) != 2 {
		t.Fatalf("got %d appeals, want 2", len(appeals))
	}
	if appeals[0].From.Group != "G1" || appeals[1].From.Group != "G2" {
		t.Fatalf("appeal order = %q, %q; want G1, G2", appeals[0].From.Group, appeals[1].From.Group)
	}
}

func TestDiffPureAddition(t *testing.T) {
	working := []models.ScheduleEntry{diffEntry("B", "Subject B", "G2")}

	appeals, err := Diff(nil, working)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appeals) != 1 {
		t.Fatalf("got %d appeals, want 1", len(appeals))
	}

	a := appeals[0]
	if a.From != nil {
		t.Fatalf("from = %+v, want nil", a.From)
	}
	want := []models.GroupRef{{Group: "G2", Sku: "B", Name: "Subject B"}}
	if !reflect.DeepEqual(a.To, want) {
		t.Fatalf("to = %+v, want %+v", a.To, want)
	}
}

func TestDiffGroupSwap(t *testing.T) {
	baseline := []models.ScheduleEntry{diffEntry("A", "Subject A", "G1")}
	working := []models.ScheduleEntry{diffEntry("A", "Subject A", "G2")}

	appeals, err := Diff(baseline, working)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appeals) != 1 {
		t.Fatalf("got %d appeals, want 1", len(appeals))
	}

	a := appeals[0]
	if a.From == nil || a.From.Group != "G1" {
		t.Fatalf("from = %+v, want G1", a.From)
	}
	if len(a.To) != 1 || a.To[0].Group != "G2" {
		t.Fatalf("to = %+v, want [G2]", a.To)
	}
}

func TestDiffDroppedGroupWithZeroRemaining(t *testing.T) {
	// Subject still present in working but with no groups: the dropped slot
	// has no replacement target.
	baseline := []models.ScheduleEntry{diffEntry("A", "Subject A", "G1")}
	working := []models.ScheduleEntry{diffEntry("A", "Subject A")}

	appeals, err := Diff(baseline, working)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appeals) != 1 {
		t.Fatalf("got %d appeals, want 1", len(appeals))
	}
	if appeals[0].From.Group != "G1" || len(appeals[0].To) != 0 {
		t.Fatalf("appeal = %+v, want drop of G1 with empty to", appeals[0])
	}
}

func TestDiffMidEditExtraGroupEmitsNothing(t *testing.T) {
	// Trying out a second group while keeping the original produces no appeal
	// yet; it becomes the swap target only once the original is dropped.
	baseline := []models.ScheduleEntry{diffEntry("A", "Subject A", "G1")}
	working := []models.ScheduleEntry{diffEntry("A", "Subject A", "G1", "G2")}

	appeals, err := Diff(baseline, working)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appeals) != 0 {
		t.Fatalf("got %d appeals, want 0", len(appeals))
	}
}

func TestDiffOrderingRemovalsBeforeAdditions(t *testing.T) {
	baseline := []models.ScheduleEntry{
		diffEntry("A", "Subject A", "G1"),
		diffEntry("B", "Subject B", "G1"),
	}
	working := []models.ScheduleEntry{
		diffEntry("C", "Subject C", "G9"),
		diffEntry("B", "Subject B", "G2"),
	}

	appeals, err := Diff(baseline, working)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appeals) != 3 {
		t.Fatalf("got %d appeals, want 3", len(appeals))
	}

	// Baseline order: drop of A, then swap of B. Additions last: C.
	if appeals[0].From == nil || appeals[0].From.Sku != "A" {
		t.Fatalf("appeals[0] = %+v, want drop of A", appeals[0])
	}
	if appeals[1].From == nil || appeals[1].From.Sku != "B" || len(appeals[1].To) != 1 || appeals[1].To[0].Group != "G2" {
		t.Fatalf("appeals[1] = %+v, want swap of B to G2", appeals[1])
	}
	if appeals[2].From != nil || appeals[2].To[0].Sku != "C" {
		t.Fatalf("appeals[2] = %+v, want addition of C", appeals[2])
	}
}

func TestDiffIdempotent(t *testing.T) {
	baseline := []models.ScheduleEntry{diffEntry("A", "Subject A", "G1")}
	working := []models.ScheduleEntry{diffEntry("A", "Subject A", "G2"), diffEntry("B", "Subject B", "G1")}

	first, err := Diff(baseline, working)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Diff(baseline, working)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Diff is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestDiffMissingIdentity(t *testing.T) {
	bad := []models.ScheduleEntry{{Groups: []models.Group{{Sku: "G1"}}}}

	if _, err := Diff(bad, nil); !errors.Is(err, ErrMissingSubjectSku) {
		t.Fatalf("err = %v, want ErrMissingSubjectSku", err)
	}
	if _, err := Diff(nil, bad); !errors.Is(err, ErrMissingSubjectSku) {
		t.Fatalf("err = %v, want ErrMissingSubjectSku", err)
	}
	if _, err := HasPendingChanges(bad, nil); !errors.Is(err, ErrMissingSubjectSku) {
		t.Fatalf("HasPendingChanges err = %v, want ErrMissingSubjectSku", err)
	}
}

func TestDiffDoesNotMutateInputs(t *testing.T) {
	baseline := []models.ScheduleEntry{diffEntry("A", "Subject A", "G1")}
	working := []models.ScheduleEntry{diffEntry("A", "Subject A", "G2")}
	baselineCopy := models.CloneSchedule(baseline)
	workingCopy := models.CloneSchedule(working)

	if _, err := Diff(baseline, working); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(baseline, baselineCopy) || !reflect.DeepEqual(working, workingCopy) {
		t.Fatal("Diff mutated its inputs")
	}
}
