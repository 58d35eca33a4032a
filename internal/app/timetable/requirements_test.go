package timetable

import (
	"errors"
	"testing"

	"github.com/tomascl/horarium/internal/app/models"
)

func subject(sku string, requirements ...string) models.Subject {
	return models.Subject{Sku: sku, Name: sku, Requirements: requirements}
}

func entryFor(s models.Subject) models.ScheduleEntry {
	return models.ScheduleEntry{Subject: s, Groups: []models.Group{{Sku: "G1"}}}
}

func TestValidateRequirementsAllowed(t *testing.T) {
	catalog := []models.Subject{
		subject("MAT101"),
		subject("MAT201", "MAT101"),
		subject("FIS101"),
	}

	violation, err := ValidateRequirements(subject("MAT201", "MAT101"), []models.ScheduleEntry{entryFor(subject("FIS101"))}, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if violation != nil {
		t.Fatalf("unexpected violation: %+v", violation)
	}
}

func TestValidateRequirementsNoRequirements(t *testing.T) {
	violation, err := ValidateRequirements(subject("ART100"), nil, nil)
	if err != nil || violation != nil {
		t.Fatalf("got (%+v, %v), want (nil, nil)", violation, err)
	}
}

func TestConcurrentPrerequisiteDirect(t *testing.T) {
	catalog := []models.Subject{
		subject("MAT101"),
		subject("MAT201", "MAT101"),
	}
	current := []models.ScheduleEntry{entryFor(subject("MAT101"))}

	violation, err := ValidateRequirements(subject("MAT201", "MAT101"), current, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if violation == nil || violation.Kind != ViolationConcurrentPrerequisite {
		t.Fatalf("violation = %+v, want CONCURRENT_PREREQUISITE", violation)
	}
	if violation.Conflict != "MAT101" {
		t.Fatalf("conflict = %q, want MAT101", violation.Conflict)
	}
}

func TestConcurrentPrerequisiteTransitive(t *testing.T) {
	// MAT301 -> MAT201 -> MAT101, student already has MAT101 scheduled.
	catalog := []models.Subject{
		subject("MAT101"),
		subject("MAT201", "MAT101"),
		subject("MAT301", "MAT201"),
	}
	current := []models.ScheduleEntry{entryFor(subject("MAT101"))}

	violation, err := ValidateRequirements(subject("MAT301", "MAT201"), current, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if violation == nil || violation.Kind != ViolationConcurrentPrerequisite {
		t.Fatalf("violation = %+v, want CONCURRENT_PREREQUISITE", violation)
	}
	if violation.Subject != "MAT201" || violation.Conflict != "MAT101" {
		t.Fatalf("got subject %q conflict %q, want MAT201/MAT101", violation.Subject, violation.Conflict)
	}
}

func TestFirstViolationLeftToRight(t *testing.T) {
	// Both requirement branches violate; the leftmost must be reported.
	catalog := []models.Subject{
		subject("ALG100"),
		subject("GEO100"),
		subject("CAL200", "ALG100", "GEO100"),
	}
	current := []models.ScheduleEntry{entryFor(subject("ALG100")), entryFor(subject("GEO100"))}

	violation, err := ValidateRequirements(subject("CAL200", "ALG100", "GEO100"), current, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if violation == nil || violation.Conflict != "ALG100" {
		t.Fatalf("violation = %+v, want conflict ALG100", violation)
	}
}

func TestAlreadyCompleted(t *testing.T) {
	// A scheduled subject lists the candidate as its prerequisite, so the
	// candidate counts as already satisfied.
	catalog := []models.Subject{
		subject("MAT101"),
		subject("MAT201", "MAT101"),
	}
	current := []models.ScheduleEntry{entryFor(subject("MAT201", "MAT101"))}

	violation, err := ValidateRequirements(subject("MAT101"), current, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if violation == nil || violation.Kind != ViolationAlreadyCompleted {
		t.Fatalf("violation = %+v, want ALREADY_COMPLETED", violation)
	}
	if violation.Subject != "MAT201" || violation.Conflict != "MAT101" {
		t.Fatalf("got subject %q conflict %q, want MAT201/MAT101", violation.Subject, violation.Conflict)
	}
}

func TestRequirementCycleTerminates(t *testing.T) {
	// Malformed catalog: A requires B, B requires A. Must terminate without a
	// violation instead of recursing forever.
	catalog := []models.Subject{
		subject("A", "B"),
		subject("B", "A"),
	}

	violation, err := ValidateRequirements(subject("A", "B"), nil, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if violation != nil {
		t.Fatalf("unexpected violation: %+v", violation)
	}
}

func TestRequirementMissingFromCatalog(t *testing.T) {
	// A requirement with no catalog record cannot be expanded, but the direct
	// concurrency check on it still applies.
	current := []models.ScheduleEntry{entryFor(subject("GHOST"))}

	violation, err := ValidateRequirements(subject("NEW", "GHOST"), current, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if violation == nil || violation.Kind != ViolationConcurrentPrerequisite {
		t.Fatalf("violation = %+v, want CONCURRENT_PREREQUISITE", violation)
	}
}

func TestValidateRequirementsMalformedInput(t *testing.T) {
	if _, err := ValidateRequirements(models.Subject{}, nil, nil); !errors.Is(err, ErrMissingSubjectSku) {
		t.Fatalf("err = %v, want ErrMissingSubjectSku", err)
	}

	if _, err := ValidateRequirements(subject("A", "A"), nil, nil); !errors.Is(err, ErrSelfRequirement) {
		t.Fatalf("err = %v, want ErrSelfRequirement", err)
	}

	bad := []models.ScheduleEntry{{Subject: models.Subject{Sku: "  "}}}
	if _, err := ValidateRequirements(subject("A"), bad, nil); !errors.Is(err, ErrMissingSubjectSku) {
		t.Fatalf("err = %v, want ErrMissingSubjectSku", err)
	}
}

func TestVisitedStateDoesNotLeakBetweenCalls(t *testing.T) {
	catalog := []models.Subject{
		subject("MAT101"),
		subject("MAT201", "MAT101"),
	}
	current := []models.ScheduleEntry{entryFor(subject("MAT101"))}

	for i := 0; i < 3; i++ {
		violation, err := ValidateRequirements(subject("MAT201", "MAT101"), current, catalog)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if violation == nil {
			t.Fatalf("call %d: violation lost after repeat invocation", i)
		}
	}
}
