package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/tomascl/horarium/internal/app/models"
	"github.com/tomascl/horarium/internal/app/models/dto"
	"github.com/tomascl/horarium/internal/app/repositories"
	"github.com/tomascl/horarium/internal/app/timetable"
	"github.com/tomascl/horarium/internal/db"
	"github.com/tomascl/horarium/internal/pkg/apperrors"
)

// ScheduleService handles working-schedule editing: baseline access, candidate
// checks, entry state classification and the calendar grid projection.
type ScheduleService struct {
	scheduleRepo *repositories.ScheduleRepository
	catalogRepo  *repositories.CatalogRepository
	database     *db.PostgresDB
	logger       zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(
	scheduleRepo *repositories.ScheduleRepository,
	catalogRepo *repositories.CatalogRepository,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		database:     database,
		logger:       logger,
	}
}

// GetBaseline returns the student's persisted schedule widened into the
// entries shape (one group wrapped into a one-element groups list).
func (s *ScheduleService) GetBaseline(ctx context.Context, studentID int64) ([]models.ScheduleEntry, error) {
	rows, err := s.scheduleRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	catalog, err := s.catalogRepo.GetAllSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}
	index := indexCatalog(catalog)

	record := models.ScheduleRecord{StudentID: studentID}
	for _, row := range rows {
		subject, ok := index[row.SubjectSku]
		if !ok {
			// Subject removed from the catalog after persisting; skip the row.
			s.logger.Warn().Int64("studentId", studentID).Str("sku", row.SubjectSku).
				Msg("Persisted schedule references unknown subject")
			continue
		}
		group, ok := findGroup(subject, row.GroupSku)
		if !ok {
			s.logger.Warn().Int64("studentId", studentID).Str("sku", row.SubjectSku).
				Str("group", row.GroupSku).Msg("Persisted schedule references unknown group")
			continue
		}
		record.Subjects = append(record.Subjects, models.PersistedScheduleSubject{
			Subject: subject,
			Group:   group,
		})
	}

	return record.Entries(), nil
}

// SaveSchedule replaces the student's persisted baseline. A confirmed
// schedule holds exactly one group per subject; conflicting or invalid
// snapshots are rejected before anything is written.
func (s *ScheduleService) SaveSchedule(ctx context.Context, studentID int64, req *dto.WorkingScheduleRequest) ([]models.ScheduleEntry, error) {
	catalog, err := s.catalogRepo.GetAllSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	entries, err := s.hydrateEntries(req.Entries, catalog)
	if err != nil {
		return nil, err
	}

	var accepted []models.ScheduleEntry
	for _, entry := range entries {
		if len(entry.Groups) != 1 {
			return nil, apperrors.NewCustomError(apperrors.ErrDuplicateGroup,
				fmt.Sprintf("subject %s must hold exactly one group", entry.Subject.Sku))
		}

		if err := timetable.ValidateSlots(entry.Groups[0].Slots); err != nil {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("subject %s group %s: %v", entry.Subject.Sku, entry.Groups[0].Sku, err))
		}

		if timetable.Overlaps(timetable.GroupSlots(accepted), entry.Groups[0].Slots) {
			return nil, apperrors.NewCustomError(apperrors.ErrScheduleConflict,
				fmt.Sprintf("group %s of %s collides with another scheduled group", entry.Groups[0].Sku, entry.Subject.Sku))
		}

		violation, err := timetable.ValidateRequirements(entry.Subject, accepted, catalog)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		if violation != nil {
			return nil, requirementError(violation)
		}

		accepted = append(accepted, entry)
	}

	rows := make([]repositories.ScheduleRow, len(accepted))
	for i, entry := range accepted {
		rows[i] = repositories.ScheduleRow{
			SubjectSku: entry.Subject.Sku,
			GroupSku:   entry.Groups[0].Sku,
		}
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.scheduleRepo.Replace(ctx, tx, studentID, rows)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	s.logger.Info().Int64("studentId", studentID).Int("subjects", len(rows)).Msg("Schedule saved")
	return accepted, nil
}

// CheckCandidate evaluates whether a group may join the given working
// snapshot. Nothing is persisted; the typed outcome carries either a time
// conflict flag or the first requirement violation found.
func (s *ScheduleService) CheckCandidate(ctx context.Context, req *dto.CandidateCheckRequest) (*dto.CandidateCheckResponse, error) {
	catalog, err := s.catalogRepo.GetAllSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}
	index := indexCatalog(catalog)

	subject, ok := index[req.Sku]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("subject not found: %s", req.Sku))
	}
	group, ok := findGroup(subject, req.Group)
	if !ok {
		return nil, apperrors.NewResourceNotFoundError(
			fmt.Sprintf("group %s not found in subject %s", req.Group, req.Sku))
	}

	entries, err := s.hydrateEntries(req.Entries, catalog)
	if err != nil {
		return nil, err
	}

	if timetable.Overlaps(timetable.GroupSlots(entries), group.Slots) {
		reason := fmt.Sprintf("group %s of %s collides with the current schedule", group.Sku, subject.Sku)
		return &dto.CandidateCheckResponse{Conflict: true, Reason: &reason}, nil
	}

	violation, err := timetable.ValidateRequirements(subject, entries, catalog)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if violation != nil {
		reason := violation.Message()
		return &dto.CandidateCheckResponse{Violation: violation, Reason: &reason}, nil
	}

	return &dto.CandidateCheckResponse{Allowed: true}, nil
}

// DescribeWorking classifies every group of the working snapshot against the
// student's persisted baseline, so clients render removable/locked states
// consistent with what an appeal submission would produce.
func (s *ScheduleService) DescribeWorking(ctx context.Context, studentID int64, req *dto.WorkingScheduleRequest) ([]dto.ScheduleEntryResponse, error) {
	baseline, working, err := s.snapshots(ctx, studentID, req.Entries)
	if err != nil {
		return nil, err
	}

	states := timetable.Classify(baseline, working)

	responses := make([]dto.ScheduleEntryResponse, 0, len(working))
	for _, entry := range working {
		resp := dto.ScheduleEntryResponse{Subject: entry.Subject}
		for _, group := range entry.Groups {
			key := timetable.GroupKey{SubjectSku: entry.Subject.Sku, GroupSku: group.Sku}
			resp.Groups = append(resp.Groups, dto.GroupStateResponse{
				Group: group,
				State: states[key],
			})
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// GetGrid projects the union of the persisted baseline and the given working
// snapshot onto the fixed calendar grid. Cells come back day-major, then by
// starting hour.
func (s *ScheduleService) GetGrid(ctx context.Context, studentID int64, req *dto.WorkingScheduleRequest) (*dto.GridResponse, error) {
	baseline, working, err := s.snapshots(ctx, studentID, req.Entries)
	if err != nil {
		return nil, err
	}

	grid := timetable.ProjectGrid(baseline, working)

	dayOrder := make(map[timetable.Weekday]int, len(timetable.Weekdays))
	for i, day := range timetable.Weekdays {
		dayOrder[day] = i
	}

	cells := make([]timetable.Cell, 0, len(grid))
	for cell := range grid {
		cells = append(cells, cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Day != cells[j].Day {
			return dayOrder[cells[i].Day] < dayOrder[cells[j].Day]
		}
		return cells[i].Hour < cells[j].Hour
	})

	resp := &dto.GridResponse{
		StartHour: timetable.GridStartHour,
		EndHour:   timetable.GridEndHour,
		Cells:     make([]dto.GridCellResponse, 0, len(cells)),
	}
	for _, cell := range cells {
		resp.Cells = append(resp.Cells, dto.GridCellResponse{
			Day:     cell.Day,
			DayName: cell.Day.DisplayName(),
			Hour:    cell.Hour,
			Blocks:  grid[cell],
		})
	}

	return resp, nil
}

// snapshots loads the persisted baseline and hydrates the client-supplied
// working snapshot against the same catalog read.
func (s *ScheduleService) snapshots(ctx context.Context, studentID int64, reqEntries []dto.ScheduleEntryRequest) (baseline, working []models.ScheduleEntry, err error) {
	baseline, err = s.GetBaseline(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	catalog, err := s.catalogRepo.GetAllSubjects(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	working, err = s.hydrateEntries(reqEntries, catalog)
	if err != nil {
		return nil, nil, err
	}

	return baseline, working, nil
}

// hydrateEntries resolves sku references into full subject and group records.
func (s *ScheduleService) hydrateEntries(reqEntries []dto.ScheduleEntryRequest, catalog []models.Subject) ([]models.ScheduleEntry, error) {
	index := indexCatalog(catalog)

	entries := make([]models.ScheduleEntry, 0, len(reqEntries))
	for _, reqEntry := range reqEntries {
		subject, ok := index[reqEntry.Sku]
		if !ok {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("subject not found: %s", reqEntry.Sku))
		}

		entry := models.ScheduleEntry{Subject: subject}
		for _, groupSku := range reqEntry.Groups {
			group, ok := findGroup(subject, groupSku)
			if !ok {
				return nil, apperrors.NewResourceNotFoundError(
					fmt.Sprintf("group %s not found in subject %s", groupSku, reqEntry.Sku))
			}
			entry.Groups = append(entry.Groups, group)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func indexCatalog(catalog []models.Subject) map[string]models.Subject {
	index := make(map[string]models.Subject, len(catalog))
	for _, subject := range catalog {
		index[subject.Sku] = subject
	}
	return index
}

func findGroup(subject models.Subject, groupSku string) (models.Group, bool) {
	for _, group := range subject.Groups {
		if group.Sku == groupSku {
			return group, true
		}
	}
	return models.Group{}, false
}

func requirementError(violation *timetable.Violation) error {
	return apperrors.NewCustomError(apperrors.ErrRequirementViolation, violation.Message()).
		WithDetails(map[string]interface{}{
			"kind":     string(violation.Kind),
			"subject":  violation.Subject,
			"conflict": violation.Conflict,
		})
}
