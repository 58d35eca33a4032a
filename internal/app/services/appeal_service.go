package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/tomascl/horarium/internal/app/models"
	"github.com/tomascl/horarium/internal/app/models/dto"
	"github.com/tomascl/horarium/internal/app/repositories"
	"github.com/tomascl/horarium/internal/app/timetable"
	"github.com/tomascl/horarium/internal/db"
	"github.com/tomascl/horarium/internal/pkg/apperrors"
)

// AppealService derives, files and reviews schedule change requests
type AppealService struct {
	appealRepo      *repositories.AppealRepository
	scheduleRepo    *repositories.ScheduleRepository
	scheduleService *ScheduleService
	database        *db.PostgresDB
	logger          zerolog.Logger
}

// NewAppealService creates a new AppealService
func NewAppealService(
	appealRepo *repositories.AppealRepository,
	scheduleRepo *repositories.ScheduleRepository,
	scheduleService *ScheduleService,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *AppealService {
	return &AppealService{
		appealRepo:      appealRepo,
		scheduleRepo:    scheduleRepo,
		scheduleService: scheduleService,
		database:        database,
		logger:          logger,
	}
}

// Preview derives the appeal list a working snapshot would produce against
// the persisted baseline. Nothing is persisted.
func (s *AppealService) Preview(ctx context.Context, studentID int64, req *dto.WorkingScheduleRequest) (*dto.AppealPreviewResponse, error) {
	appeals, err := s.diff(ctx, studentID, req.Entries)
	if err != nil {
		return nil, err
	}

	return &dto.AppealPreviewResponse{
		Appeals:        appeals,
		PendingChanges: len(appeals) > 0,
	}, nil
}

// Submit derives the diff against the persisted baseline and files the
// resulting appeals as PENDING. A snapshot with no pending changes is
// rejected; nothing is filed twice for the same edit.
func (s *AppealService) Submit(ctx context.Context, studentID int64, req *dto.SubmitAppealsRequest) ([]models.Appeal, error) {
	appeals, err := s.diff(ctx, studentID, req.Entries)
	if err != nil {
		return nil, err
	}
	if len(appeals) == 0 {
		return nil, apperrors.ErrNoPendingChanges
	}

	for i := range appeals {
		appeals[i].ID = uuid.New().String()
		appeals[i].StudentID = studentID
		appeals[i].Reason = req.Reason
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.appealRepo.CreateBatch(ctx, tx, appeals)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to file appeals: %w", err)
	}

	s.logger.Info().Int64("studentId", studentID).Int("appeals", len(appeals)).Msg("Appeals filed")
	return appeals, nil
}

// GetByStudent returns all appeals of a student, newest first.
func (s *AppealService) GetByStudent(ctx context.Context, studentID int64) ([]models.Appeal, error) {
	appeals, err := s.appealRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get appeals: %w", err)
	}
	return appeals, nil
}

// GetAll returns every appeal, optionally filtered by status.
func (s *AppealService) GetAll(ctx context.Context, status *models.AppealStatus) ([]models.Appeal, error) {
	if status != nil && !status.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown appeal status: %s", *status))
	}

	appeals, err := s.appealRepo.GetAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get appeals: %w", err)
	}
	return appeals, nil
}

// UpdateStatus moves an appeal out of PENDING. Approving an appeal applies
// the requested change to the student's persisted schedule in the same
// transaction; a reviewed appeal cannot be reviewed again.
func (s *AppealService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateAppealStatusRequest) (*models.Appeal, error) {
	appeal, err := s.appealRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAppealNotFound) {
			return nil, apperrors.ErrAppealNotFound
		}
		return nil, fmt.Errorf("failed to get appeal: %w", err)
	}

	if appeal.Status != models.AppealPending {
		return nil, apperrors.NewCustomError(apperrors.ErrAppealAlreadyClosed,
			fmt.Sprintf("appeal %s is already %s", appeal.ID, appeal.Status))
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.appealRepo.UpdateStatus(ctx, tx, id, req.Status, req.Reason); err != nil {
			return err
		}
		if req.Status == models.AppealApproved {
			return s.applyAppeal(ctx, tx, appeal)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update appeal: %w", err)
	}

	appeal.Status = req.Status
	if req.Reason != nil {
		appeal.Reason = req.Reason
	}

	s.logger.Info().Str("appealId", id).Str("status", string(req.Status)).Msg("Appeal reviewed")
	return appeal, nil
}

// applyAppeal writes an approved change into the persisted schedule: the
// source group's row is dropped, each target ref takes over its subject's row.
func (s *AppealService) applyAppeal(ctx context.Context, tx pgx.Tx, appeal *models.Appeal) error {
	rows, err := s.scheduleRepo.GetByStudent(ctx, appeal.StudentID)
	if err != nil {
		return err
	}

	if appeal.From != nil {
		kept := rows[:0]
		for _, row := range rows {
			if row.SubjectSku == appeal.From.Sku && row.GroupSku == appeal.From.Group {
				continue
			}
			kept = append(kept, row)
		}
		rows = kept
	}

	for _, ref := range appeal.To {
		replaced := false
		for i, row := range rows {
			if row.SubjectSku == ref.Sku {
				rows[i].GroupSku = ref.Group
				replaced = true
				break
			}
		}
		if !replaced {
			rows = append(rows, repositories.ScheduleRow{SubjectSku: ref.Sku, GroupSku: ref.Group})
		}
	}

	return s.scheduleRepo.Replace(ctx, tx, appeal.StudentID, rows)
}

// diff loads both snapshots and runs the schedule diff between them.
func (s *AppealService) diff(ctx context.Context, studentID int64, reqEntries []dto.ScheduleEntryRequest) ([]models.Appeal, error) {
	baseline, working, err := s.scheduleService.snapshots(ctx, studentID, reqEntries)
	if err != nil {
		return nil, err
	}

	appeals, err := timetable.Diff(baseline, working)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	return appeals, nil
}
