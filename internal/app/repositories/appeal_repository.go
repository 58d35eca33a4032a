package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tomascl/horarium/internal/app/models"
)

// Appeal error types
var (
	ErrAppealNotFound = errors.New("appeal not found")
)

// AppealRepository handles database operations for change-request appeals
type AppealRepository struct {
	db *pgxpool.Pool
}

// NewAppealRepository creates a new appeal repository
func NewAppealRepository(db *pgxpool.Pool) *AppealRepository {
	return &AppealRepository{
		db: db,
	}
}

// CreateBatch persists a set of appeals inside one transaction, preserving order.
func (r *AppealRepository) CreateBatch(ctx context.Context, tx pgx.Tx, appeals []models.Appeal) error {
	for i := range appeals {
		appeal := &appeals[i]

		fromJSON, err := marshalNullable(appeal.From)
		if err != nil {
			return fmt.Errorf("error encoding appeal source group: %w", err)
		}
		toJSON, err := json.Marshal(appeal.To)
		if err != nil {
			return fmt.Errorf("error encoding appeal target groups: %w", err)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO appeals (id, student_id, from_ref, to_refs, status, reason)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at`,
			appeal.ID, appeal.StudentID, fromJSON, toJSON, appeal.Status, appeal.Reason,
		).Scan(&appeal.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating appeal: %w", err)
		}
	}

	return nil
}

// GetByStudent returns all appeals of a student, newest first.
func (r *AppealRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Appeal, error) {
	query := `
		SELECT id, student_id, from_ref, to_refs, status, reason, created_at
		FROM appeals
		WHERE student_id = $1
		ORDER BY created_at DESC, id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving appeals: %w", err)
	}
	defer rows.Close()

	return scanAppeals(rows)
}

// GetAll returns every appeal, optionally filtered by status, newest first.
func (r *AppealRepository) GetAll(ctx context.Context, status *models.AppealStatus) ([]models.Appeal, error) {
	query := `
		SELECT id, student_id, from_ref, to_refs, status, reason, created_at
		FROM appeals
		WHERE ($1::varchar IS NULL OR status = $1)
		ORDER BY created_at DESC, id
	`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("error retrieving appeals: %w", err)
	}
	defer rows.Close()

	return scanAppeals(rows)
}

// GetByID retrieves a single appeal
func (r *AppealRepository) GetByID(ctx context.Context, id string) (*models.Appeal, error) {
	query := `
		SELECT id, student_id, from_ref, to_refs, status, reason, created_at
		FROM appeals
		WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, id)
	appeal, err := scanAppeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppealNotFound
		}
		return nil, fmt.Errorf("error retrieving appeal: %w", err)
	}

	return appeal, nil
}

// UpdateStatus sets the status and optional decision reason of an appeal.
func (r *AppealRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id string, status models.AppealStatus, reason *string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appeals SET status = $2, reason = COALESCE($3, reason)
		WHERE id = $1`,
		id, status, reason)
	if err != nil {
		return fmt.Errorf("error updating appeal status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAppealNotFound
	}

	return nil
}

func scanAppeals(rows pgx.Rows) ([]models.Appeal, error) {
	var appeals []models.Appeal
	for rows.Next() {
		appeal, err := scanAppeal(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning appeal: %w", err)
		}
		appeals = append(appeals, *appeal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading appeals: %w", err)
	}

	return appeals, nil
}

func scanAppeal(row pgx.Row) (*models.Appeal, error) {
	var appeal models.Appeal
	var fromJSON, toJSON []byte

	err := row.Scan(
		&appeal.ID,
		&appeal.StudentID,
		&fromJSON,
		&toJSON,
		&appeal.Status,
		&appeal.Reason,
		&appeal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if fromJSON != nil {
		var from models.GroupRef
		if err := json.Unmarshal(fromJSON, &from); err != nil {
			return nil, fmt.Errorf("error decoding appeal source group: %w", err)
		}
		appeal.From = &from
	}
	if toJSON != nil {
		if err := json.Unmarshal(toJSON, &appeal.To); err != nil {
			return nil, fmt.Errorf("error decoding appeal target groups: %w", err)
		}
	}
	if appeal.To == nil {
		appeal.To = []models.GroupRef{}
	}

	return &appeal, nil
}

func marshalNullable(ref *models.GroupRef) ([]byte, error) {
	if ref == nil {
		return nil, nil
	}
	return json.Marshal(ref)
}
