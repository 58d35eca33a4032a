package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleRow is one persisted schedule entry: a subject with its single assigned group.
type ScheduleRow struct {
	SubjectSku string
	GroupSku   string
}

// ScheduleRepository handles database operations for student schedules
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

// GetByStudent returns the persisted schedule rows of a student in insertion order.
// A student with no schedule yields an empty slice.
func (r *ScheduleRepository) GetByStudent(ctx context.Context, studentID int64) ([]ScheduleRow, error) {
	query := `
		SELECT subject_sku, group_sku
		FROM student_schedules
		WHERE student_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student schedule: %w", err)
	}
	defer rows.Close()

	var schedule []ScheduleRow
	for rows.Next() {
		var row ScheduleRow
		if err := rows.Scan(&row.SubjectSku, &row.GroupSku); err != nil {
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}
		schedule = append(schedule, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading student schedule: %w", err)
	}

	return schedule, nil
}

// Replace overwrites a student's schedule with the given rows inside one transaction.
func (r *ScheduleRepository) Replace(ctx context.Context, tx pgx.Tx, studentID int64, schedule []ScheduleRow) error {
	_, err := tx.Exec(ctx, `DELETE FROM student_schedules WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error clearing student schedule: %w", err)
	}

	for pos, row := range schedule {
		_, err := tx.Exec(ctx, `
			INSERT INTO student_schedules (student_id, subject_sku, group_sku, position)
			VALUES ($1, $2, $3, $4)`,
			studentID, row.SubjectSku, row.GroupSku, pos)
		if err != nil {
			return fmt.Errorf("error inserting schedule row: %w", err)
		}
	}

	return nil
}
