package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tomascl/horarium/internal/app/models"
)

// Catalog error types
var (
	ErrSubjectNotFound = errors.New("subject not found")
)

// CatalogRepository handles database operations for the subject catalog
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

// GetAllSubjects returns the full catalog with requirements, groups and slots attached.
func (r *CatalogRepository) GetAllSubjects(ctx context.Context) ([]models.Subject, error) {
	query := `
		SELECT sku, name, credits, level
		FROM subjects
		ORDER BY sku
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	index := make(map[string]int)
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.Sku, &subject.Name, &subject.Credits, &subject.Level); err != nil {
			return nil, fmt.Errorf("error scanning subject: %w", err)
		}
		index[subject.Sku] = len(subjects)
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading subjects: %w", err)
	}

	if err := r.attachRequirements(ctx, subjects, index); err != nil {
		return nil, err
	}
	if err := r.attachGroups(ctx, subjects, index); err != nil {
		return nil, err
	}

	return subjects, nil
}

// GetSubjectBySku returns a single subject with its requirements, groups and slots.
func (r *CatalogRepository) GetSubjectBySku(ctx context.Context, sku string) (*models.Subject, error) {
	query := `
		SELECT sku, name, credits, level
		FROM subjects
		WHERE sku = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, sku).Scan(&subject.Sku, &subject.Name, &subject.Credits, &subject.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	subjects := []models.Subject{subject}
	index := map[string]int{subject.Sku: 0}
	if err := r.attachRequirements(ctx, subjects, index); err != nil {
		return nil, err
	}
	if err := r.attachGroups(ctx, subjects, index); err != nil {
		return nil, err
	}

	return &subjects[0], nil
}

// attachRequirements loads the ordered requirement lists for the given subjects.
func (r *CatalogRepository) attachRequirements(ctx context.Context, subjects []models.Subject, index map[string]int) error {
	if len(subjects) == 0 {
		return nil
	}

	query := `
		SELECT subject_sku, requirement_sku
		FROM subject_requirements
		WHERE subject_sku = ANY($1)
		ORDER BY subject_sku, position
	`

	rows, err := r.db.Query(ctx, query, subjectSkus(subjects))
	if err != nil {
		return fmt.Errorf("error retrieving subject requirements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var subjectSku, requirementSku string
		if err := rows.Scan(&subjectSku, &requirementSku); err != nil {
			return fmt.Errorf("error scanning subject requirement: %w", err)
		}
		if i, ok := index[subjectSku]; ok {
			subjects[i].Requirements = append(subjects[i].Requirements, requirementSku)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error reading subject requirements: %w", err)
	}

	return nil
}

// attachGroups loads groups and their weekly slots for the given subjects.
func (r *CatalogRepository) attachGroups(ctx context.Context, subjects []models.Subject, index map[string]int) error {
	if len(subjects) == 0 {
		return nil
	}

	skus := subjectSkus(subjects)

	groupQuery := `
		SELECT subject_sku, sku, capacity, enrolled
		FROM subject_groups
		WHERE subject_sku = ANY($1)
		ORDER BY subject_sku, sku
	`

	rows, err := r.db.Query(ctx, groupQuery, skus)
	if err != nil {
		return fmt.Errorf("error retrieving subject groups: %w", err)
	}

	// (subjectSku, groupSku) -> position within the subject's group list
	groupIndex := make(map[[2]string]int)
	for rows.Next() {
		var subjectSku string
		var group models.Group
		if err := rows.Scan(&subjectSku, &group.Sku, &group.Capacity, &group.Enrolled); err != nil {
			rows.Close()
			return fmt.Errorf("error scanning subject group: %w", err)
		}
		if i, ok := index[subjectSku]; ok {
			groupIndex[[2]string{subjectSku, group.Sku}] = len(subjects[i].Groups)
			subjects[i].Groups = append(subjects[i].Groups, group)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("error reading subject groups: %w", err)
	}
	rows.Close()

	slotQuery := `
		SELECT subject_sku, group_sku, day, hour_range, location, professor
		FROM group_slots
		WHERE subject_sku = ANY($1)
		ORDER BY id
	`

	slotRows, err := r.db.Query(ctx, slotQuery, skus)
	if err != nil {
		return fmt.Errorf("error retrieving group slots: %w", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var subjectSku, groupSku string
		var slot models.ScheduleSlot
		if err := slotRows.Scan(&subjectSku, &groupSku, &slot.Day, &slot.HourRange, &slot.Location, &slot.Professor); err != nil {
			return fmt.Errorf("error scanning group slot: %w", err)
		}
		i, ok := index[subjectSku]
		if !ok {
			continue
		}
		j, ok := groupIndex[[2]string{subjectSku, groupSku}]
		if !ok {
			continue
		}
		subjects[i].Groups[j].Slots = append(subjects[i].Groups[j].Slots, slot)
	}
	if err := slotRows.Err(); err != nil {
		return fmt.Errorf("error reading group slots: %w", err)
	}

	return nil
}

// CountSubjects returns the number of subjects in the catalog.
func (r *CatalogRepository) CountSubjects(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM subjects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting subjects: %w", err)
	}
	return count, nil
}

// CreateSubject inserts a subject together with its requirements, groups and slots.
func (r *CatalogRepository) CreateSubject(ctx context.Context, tx pgx.Tx, subject *models.Subject) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO subjects (sku, name, credits, level)
		VALUES ($1, $2, $3, $4)`,
		subject.Sku, subject.Name, subject.Credits, subject.Level)
	if err != nil {
		return fmt.Errorf("error creating subject: %w", err)
	}

	for pos, requirement := range subject.Requirements {
		_, err := tx.Exec(ctx, `
			INSERT INTO subject_requirements (subject_sku, requirement_sku, position)
			VALUES ($1, $2, $3)`,
			subject.Sku, requirement, pos)
		if err != nil {
			return fmt.Errorf("error creating subject requirement: %w", err)
		}
	}

	for _, group := range subject.Groups {
		_, err := tx.Exec(ctx, `
			INSERT INTO subject_groups (subject_sku, sku, capacity, enrolled)
			VALUES ($1, $2, $3, $4)`,
			subject.Sku, group.Sku, group.Capacity, group.Enrolled)
		if err != nil {
			return fmt.Errorf("error creating subject group: %w", err)
		}

		for _, slot := range group.Slots {
			_, err := tx.Exec(ctx, `
				INSERT INTO group_slots (subject_sku, group_sku, day, hour_range, location, professor)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				subject.Sku, group.Sku, slot.Day, slot.HourRange, slot.Location, slot.Professor)
			if err != nil {
				return fmt.Errorf("error creating group slot: %w", err)
			}
		}
	}

	return nil
}

func subjectSkus(subjects []models.Subject) []string {
	skus := make([]string, len(subjects))
	for i, subject := range subjects {
		skus[i] = subject.Sku
	}
	return skus
}
