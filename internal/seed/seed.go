package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/tomascl/horarium/internal/app/models"
	appRepos "github.com/tomascl/horarium/internal/app/repositories"
	"github.com/tomascl/horarium/internal/config"
	"github.com/tomascl/horarium/internal/db"
	"github.com/tomascl/horarium/internal/pkg/auth"
)

// catalogRow is one CSV line of the seed file: a single weekly slot together
// with its subject and group columns. Rows sharing a subject_sku/group_sku
// pair are folded into one group; requirements are pipe-separated skus.
type catalogRow struct {
	SubjectSku   string `csv:"subject_sku"`
	SubjectName  string `csv:"subject_name"`
	Credits      int    `csv:"credits"`
	Level        int    `csv:"level"`
	Requirements string `csv:"requirements"`
	GroupSku     string `csv:"group_sku"`
	Capacity     *int   `csv:"capacity"`
	Enrolled     *int   `csv:"enrolled"`
	Day          string `csv:"day"`
	Hour         string `csv:"hour"`
	Location     string `csv:"location"`
	Professor    string `csv:"professor"`
}

// CreateDefaultData seeds the subject catalog from the configured CSV file
// when the catalog is empty, and ensures a default advisor account exists.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	catalogRepo := appRepos.NewCatalogRepository(database.Pool)
	userRepo := appRepos.NewUserRepository(database.Pool)

	var finalErr error

	if err := seedCatalog(ctx, database, catalogRepo, cfg.Catalog.SeedFile, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding subject catalog")
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedAdvisor(ctx, userRepo, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating default advisor user")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// seedCatalog loads the CSV seed file into the catalog tables. A non-empty
// catalog is left untouched so restarts never duplicate subjects.
func seedCatalog(ctx context.Context, database *db.PostgresDB, catalogRepo *appRepos.CatalogRepository, seedFile string, lgr zerolog.Logger) error {
	if seedFile == "" {
		return nil
	}

	count, err := catalogRepo.CountSubjects(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int("subjects", count).Msg("Catalog already populated, skipping seed")
		return nil
	}

	file, err := os.Open(seedFile)
	if err != nil {
		if os.IsNotExist(err) {
			lgr.Warn().Str("path", seedFile).Msg("Catalog seed file not found, starting with an empty catalog")
			return nil
		}
		return fmt.Errorf("failed to open catalog seed file: %w", err)
	}
	defer file.Close()

	var rows []*catalogRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return fmt.Errorf("failed to parse catalog seed file: %w", err)
	}

	subjects := foldRows(rows)
	if len(subjects) == 0 {
		return nil
	}

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for i := range subjects {
			if err := catalogRepo.CreateSubject(ctx, tx, &subjects[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Int("subjects", len(subjects)).Str("file", seedFile).Msg("Subject catalog seeded")
	return nil
}

// foldRows aggregates flat CSV rows into subjects with groups and slots,
// preserving file order.
func foldRows(rows []*catalogRow) []appModels.Subject {
	var subjects []appModels.Subject
	subjectIndex := make(map[string]int)
	groupIndex := make(map[[2]string]int)

	for _, row := range rows {
		if row.SubjectSku == "" || row.GroupSku == "" {
			continue
		}

		si, ok := subjectIndex[row.SubjectSku]
		if !ok {
			si = len(subjects)
			subjectIndex[row.SubjectSku] = si
			subjects = append(subjects, appModels.Subject{
				Sku:          row.SubjectSku,
				Name:         row.SubjectName,
				Credits:      row.Credits,
				Level:        row.Level,
				Requirements: splitRequirements(row.Requirements),
			})
		}

		gKey := [2]string{row.SubjectSku, row.GroupSku}
		gi, ok := groupIndex[gKey]
		if !ok {
			gi = len(subjects[si].Groups)
			groupIndex[gKey] = gi
			subjects[si].Groups = append(subjects[si].Groups, appModels.Group{
				Sku:      row.GroupSku,
				Capacity: row.Capacity,
				Enrolled: row.Enrolled,
			})
		}

		slot := appModels.ScheduleSlot{Day: row.Day, HourRange: row.Hour}
		if row.Location != "" {
			location := row.Location
			slot.Location = &location
		}
		if row.Professor != "" {
			professor := row.Professor
			slot.Professor = &professor
		}
		subjects[si].Groups[gi].Slots = append(subjects[si].Groups[gi].Slots, slot)
	}

	return subjects
}

func splitRequirements(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	requirements := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			requirements = append(requirements, trimmed)
		}
	}
	return requirements
}

// seedAdvisor ensures one advisor account exists so appeals can be reviewed
// out of the box.
func seedAdvisor(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	const advisorEmail = "advisor@horarium.app"

	exists, err := userRepo.EmailExists(ctx, advisorEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	lgr.Info().Msg("Creating default advisor user...")

	hashedPassword, err := auth.HashPassword("Advisor123!")
	if err != nil {
		return fmt.Errorf("error hashing advisor password: %w", err)
	}

	advisor := &appModels.User{
		Email:     advisorEmail,
		Password:  hashedPassword,
		FirstName: "Default",
		LastName:  "Advisor",
		RoleType:  appModels.RoleAdvisor,
	}
	if err := userRepo.Create(ctx, advisor); err != nil {
		return err
	}

	lgr.Info().Str("email", advisorEmail).Msg("Default advisor user created")
	return nil
}
