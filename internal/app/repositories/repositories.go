package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all data access objects
type Repositories struct {
	UserRepository     *UserRepository
	CatalogRepository  *CatalogRepository
	ScheduleRepository *ScheduleRepository
	AppealRepository   *AppealRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		CatalogRepository:  NewCatalogRepository(db),
		ScheduleRepository: NewScheduleRepository(db),
		AppealRepository:   NewAppealRepository(db),
	}
}
