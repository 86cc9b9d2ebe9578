package store

import "github.com/MKhiriev/refgame/internal/logger"

// Storages bundles the tracker-side repositories for injection into the
// service layer.
type Storages struct {
	UserRepository UserRepository
	RunRepository  RunRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		RunRepository:  NewRunRepository(db, log),
	}
}
