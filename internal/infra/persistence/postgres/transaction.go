// Package postgres implements the repositories on GORM over PostgreSQL.
package postgres

import (
	"context"

	"pawtrack/internal/domain/repository"
	"pawtrack/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a manager whose units of work share one
// *gorm.DB transaction.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise. gorm also
// rolls back when fn panics and lets the panic continue.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if err == nil {
		return nil
	}
	// Hand back the unit of work's own error untouched so callers can match it.
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "transaction failed")
}

// txRepositories binds every repository it builds to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewDeviceRepository() repository.DeviceRepository {
	return NewDeviceRepository(r.tx)
}

func (r txRepositories) NewLocationRepository() repository.LocationRepository {
	return NewLocationRepository(r.tx)
}

func (r txRepositories) NewAlertRepository() repository.AlertRepository {
	return NewAlertRepository(r.tx)
}
