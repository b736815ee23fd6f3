package postgres

import (
	"pawtrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the engine's tables. Production schemas are
// managed out of band; this serves local development and tests.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(model.AllModels()...), "failed to migrate schema")
}
