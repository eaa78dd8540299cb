package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/food-ordering/models"
	"github.com/yeremiapane/food-ordering/repository"
	"github.com/yeremiapane/food-ordering/utils"
)

// Migrate creates or updates every table and makes sure the order counter
// row exists.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderSequence{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Start the counter after the newest existing order so a database that
	// predates the counter keeps issuing fresh ids.
	last, err := repository.NewOrderRepository(db, nil).LastOrdinal(ctx)
	if err != nil {
		return err
	}
	if err := repository.EnsureSequence(ctx, db, models.OrderSequenceName, last); err != nil {
		return fmt.Errorf("ensure order sequence: %w", err)
	}
	// The row may exist from an earlier run while orders were numbered by
	// another sequencer since.
	if err := repository.RaiseSequence(ctx, db, models.OrderSequenceName, last); err != nil {
		return err
	}

	utils.InfoLogger.Info("database migrated")
	return nil
}
