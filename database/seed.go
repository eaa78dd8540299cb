package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/food-ordering/models"
	"github.com/yeremiapane/food-ordering/utils"
)

// Seed loads the restaurant catalog. Rows that already exist are left as
// they are, so running it again is harmless.
func Seed(ctx context.Context, db *gorm.DB, withTestUsers bool) error {
	db = db.WithContext(ctx)

	err := db.Transaction(func(tx *gorm.DB) error {
		restaurants := append([]models.Restaurant(nil), seedRestaurants...)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&restaurants).Error; err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}
		items := append([]models.MenuItem(nil), seedMenuItems...)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error; err != nil {
			return fmt.Errorf("seed menu items: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	created := 0
	if withTestUsers {
		for _, u := range testUsers {
			ok, err := seedUserIfMissing(db, u)
			if err != nil {
				return err
			}
			if ok {
				created++
			}
		}
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"restaurants": len(seedRestaurants),
		"menu_items":  len(seedMenuItems),
		"test_users":  created,
	}).Info("catalog seeded")
	return nil
}

func seedUserIfMissing(db *gorm.DB, u seedUser) (bool, error) {
	var existing models.User
	err := db.Where("username = ? OR email = ?", u.Username, u.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("look up test user %s: %w", u.Username, err)
	}

	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return false, err
	}
	user := models.User{Username: u.Username, Email: u.Email, Password: hashed}
	if err := db.Create(&user).Error; err != nil {
		return false, fmt.Errorf("create test user %s: %w", u.Username, err)
	}
	return true, nil
}
