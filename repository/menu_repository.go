package repository

import (
	"context"

	"github.com/yeremiapane/food-ordering/models"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindByRestaurant returns every item of the restaurant in catalog order.
func (r *MenuRepository) FindByRestaurant(ctx context.Context, restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
