package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/food-ordering/models"
	"github.com/yeremiapane/food-ordering/utils"
)

// CatalogService serves the read-only restaurant and menu seed data.
type CatalogService struct {
	menus       MenuStore
	restaurants RestaurantStore
}

func NewCatalogService(menus MenuStore, restaurants RestaurantStore) *CatalogService {
	return &CatalogService{menus: menus, restaurants: restaurants}
}

// GetMenu returns the items of a restaurant. A restaurant without items is
// reported as not found.
func (s *CatalogService) GetMenu(ctx context.Context, restaurantID uint) ([]models.MenuItem, error) {
	items, err := s.menus.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, utils.InternalError("Server error", err)
	}
	if len(items) == 0 {
		return nil, utils.NotFoundError("Menu not found")
	}
	return items, nil
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, utils.InternalError("Server error", err)
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	return restaurants, nil
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Restaurant not found")
		}
		return nil, utils.InternalError("Server error", err)
	}
	return restaurant, nil
}
