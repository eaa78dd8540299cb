package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yeremiapane/food-ordering/models"
)

// MenuStore is a mock type for the services.MenuStore type.
type MenuStore struct {
	mock.Mock
}

func (m *MenuStore) FindByRestaurant(ctx context.Context, restaurantID uint) ([]models.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	items, _ := args.Get(0).([]models.MenuItem)
	return items, args.Error(1)
}

// RestaurantStore is a mock type for the services.RestaurantStore type.
type RestaurantStore struct {
	mock.Mock
}

func (m *RestaurantStore) List(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	restaurants, _ := args.Get(0).([]models.Restaurant)
	return restaurants, args.Error(1)
}

func (m *RestaurantStore) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	restaurant, _ := args.Get(0).(*models.Restaurant)
	return restaurant, args.Error(1)
}
