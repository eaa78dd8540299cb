package services

import (
	"context"

	"github.com/yeremiapane/food-ordering/models"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
}

type MenuStore interface {
	FindByRestaurant(ctx context.Context, restaurantID uint) ([]models.MenuItem, error)
}

type RestaurantStore interface {
	List(ctx context.Context) ([]models.Restaurant, error)
	FindByID(ctx context.Context, id uint) (*models.Restaurant, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, apply func(order *models.Order) error) (*models.Order, error)
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event models.OrderEvent) error
}
