package controllers

import (
	"context"

	"github.com/yeremiapane/food-ordering/models"
	"github.com/yeremiapane/food-ordering/services"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, string, error)
}

type CatalogService interface {
	GetMenu(ctx context.Context, restaurantID uint) ([]models.MenuItem, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, in services.CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error)
}
