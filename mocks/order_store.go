package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yeremiapane/food-ordering/models"
)

// OrderStore is a mock type for the services.OrderStore type.
//
// UpdateStatus hands the apply callback to the stubbed order (Get(0)) before
// returning it, so callers observe the mutation as with a real store.
type OrderStore struct {
	mock.Mock
}

func (m *OrderStore) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderStore) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *OrderStore) UpdateStatus(ctx context.Context, orderID string, apply func(order *models.Order) error) (*models.Order, error) {
	args := m.Called(ctx, orderID, apply)
	order, _ := args.Get(0).(*models.Order)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if err := apply(order); err != nil {
		return nil, err
	}
	return order, nil
}

// OrderEventPublisher is a mock type for the services.OrderEventPublisher type.
type OrderEventPublisher struct {
	mock.Mock
}

func (m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event models.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
