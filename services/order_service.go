package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-ordering/metrics"
	"github.com/yeremiapane/food-ordering/models"
	"github.com/yeremiapane/food-ordering/utils"
)

// CreateOrderInput is what a client submits. CustomerInfo is a pointer so a
// missing object can be told apart from an empty one.
type CreateOrderInput struct {
	RestaurantID uint                 `json:"restaurantId"`
	Items        []models.OrderItem   `json:"items"`
	CustomerInfo *models.CustomerInfo `json:"customerInfo"`
}

type OrderServiceOptions struct {
	// StrictTransitions restricts status updates to the known lifecycle.
	StrictTransitions bool
}

// OrderService is the order ledger.
type OrderService struct {
	orders    OrderStore
	publisher OrderEventPublisher
	opts      OrderServiceOptions
	now       func() time.Time
}

func NewOrderService(orders OrderStore, publisher OrderEventPublisher, opts OrderServiceOptions) *OrderService {
	return &OrderService{
		orders:    orders,
		publisher: publisher,
		opts:      opts,
		now:       time.Now,
	}
}

// WithClock returns a copy that reads time from now.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	cp := *s
	cp.now = now
	return &cp
}

func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.RestaurantID == 0 || len(in.Items) == 0 || in.CustomerInfo == nil {
		return nil, utils.ValidationError("Missing required fields")
	}

	items := make([]models.OrderItem, len(in.Items))
	copy(items, in.Items)

	order := &models.Order{
		RestaurantID: in.RestaurantID,
		Items:        items,
		CustomerInfo: *in.CustomerInfo,
		Status:       models.StatusPending,
		TotalAmount:  models.ComputeTotal(items),
		CreatedAt:    s.now(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, utils.InternalError("Failed to create order", err)
	}

	metrics.RecordOrderCreated()
	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":      order.OrderID,
		"restaurant_id": order.RestaurantID,
		"items":         len(order.Items),
		"total":         utils.FormatCurrency(order.TotalAmount),
	}).Info("order created")

	s.publish(ctx, models.OrderEvent{
		Type:         models.EventOrderCreated,
		OrderID:      order.OrderID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		Timestamp:    order.CreatedAt,
	})
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orders.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Order not found")
		}
		return nil, utils.InternalError("Server error", err)
	}
	return order, nil
}

// UpdateStatus overwrites the status and stamps updatedAt. Without strict
// transitions the status is stored exactly as sent, empty or not.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if s.opts.StrictTransitions {
		status = strings.TrimSpace(status)
		if status == "" {
			return nil, utils.ValidationError("Status is required")
		}
		if !models.IsKnownStatus(status) {
			return nil, utils.ValidationError(fmt.Sprintf("Unknown status %q", status))
		}
	}

	var previous string
	order, err := s.orders.UpdateStatus(ctx, orderID, func(o *models.Order) error {
		if s.opts.StrictTransitions && !models.CanTransition(o.Status, status) {
			return utils.ValidationError(fmt.Sprintf("Cannot change status from %s to %s", o.Status, status))
		}
		previous = o.Status
		now := s.now()
		o.Status = status
		o.UpdatedAt = &now
		return nil
	})
	if err != nil {
		var appErr *utils.AppError
		switch {
		case errors.As(err, &appErr):
			return nil, appErr
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, utils.NotFoundError("Order not found")
		default:
			return nil, utils.InternalError("Server error while updating order", err)
		}
	}

	updatedAt := s.now()
	if order.UpdatedAt != nil {
		updatedAt = *order.UpdatedAt
	}
	metrics.RecordStatusUpdate(status, models.IsKnownStatus(status))
	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.OrderID,
		"from":     previous,
		"to":       order.Status,
	}).Info("order status updated")

	s.publish(ctx, models.OrderEvent{
		Type:           models.EventOrderStatusUpdated,
		OrderID:        order.OrderID,
		RestaurantID:   order.RestaurantID,
		Status:         order.Status,
		PreviousStatus: previous,
		TotalAmount:    order.TotalAmount,
		Timestamp:      updatedAt,
	})
	return order, nil
}

// publish never fails the caller; the ledger write has already committed.
func (s *OrderService) publish(ctx context.Context, event models.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"order_id": event.OrderID,
			"event":    event.Type,
		}).WithError(err).Error("failed to publish order event")
	}
}
