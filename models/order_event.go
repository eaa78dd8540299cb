package models

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusUpdated = "order_status_updated"
)

// OrderEvent is emitted to downstream consumers after a ledger write commits.
type OrderEvent struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	RestaurantID   uint      `json:"restaurantId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	TotalAmount    float64   `json:"totalAmount"`
	Timestamp      time.Time `json:"timestamp"`
}
