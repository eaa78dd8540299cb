package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const OrderIDPrefix = "ORD-"

type CustomerInfo struct {
	Name    string `gorm:"type:varchar(255)" json:"name"`
	Email   string `gorm:"type:varchar(255)" json:"email"`
	Phone   string `gorm:"type:varchar(50)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
}

// Order is keyed on the wire by OrderID; the numeric ID is storage-only.
// UpdatedAt stays null until the first status change.
type Order struct {
	ID           uint         `gorm:"primaryKey" json:"-"`
	OrderID      string       `gorm:"type:varchar(32);uniqueIndex;not null" json:"orderId"`
	RestaurantID uint         `gorm:"index;not null" json:"restaurantId"`
	Items        []OrderItem  `gorm:"foreignKey:OrderRef;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	CustomerInfo CustomerInfo `gorm:"embedded;embeddedPrefix:customer_" json:"customerInfo"`
	Status       string       `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`
	TotalAmount  float64      `gorm:"type:decimal(10,2);not null;default:0" json:"totalAmount"`
	CreatedAt    time.Time    `gorm:"not null" json:"createdAt"`
	UpdatedAt    *time.Time   `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// FormatOrderID renders the nth order ordinal, e.g. 3 -> "ORD-3".
func FormatOrderID(n int64) string {
	return fmt.Sprintf("%s%d", OrderIDPrefix, n)
}

// ComputeTotal sums price*quantity over the items with decimal arithmetic.
func ComputeTotal(items []OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Round(2).Float64()
	return f
}
