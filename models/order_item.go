package models

// OrderItem is a snapshot of what the client ordered. Values are taken from
// the request as-is, not looked up in the catalog.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderRef uint    `gorm:"index;not null" json:"-"`
	Position int     `gorm:"not null" json:"-"`
	ItemID   uint    `json:"id"`
	Name     string  `gorm:"type:varchar(255)" json:"name"`
	Price    float64 `gorm:"type:decimal(10,2)" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Category string  `gorm:"type:varchar(100)" json:"category"`
}
