package models

// OrderSequence is a named counter row. Orders use the "orders" row.
type OrderSequence struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}

const OrderSequenceName = "orders"
