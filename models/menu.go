package models

// MenuItem is catalog seed data; the service never writes it after seeding.
type MenuItem struct {
	ID           uint    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	RestaurantID uint    `gorm:"index;not null" json:"restaurantId"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Category     string  `gorm:"type:varchar(100)" json:"category"`
	Description  string  `gorm:"type:text" json:"description"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
