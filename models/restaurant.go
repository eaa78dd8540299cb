package models

type Restaurant struct {
	ID           uint    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Cuisine      string  `gorm:"type:varchar(100)" json:"cuisine"`
	Rating       float64 `gorm:"type:decimal(3,1)" json:"rating"`
	DeliveryTime string  `gorm:"type:varchar(50)" json:"delivery_time"`
	MinOrder     float64 `gorm:"type:decimal(10,2)" json:"min_order"`
	Image        string  `gorm:"type:varchar(16)" json:"image"`
}
