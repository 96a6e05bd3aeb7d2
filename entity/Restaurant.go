package entity

type Restaurant struct {
	Model
	Name         string  `gorm:"size:128;index;not null" json:"name"`
	Category     string  `gorm:"size:64;index" json:"category"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"delivery_time"`
	Image        string  `json:"image"`
	PriceRange   string  `json:"price_range"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
}
