package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name     string  `json:"name"`
	Detail   string  `json:"detail"`
	Price    float64 `json:"price"`
	Category string  `gorm:"not null;default:veg" json:"category"`
	ImageURL string  `json:"imageUrl"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CartLines []CartLine `json:"-"`
}
