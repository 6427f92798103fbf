package entity

import (
	"gorm.io/gorm"
)

const (
	CartStatusActive = "active"
	CartStatusLocked = "locked"
)

// MaxCartLines caps distinct dish lines per cart.
const MaxCartLines = 5

type Cart struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	// 0 until the first dish pins the cart to a restaurant
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Status string `gorm:"not null;default:active" json:"status"`

	Lines []CartLine `json:"lines" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
