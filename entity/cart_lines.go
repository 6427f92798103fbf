package entity

import (
	"gorm.io/gorm"
)

type CartLine struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`
	Cart   Cart `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	Quantity int `json:"quantity"`
	// price captured at add-time, not live-priced
	UnitPrice float64 `json:"unitPrice"`
}

func (CartLine) TableName() string { return "cart_dishes" }
