package entity

import (
	"gorm.io/gorm"
)

const (
	CategoryVeg    = "veg"
	CategoryNonVeg = "non-veg"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Category    string `gorm:"not null;default:veg" json:"category"`
	ImageURL    string `json:"imageUrl"`

	CityID uint `json:"cityId"`
	City   City `json:"-"`

	// owner (users.id)
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Dishes []Dish  `json:"-"`
	Orders []Order `json:"-"`
}
