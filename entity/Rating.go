package entity

import (
	"gorm.io/gorm"
)

const (
	RatingEntityRestaurant = "restaurant"
	RatingEntityDish       = "dish"
)

type Rating struct {
	gorm.Model
	Score int `json:"score"`

	UserID uint `gorm:"index:idx_rating_user_entity,unique" json:"userId"`
	User   User `json:"-"`

	EntityType string `gorm:"index:idx_rating_user_entity,unique" json:"entityType"`
	EntityID   uint   `gorm:"index:idx_rating_user_entity,unique" json:"entityId"`
}
