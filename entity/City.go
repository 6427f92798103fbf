package entity

import (
	"gorm.io/gorm"
)

type City struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Restaurants []Restaurant `json:"-"`
}
