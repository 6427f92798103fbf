package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin           = "admin"
	RoleCustomer        = "customer"
	RoleRestaurantOwner = "restaurant_owner"
	RoleDeliveryPartner = "delivery_partner"
)

type Role struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:users_roles;" json:"-"`
}
