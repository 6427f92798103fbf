package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	OrderCharges    float64 `json:"orderCharges"`
	DeliveryCharges float64 `json:"deliveryCharges"`
	GST             float64 `json:"gst"`
	TotalAmount     float64 `json:"totalAmount"`

	Status string `gorm:"not null;default:preparing" json:"status"`

	CartID uint `gorm:"uniqueIndex" json:"cartId"`
	Cart   Cart `json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	DeliveryPartnerID *uint `json:"deliveryPartnerId,omitempty"`
	DeliveryPartner   *User `gorm:"foreignKey:DeliveryPartnerID" json:"-"`

	Payments []Payment `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}
