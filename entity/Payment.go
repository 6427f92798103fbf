package entity

import (
	"gorm.io/gorm"
)

const (
	PaymentTypeOnline = "online"
	PaymentTypeCOD    = "cash-on-delivery"

	PaymentStatusPending    = "pending"
	PaymentStatusSuccessful = "successful"
	PaymentStatusFailed     = "failed"
)

type Payment struct {
	gorm.Model
	TotalAmount float64 `json:"totalAmount"`
	Type        string  `gorm:"not null" json:"type"`
	Status      string  `gorm:"not null;default:pending" json:"status"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`
}
