package repository

import (
	"dishpatch-be/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) ExistsForOrder(tx *gorm.DB, orderID uint) (bool, error) {
	var count int64
	err := tx.Model(&entity.Payment{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (r *PaymentRepository) GetByOrder(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
