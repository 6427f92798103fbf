package repository

import (
	"time"

	"dishpatch-be/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) ExistsForCart(tx *gorm.DB, cartID uint) (bool, error) {
	var count int64
	err := tx.Model(&entity.Order{}).Where("cart_id = ?", cartID).Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint      `json:"id"`
	RestaurantID uint      `json:"restaurantId"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListForUser(userID uint, page, limit int) ([]OrderSummary, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, restaurant_id, status, total_amount, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).Offset((page - 1) * limit).
		Scan(&out).Error
	return out, total, err
}

// AssignPartner binds a delivery partner to a still-unassigned preparing
// order. Zero rows affected means the order moved on or is already taken.
func (r *OrderRepository) AssignPartner(tx *gorm.DB, orderID, partnerID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ? AND delivery_partner_id IS NULL", orderID, entity.OrderStatusPreparing).
		Update("delivery_partner_id", partnerID)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Delete(tx *gorm.DB, orderID uint) error {
	return tx.Delete(&entity.Order{}, orderID).Error
}

// HasDeliveredForRestaurant backs rating entitlement checks.
func (r *OrderRepository) HasDeliveredForRestaurant(userID, restID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("user_id = ? AND restaurant_id = ? AND status = ?", userID, restID, entity.OrderStatusDelivered).
		Count(&count).Error
	return count > 0, err
}
