package repository

import (
	"errors"

	"dishpatch-be/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetActiveWithLines returns the user's active cart, or an empty unsaved cart
// when none exists so GET /cart never 404s.
func (r *CartRepository) GetActiveWithLines(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ? AND status = ?", userID, entity.CartStatusActive).
		Preload("Lines").
		Preload("Lines.Dish").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, Status: entity.CartStatusActive}, nil
	}
	return &c, err
}

// GetOrCreateActive keeps the one-active-cart-per-user invariant: a locked
// cart never comes back, a fresh one is created instead.
func (r *CartRepository) GetOrCreateActive(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ? AND status = ?", userID, entity.CartStatusActive).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, Status: entity.CartStatusActive}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID loads the user's cart regardless of status.
func (r *CartRepository) GetByID(tx *gorm.DB, userID, cartID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("id = ? AND user_id = ?", cartID, userID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetActiveByID(tx *gorm.DB, userID, cartID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("id = ? AND user_id = ? AND status = ?", cartID, userID, entity.CartStatusActive).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) SetRestaurant(cartID, restID uint) error {
	return r.DB.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("restaurant_id", restID).Error
}

// ---------------- Lines ----------------

func (r *CartRepository) GetLine(tx *gorm.DB, cartID, dishID uint) (*entity.CartLine, error) {
	var line entity.CartLine
	err := tx.Where("cart_id = ? AND dish_id = ?", cartID, dishID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) CountLines(tx *gorm.DB, cartID uint) (int64, error) {
	var count int64
	err := tx.Model(&entity.CartLine{}).Where("cart_id = ?", cartID).Count(&count).Error
	return count, err
}

func (r *CartRepository) GetLines(tx *gorm.DB, cartID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := tx.Where("cart_id = ?", cartID).Find(&lines).Error
	return lines, err
}

func (r *CartRepository) SaveLine(tx *gorm.DB, line *entity.CartLine) error {
	return tx.Save(line).Error
}

func (r *CartRepository) DeleteLine(tx *gorm.DB, cartID, dishID uint) (int64, error) {
	res := tx.Where("cart_id = ? AND dish_id = ?", cartID, dishID).Delete(&entity.CartLine{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) DeleteLines(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartLine{}).Error
}

// ---------------- Status ----------------

// Lock flips an active cart to locked. Zero rows affected means the cart was
// not active anymore.
func (r *CartRepository) Lock(tx *gorm.DB, cartID uint) (int64, error) {
	res := tx.Model(&entity.Cart{}).
		Where("id = ? AND status = ?", cartID, entity.CartStatusActive).
		Update("status", entity.CartStatusLocked)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) Delete(tx *gorm.DB, cartID uint) error {
	if err := tx.Where("cart_id = ?", cartID).Delete(&entity.CartLine{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Cart{}, cartID).Error
}
