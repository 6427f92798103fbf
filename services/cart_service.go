package services

import (
	"errors"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"
	"dishpatch-be/repository"
	"dishpatch-be/utils"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	DishRepo *repository.DishRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, dr *repository.DishRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, DishRepo: dr}
}

type AddItemIn struct {
	DishID   uint `json:"dishId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CartOut struct {
	Cart     *entity.Cart `json:"cart"`
	Subtotal float64      `json:"subtotal"`
}

func (s *CartService) Get(userID uint) (*CartOut, error) {
	c, err := s.CartRepo.GetActiveWithLines(userID)
	if err != nil {
		return nil, err
	}
	var subtotal float64
	for _, line := range c.Lines {
		subtotal += float64(line.Quantity) * line.UnitPrice
	}
	return &CartOut{Cart: c, Subtotal: utils.Round2(subtotal)}, nil
}

// AddItem puts a dish into the user's active cart. A dish already in the
// cart gets its quantity overwritten, not added to. The cart lookup and the
// cross-restaurant check run inside the write transaction so concurrent
// first-adds cannot pin the cart to two restaurants.
func (s *CartService) AddItem(userID uint, in *AddItemIn) error {
	dish, err := s.DishRepo.GetByID(in.DishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("dish unavailable")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateActive(tx, userID)
		if err != nil {
			return err
		}

		// cross-restaurant carts are rejected, not merged
		if cart.RestaurantID != 0 && cart.RestaurantID != dish.RestaurantID {
			return apperr.Conflict("cart holds dishes from another restaurant")
		}

		if cart.RestaurantID == 0 {
			if err := tx.Model(&entity.Cart{}).Where("id = ?", cart.ID).
				Update("restaurant_id", dish.RestaurantID).Error; err != nil {
				return err
			}
		}

		line, err := s.CartRepo.GetLine(tx, cart.ID, in.DishID)
		if err == nil {
			line.Quantity = in.Quantity
			return s.CartRepo.SaveLine(tx, line)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		count, err := s.CartRepo.CountLines(tx, cart.ID)
		if err != nil {
			return err
		}
		if count >= entity.MaxCartLines {
			return apperr.BadRequest("cart limit exceeded")
		}

		return s.CartRepo.SaveLine(tx, &entity.CartLine{
			CartID:    cart.ID,
			DishID:    dish.ID,
			Quantity:  in.Quantity,
			UnitPrice: dish.Price,
		})
	})
}

func (s *CartService) RemoveItem(userID, cartID, dishID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetActiveByID(tx, userID, cartID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cart not found")
			}
			return err
		}

		affected, err := s.CartRepo.DeleteLine(tx, cart.ID, dishID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound("dish not in cart")
		}

		// empty cart is free to pick a new restaurant again
		count, err := s.CartRepo.CountLines(tx, cart.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			return tx.Model(&entity.Cart{}).Where("id = ?", cart.ID).
				Update("restaurant_id", 0).Error
		}
		return nil
	})
}

func (s *CartService) Empty(userID, cartID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetActiveByID(tx, userID, cartID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cart not found")
			}
			return err
		}

		count, err := s.CartRepo.CountLines(tx, cart.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			return apperr.NotFound("cart has no items")
		}

		if err := s.CartRepo.DeleteLines(tx, cart.ID); err != nil {
			return err
		}
		return tx.Model(&entity.Cart{}).Where("id = ?", cart.ID).
			Update("restaurant_id", 0).Error
	})
}
