package services

import (
	"errors"
	"fmt"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"
	"dishpatch-be/pkg/mailer"
	"dishpatch-be/repository"
	"dishpatch-be/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository

	Mailer mailer.Mailer
	Log    *zap.Logger

	GSTRate         float64
	DeliveryCharges float64
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	m mailer.Mailer,
	log *zap.Logger,
	gstRate, deliveryCharges float64,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo,
		Mailer: m, Log: log,
		GSTRate: gstRate, DeliveryCharges: deliveryCharges,
	}
}

type PlaceOrderIn struct {
	UserID uint `json:"userId" binding:"required"`
	CartID uint `json:"cartId" binding:"required"`
}

type PlaceOrderOut struct {
	ID              uint    `json:"id"`
	OrderCharges    float64 `json:"orderCharges"`
	DeliveryCharges float64 `json:"deliveryCharges"`
	GST             float64 `json:"gst"`
	TotalAmount     float64 `json:"totalAmount"`
}

// Place converts the user's active cart into a preparing order and locks the
// cart. The whole sequence is one transaction; the confirmation mail goes out
// after commit and never rolls anything back.
func (s *OrderService) Place(currentUserID, userID, cartID uint) (*PlaceOrderOut, error) {
	if currentUserID != userID {
		return nil, apperr.Forbidden("cannot place an order for another user")
	}

	var out PlaceOrderOut
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetByID(tx, userID, cartID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("cart not found")
			}
			return err
		}

		// checked before the status so a repeat call reports the real cause
		exists, err := s.Repo.ExistsForCart(tx, cart.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("order already placed for this cart")
		}
		if cart.Status != entity.CartStatusActive {
			return apperr.Conflict("cart is locked")
		}

		lines, err := s.CartRepo.GetLines(tx, cart.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.BadRequest("cart is empty")
		}

		var orderCharges float64
		for _, line := range lines {
			orderCharges += float64(line.Quantity) * line.UnitPrice
		}
		orderCharges = utils.Round2(orderCharges)
		gst := utils.Round2(orderCharges * s.GSTRate / 100)
		delivery := utils.Round2(s.DeliveryCharges)
		total := utils.Round2(orderCharges + delivery + gst)

		order := entity.Order{
			CartID:          cart.ID,
			UserID:          userID,
			RestaurantID:    cart.RestaurantID,
			Status:          entity.OrderStatusPreparing,
			OrderCharges:    orderCharges,
			DeliveryCharges: delivery,
			GST:             gst,
			TotalAmount:     total,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		affected, err := s.CartRepo.Lock(tx, cart.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("cart is locked")
		}

		out = PlaceOrderOut{
			ID:              order.ID,
			OrderCharges:    orderCharges,
			DeliveryCharges: delivery,
			GST:             gst,
			TotalAmount:     total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(userID, "Order placed",
		fmt.Sprintf("Your order #%d for %.2f has been placed and is being prepared.", out.ID, out.TotalAmount))
	return &out, nil
}

type OrderListOut struct {
	Items []repository.OrderSummary `json:"items"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}

func (s *OrderService) ListForUser(userID uint, page, limit int) (*OrderListOut, error) {
	items, total, err := s.Repo.ListForUser(userID, page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return o, nil
}

// Delete removes an order that has not progressed past preparing, together
// with its cart.
func (s *OrderService) Delete(currentUserID, userID, orderID uint) error {
	if currentUserID != userID {
		return apperr.Forbidden("cannot delete another user's order")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetForUser(userID, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return err
		}
		if o.Status != entity.OrderStatusPreparing {
			return apperr.NotFound("order not found")
		}

		if err := s.Repo.Delete(tx, o.ID); err != nil {
			return err
		}
		return s.CartRepo.Delete(tx, o.CartID)
	})
}

// notify sends a best-effort transactional mail; failures are logged only.
func (s *OrderService) notify(userID uint, subject, body string) {
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		s.Log.Warn("notify: user lookup failed", zap.Uint("userId", userID), zap.Error(err))
		return
	}
	if err := s.Mailer.Send(u.Email, subject, body); err != nil {
		s.Log.Warn("notify: send failed", zap.String("to", u.Email), zap.Error(err))
	}
}
