package services

import (
	"context"
	"errors"
	"fmt"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"
	"dishpatch-be/pkg/gateway"
	"dishpatch-be/pkg/mailer"
	"dishpatch-be/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository

	Gateway gateway.PaymentGateway
	Mailer  mailer.Mailer
	Log     *zap.Logger
}

func NewPaymentService(
	db *gorm.DB,
	repo *repository.PaymentRepository,
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	gw gateway.PaymentGateway,
	m mailer.Mailer,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		DB: db, Repo: repo, OrderRepo: orderRepo, UserRepo: userRepo,
		Gateway: gw, Mailer: m, Log: log,
	}
}

type MakePaymentIn struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=online cash-on-delivery"`
}

// Make records a one-time payment for a preparing order. The gateway call
// happens before any write, so a declined charge never leaves a row behind.
func (s *PaymentService) Make(ctx context.Context, userID uint, in *MakePaymentIn) (*entity.Payment, error) {
	var payment entity.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.OrderRepo.GetForUser(userID, in.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return err
		}
		if order.Status != entity.OrderStatusPreparing {
			return apperr.NotFound("order not found")
		}

		exists, err := s.Repo.ExistsForOrder(tx, order.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("payment already made")
		}

		ok, err := s.Gateway.Charge(ctx, fmt.Sprintf("order-%d", order.ID), order.TotalAmount, in.Type)
		if err != nil || !ok {
			return apperr.BadRequest("payment failed")
		}

		payment = entity.Payment{
			OrderID:     order.ID,
			TotalAmount: order.TotalAmount,
			Type:        in.Type,
			Status:      entity.PaymentStatusSuccessful,
		}
		return s.Repo.Create(tx, &payment)
	})
	if err != nil {
		return nil, err
	}

	s.notifyPayment(userID, &payment)
	return &payment, nil
}

func (s *PaymentService) GetForOrder(userID, orderID uint) (*entity.Payment, error) {
	if _, err := s.OrderRepo.GetForUser(userID, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	p, err := s.Repo.GetByOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) notifyPayment(userID uint, p *entity.Payment) {
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		s.Log.Warn("payment notify: user lookup failed", zap.Uint("userId", userID), zap.Error(err))
		return
	}
	body := fmt.Sprintf("Payment of %.2f for order #%d was recorded (%s).", p.TotalAmount, p.OrderID, p.Type)
	if err := s.Mailer.Send(u.Email, "Payment received", body); err != nil {
		s.Log.Warn("payment notify: send failed", zap.String("to", u.Email), zap.Error(err))
	}
}
