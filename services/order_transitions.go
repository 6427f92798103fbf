package services

import (
	"errors"
	"fmt"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"

	"gorm.io/gorm"
)

// ----- Assignment & status transitions -----
//
// preparing is the only state anything moves out of: an unassigned preparing
// order can be bound to a delivery partner, and the bound partner can take it
// to delivered or cancelled. Both terminal states are final.

func (s *OrderService) Assign(orderID, partnerID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetByID(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return err
		}
		if o.Status != entity.OrderStatusPreparing || o.DeliveryPartnerID != nil {
			return apperr.NotFound("order not found")
		}

		isPartner, err := s.UserRepo.HasRole(partnerID, entity.RoleDeliveryPartner)
		if err != nil {
			return err
		}
		if !isPartner {
			return apperr.NotFound("delivery partner not found")
		}

		affected, err := s.Repo.AssignPartner(tx, orderID, partnerID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound("order not found")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(partnerID, "Order assigned",
		fmt.Sprintf("Order #%d has been assigned to you for delivery.", orderID))
	return nil
}

// UpdateStatus lets the bound delivery partner move a preparing order to
// delivered or cancelled. A partner mismatch is a distinct Forbidden, not a
// silent not-found.
func (s *OrderService) UpdateStatus(partnerID, orderID uint, to string) error {
	if to != entity.OrderStatusDelivered && to != entity.OrderStatusCancelled {
		return apperr.BadRequest("invalid target status")
	}

	var customerID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetByID(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return err
		}
		if o.DeliveryPartnerID == nil || *o.DeliveryPartnerID != partnerID {
			return apperr.Forbidden("order is not assigned to you")
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, entity.OrderStatusPreparing, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order already finalized")
		}

		customerID = o.UserID
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(customerID, "Order update",
		fmt.Sprintf("Your order #%d is now %s.", orderID, to))
	return nil
}
