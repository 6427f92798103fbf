package controllers

import (
	"dishpatch-be/pkg/resp"
	"dishpatch-be/services"
	"dishpatch-be/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /payments
func (h *PaymentController) Make(c *gin.Context) {
	var req services.MakePaymentIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.Make(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "payment recorded", p)
}

// GET /orders/:id/payment
func (h *PaymentController) GetForOrder(c *gin.Context) {
	orderID, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	p, err := h.Svc.GetForOrder(utils.CurrentUserID(c), orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "payment", p)
}
