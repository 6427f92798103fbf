package controllers

import (
	"dishpatch-be/pkg/resp"
	"dishpatch-be/services"
	"dishpatch-be/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Place(utils.CurrentUserID(c), req.UserID, req.CartID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "order placed", out)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	page, limit := utils.Pagination(c)
	out, err := h.Svc.ListForUser(utils.CurrentUserID(c), page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "orders", out)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	orderID, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	o, err := h.Svc.DetailForUser(utils.CurrentUserID(c), orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "order", o)
}

// DELETE /orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	orderID, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	uid := utils.CurrentUserID(c)
	if err := h.Svc.Delete(uid, uid, orderID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "order deleted", nil)
}

// PATCH /admin/orders/:id/assign
func (h *OrderController) Assign(c *gin.Context) {
	orderID, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req struct {
		PartnerID uint `json:"partnerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Assign(orderID, req.PartnerID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "delivery partner assigned", nil)
}

// PATCH /partner/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	orderID, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req struct {
		Status string `json:"status" binding:"required,oneof=delivered cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateStatus(utils.CurrentUserID(c), orderID, req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "order status updated", nil)
}
