package controllers

import (
	"strconv"

	"dishpatch-be/pkg/resp"
	"dishpatch-be/services"
	"dishpatch-be/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	out, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "cart", out)
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AddItem(utils.CurrentUserID(c), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "dish added to cart", nil)
}

// DELETE /cart/:cartId/items/:dishId
func (h *CartController) RemoveItem(c *gin.Context) {
	cartID, err := paramUint(c, "cartId")
	if err != nil {
		resp.BadRequest(c, "invalid cart id")
		return
	}
	dishID, err := paramUint(c, "dishId")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), cartID, dishID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "dish removed", nil)
}

// DELETE /cart/:cartId
func (h *CartController) Empty(c *gin.Context) {
	cartID, err := paramUint(c, "cartId")
	if err != nil {
		resp.BadRequest(c, "invalid cart id")
		return
	}
	if err := h.Svc.Empty(utils.CurrentUserID(c), cartID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "cart emptied", nil)
}

func paramUint(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(v), err
}
