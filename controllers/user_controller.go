package controllers

import (
	"dishpatch-be/pkg/resp"
	"dishpatch-be/services"
	"dishpatch-be/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// GET /admin/users
func (h *UserController) List(c *gin.Context) {
	page, limit := utils.Pagination(c)
	out, err := h.Svc.List(page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "users", out)
}

// POST /admin/users/:id/roles
func (h *UserController) GrantRole(c *gin.Context) {
	userID, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.GrantRole(userID, req.Role); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "role granted", nil)
}

// DELETE /admin/users/:id/roles/:role
func (h *UserController) RevokeRole(c *gin.Context) {
	userID, err := paramUint(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	if err := h.Svc.RevokeRole(userID, c.Param("role")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "role revoked", nil)
}
